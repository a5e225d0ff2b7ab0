package entities

import (
	"fmt"

	"github.com/gonewx/asteroids/pkg/components"
	"github.com/gonewx/asteroids/pkg/config"
	"github.com/gonewx/asteroids/pkg/ecs"
	"github.com/gonewx/asteroids/pkg/utils"
)

// BossLevelForPlayerLevel 由玩家等级推算 Boss 等级
// 每 levelInterval 个玩家等级提升一级，最低为 1
func BossLevelForPlayerLevel(playerLevel, levelInterval int) int {
	if levelInterval < 1 {
		levelInterval = 1
	}
	return max(1, playerLevel/levelInterval)
}

// NewBoss 创建 Boss 实体
//
// 参数:
//   - em: 实体管理器
//   - cfg: Boss 配置
//   - playerLevel: 当前玩家等级（决定 Boss 等级和生命值）
//   - pos: 出生位置
//
// 返回:
//   - ecs.EntityID: 创建的 Boss 实体ID
//   - error: 参数无效时返回错误
func NewBoss(em *ecs.EntityManager, cfg config.BossConfig, playerLevel int, pos utils.Vector2) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	level := BossLevelForPlayerLevel(playerLevel, cfg.LevelInterval)
	health := cfg.MaxHealthForLevel(level)

	entityID := em.CreateEntity()

	em.AddComponent(entityID, &components.TransformComponent{
		Position: pos,
		Radius:   cfg.Radius,
	})
	em.AddComponent(entityID, &components.BossComponent{
		Level:         level,
		Health:        health,
		MaxHealth:     health,
		Phase:         components.BossPhaseCenter,
		AttackPattern: components.BossAttackCircle,
		DeathTimer:    -1,
	})

	return entityID, nil
}

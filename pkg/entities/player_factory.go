package entities

import (
	"fmt"

	"github.com/gonewx/asteroids/pkg/components"
	"github.com/gonewx/asteroids/pkg/config"
	"github.com/gonewx/asteroids/pkg/ecs"
	"github.com/gonewx/asteroids/pkg/types"
	"github.com/gonewx/asteroids/pkg/utils"
)

// NewPlayer 创建玩家飞船
// 新飞船带有一段重生无敌时间
func NewPlayer(em *ecs.EntityManager, cfg config.PlayerConfig, pos utils.Vector2) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	entityID := em.CreateEntity()

	em.AddComponent(entityID, &components.TransformComponent{
		Position: pos,
		Radius:   cfg.Radius,
		Rotation: 180, // 机头朝上
	})
	em.AddComponent(entityID, &components.PlayerComponent{
		Invulnerable: cfg.RespawnInvulnerability,
		Weapon:       types.ShotStandard,
	})

	return entityID, nil
}

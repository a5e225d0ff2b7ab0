package entities

import (
	"go.uber.org/zap"

	"github.com/gonewx/asteroids/pkg/components"
	"github.com/gonewx/asteroids/pkg/config"
	"github.com/gonewx/asteroids/pkg/ecs"
	"github.com/gonewx/asteroids/pkg/types"
	"github.com/gonewx/asteroids/pkg/utils"
)

// BossAttackFactory 把 Boss 攻击描述转换为敌方子弹实体
//
// 弹幕形状:
//   - circle: 以 Boss 为中心的均匀圆环
//   - spiral: 圆环，起始角随攻击次数偏移 spiralStep 度
//   - targeted: 朝向玩家的扇形（无玩家时朝下）
type BossAttackFactory struct {
	em     *ecs.EntityManager
	shot   config.ShotStats
	boss   config.BossConfig
	logger *zap.Logger
}

// NewBossAttackFactory 创建 Boss 弹幕工厂
func NewBossAttackFactory(em *ecs.EntityManager, shot config.ShotStats, boss config.BossConfig, logger *zap.Logger) *BossAttackFactory {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BossAttackFactory{
		em:     em,
		shot:   shot,
		boss:   boss,
		logger: logger.Named("BossAttackFactory"),
	}
}

// HandleBossAttack 生成一次攻击的全部子弹
// Boss 已不存在时静默忽略
func (f *BossAttackFactory) HandleBossAttack(bossID ecs.EntityID, attack components.BossAttack, playerPos *utils.Vector2) {
	f.Spawn(bossID, attack, playerPos)
}

// Spawn 生成一次攻击的全部子弹并返回其ID
func (f *BossAttackFactory) Spawn(bossID ecs.EntityID, attack components.BossAttack, playerPos *utils.Vector2) []ecs.EntityID {
	if !f.em.IsAlive(bossID) || attack.ProjectileCount <= 0 {
		return nil
	}
	transform, ok := ecs.GetComponent[*components.TransformComponent](f.em, bossID)
	if !ok {
		return nil
	}
	boss, ok := ecs.GetComponent[*components.BossComponent](f.em, bossID)
	if !ok {
		return nil
	}

	var dirs []utils.Vector2
	switch attack.Pattern {
	case components.BossAttackCircle:
		dirs = ringDirections(attack.ProjectileCount, 0)
	case components.BossAttackSpiral:
		dirs = ringDirections(attack.ProjectileCount, float64(boss.AttackCount)*f.boss.SpiralStep)
	case components.BossAttackTargeted:
		aim := utils.Vec(0, 1)
		if playerPos != nil {
			if d, ok := playerPos.Sub(transform.Position).Normalize(); ok {
				aim = d
			}
		}
		dirs = SpreadDirections(aim, attack.ProjectileCount, f.boss.TargetedSpread)
	}

	ids := make([]ecs.EntityID, 0, len(dirs))
	for _, dir := range dirs {
		muzzle := transform.Position.Add(dir.Scale(transform.Radius))
		id, err := NewProjectile(f.em, f.shot, types.ShotBoss, types.FactionEnemy, muzzle, dir)
		if err != nil {
			f.logger.Warn("failed to spawn boss projectile", zap.Error(err))
			continue
		}
		ids = append(ids, id)
	}

	f.logger.Debug("boss attack",
		zap.Uint64("boss", uint64(bossID)),
		zap.Stringer("pattern", attack.Pattern),
		zap.Int("projectiles", len(ids)))
	return ids
}

// ringDirections count 个均匀分布的方向，第一个方向相对 (0,1) 偏移 offset 度
func ringDirections(count int, offset float64) []utils.Vector2 {
	dirs := make([]utils.Vector2, count)
	step := 360.0 / float64(count)
	for i := 0; i < count; i++ {
		dirs[i] = utils.ForwardVector(offset + step*float64(i))
	}
	return dirs
}

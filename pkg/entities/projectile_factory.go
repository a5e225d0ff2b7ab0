package entities

import (
	"fmt"

	"github.com/gonewx/asteroids/pkg/components"
	"github.com/gonewx/asteroids/pkg/config"
	"github.com/gonewx/asteroids/pkg/ecs"
	"github.com/gonewx/asteroids/pkg/types"
	"github.com/gonewx/asteroids/pkg/utils"
)

// NewProjectile 创建子弹实体
// 子弹沿 direction 方向以 stats.Speed 匀速飞行；TurnRate > 0 的子弹附带追踪组件
//
// 参数:
//   - em: 实体管理器
//   - stats: 子弹参数
//   - shot: 子弹类型
//   - owner: 所属阵营
//   - pos: 发射位置
//   - direction: 飞行方向（无需归一化，不能为零向量）
//
// 返回:
//   - ecs.EntityID: 创建的子弹实体ID
//   - error: 参数无效时返回错误
func NewProjectile(em *ecs.EntityManager, stats config.ShotStats, shot types.ShotType, owner types.Faction, pos, direction utils.Vector2) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	vel, ok := direction.ScaleToLength(stats.Speed)
	if !ok {
		return 0, fmt.Errorf("projectile direction cannot be zero")
	}

	entityID := em.CreateEntity()

	em.AddComponent(entityID, &components.TransformComponent{
		Position: pos,
		Velocity: vel,
		Radius:   stats.Radius,
		Rotation: utils.ForwardVector(0).AngleTo(direction),
	})

	em.AddComponent(entityID, &components.ProjectileComponent{
		ShotType: shot,
		Damage:   stats.Damage,
		Lifetime: stats.Lifetime,
		Owner:    owner,
	})

	if stats.TurnRate > 0 {
		em.AddComponent(entityID, &components.HomingComponent{
			TurnRate: stats.TurnRate,
			Target:   ecs.InvalidEntity,
		})
	}

	return entityID, nil
}

// SpreadDirections 把 base 方向展开为 count 个均匀分布在 spread 度扇形内的方向
// count 为 1 时只返回 base 本身
func SpreadDirections(base utils.Vector2, count int, spread float64) []utils.Vector2 {
	if count <= 1 {
		return []utils.Vector2{base}
	}
	dirs := make([]utils.Vector2, count)
	step := spread / float64(count-1)
	start := -spread / 2
	for i := 0; i < count; i++ {
		dirs[i] = base.Rotate(start + step*float64(i))
	}
	return dirs
}

// FireSpread 按子弹参数中的弹丸数和扇形角一次发射多枚子弹
//
// 返回:
//   - []ecs.EntityID: 成功创建的子弹
//   - error: 任一子弹创建失败时返回错误（已创建的子弹保留）
func FireSpread(em *ecs.EntityManager, stats config.ShotStats, shot types.ShotType, owner types.Faction, pos, direction utils.Vector2) ([]ecs.EntityID, error) {
	pellets := max(stats.Pellets, 1)
	ids := make([]ecs.EntityID, 0, pellets)
	for _, dir := range SpreadDirections(direction, pellets, stats.Spread) {
		id, err := NewProjectile(em, stats, shot, owner, pos, dir)
		if err != nil {
			return ids, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

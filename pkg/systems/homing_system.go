package systems

import (
	"math"

	"github.com/gonewx/asteroids/pkg/components"
	"github.com/gonewx/asteroids/pkg/ecs"
	"github.com/gonewx/asteroids/pkg/types"
	"github.com/gonewx/asteroids/pkg/utils"
)

// HomingSystem 追踪弹转向
//
// 目标只保存实体ID，每次转向前都重新确认存活；目标失效时立即重新锁定最近的
// 小行星或 Boss。转向只旋转速度方向，速度大小不变。
type HomingSystem struct {
	entityManager *ecs.EntityManager
}

// NewHomingSystem 创建追踪系统
func NewHomingSystem(em *ecs.EntityManager) *HomingSystem {
	return &HomingSystem{entityManager: em}
}

// Update 对所有玩家追踪弹执行一次转向
func (s *HomingSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetAliveEntitiesWith2[*components.ProjectileComponent, *components.HomingComponent](s.entityManager) {
		s.Seek(id, deltaTime)
	}
}

// Seek 让一枚追踪弹朝目标转向
//
// 每次更新最多转 TurnRate 度（与 deltaTime 无关）。没有任何候选目标时保持直线飞行；
// 速度或目标方向为零向量时本次不转向。
func (s *HomingSystem) Seek(id ecs.EntityID, deltaTime float64) {
	proj, ok := ecs.GetComponent[*components.ProjectileComponent](s.entityManager, id)
	if !ok || proj.Owner != types.FactionPlayer {
		return
	}
	homing, ok := ecs.GetComponent[*components.HomingComponent](s.entityManager, id)
	if !ok {
		return
	}
	tr, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
	if !ok {
		return
	}

	if !s.isTrackable(homing.Target) {
		homing.Target = s.nearestTarget(tr.Position)
		if homing.Target == ecs.InvalidEntity {
			return
		}
	}

	target, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, homing.Target)
	toTarget := target.Position.Sub(tr.Position)
	if tr.Velocity.IsZero() || toTarget.IsZero() {
		return
	}

	angle := tr.Velocity.AngleTo(toTarget)
	turn := utils.Clamp(angle, -homing.TurnRate, homing.TurnRate)
	tr.Velocity = tr.Velocity.Rotate(turn)
	tr.Rotation = utils.ForwardVector(0).AngleTo(tr.Velocity)
}

// isTrackable 目标仍存活且仍可被追踪（死亡动画中的 Boss 不再追踪）
func (s *HomingSystem) isTrackable(id ecs.EntityID) bool {
	if id == ecs.InvalidEntity || !s.entityManager.IsAlive(id) {
		return false
	}
	if ecs.HasComponent[*components.AsteroidComponent](s.entityManager, id) {
		return true
	}
	if boss, ok := ecs.GetComponent[*components.BossComponent](s.entityManager, id); ok {
		return !boss.IsDying()
	}
	return false
}

// nearestTarget 扫描小行星和 Boss，返回距离最近的可追踪实体
// 距离相同时取ID较小者
func (s *HomingSystem) nearestTarget(from utils.Vector2) ecs.EntityID {
	best := ecs.InvalidEntity
	bestDist := math.Inf(1)

	consider := func(ids []ecs.EntityID) {
		for _, id := range ids {
			if !s.isTrackable(id) {
				continue
			}
			tr, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
			if !ok {
				continue
			}
			if d := from.DistanceSquaredTo(tr.Position); d < bestDist || (d == bestDist && id < best) {
				best, bestDist = id, d
			}
		}
	}

	consider(ecs.GetAliveEntitiesWith1[*components.AsteroidComponent](s.entityManager))
	consider(ecs.GetAliveEntitiesWith1[*components.BossComponent](s.entityManager))
	return best
}

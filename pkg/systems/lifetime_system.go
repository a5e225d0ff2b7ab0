package systems

import (
	"github.com/gonewx/asteroids/pkg/components"
	"github.com/gonewx/asteroids/pkg/ecs"
)

// LifetimeSystem 管理子弹和道具的存在时间
type LifetimeSystem struct {
	entityManager *ecs.EntityManager
}

// NewLifetimeSystem 创建一个新的生命周期系统
func NewLifetimeSystem(em *ecs.EntityManager) *LifetimeSystem {
	return &LifetimeSystem{
		entityManager: em,
	}
}

// Update 递减剩余时间，降到 0 及以下的实体在当帧标记删除
func (s *LifetimeSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetAliveEntitiesWith1[*components.ProjectileComponent](s.entityManager) {
		p, _ := ecs.GetComponent[*components.ProjectileComponent](s.entityManager, id)
		p.Lifetime -= deltaTime
		if p.Lifetime <= 0 {
			s.entityManager.DestroyEntity(id)
		}
	}

	for _, id := range ecs.GetAliveEntitiesWith1[*components.PowerUpComponent](s.entityManager) {
		p, _ := ecs.GetComponent[*components.PowerUpComponent](s.entityManager, id)
		p.Lifetime -= deltaTime
		if p.Lifetime <= 0 {
			s.entityManager.DestroyEntity(id)
		}
	}
}

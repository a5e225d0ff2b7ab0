package systems

import (
	"github.com/gonewx/asteroids/pkg/components"
	"github.com/gonewx/asteroids/pkg/ecs"
)

// MovementSystem 按速度积分所有实体的位置
// Boss 在自身状态机内积分位置，这里跳过；小行星额外按自转速度旋转
type MovementSystem struct {
	entityManager *ecs.EntityManager
}

// NewMovementSystem 创建移动系统
func NewMovementSystem(em *ecs.EntityManager) *MovementSystem {
	return &MovementSystem{entityManager: em}
}

// Update 推进一帧
func (s *MovementSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetAliveEntitiesWith1[*components.TransformComponent](s.entityManager) {
		if ecs.HasComponent[*components.BossComponent](s.entityManager, id) {
			continue
		}
		tr, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
		tr.Position = tr.Position.Add(tr.Velocity.Scale(deltaTime))

		if ast, ok := ecs.GetComponent[*components.AsteroidComponent](s.entityManager, id); ok {
			tr.Rotation += ast.RotationSpeed * deltaTime
		}
	}
}

package systems

import (
	"github.com/gonewx/asteroids/pkg/components"
	"github.com/gonewx/asteroids/pkg/config"
	"github.com/gonewx/asteroids/pkg/ecs"
	"github.com/gonewx/asteroids/pkg/utils"
)

// WrapSystem 屏幕边界处理
//
//   - 子弹：飞出屏幕超过外扩边距后删除，不环绕
//   - Boss：由 BossSystem 钳制在屏幕内，这里跳过
//   - 其余实体：整个碰撞圆离开屏幕后从对侧边界重新出现，速度不变
type WrapSystem struct {
	entityManager *ecs.EntityManager
	width         float64
	height        float64
	margin        float64
}

// NewWrapSystem 创建边界处理系统
func NewWrapSystem(em *ecs.EntityManager, screen config.ScreenConfig, offscreenMargin float64) *WrapSystem {
	return &WrapSystem{
		entityManager: em,
		width:         screen.Width,
		height:        screen.Height,
		margin:        offscreenMargin,
	}
}

// Update 对所有存活实体应用边界规则
func (s *WrapSystem) Update() {
	for _, id := range ecs.GetAliveEntitiesWith1[*components.TransformComponent](s.entityManager) {
		if ecs.HasComponent[*components.BossComponent](s.entityManager, id) {
			continue
		}
		tr, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)

		if ecs.HasComponent[*components.ProjectileComponent](s.entityManager, id) {
			if utils.OutOfBounds(tr.Position, s.width, s.height, s.margin) {
				s.entityManager.DestroyEntity(id)
			}
			continue
		}

		tr.Position = utils.WrapPosition(tr.Position, s.width, s.height, tr.Radius)
	}
}

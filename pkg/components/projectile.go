package components

import (
	"github.com/gonewx/asteroids/pkg/ecs"
	"github.com/gonewx/asteroids/pkg/types"
)

// ProjectileComponent 子弹数据
type ProjectileComponent struct {
	ShotType types.ShotType
	Damage   int
	Lifetime float64 // 剩余存在时间（秒），降到 0 及以下时移除
	Owner    types.Faction
}

// HomingComponent 追踪弹的转向状态
//
// Target 是不拥有目标的句柄，每次使用前都必须用 EntityManager.IsAlive 重新确认。
type HomingComponent struct {
	TurnRate float64 // 每次更新最多转向的角度（度）
	Target   ecs.EntityID
}

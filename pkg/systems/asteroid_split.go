package systems

import (
	"math/rand"

	"go.uber.org/zap"

	"github.com/gonewx/asteroids/pkg/components"
	"github.com/gonewx/asteroids/pkg/config"
	"github.com/gonewx/asteroids/pkg/ecs"
	"github.com/gonewx/asteroids/pkg/entities"
	"github.com/gonewx/asteroids/pkg/types"
)

// SplitContext 分裂小行星所需的依赖
type SplitContext struct {
	EntityManager *ecs.EntityManager
	Asteroid      config.AsteroidConfig
	PowerUp       config.PowerUpConfig
	Rand          *rand.Rand
	Logger        *zap.Logger
}

// SplitResult 一次分裂的结果
type SplitResult struct {
	// Destroyed 父小行星被移除；金属小行星仅被削减生命时为 false
	Destroyed bool
	// Children 新生成的碎片，调用方在当前碰撞轮次中必须忽略它们
	Children []ecs.EntityID
	// PowerUp 掉落的道具，未掉落时为 ecs.InvalidEntity
	PowerUp ecs.EntityID
}

// SplitAsteroid 击碎一颗小行星
//
// 处理顺序:
//  1. 父小行星标记删除
//  2. 以 PowerUp.SpawnChance 的概率在原位置掉落随机道具（场上道具数未达上限时）
//  3. 金属小行星 Health > 1：生命减一，取消删除，不产生碎片
//  4. 半径 <= MinRadius：不产生碎片
//  5. 否则产生半径为 Radius-MinRadius 的碎片：两块分别偏转 ±d 度，
//     水晶小行星三块（-d, 0, +d），d 在 [SplitAngleMin, SplitAngleMax] 内均匀随机；
//     碎片速度乘以分裂倍率（冰晶使用更大的倍率），重新生成形状并继承类型
//
// 参数:
//   - sc: 分裂依赖
//   - id: 被击中的小行星
//
// 返回:
//   - SplitResult: 分裂结果；id 已失效或不是小行星时返回零值
func SplitAsteroid(sc *SplitContext, id ecs.EntityID) SplitResult {
	em := sc.EntityManager
	if !em.IsAlive(id) {
		return SplitResult{}
	}
	tr, ok := ecs.GetComponent[*components.TransformComponent](em, id)
	if !ok {
		return SplitResult{}
	}
	ast, ok := ecs.GetComponent[*components.AsteroidComponent](em, id)
	if !ok {
		return SplitResult{}
	}

	result := SplitResult{Destroyed: true, PowerUp: ecs.InvalidEntity}
	em.DestroyEntity(id)

	if sc.Rand.Float64() < sc.PowerUp.SpawnChance && ecs.CountAlive[*components.PowerUpComponent](em) < sc.PowerUp.MaxActive {
		powerUpID, err := entities.NewPowerUp(em, sc.PowerUp, entities.RandomPowerUpType(sc.Rand), tr.Position)
		if err != nil {
			sc.logger().Warn("failed to drop power-up", zap.Error(err))
		} else {
			result.PowerUp = powerUpID
		}
	}

	if ast.Type == types.AsteroidMetal && ast.Health > 1 {
		ast.Health--
		em.CancelDestroy(id)
		result.Destroyed = false
		return result
	}

	if tr.Radius <= sc.Asteroid.MinRadius {
		return result
	}

	newRadius := tr.Radius - sc.Asteroid.MinRadius
	deflection := sc.Asteroid.SplitAngleMin + sc.Rand.Float64()*(sc.Asteroid.SplitAngleMax-sc.Asteroid.SplitAngleMin)

	angles := []float64{-deflection, deflection}
	if ast.Type == types.AsteroidCrystal {
		angles = []float64{-deflection, 0, deflection}
	}

	speedMultiplier := sc.Asteroid.SplitSpeedMultiplier
	if ast.Type == types.AsteroidIce {
		speedMultiplier = sc.Asteroid.IceSplitSpeedMultiplier
	}

	for _, angle := range angles {
		vel := tr.Velocity.Rotate(angle).Scale(speedMultiplier)
		childID, err := entities.NewAsteroid(em, sc.Rand, sc.Asteroid, ast.Type, tr.Position, vel, newRadius)
		if err != nil {
			sc.logger().Warn("failed to spawn asteroid fragment", zap.Error(err))
			continue
		}
		result.Children = append(result.Children, childID)
	}

	sc.logger().Debug("asteroid split",
		zap.Uint64("asteroid", uint64(id)),
		zap.Stringer("type", ast.Type),
		zap.Float64("radius", tr.Radius),
		zap.Int("children", len(result.Children)))

	return result
}

func (sc *SplitContext) logger() *zap.Logger {
	if sc.Logger == nil {
		return zap.NewNop()
	}
	return sc.Logger
}

package entities

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/gonewx/asteroids/pkg/components"
	"github.com/gonewx/asteroids/pkg/config"
	"github.com/gonewx/asteroids/pkg/ecs"
	"github.com/gonewx/asteroids/pkg/types"
	"github.com/gonewx/asteroids/pkg/utils"
)

// GenerateVertices 生成不规则多边形的局部顶点
//
// count 个顶点按等角度分布，每个顶点到中心的距离在
// [radius*(1-irregularity), radius] 内均匀随机，因此多边形始终被碰撞圆包住。
//
// 参数:
//   - rng: 随机源
//   - radius: 外接半径
//   - count: 顶点数（调用方保证 >= 3）
//   - irregularity: 扰动比例 [0, 1)
func GenerateVertices(rng *rand.Rand, radius float64, count int, irregularity float64) []utils.Vector2 {
	vertices := make([]utils.Vector2, count)
	step := 2 * math.Pi / float64(count)
	for i := 0; i < count; i++ {
		angle := step * float64(i)
		dist := radius * (1 - irregularity*rng.Float64())
		vertices[i] = utils.Vec(math.Cos(angle)*dist, math.Sin(angle)*dist)
	}
	return vertices
}

// PickAsteroidType 按权重随机选择小行星类型
// 权重表按 types.AllAsteroidTypes 的固定顺序遍历，保证同一随机种子结果一致
func PickAsteroidType(rng *rand.Rand, weights map[string]int) types.AsteroidType {
	total := 0
	for _, t := range types.AllAsteroidTypes {
		total += max(weights[t.String()], 0)
	}
	if total <= 0 {
		return types.AsteroidNormal
	}

	roll := rng.Intn(total)
	for _, t := range types.AllAsteroidTypes {
		w := max(weights[t.String()], 0)
		if roll < w {
			return t
		}
		roll -= w
	}
	return types.AsteroidNormal
}

// AsteroidHealth 返回指定类型小行星的初始生命值
func AsteroidHealth(cfg config.AsteroidConfig, asteroidType types.AsteroidType) int {
	if asteroidType == types.AsteroidMetal {
		return cfg.MetalHealth
	}
	return 1
}

// NewAsteroid 创建小行星实体
//
// 参数:
//   - em: 实体管理器
//   - rng: 随机源（顶点形状、自转速度）
//   - cfg: 小行星配置
//   - asteroidType: 小行星类型
//   - pos: 初始位置
//   - vel: 初始速度
//   - radius: 碰撞半径
//
// 返回:
//   - ecs.EntityID: 创建的实体ID
//   - error: 参数无效时返回错误
func NewAsteroid(em *ecs.EntityManager, rng *rand.Rand, cfg config.AsteroidConfig, asteroidType types.AsteroidType, pos, vel utils.Vector2, radius float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if radius <= 0 {
		return 0, fmt.Errorf("asteroid radius must be positive, got %.2f", radius)
	}

	entityID := em.CreateEntity()

	em.AddComponent(entityID, &components.TransformComponent{
		Position: pos,
		Velocity: vel,
		Radius:   radius,
		Rotation: rng.Float64() * 360,
	})

	em.AddComponent(entityID, &components.AsteroidComponent{
		Vertices:      GenerateVertices(rng, radius, cfg.VertexCount, cfg.Irregularity),
		RotationSpeed: (rng.Float64()*2 - 1) * cfg.RotationSpeedMax,
		Type:          asteroidType,
		Health:        AsteroidHealth(cfg, asteroidType),
	})

	return entityID, nil
}

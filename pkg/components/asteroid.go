package components

import (
	"github.com/gonewx/asteroids/pkg/types"
	"github.com/gonewx/asteroids/pkg/utils"
)

// AsteroidComponent 小行星数据
//
// Vertices 为以实体中心为原点的局部坐标，渲染和窄阶段碰撞时
// 按 TransformComponent.Rotation 旋转后平移到世界坐标。
type AsteroidComponent struct {
	Vertices      []utils.Vector2
	RotationSpeed float64 // 度/秒
	Type          types.AsteroidType
	Health        int // 金属小行星需要多次命中，其余类型恒为 1
}

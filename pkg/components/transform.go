package components

import "github.com/gonewx/asteroids/pkg/utils"

// TransformComponent 所有模拟实体共有的几何状态
// 碰撞宽阶段统一把实体视为以 Position 为圆心、Radius 为半径的圆
type TransformComponent struct {
	Position utils.Vector2 // 世界坐标（像素）
	Velocity utils.Vector2 // 像素/秒
	Radius   float64       // 碰撞半径，恒大于 0
	Rotation float64       // 朝向角（度）
}

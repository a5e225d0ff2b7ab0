package systems

import (
	"github.com/gonewx/asteroids/pkg/components"
	"github.com/gonewx/asteroids/pkg/ecs"
	"github.com/gonewx/asteroids/pkg/utils"
)

// ShapesCollide 判断两个实体是否接触
//
// 宽阶段统一做圆-圆检测。只有"小行星 vs 子弹"这一组合会继续做窄阶段：
// 子弹圆与小行星旋转后的多边形精确检测。参数顺序不影响结果。
func ShapesCollide(em *ecs.EntityManager, a, b ecs.EntityID) bool {
	ta, ok := ecs.GetComponent[*components.TransformComponent](em, a)
	if !ok {
		return false
	}
	tb, ok := ecs.GetComponent[*components.TransformComponent](em, b)
	if !ok {
		return false
	}
	if !utils.CirclesCollide(ta.Position, ta.Radius, tb.Position, tb.Radius) {
		return false
	}

	if ast, ok := ecs.GetComponent[*components.AsteroidComponent](em, a); ok && ecs.HasComponent[*components.ProjectileComponent](em, b) {
		return polygonHit(ta, ast, tb)
	}
	if ast, ok := ecs.GetComponent[*components.AsteroidComponent](em, b); ok && ecs.HasComponent[*components.ProjectileComponent](em, a) {
		return polygonHit(tb, ast, ta)
	}
	return true
}

// polygonHit 子弹圆与小行星多边形的窄阶段检测
func polygonHit(asteroid *components.TransformComponent, ast *components.AsteroidComponent, shot *components.TransformComponent) bool {
	if len(ast.Vertices) < 3 {
		return true
	}
	world := utils.TransformPolygon(make([]utils.Vector2, 0, len(ast.Vertices)), ast.Vertices, asteroid.Rotation, asteroid.Position)
	return utils.PolygonCircleCollide(world, shot.Position, shot.Radius)
}

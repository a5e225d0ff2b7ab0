package utils

import "math"

// 碰撞几何工具
//
// 宽阶段（broad phase）统一使用圆-圆检测；
// 窄阶段（narrow phase）仅用于多边形小行星与子弹之间的精确检测。

// CirclesCollide 圆-圆碰撞检测
// 判定条件为 distance ≤ r1 + r2，参数交换后结果不变
func CirclesCollide(p1 Vector2, r1 float64, p2 Vector2, r2 float64) bool {
	sum := r1 + r2
	return p1.DistanceSquaredTo(p2) <= sum*sum
}

// ClosestPointOnSegment 计算线段 ab 上距离点 p 最近的点
// 退化线段（a == b）直接返回 a
func ClosestPointOnSegment(a, b, p Vector2) Vector2 {
	ab := b.Sub(a)
	lenSq := ab.LengthSquared()
	if lenSq <= Epsilon*Epsilon {
		return a
	}
	t := Clamp(p.Sub(a).Dot(ab)/lenSq, 0, 1)
	return a.Add(ab.Scale(t))
}

// PointInPolygon 射线法判断点是否位于多边形内部
// polygon 为按顺序排列的世界坐标顶点，少于 3 个顶点时恒为 false
func PointInPolygon(p Vector2, polygon []Vector2) bool {
	n := len(polygon)
	if n < 3 {
		return false
	}
	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		a, b := polygon[i], polygon[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			xCross := (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y) + a.X
			if p.X < xCross {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// PolygonCircleCollide 多边形-圆精确碰撞检测
//
// 遍历多边形每条边，计算边上距离圆心最近的点，只要有一条边的距离 ≤ 半径即判定命中。
// 圆心完全落在多边形内部（高速子弹一帧穿入）同样判定命中。
//
// 参数:
//   - polygon: 世界坐标顶点序列（首尾自动闭合）
//   - center: 圆心
//   - radius: 圆半径
func PolygonCircleCollide(polygon []Vector2, center Vector2, radius float64) bool {
	n := len(polygon)
	if n == 0 {
		return false
	}
	rSq := radius * radius
	for i := 0; i < n; i++ {
		a := polygon[i]
		b := polygon[(i+1)%n]
		closest := ClosestPointOnSegment(a, b, center)
		if closest.DistanceSquaredTo(center) <= rSq {
			return true
		}
	}
	return PointInPolygon(center, polygon)
}

// TransformPolygon 将局部坐标顶点按旋转角度（度）和平移变换到世界坐标
// dst 容量足够时复用，避免每帧分配
func TransformPolygon(dst []Vector2, local []Vector2, rotation float64, origin Vector2) []Vector2 {
	dst = dst[:0]
	for _, v := range local {
		dst = append(dst, v.Rotate(rotation).Add(origin))
	}
	return dst
}

// WrapPosition 屏幕环绕：整个圆越过一侧边界后从对侧出现
// 环绕区间为 [-margin, size+margin]，传入碰撞半径时物体完全离开屏幕才会跳到对侧
// 只修改位置，不影响速度
func WrapPosition(p Vector2, width, height, margin float64) Vector2 {
	return Vector2{X: wrapAxis(p.X, width, margin), Y: wrapAxis(p.Y, height, margin)}
}

func wrapAxis(v, size, margin float64) float64 {
	margin = max(margin, 0)
	span := size + 2*margin
	if span <= 0 {
		return v
	}
	if v >= -margin && v <= size+margin {
		return v
	}
	v = math.Mod(v+margin, span)
	if v < 0 {
		v += span
	}
	return v - margin
}

// OutOfBounds 判断点是否超出屏幕范围加外扩边距
func OutOfBounds(p Vector2, width, height, margin float64) bool {
	return p.X < -margin || p.X > width+margin || p.Y < -margin || p.Y > height+margin
}

package utils

import "math"

// Vector2 二维浮点向量
// 用于位置（像素）、速度（像素/秒）等所有平面量
type Vector2 struct {
	X, Y float64
}

// Epsilon 向量长度判零阈值
// 长度不超过该值的向量视为零向量，禁止归一化
const Epsilon = 1e-9

// Vec 构造向量的便捷函数
func Vec(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Add 向量加法
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub 向量减法
func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale 标量乘法
func (v Vector2) Scale(s float64) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

// Dot 点积
func (v Vector2) Dot(o Vector2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross 二维叉积（z 分量）
func (v Vector2) Cross(o Vector2) float64 {
	return v.X*o.Y - v.Y*o.X
}

// Length 向量长度
func (v Vector2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// LengthSquared 向量长度的平方，避免开方
func (v Vector2) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// DistanceTo 到另一点的距离
func (v Vector2) DistanceTo(o Vector2) float64 {
	return v.Sub(o).Length()
}

// DistanceSquaredTo 到另一点距离的平方
func (v Vector2) DistanceSquaredTo(o Vector2) float64 {
	return v.Sub(o).LengthSquared()
}

// IsZero 判断是否为（近似）零向量
func (v Vector2) IsZero() bool {
	return v.LengthSquared() <= Epsilon*Epsilon
}

// Normalize 返回单位向量
//
// 返回:
//   - Vector2: 单位向量
//   - bool: 零向量无法归一化时返回 false，此时返回原向量
func (v Vector2) Normalize() (Vector2, bool) {
	l := v.Length()
	if l <= Epsilon {
		return v, false
	}
	return Vector2{X: v.X / l, Y: v.Y / l}, true
}

// ScaleToLength 保持方向、缩放到指定长度
// 零向量无方向，原样返回并报告 false
func (v Vector2) ScaleToLength(length float64) (Vector2, bool) {
	n, ok := v.Normalize()
	if !ok {
		return v, false
	}
	return n.Scale(length), true
}

// Rotate 逆时针旋转指定角度（度）
// 屏幕坐标系 Y 轴向下，视觉上表现为顺时针
func (v Vector2) Rotate(degrees float64) Vector2 {
	rad := degrees * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return Vector2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// AngleTo 返回从 v 转到 o 的有符号夹角（度），范围 (-180, 180]
// 任一向量为零向量时返回 0
func (v Vector2) AngleTo(o Vector2) float64 {
	if v.IsZero() || o.IsZero() {
		return 0
	}
	return math.Atan2(v.Cross(o), v.Dot(o)) * 180 / math.Pi
}

// Lerp 线性插值
func (v Vector2) Lerp(o Vector2, t float64) Vector2 {
	return Vector2{
		X: v.X + (o.X-v.X)*t,
		Y: v.Y + (o.Y-v.Y)*t,
	}
}

// IsFinite 检查两个分量都不是 NaN/Inf
func (v Vector2) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// ForwardVector 根据朝向角度（度）计算朝向单位向量
// 朝向 0° 对应 (0, 1)，与飞船贴图的"机头朝下"约定一致
func ForwardVector(rotation float64) Vector2 {
	return Vector2{X: 0, Y: 1}.Rotate(rotation)
}

// Clamp 将数值限制在 [min, max]
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

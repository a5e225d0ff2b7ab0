// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

import "fmt"

// AsteroidType 定义小行星的类型
// 类型影响生命值、分裂速度倍率和分裂数量
type AsteroidType int

const (
	// AsteroidNormal 普通小行星
	AsteroidNormal AsteroidType = iota
	// AsteroidIce 冰晶小行星：分裂碎片速度更快
	AsteroidIce
	// AsteroidMetal 金属小行星：需要两次命中才会分裂
	AsteroidMetal
	// AsteroidCrystal 水晶小行星：分裂为三块
	AsteroidCrystal
)

// AllAsteroidTypes 按声明顺序列出所有小行星类型
var AllAsteroidTypes = []AsteroidType{AsteroidNormal, AsteroidIce, AsteroidMetal, AsteroidCrystal}

// String 返回小行星类型的字符串表示（同时作为配置文件中的键）
func (a AsteroidType) String() string {
	switch a {
	case AsteroidNormal:
		return "normal"
	case AsteroidIce:
		return "ice"
	case AsteroidMetal:
		return "metal"
	case AsteroidCrystal:
		return "crystal"
	default:
		return "unknown"
	}
}

// ParseAsteroidType 将配置键解析为小行星类型
func ParseAsteroidType(s string) (AsteroidType, error) {
	for _, t := range AllAsteroidTypes {
		if t.String() == s {
			return t, nil
		}
	}
	return AsteroidNormal, fmt.Errorf("unknown asteroid type %q", s)
}

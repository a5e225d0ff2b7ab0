package components

import "github.com/gonewx/asteroids/pkg/types"

// PowerUpComponent 场上待拾取的道具
type PowerUpComponent struct {
	Type     types.PowerUpType
	Lifetime float64 // 剩余存在时间（秒）
}

package components

import "github.com/gonewx/asteroids/pkg/types"

// PlayerComponent 玩家飞船状态
// 所有计时器都是倒计时（秒），<= 0 表示未激活
type PlayerComponent struct {
	ShootCooldown float64
	Invulnerable  float64 // 重生无敌
	Shield        float64
	TripleShot    float64
	RapidFire     float64

	Weapon types.ShotType // 当前武器，弹药耗尽后回到标准子弹
	Ammo   int            // 特殊武器剩余弹药
}

// IsInvulnerable 是否处于无敌状态
func (p *PlayerComponent) IsInvulnerable() bool {
	return p.Invulnerable > 0
}

// HasShield 护盾是否生效
func (p *PlayerComponent) HasShield() bool {
	return p.Shield > 0
}

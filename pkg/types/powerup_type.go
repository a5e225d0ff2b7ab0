package types

// PowerUpType 定义道具的类型
type PowerUpType int

const (
	// PowerUpShield 护盾：抵挡一次撞击
	PowerUpShield PowerUpType = iota
	// PowerUpTripleShot 三连发
	PowerUpTripleShot
	// PowerUpRapidFire 速射：射击冷却减半
	PowerUpRapidFire
	// PowerUpLaser 激光武器
	PowerUpLaser
	// PowerUpMissile 导弹武器
	PowerUpMissile
	// PowerUpShotgun 霰弹武器
	PowerUpShotgun
)

// AllPowerUpTypes 按声明顺序列出所有道具类型
var AllPowerUpTypes = []PowerUpType{
	PowerUpShield,
	PowerUpTripleShot,
	PowerUpRapidFire,
	PowerUpLaser,
	PowerUpMissile,
	PowerUpShotgun,
}

// String 返回道具类型的字符串表示
func (p PowerUpType) String() string {
	switch p {
	case PowerUpShield:
		return "shield"
	case PowerUpTripleShot:
		return "triple_shot"
	case PowerUpRapidFire:
		return "rapid_fire"
	case PowerUpLaser:
		return "laser"
	case PowerUpMissile:
		return "missile"
	case PowerUpShotgun:
		return "shotgun"
	default:
		return "unknown"
	}
}

// WeaponShot 返回武器类道具对应的子弹类型
// 非武器类道具返回 false
func (p PowerUpType) WeaponShot() (ShotType, bool) {
	switch p {
	case PowerUpLaser:
		return ShotLaser, true
	case PowerUpMissile:
		return ShotMissile, true
	case PowerUpShotgun:
		return ShotShotgun, true
	default:
		return ShotStandard, false
	}
}

// Description 返回拾取道具时展示的说明文字
func (p PowerUpType) Description() string {
	switch p {
	case PowerUpShield:
		return "Absorbs the next hit"
	case PowerUpTripleShot:
		return "Fires three shots at once"
	case PowerUpRapidFire:
		return "Halves the weapon cooldown"
	case PowerUpLaser:
		return "Fast beam with double damage"
	case PowerUpMissile:
		return "Missiles seek the nearest target"
	case PowerUpShotgun:
		return "Five pellets in a wide spread"
	default:
		return ""
	}
}

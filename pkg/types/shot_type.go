package types

// ShotType 定义子弹的类型
type ShotType int

const (
	// ShotStandard 普通子弹
	ShotStandard ShotType = iota
	// ShotLaser 激光：速度快、伤害高
	ShotLaser
	// ShotMissile 导弹：自动追踪最近目标
	ShotMissile
	// ShotShotgun 霰弹：一次发射多枚弹丸
	ShotShotgun
	// ShotBoss Boss 发射的敌方子弹
	ShotBoss
)

// String 返回子弹类型的字符串表示
func (s ShotType) String() string {
	switch s {
	case ShotStandard:
		return "standard"
	case ShotLaser:
		return "laser"
	case ShotMissile:
		return "missile"
	case ShotShotgun:
		return "shotgun"
	case ShotBoss:
		return "boss"
	default:
		return "unknown"
	}
}

// Faction 子弹所属阵营，决定它能命中哪些实体
type Faction int

const (
	// FactionPlayer 玩家子弹：命中小行星和 Boss
	FactionPlayer Faction = iota
	// FactionEnemy 敌方子弹：只命中玩家
	FactionEnemy
)

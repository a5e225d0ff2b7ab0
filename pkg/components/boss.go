package components

import "github.com/gonewx/asteroids/pkg/utils"

// BossPhase Boss 移动阶段
type BossPhase int

const (
	// BossPhaseCenter 回到屏幕中心
	BossPhaseCenter BossPhase = iota
	// BossPhaseRandom 在屏幕内随机游走，定期更换目标点
	BossPhaseRandom
	// BossPhaseChase 追击玩家
	BossPhaseChase
)

// String 返回阶段名称
func (p BossPhase) String() string {
	switch p {
	case BossPhaseCenter:
		return "center"
	case BossPhaseRandom:
		return "random"
	case BossPhaseChase:
		return "chase"
	default:
		return "unknown"
	}
}

// BossAttackPattern Boss 弹幕类型，按 circle → spiral → targeted 循环
type BossAttackPattern int

const (
	BossAttackCircle BossAttackPattern = iota
	BossAttackSpiral
	BossAttackTargeted
)

// Next 返回循环中的下一种弹幕
func (p BossAttackPattern) Next() BossAttackPattern {
	return (p + 1) % 3
}

// String 返回弹幕名称
func (p BossAttackPattern) String() string {
	switch p {
	case BossAttackCircle:
		return "circle"
	case BossAttackSpiral:
		return "spiral"
	case BossAttackTargeted:
		return "targeted"
	default:
		return "unknown"
	}
}

// BossAttack Boss 攻击描述
// 状态机只产出描述，具体的弹幕实体由攻击处理器生成
type BossAttack struct {
	Pattern         BossAttackPattern
	ProjectileCount int
}

// BossComponent Boss 状态
//
// DeathTimer 为 -1 表示存活；受到致命伤害后置 0 并开始累加，
// 达到死亡动画时长后实体被移除。
type BossComponent struct {
	Level     int
	Health    int
	MaxHealth int

	Phase         BossPhase
	MovementTimer float64       // 当前阶段已持续时间
	RetargetTimer float64       // random 阶段距上次换目标的时间
	Target        utils.Vector2 // 当前移动目标点

	AttackPattern BossAttackPattern // 下一次攻击使用的弹幕
	AttackTimer   float64
	AttackCount   int // 已发动攻击次数，螺旋弹幕据此偏移起始角

	DeathTimer float64
	HitFlash   float64 // 受击闪烁剩余时间
}

// IsDying Boss 是否处于死亡动画中
func (b *BossComponent) IsDying() bool {
	return b.DeathTimer >= 0
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/gonewx/asteroids/pkg/types"
)

// ErrUnsupportedFormat 配置文件扩展名既不是 YAML 也不是 TOML
var ErrUnsupportedFormat = errors.New("unsupported config format")

// GameConfig 游戏全局可调参数
//
// 模拟核心不计算任何屏幕几何或数值常量，全部由该结构注入。
// 配置文件位置: data/game.yaml（也接受同结构的 .toml 文件）
type GameConfig struct {
	Screen      ScreenConfig     `yaml:"screen" toml:"screen"`
	Asteroid    AsteroidConfig   `yaml:"asteroid" toml:"asteroid"`
	Spawner     SpawnerConfig    `yaml:"spawner" toml:"spawner"`
	Player      PlayerConfig     `yaml:"player" toml:"player"`
	Projectiles ProjectileConfig `yaml:"projectiles" toml:"projectiles"`
	PowerUp     PowerUpConfig    `yaml:"powerUp" toml:"power_up"`
	Boss        BossConfig       `yaml:"boss" toml:"boss"`
	Scoring     ScoringConfig    `yaml:"scoring" toml:"scoring"`
	Audio       AudioConfig      `yaml:"audio" toml:"audio"`
	Logging     LoggingConfig    `yaml:"logging" toml:"logging"`
}

// ScreenConfig 屏幕尺寸（逻辑像素）
type ScreenConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// WindowSize 以整数像素返回逻辑屏幕尺寸
func (c ScreenConfig) WindowSize() (int, int) {
	return int(c.Width), int(c.Height)
}

// AsteroidConfig 小行星参数
type AsteroidConfig struct {
	MinRadius               float64        `yaml:"minRadius" toml:"min_radius"`                              // 最小半径，也是每次分裂的半径递减量
	Kinds                   int            `yaml:"kinds" toml:"kinds"`                                       // 尺寸等级数，最大半径 = MinRadius * Kinds
	VertexCount             int            `yaml:"vertexCount" toml:"vertex_count"`                          // 多边形顶点数
	Irregularity            float64        `yaml:"irregularity" toml:"irregularity"`                         // 顶点半径扰动比例 [0, 1)
	RotationSpeedMax        float64        `yaml:"rotationSpeedMax" toml:"rotation_speed_max"`               // 自转速度上限（度/秒）
	SplitAngleMin           float64        `yaml:"splitAngleMin" toml:"split_angle_min"`                     // 分裂偏转角下限（度）
	SplitAngleMax           float64        `yaml:"splitAngleMax" toml:"split_angle_max"`                     // 分裂偏转角上限（度）
	SplitSpeedMultiplier    float64        `yaml:"splitSpeedMultiplier" toml:"split_speed_multiplier"`       // 碎片速度倍率
	IceSplitSpeedMultiplier float64        `yaml:"iceSplitSpeedMultiplier" toml:"ice_split_speed_multiplier"` // 冰晶碎片速度倍率
	MetalHealth             int            `yaml:"metalHealth" toml:"metal_health"`                          // 金属小行星生命值
	TypeWeights             map[string]int `yaml:"typeWeights" toml:"type_weights"`                          // 类型 -> 生成权重
}

// MaxRadius 最大小行星半径
func (c AsteroidConfig) MaxRadius() float64 {
	return c.MinRadius * float64(c.Kinds)
}

// SpawnerConfig 小行星场（刷怪器）参数
type SpawnerConfig struct {
	Interval    float64 `yaml:"interval" toml:"interval"`         // 生成间隔（秒）
	TargetCount int     `yaml:"targetCount" toml:"target_count"`  // 场上目标小行星数量
	SpeedMin    float64 `yaml:"speedMin" toml:"speed_min"`        // 初速度下限
	SpeedMax    float64 `yaml:"speedMax" toml:"speed_max"`        // 初速度上限
	EdgeJitter  float64 `yaml:"edgeJitter" toml:"edge_jitter"`    // 入射方向随机偏角（度）
}

// PlayerConfig 玩家飞船参数
type PlayerConfig struct {
	Radius                 float64 `yaml:"radius" toml:"radius"`
	TurnSpeed              float64 `yaml:"turnSpeed" toml:"turn_speed"` // 度/秒
	Speed                  float64 `yaml:"speed" toml:"speed"`
	ShootCooldown          float64 `yaml:"shootCooldown" toml:"shoot_cooldown"`
	Lives                  int     `yaml:"lives" toml:"lives"`
	RespawnInvulnerability float64 `yaml:"respawnInvulnerability" toml:"respawn_invulnerability"`
	ShieldDuration         float64 `yaml:"shieldDuration" toml:"shield_duration"`
	TripleShotDuration     float64 `yaml:"tripleShotDuration" toml:"triple_shot_duration"`
	TripleShotSpread       float64 `yaml:"tripleShotSpread" toml:"triple_shot_spread"`
	RapidFireDuration      float64 `yaml:"rapidFireDuration" toml:"rapid_fire_duration"`
	RapidFireMultiplier    float64 `yaml:"rapidFireMultiplier" toml:"rapid_fire_multiplier"`
	WeaponAmmo             int     `yaml:"weaponAmmo" toml:"weapon_ammo"`
}

// ShotStats 单种子弹的参数
type ShotStats struct {
	Speed    float64 `yaml:"speed" toml:"speed"`
	Damage   int     `yaml:"damage" toml:"damage"`
	Lifetime float64 `yaml:"lifetime" toml:"lifetime"`
	Radius   float64 `yaml:"radius" toml:"radius"`
	TurnRate float64 `yaml:"turnRate" toml:"turn_rate"` // 追踪转向上限（度/次更新），0 表示不追踪
	Pellets  int     `yaml:"pellets" toml:"pellets"`    // 每次发射弹丸数
	Spread   float64 `yaml:"spread" toml:"spread"`      // 多弹丸总扇形角（度）
}

// ProjectileConfig 各类子弹参数
type ProjectileConfig struct {
	Standard        ShotStats `yaml:"standard" toml:"standard"`
	Laser           ShotStats `yaml:"laser" toml:"laser"`
	Missile         ShotStats `yaml:"missile" toml:"missile"`
	Shotgun         ShotStats `yaml:"shotgun" toml:"shotgun"`
	Boss            ShotStats `yaml:"boss" toml:"boss"`
	OffscreenMargin float64   `yaml:"offscreenMargin" toml:"offscreen_margin"` // 飞出屏幕多远后删除
}

// Stats 按子弹类型取参数
func (c ProjectileConfig) Stats(shot types.ShotType) ShotStats {
	switch shot {
	case types.ShotLaser:
		return c.Laser
	case types.ShotMissile:
		return c.Missile
	case types.ShotShotgun:
		return c.Shotgun
	case types.ShotBoss:
		return c.Boss
	default:
		return c.Standard
	}
}

// PowerUpConfig 道具参数
type PowerUpConfig struct {
	SpawnChance float64 `yaml:"spawnChance" toml:"spawn_chance"` // 小行星被击碎时掉落概率
	MaxActive   int     `yaml:"maxActive" toml:"max_active"`     // 场上同时存在的道具上限
	Lifetime    float64 `yaml:"lifetime" toml:"lifetime"`        // 未拾取时的存在时间（秒）
	Radius      float64 `yaml:"radius" toml:"radius"`
}

// BossConfig Boss 参数
type BossConfig struct {
	Radius                float64 `yaml:"radius" toml:"radius"`
	BaseSpeed             float64 `yaml:"baseSpeed" toml:"base_speed"`
	BaseHealth            int     `yaml:"baseHealth" toml:"base_health"`
	HealthPerLevel        int     `yaml:"healthPerLevel" toml:"health_per_level"`
	AttackInterval        float64 `yaml:"attackInterval" toml:"attack_interval"`
	AttackBaseCount       int     `yaml:"attackBaseCount" toml:"attack_base_count"`
	AttackCountPerLevel   int     `yaml:"attackCountPerLevel" toml:"attack_count_per_level"`
	DeathDuration         float64 `yaml:"deathDuration" toml:"death_duration"`
	HitFlashDuration      float64 `yaml:"hitFlashDuration" toml:"hit_flash_duration"`
	LevelInterval         int     `yaml:"levelInterval" toml:"level_interval"` // 每隔多少玩家等级出现一次 Boss
	CenterDuration        float64 `yaml:"centerDuration" toml:"center_duration"`
	RandomDuration        float64 `yaml:"randomDuration" toml:"random_duration"`
	ChaseDuration         float64 `yaml:"chaseDuration" toml:"chase_duration"`
	RandomSpeedMultiplier float64 `yaml:"randomSpeedMultiplier" toml:"random_speed_multiplier"`
	ChaseSpeedMultiplier  float64 `yaml:"chaseSpeedMultiplier" toml:"chase_speed_multiplier"`
	RetargetInterval      float64 `yaml:"retargetInterval" toml:"retarget_interval"`
	ArrivalThreshold      float64 `yaml:"arrivalThreshold" toml:"arrival_threshold"`
	Damping               float64 `yaml:"damping" toml:"damping"`
	EdgeBounceDamping     float64 `yaml:"edgeBounceDamping" toml:"edge_bounce_damping"`
	SpiralStep            float64 `yaml:"spiralStep" toml:"spiral_step"`         // 螺旋弹幕每次攻击的起始角偏移（度）
	TargetedSpread        float64 `yaml:"targetedSpread" toml:"targeted_spread"` // 瞄准弹幕总扇形角（度）
	ScoreBonus            int     `yaml:"scoreBonus" toml:"score_bonus"`
}

// MaxHealthForLevel 按 Boss 等级计算最大生命值
func (c BossConfig) MaxHealthForLevel(level int) int {
	return c.BaseHealth + c.HealthPerLevel*level
}

// ProjectileCountForLevel 按 Boss 等级计算单次攻击的弹丸数
func (c BossConfig) ProjectileCountForLevel(level int) int {
	return c.AttackBaseCount + c.AttackCountPerLevel*level
}

// ScoringConfig 计分参数
type ScoringConfig struct {
	PointsPerLevel int   `yaml:"pointsPerLevel" toml:"points_per_level"`
	AsteroidPoints []int `yaml:"asteroidPoints" toml:"asteroid_points"` // 按尺寸等级（从最小开始）的得分
}

// AsteroidScore 计算击碎指定半径小行星的得分
func (c ScoringConfig) AsteroidScore(radius, minRadius float64) int {
	if len(c.AsteroidPoints) == 0 || minRadius <= 0 {
		return 0
	}
	kind := int(radius/minRadius+0.5) - 1
	if kind < 0 {
		kind = 0
	}
	if kind >= len(c.AsteroidPoints) {
		kind = len(c.AsteroidPoints) - 1
	}
	return c.AsteroidPoints[kind]
}

// AudioConfig 音效设置
type AudioConfig struct {
	Enabled  bool    `yaml:"enabled" toml:"enabled"`
	Volume   float64 `yaml:"volume" toml:"volume"`       // 0.0 ~ 1.0
	SoundDir string  `yaml:"soundDir" toml:"sound_dir"` // 可选，<id>.wav / <id>.ogg 覆盖内置合成音效
}

// DefaultConfig 返回默认配置
//
// Boss 的生命值与攻击间隔没有公认的"原版"数值，这里给出经过试玩调整的默认值，
// 实际部署应通过 data/game.yaml 注入。
func DefaultConfig() *GameConfig {
	return &GameConfig{
		Screen: ScreenConfig{Width: 1280, Height: 720},
		Asteroid: AsteroidConfig{
			MinRadius:               20,
			Kinds:                   3,
			VertexCount:             10,
			Irregularity:            0.3,
			RotationSpeedMax:        60,
			SplitAngleMin:           20,
			SplitAngleMax:           50,
			SplitSpeedMultiplier:    1.2,
			IceSplitSpeedMultiplier: 1.4,
			MetalHealth:             2,
			TypeWeights: map[string]int{
				"normal":  70,
				"ice":     10,
				"metal":   10,
				"crystal": 10,
			},
		},
		Spawner: SpawnerConfig{
			Interval:    0.8,
			TargetCount: 12,
			SpeedMin:    40,
			SpeedMax:    100,
			EdgeJitter:  45,
		},
		Player: PlayerConfig{
			Radius:                 20,
			TurnSpeed:              300,
			Speed:                  200,
			ShootCooldown:          0.3,
			Lives:                  3,
			RespawnInvulnerability: 2,
			ShieldDuration:         8,
			TripleShotDuration:     10,
			TripleShotSpread:       15,
			RapidFireDuration:      10,
			RapidFireMultiplier:    0.5,
			WeaponAmmo:             20,
		},
		Projectiles: ProjectileConfig{
			Standard:        ShotStats{Speed: 500, Damage: 1, Lifetime: 1.5, Radius: 5, Pellets: 1},
			Laser:           ShotStats{Speed: 800, Damage: 2, Lifetime: 1.0, Radius: 3, Pellets: 1},
			Missile:         ShotStats{Speed: 350, Damage: 3, Lifetime: 3.0, Radius: 6, TurnRate: 6, Pellets: 1},
			Shotgun:         ShotStats{Speed: 450, Damage: 1, Lifetime: 0.6, Radius: 4, Pellets: 5, Spread: 40},
			Boss:            ShotStats{Speed: 250, Damage: 1, Lifetime: 4.0, Radius: 8, Pellets: 1},
			OffscreenMargin: 50,
		},
		PowerUp: PowerUpConfig{
			SpawnChance: 0.1,
			MaxActive:   3,
			Lifetime:    10,
			Radius:      15,
		},
		Boss: BossConfig{
			Radius:                80,
			BaseSpeed:             120,
			BaseHealth:            50,
			HealthPerLevel:        25,
			AttackInterval:        2.0,
			AttackBaseCount:       8,
			AttackCountPerLevel:   2,
			DeathDuration:         2.0,
			HitFlashDuration:      0.1,
			LevelInterval:         10,
			CenterDuration:        3,
			RandomDuration:        5,
			ChaseDuration:         4,
			RandomSpeedMultiplier: 0.7,
			ChaseSpeedMultiplier:  1.2,
			RetargetInterval:      1.5,
			ArrivalThreshold:      5,
			Damping:               0.9,
			EdgeBounceDamping:     0.5,
			SpiralStep:            15,
			TargetedSpread:        30,
			ScoreBonus:            5000,
		},
		Scoring: ScoringConfig{
			PointsPerLevel: 1000,
			AsteroidPoints: []int{100, 50, 20},
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.8,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load 加载游戏配置
//
// 根据扩展名选择解析器（.yaml/.yml 使用 YAML，.toml 使用 TOML），
// 文件中未出现的字段保留 DefaultConfig 的值。
//
// 参数:
//   - path: 配置文件路径（如 "data/game.yaml"）
//
// 返回:
//   - *GameConfig: 加载并校验通过的配置
//   - error: 读取、解析或校验失败时返回错误
func Load(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config: %w", err)
	}

	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	cfg, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to load game config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse 按指定格式解析配置内容并校验
//
// 参数:
//   - data: 配置文件内容
//   - format: "yaml"、"yml" 或 "toml"
func Parse(data []byte, format string) (*GameConfig, error) {
	cfg := DefaultConfig()
	// 解码器会把键合并进已有的 map，权重表必须整体替换
	defaultWeights := cfg.Asteroid.TypeWeights
	cfg.Asteroid.TypeWeights = nil

	switch format {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	case "toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if cfg.Asteroid.TypeWeights == nil {
		cfg.Asteroid.TypeWeights = defaultWeights
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}
	return cfg, nil
}

// Validate 验证配置有效性
//
// 模拟核心把这些约束当作调用前提，不在每帧重复检查。
func (c *GameConfig) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("screen size must be positive, got %.0fx%.0f", c.Screen.Width, c.Screen.Height)
	}

	a := c.Asteroid
	if a.MinRadius <= 0 {
		return fmt.Errorf("asteroid.minRadius must be positive, got %.1f", a.MinRadius)
	}
	if a.Kinds < 1 {
		return fmt.Errorf("asteroid.kinds must be at least 1, got %d", a.Kinds)
	}
	if a.VertexCount < 3 {
		return fmt.Errorf("asteroid.vertexCount must be at least 3, got %d", a.VertexCount)
	}
	if a.Irregularity < 0 || a.Irregularity >= 1 {
		return fmt.Errorf("asteroid.irregularity must be in [0, 1), got %.2f", a.Irregularity)
	}
	if a.SplitAngleMin < 0 || a.SplitAngleMin > a.SplitAngleMax {
		return fmt.Errorf("asteroid split angle range invalid: min(%.1f) max(%.1f)", a.SplitAngleMin, a.SplitAngleMax)
	}
	if a.SplitSpeedMultiplier <= 0 || a.IceSplitSpeedMultiplier <= 0 {
		return fmt.Errorf("asteroid split speed multipliers must be positive")
	}
	if a.MetalHealth < 1 {
		return fmt.Errorf("asteroid.metalHealth must be at least 1, got %d", a.MetalHealth)
	}
	totalWeight := 0
	for name, w := range a.TypeWeights {
		if _, err := types.ParseAsteroidType(name); err != nil {
			return fmt.Errorf("asteroid.typeWeights: %w", err)
		}
		if w < 0 {
			return fmt.Errorf("asteroid.typeWeights[%s] cannot be negative, got %d", name, w)
		}
		totalWeight += w
	}
	if totalWeight == 0 {
		return fmt.Errorf("asteroid.typeWeights must contain at least one positive weight")
	}

	s := c.Spawner
	if s.Interval <= 0 {
		return fmt.Errorf("spawner.interval must be positive, got %.2f", s.Interval)
	}
	if s.TargetCount < 0 {
		return fmt.Errorf("spawner.targetCount cannot be negative, got %d", s.TargetCount)
	}
	if s.SpeedMin < 0 || s.SpeedMin > s.SpeedMax {
		return fmt.Errorf("spawner speed range invalid: min(%.1f) > max(%.1f)", s.SpeedMin, s.SpeedMax)
	}

	if c.Player.Radius <= 0 {
		return fmt.Errorf("player.radius must be positive, got %.1f", c.Player.Radius)
	}
	if c.Player.Lives < 1 {
		return fmt.Errorf("player.lives must be at least 1, got %d", c.Player.Lives)
	}

	for name, st := range map[string]ShotStats{
		"standard": c.Projectiles.Standard,
		"laser":    c.Projectiles.Laser,
		"missile":  c.Projectiles.Missile,
		"shotgun":  c.Projectiles.Shotgun,
		"boss":     c.Projectiles.Boss,
	} {
		if st.Radius <= 0 || st.Lifetime <= 0 || st.Speed <= 0 {
			return fmt.Errorf("projectiles.%s: radius, lifetime and speed must be positive", name)
		}
		if st.Pellets < 1 {
			return fmt.Errorf("projectiles.%s.pellets must be at least 1, got %d", name, st.Pellets)
		}
	}

	p := c.PowerUp
	if p.SpawnChance < 0 || p.SpawnChance > 1 {
		return fmt.Errorf("powerUp.spawnChance must be in [0, 1], got %.2f", p.SpawnChance)
	}
	if p.Lifetime <= 0 || p.Radius <= 0 {
		return fmt.Errorf("powerUp lifetime and radius must be positive")
	}

	b := c.Boss
	if b.Radius <= 0 || b.BaseSpeed < 0 {
		return fmt.Errorf("boss radius must be positive and baseSpeed non-negative")
	}
	if b.MaxHealthForLevel(1) < 1 {
		return fmt.Errorf("boss health for level 1 must be positive, got %d", b.MaxHealthForLevel(1))
	}
	if b.AttackInterval <= 0 || b.DeathDuration <= 0 {
		return fmt.Errorf("boss attackInterval and deathDuration must be positive")
	}
	if b.CenterDuration <= 0 || b.RandomDuration <= 0 || b.ChaseDuration <= 0 {
		return fmt.Errorf("boss phase durations must be positive")
	}
	if b.Damping <= 0 || b.Damping > 1 {
		return fmt.Errorf("boss.damping must be in (0, 1], got %.2f", b.Damping)
	}
	if b.LevelInterval < 1 {
		return fmt.Errorf("boss.levelInterval must be at least 1, got %d", b.LevelInterval)
	}

	if c.Scoring.PointsPerLevel < 1 {
		return fmt.Errorf("scoring.pointsPerLevel must be at least 1, got %d", c.Scoring.PointsPerLevel)
	}

	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio.volume must be in [0, 1], got %.2f", c.Audio.Volume)
	}

	if err := c.Logging.Validate(); err != nil {
		return err
	}

	return nil
}

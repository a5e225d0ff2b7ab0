package systems

import (
	"math/rand"

	"go.uber.org/zap"

	"github.com/gonewx/asteroids/pkg/components"
	"github.com/gonewx/asteroids/pkg/config"
	"github.com/gonewx/asteroids/pkg/ecs"
	"github.com/gonewx/asteroids/pkg/entities"
	"github.com/gonewx/asteroids/pkg/utils"
)

// screenEdge 屏幕边缘及其指向屏幕内部的法线
type screenEdge int

const (
	edgeTop screenEdge = iota
	edgeBottom
	edgeLeft
	edgeRight
)

// AsteroidFieldSystem 小行星刷新器
// 按固定间隔从随机屏幕边缘补充小行星，直到场上数量达到目标值
type AsteroidFieldSystem struct {
	entityManager *ecs.EntityManager
	asteroid      config.AsteroidConfig
	spawner       config.SpawnerConfig
	width         float64
	height        float64
	rng           *rand.Rand
	logger        *zap.Logger

	spawnTimer    float64 // 当前计时器
	spawnInterval float64 // 生成间隔(秒)
	targetCount   int     // 场上目标数量
}

// NewAsteroidFieldSystem 创建小行星刷新器
func NewAsteroidFieldSystem(em *ecs.EntityManager, asteroid config.AsteroidConfig, spawner config.SpawnerConfig, screen config.ScreenConfig, rng *rand.Rand, logger *zap.Logger) *AsteroidFieldSystem {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("AsteroidFieldSystem")
	logger.Info("initialized",
		zap.Float64("interval", spawner.Interval),
		zap.Int("targetCount", spawner.TargetCount))

	return &AsteroidFieldSystem{
		entityManager: em,
		asteroid:      asteroid,
		spawner:       spawner,
		width:         screen.Width,
		height:        screen.Height,
		rng:           rng,
		logger:        logger,
		spawnInterval: spawner.Interval,
		targetCount:   spawner.TargetCount,
	}
}

// Update 累加计时器，到达间隔时尝试生成一颗小行星
// 无论是否生成，计时器都归零
func (s *AsteroidFieldSystem) Update(deltaTime float64) {
	s.spawnTimer += deltaTime
	if s.spawnTimer < s.spawnInterval {
		return
	}
	s.spawnTimer = 0

	if ecs.CountAlive[*components.AsteroidComponent](s.entityManager) >= s.targetCount {
		return
	}
	if _, err := s.SpawnAsteroid(); err != nil {
		s.logger.Warn("failed to spawn asteroid", zap.Error(err))
	}
}

// SpawnAsteroid 在随机边缘生成一颗小行星
//
// 边缘和沿边位置是两次独立的均匀抽样；速度方向为该边的内法线加上 ±EdgeJitter 度的随机偏转，
// 速度大小在 [SpeedMin, SpeedMax] 内均匀随机；半径为 MinRadius 的 1..Kinds 倍；类型按权重抽取。
func (s *AsteroidFieldSystem) SpawnAsteroid() (ecs.EntityID, error) {
	edge := screenEdge(s.rng.Intn(4))
	along := s.rng.Float64()

	var pos, inward utils.Vector2
	switch edge {
	case edgeTop:
		pos, inward = utils.Vec(along*s.width, 0), utils.Vec(0, 1)
	case edgeBottom:
		pos, inward = utils.Vec(along*s.width, s.height), utils.Vec(0, -1)
	case edgeLeft:
		pos, inward = utils.Vec(0, along*s.height), utils.Vec(1, 0)
	default:
		pos, inward = utils.Vec(s.width, along*s.height), utils.Vec(-1, 0)
	}

	jitter := (s.rng.Float64()*2 - 1) * s.spawner.EdgeJitter
	speed := s.spawner.SpeedMin + s.rng.Float64()*(s.spawner.SpeedMax-s.spawner.SpeedMin)
	vel := inward.Rotate(jitter).Scale(speed)

	kind := 1 + s.rng.Intn(s.asteroid.Kinds)
	radius := s.asteroid.MinRadius * float64(kind)
	asteroidType := entities.PickAsteroidType(s.rng, s.asteroid.TypeWeights)

	id, err := entities.NewAsteroid(s.entityManager, s.rng, s.asteroid, asteroidType, pos, vel, radius)
	if err != nil {
		return 0, err
	}

	s.logger.Debug("asteroid spawned",
		zap.Uint64("asteroid", uint64(id)),
		zap.Stringer("type", asteroidType),
		zap.Float64("radius", radius))
	return id, nil
}

// SpawnTimer 当前计时器值
func (s *AsteroidFieldSystem) SpawnTimer() float64 {
	return s.spawnTimer
}

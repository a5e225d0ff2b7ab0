package game

// Session 一局游戏的全局状态
// 由模拟编排器持有，碰撞结算时更新分数和生命
type Session struct {
	Score              int
	Lives              int
	AsteroidsDestroyed int
	BossesDefeated     int
	GameOver           bool

	pointsPerLevel int
}

// NewSession 创建新一局游戏
//
// 参数:
//   - lives: 初始生命数
//   - pointsPerLevel: 每提升一级所需分数
func NewSession(lives, pointsPerLevel int) *Session {
	if pointsPerLevel < 1 {
		pointsPerLevel = 1
	}
	return &Session{
		Lives:          lives,
		pointsPerLevel: pointsPerLevel,
	}
}

// Level 当前玩家等级，从 1 开始
func (s *Session) Level() int {
	return 1 + s.Score/s.pointsPerLevel
}

// AddScore 增加分数
//
// 返回:
//   - bool: 这次加分是否让等级提升
func (s *Session) AddScore(points int) bool {
	if points <= 0 || s.GameOver {
		return false
	}
	before := s.Level()
	s.Score += points
	return s.Level() > before
}

// LoseLife 扣除一条生命
//
// 返回:
//   - bool: 生命耗尽，游戏结束
func (s *Session) LoseLife() bool {
	if s.GameOver {
		return true
	}
	s.Lives--
	if s.Lives <= 0 {
		s.Lives = 0
		s.GameOver = true
	}
	return s.GameOver
}

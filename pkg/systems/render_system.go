package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/asteroids/pkg/components"
	"github.com/gonewx/asteroids/pkg/ecs"
	"github.com/gonewx/asteroids/pkg/game"
	"github.com/gonewx/asteroids/pkg/types"
	"github.com/gonewx/asteroids/pkg/utils"
)

var (
	colorShip      = color.RGBA{R: 230, G: 230, B: 230, A: 255}
	colorShield    = color.RGBA{R: 80, G: 180, B: 255, A: 200}
	colorShot      = color.RGBA{R: 255, G: 240, B: 120, A: 255}
	colorLaser     = color.RGBA{R: 255, G: 80, B: 80, A: 255}
	colorMissile   = color.RGBA{R: 255, G: 160, B: 40, A: 255}
	colorBossShot  = color.RGBA{R: 220, G: 60, B: 220, A: 255}
	colorBoss      = color.RGBA{R: 200, G: 40, B: 60, A: 255}
	colorBossFlash = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorHealthBar = color.RGBA{R: 60, G: 220, B: 90, A: 255}
	colorHealthBg  = color.RGBA{R: 60, G: 60, B: 60, A: 255}
)

// asteroidColors 按小行星类型着色
var asteroidColors = map[types.AsteroidType]color.RGBA{
	types.AsteroidNormal:  {R: 200, G: 200, B: 200, A: 255},
	types.AsteroidIce:     {R: 150, G: 220, B: 255, A: 255},
	types.AsteroidMetal:   {R: 170, G: 140, B: 110, A: 255},
	types.AsteroidCrystal: {R: 200, G: 120, B: 255, A: 255},
}

// powerUpColors 按道具类型着色
var powerUpColors = map[types.PowerUpType]color.RGBA{
	types.PowerUpShield:     {R: 80, G: 180, B: 255, A: 255},
	types.PowerUpTripleShot: {R: 255, G: 240, B: 120, A: 255},
	types.PowerUpRapidFire:  {R: 120, G: 255, B: 120, A: 255},
	types.PowerUpLaser:      {R: 255, G: 80, B: 80, A: 255},
	types.PowerUpMissile:    {R: 255, G: 160, B: 40, A: 255},
	types.PowerUpShotgun:    {R: 220, G: 220, B: 220, A: 255},
}

// RenderSystem 矢量线框渲染
// 只读取组件，不修改任何模拟状态；由外层循环在模拟推进之后调用
type RenderSystem struct {
	entityManager *ecs.EntityManager
	session       *game.Session
	polygon       []utils.Vector2 // 复用的世界坐标顶点缓冲
}

// NewRenderSystem 创建渲染系统
// session 可为 nil（不绘制 HUD）
func NewRenderSystem(em *ecs.EntityManager, session *game.Session) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		session:       session,
	}
}

// Draw 绘制所有实体和 HUD
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	s.drawAsteroids(screen)
	s.drawPowerUps(screen)
	s.drawProjectiles(screen)
	s.drawBosses(screen)
	s.drawPlayer(screen)
	s.drawHUD(screen)
}

func (s *RenderSystem) drawAsteroids(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith2[*components.AsteroidComponent, *components.TransformComponent](s.entityManager) {
		ast, _ := ecs.GetComponent[*components.AsteroidComponent](s.entityManager, id)
		tr, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)

		s.polygon = utils.TransformPolygon(s.polygon, ast.Vertices, tr.Rotation, tr.Position)
		width := float32(1.5)
		if ast.Type == types.AsteroidMetal && ast.Health > 1 {
			width = 3
		}
		strokePolygon(screen, s.polygon, width, asteroidColors[ast.Type])
	}
}

func (s *RenderSystem) drawPowerUps(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith2[*components.PowerUpComponent, *components.TransformComponent](s.entityManager) {
		pu, _ := ecs.GetComponent[*components.PowerUpComponent](s.entityManager, id)
		tr, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)

		clr := powerUpColors[pu.Type]
		vector.StrokeCircle(screen, float32(tr.Position.X), float32(tr.Position.Y), float32(tr.Radius), 2, clr, true)
		vector.DrawFilledCircle(screen, float32(tr.Position.X), float32(tr.Position.Y), float32(tr.Radius/3), clr, true)
	}
}

func (s *RenderSystem) drawProjectiles(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith2[*components.ProjectileComponent, *components.TransformComponent](s.entityManager) {
		p, _ := ecs.GetComponent[*components.ProjectileComponent](s.entityManager, id)
		tr, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)

		x, y := float32(tr.Position.X), float32(tr.Position.Y)
		switch p.ShotType {
		case types.ShotLaser:
			tail := tr.Position.Sub(utils.ForwardVector(tr.Rotation).Scale(tr.Radius * 4))
			vector.StrokeLine(screen, x, y, float32(tail.X), float32(tail.Y), float32(tr.Radius), colorLaser, true)
		case types.ShotMissile:
			vector.DrawFilledCircle(screen, x, y, float32(tr.Radius), colorMissile, true)
		case types.ShotBoss:
			vector.DrawFilledCircle(screen, x, y, float32(tr.Radius), colorBossShot, true)
		default:
			vector.DrawFilledCircle(screen, x, y, float32(tr.Radius), colorShot, true)
		}
	}
}

func (s *RenderSystem) drawBosses(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith2[*components.BossComponent, *components.TransformComponent](s.entityManager) {
		boss, _ := ecs.GetComponent[*components.BossComponent](s.entityManager, id)
		tr, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)

		x, y, r := float32(tr.Position.X), float32(tr.Position.Y), float32(tr.Radius)
		clr := colorBoss
		if boss.HitFlash > 0 {
			clr = colorBossFlash
		}
		if boss.IsDying() {
			// 死亡动画：圆环逐渐扩散
			r *= 1 + float32(boss.DeathTimer)
			clr.A = 120
		}
		vector.StrokeCircle(screen, x, y, r, 3, clr, true)
		vector.StrokeCircle(screen, x, y, r*0.6, 2, clr, true)

		if !boss.IsDying() && boss.MaxHealth > 0 {
			barW := float32(tr.Radius * 2)
			ratio := float32(boss.Health) / float32(boss.MaxHealth)
			vector.DrawFilledRect(screen, x-barW/2, y-r-14, barW, 6, colorHealthBg, false)
			vector.DrawFilledRect(screen, x-barW/2, y-r-14, barW*ratio, 6, colorHealthBar, false)
		}
	}
}

func (s *RenderSystem) drawPlayer(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith2[*components.PlayerComponent, *components.TransformComponent](s.entityManager) {
		p, _ := ecs.GetComponent[*components.PlayerComponent](s.entityManager, id)
		tr, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)

		// 无敌期间闪烁
		if p.IsInvulnerable() && int(p.Invulnerable*10)%2 == 0 {
			continue
		}

		r := tr.Radius
		ship := []utils.Vector2{
			utils.Vec(0, r),
			utils.Vec(-r*0.7, -r*0.7),
			utils.Vec(0, -r*0.3),
			utils.Vec(r*0.7, -r*0.7),
		}
		s.polygon = utils.TransformPolygon(s.polygon, ship, tr.Rotation, tr.Position)
		strokePolygon(screen, s.polygon, 2, colorShip)

		if p.HasShield() {
			vector.StrokeCircle(screen, float32(tr.Position.X), float32(tr.Position.Y), float32(r*1.4), 2, colorShield, true)
		}
	}
}

func (s *RenderSystem) drawHUD(screen *ebiten.Image) {
	if s.session == nil {
		return
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SCORE %d   LEVEL %d   LIVES %d",
		s.session.Score, s.session.Level(), s.session.Lives), 10, 10)

	for _, id := range ecs.GetEntitiesWith1[*components.PlayerComponent](s.entityManager) {
		p, _ := ecs.GetComponent[*components.PlayerComponent](s.entityManager, id)
		if p.Weapon != types.ShotStandard {
			ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s x%d", p.Weapon, p.Ammo), 10, 26)
		}
	}

	if s.session.GameOver {
		w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
		ebitenutil.DebugPrintAt(screen, "GAME OVER", w/2-27, h/2)
	}
}

// strokePolygon 绘制闭合多边形线框
func strokePolygon(screen *ebiten.Image, polygon []utils.Vector2, width float32, clr color.Color) {
	n := len(polygon)
	for i := 0; i < n; i++ {
		a, b := polygon[i], polygon[(i+1)%n]
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), width, clr, true)
	}
}

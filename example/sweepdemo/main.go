// Sweepdemo shows a fast projectile against a formation of thin targets.
// Space fires, F1 toggles the volume overlay, F2 toggles the sweep test:
// without it the projectile tunnels through the targets.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"math/rand"
	"os"

	"github.com/akmonengine/hitbox"
	"github.com/akmonengine/hitbox/actor"
	"github.com/akmonengine/hitbox/config"
	"github.com/akmonengine/hitbox/render"
	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	bombRadius   = 3
	bombSpeed    = 120
	bombInterval = 1.5
	playerLives  = 3
)

var (
	targetColor     = color.RGBA{230, 230, 230, 255}
	projectileColor = color.RGBA{255, 220, 60, 255}
	bombColor       = color.RGBA{255, 90, 90, 255}
	playerColor     = color.RGBA{80, 200, 255, 255}
	sightColor      = color.RGBA{80, 200, 255, 90}
)

type target struct {
	body *actor.Body
	base mgl64.Vec2
}

type Game struct {
	scene    config.Scene
	registry *hitbox.Registry
	debug    render.Debug

	player     *actor.Body
	projectile *actor.Body
	targets    []target
	bombs      []*actor.Body

	// Formation slide, rebuilt in the opposite direction when finished
	slide     *gween.Tween
	slideFrom float32
	slideTo   float32
	bombTimer float64

	score int
	lives int
	rng   *rand.Rand
}

func NewGame(scene config.Scene) *Game {
	g := &Game{
		scene:    scene,
		registry: hitbox.NewRegistry(),
		lives:    playerLives,
		rng:      rand.New(rand.NewSource(1)),
	}
	g.registry.SetDebugDraw(scene.DebugDraw)
	if scene.Grid.CellSize > 0 {
		g.registry.Grid = hitbox.NewSpatialGrid(scene.Grid.CellSize, scene.Grid.Cells)
	}

	g.registry.Events.Subscribe(hitbox.CONTACT_ENTER, func(event hitbox.Event) {
		e := event.(hitbox.ContactEnterEvent)
		log.Debug("contact enter", "a", e.VolumeA.Tag, "b", e.VolumeB.Tag)
	})
	g.registry.Events.Subscribe(hitbox.CONTACT_EXIT, func(event hitbox.Event) {
		e := event.(hitbox.ContactExitEvent)
		log.Debug("contact exit", "a", e.VolumeA.Tag, "b", e.VolumeB.Tag)
	})

	w, h := float64(scene.Window.Width), float64(scene.Window.Height)
	g.player = g.spawn("player", mgl64.Vec2{w / 2, h - 24}, actor.NewBox(mgl64.Vec2{12, 6}), false)

	g.spawnFormation()
	g.slideFrom, g.slideTo = 0, float32(scene.Targets.Travel)
	g.slide = gween.New(g.slideFrom, g.slideTo, scene.Targets.Duration, ease.InOutQuad)

	return g
}

// spawn creates a body owning a fresh volume
func (g *Game) spawn(name string, position mgl64.Vec2, shape actor.Shape, trigger bool) *actor.Body {
	body := actor.NewBody(name, position)
	volume := actor.NewVolume(body, shape)
	volume.Tag = name
	volume.SetTrigger(trigger)
	body.SetVolume(g.registry, volume)

	return body
}

func (g *Game) spawnFormation() {
	t := g.scene.Targets
	left := (float64(g.scene.Window.Width) - g.scene.FormationWidth() - t.Travel) / 2
	shape := actor.NewBoxSize(mgl64.Vec2{t.Width, t.Height})

	for row := 0; row < t.Rows; row++ {
		for col := 0; col < t.Columns; col++ {
			base := mgl64.Vec2{
				left + t.Width/2 + float64(col)*(t.Width+t.Spacing),
				t.Top + float64(row)*(t.Height+t.Spacing*2),
			}
			name := fmt.Sprintf("target-%d-%d", row, col)
			g.targets = append(g.targets, target{body: g.spawn(name, base, shape, false), base: base})
		}
	}
	log.Info("formation spawned", "targets", len(g.targets))
}

func (g *Game) Update() error {
	dt := 1 / float64(ebiten.TPS())

	g.handleInput()

	// 1. Move
	g.moveFormation(float32(dt))
	g.moveProjectile(dt)
	g.moveBombs(dt)

	// 2 and 3. Query, then apply consequences
	g.resolveProjectile()
	g.resolveBombs()
	g.registry.Step()

	// 4. Purge
	g.purge()

	if len(g.targets) == 0 {
		log.Info("formation cleared, respawning", "score", g.score)
		g.spawnFormation()
	}

	return nil
}

func (g *Game) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.registry.SetDebugDraw(!g.registry.IsDebugDrawEnabled())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		g.scene.Sweep = !g.scene.Sweep
		log.Info("sweep test toggled", "enabled", g.scene.Sweep)
	}

	speed := 240 / float64(ebiten.TPS())
	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		g.player.Translate(mgl64.Vec2{-speed, 0})
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		g.player.Translate(mgl64.Vec2{speed, 0})
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) && g.projectile == nil && g.lives > 0 {
		p := g.scene.Projectile
		start := g.player.Position().Sub(mgl64.Vec2{0, 12})
		g.projectile = g.spawn("projectile", start, actor.NewBoxSize(mgl64.Vec2{p.Width, p.Height}), true)
		log.Debug("projectile fired", "x", start.X())
	}
}

func (g *Game) moveFormation(dt float32) {
	x, finished := g.slide.Update(dt)
	if finished {
		g.slideFrom, g.slideTo = g.slideTo, g.slideFrom
		g.slide = gween.New(g.slideFrom, g.slideTo, g.scene.Targets.Duration, ease.InOutQuad)
	}

	for _, t := range g.targets {
		t.body.MoveTo(t.base.Add(mgl64.Vec2{float64(x), 0}))
	}
}

func (g *Game) moveProjectile(dt float64) {
	if g.projectile == nil {
		return
	}

	g.projectile.MoveTo(g.projectile.Position().Sub(mgl64.Vec2{0, g.scene.Projectile.Speed * dt}))
	if g.projectile.Position().Y() < -g.scene.Projectile.Height {
		g.projectile.Destroy()
	}
}

func (g *Game) moveBombs(dt float64) {
	g.bombTimer += dt
	if g.bombTimer >= bombInterval && len(g.targets) > 0 {
		g.bombTimer = 0
		from := g.targets[g.rng.Intn(len(g.targets))].body.Position()
		g.bombs = append(g.bombs, g.spawn("bomb", from, actor.NewCircle(bombRadius), true))
	}

	for _, bomb := range g.bombs {
		bomb.MoveTo(bomb.Position().Add(mgl64.Vec2{0, bombSpeed * dt}))
		if bomb.Position().Y() > float64(g.scene.Window.Height)+bombRadius {
			bomb.Destroy()
		}
	}
}

// resolveProjectile kills the first target met by the projectile this frame
func (g *Game) resolveProjectile() {
	if g.projectile == nil || !g.projectile.IsAlive() {
		return
	}

	var hit *actor.Volume
	if g.scene.Sweep {
		hit = hitbox.SweepBody(g.projectile, g.targetVolumes())
	} else {
		for _, other := range g.registry.QueryAll(g.projectile.Volume()) {
			if g.isTarget(other) {
				hit = other
				break
			}
		}
	}
	if hit == nil {
		return
	}

	hit.SetEnabled(false)
	if owner, ok := hit.Owner().(*actor.Body); ok {
		owner.Destroy()
	}
	g.projectile.Destroy()
	g.score++
	log.Info("target destroyed", "tag", hit.Tag, "score", g.score)
}

func (g *Game) resolveBombs() {
	playerVolume := g.player.Volume()
	for _, bomb := range g.bombs {
		if !bomb.IsAlive() {
			continue
		}
		for _, other := range g.registry.QueryAll(bomb.Volume()) {
			if other != playerVolume {
				continue
			}
			bomb.Destroy()
			g.lives--
			log.Warn("player hit", "lives", g.lives)
			if g.lives == 0 {
				log.Error("game over", "score", g.score)
			}
			break
		}
	}
}

func (g *Game) targetVolumes() []*actor.Volume {
	volumes := make([]*actor.Volume, 0, len(g.targets))
	for _, t := range g.targets {
		if volume := t.body.Volume(); volume != nil {
			volumes = append(volumes, volume)
		}
	}

	return volumes
}

func (g *Game) isTarget(volume *actor.Volume) bool {
	for _, t := range g.targets {
		if t.body.Volume() == volume {
			return true
		}
	}

	return false
}

// purge drops dead bodies; their volumes were unregistered by Destroy
func (g *Game) purge() {
	if g.projectile != nil && !g.projectile.IsAlive() {
		g.projectile = nil
	}

	targets := g.targets[:0]
	for _, t := range g.targets {
		if t.body.IsAlive() {
			targets = append(targets, t)
		}
	}
	g.targets = targets

	bombs := g.bombs[:0]
	for _, bomb := range g.bombs {
		if bomb.IsAlive() {
			bombs = append(bombs, bomb)
		}
	}
	g.bombs = bombs
}

func (g *Game) Draw(screen *ebiten.Image) {
	for _, t := range g.targets {
		drawBody(screen, t.body, targetColor)
	}
	for _, bomb := range g.bombs {
		p := bomb.Position()
		vector.DrawFilledCircle(screen, float32(p.X()), float32(p.Y()), bombRadius, bombColor, true)
	}
	if g.projectile != nil {
		drawBody(screen, g.projectile, projectileColor)
	}
	drawBody(screen, g.player, playerColor)

	// Aiming sight: the first volume on the line above the player
	origin := g.player.Position().Sub(mgl64.Vec2{0, 8})
	end := mgl64.Vec2{origin.X(), 0}
	if hit, ok := g.registry.Raycast(origin, end); ok {
		end = hit.Point
	}
	vector.StrokeLine(screen, float32(origin.X()), float32(origin.Y()), float32(end.X()), float32(end.Y()), 1, sightColor, false)

	g.debug.Screen = screen
	g.registry.DebugRenderAll(&g.debug)

	ebitenutil.DebugPrint(screen, fmt.Sprintf("score: %d  lives: %d  sweep: %v  volumes: %d",
		g.score, g.lives, g.scene.Sweep, g.registry.Len()))
}

func drawBody(screen *ebiten.Image, body *actor.Body, clr color.RGBA) {
	volume := body.Volume()
	if volume == nil {
		return
	}

	b := volume.Bounds()
	size := b.Size()
	vector.DrawFilledRect(screen, float32(b.Min.X()), float32(b.Min.Y()), float32(size.X()), float32(size.Y()), clr, false)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.scene.Window.Width, g.scene.Window.Height
}

func main() {
	configPath := flag.String("config", "", "scene YAML file")
	debug := flag.Bool("debug", false, "log contact events")
	flag.Parse()

	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	scene := config.Default()
	if *configPath != "" {
		var err error
		if scene, err = config.Load(*configPath); err != nil {
			log.Error("failed to load scene", "err", err)
			os.Exit(1)
		}
	}

	game := NewGame(scene)
	defer game.registry.Clear()

	ebiten.SetWindowSize(scene.Window.Width, scene.Window.Height)
	ebiten.SetWindowTitle(scene.Window.Title)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal("game stopped", "err", err)
	}
}

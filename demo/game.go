// Package demo is a small dodge-the-blocks game built on the engine. It
// doubles as the reference wiring for the hook interfaces: every engine
// collaborator is reached from here.
package demo

import (
	"encoding/json"
	"fmt"
	"image/color"

	"ember/engine/achievement"
	"ember/engine/app"
	"ember/engine/events"
	"ember/engine/input"
	"ember/engine/physics"
	"ember/engine/save"
	"ember/engine/scene"
	"ember/engine/world"
	"ember/hal"
)

const (
	typePlayer = "player"
	typeBlock  = "block"

	quickSlot = "quick"

	playerSpeed = 160.0
	blockSize   = 12.0
)

// saveData is the serialized session state for a quick save.
type saveData struct {
	Score int `json:"score"`
	Lives int `json:"lives"`
}

// Game implements the engine's gameplay and lifecycle hooks.
type Game struct {
	ctx *app.Context

	hud      *scene.Text
	gameOver bool
}

// New returns a fresh game. Pass it to app.New for both hook arguments.
func New() *Game {
	return &Game{}
}

// --- lifecycle hooks ---

func (g *Game) InitAchievements(reg *achievement.Registry) {
	_ = reg.Register("first_points", "Score your first 10 points")
	_ = reg.Register("survivor", "Reach 100 points in one run")
}

func (g *Game) InitInput(in *input.Input) {
	_ = in.Bind(hal.KeyLeft, input.Action{
		Name: "move_left",
		OnAction: func(tpf float64) {
			g.movePlayer(-playerSpeed * tpf)
		},
	})
	_ = in.Bind(hal.KeyRight, input.Action{
		Name: "move_right",
		OnAction: func(tpf float64) {
			g.movePlayer(playerSpeed * tpf)
		},
	})
	_ = in.Bind(hal.KeySpace, input.Action{
		Name:          "ping",
		OnActionBegin: func() { g.beep(880, 0.05) },
	})
	_ = in.Bind(hal.KeyF1, input.Action{
		Name:          "quick_save",
		OnActionBegin: func() { g.quickSave() },
	})

	// Menu navigation shares the session input surface; the callbacks gate
	// themselves on the active state.
	_ = in.Bind(hal.KeyUp, input.Action{
		Name:          "menu_up",
		OnActionBegin: func() { g.withMenu(func(m *app.MenuHandler) { m.MoveUp() }) },
	})
	_ = in.Bind(hal.KeyDown, input.Action{
		Name:          "menu_down",
		OnActionBegin: func() { g.withMenu(func(m *app.MenuHandler) { m.MoveDown() }) },
	})
	_ = in.Bind(hal.KeyEnter, input.Action{
		Name: "menu_select",
		OnActionBegin: func() {
			g.withMenu(func(m *app.MenuHandler) {
				if err := m.Activate(); err != nil {
					g.ctx.App().Exit()
				}
			})
		},
	})
}

func (g *Game) PreInit(ctx *app.Context) {
	g.ctx = ctx

	if ctx.Settings().Menus {
		a := ctx.App()
		_ = a.SetMenuHandler(app.NewMenuHandler("DODGE",
			app.MenuItem{Label: "New Game", Action: a.StartNewGame},
			app.MenuItem{Label: "Continue", Action: g.quickLoad},
			app.MenuItem{Label: "Quit", Action: func() error { a.Exit(); return nil }},
		))
	}

	ctx.App().Bus().Subscribe(events.TopicAchievement, func(ev events.Event) {
		g.beep(1320, 0.15)
	})
}

func (g *Game) InitGameVars(v *app.Vars) {
	v.Set("score", 0)
	v.Set("lives", 3)
}

func (g *Game) InitGame(ctx *app.Context) {
	g.startSession(ctx)
}

func (g *Game) LoadState(ctx *app.Context, df save.DataFile) error {
	var sd saveData
	if err := json.Unmarshal(df.Data, &sd); err != nil {
		return fmt.Errorf("decode save: %w", err)
	}
	ctx.Vars().Set("score", sd.Score)
	ctx.Vars().Set("lives", sd.Lives)
	g.startSession(ctx)
	return nil
}

// startSession is the part of game init shared between new and loaded games.
func (g *Game) startSession(ctx *app.Context) {
	g.gameOver = false
	w, h := float64(ctx.Settings().Width), float64(ctx.Settings().Height)

	player := ctx.World().Spawn(typePlayer, w/2-8, h-20)
	player.W, player.H = 16, 8

	ctx.MasterTimer().RunAtInterval(func() { g.spawnBlock() }, 0.8)
	ctx.MasterTimer().RunAtInterval(func() { g.addScore(1) }, 1.0)
}

func (g *Game) InitPhysics(p *physics.World) {
	p.SetGravity(120)
	p.AddCollisionHandler(physics.CollisionHandler{
		TypeA: typePlayer,
		TypeB: typeBlock,
		OnCollisionBegin: func(player, block *world.Entity) {
			g.ctx.World().Remove(block)
			g.beep(220, 0.2)
			if g.ctx.Vars().Increment("lives", -1) <= 0 {
				g.endRun()
			}
		},
	})
}

func (g *Game) InitUI(s *scene.Scene) {
	s.SetBackground(color.RGBA{R: 0x10, G: 0x10, B: 0x18, A: 0xFF})
	s.Add(&entityLayer{game: g})
	g.hud = &scene.Text{X: 2, Y: 6, Color: color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}}
	s.AddUI(g.hud)
}

// --- gameplay hooks ---

func (g *Game) OnUpdate(tpf float64) error {
	if g.gameOver {
		return nil
	}

	h := float64(g.ctx.Settings().Height)
	for _, e := range g.ctx.World().EntitiesByType(typeBlock) {
		if e.Y > h {
			g.ctx.World().Remove(e)
		}
	}

	score := g.ctx.Vars().Int("score")
	if score >= 10 {
		_ = g.ctx.Achievements().Achieve("first_points")
	}
	if score >= 100 {
		_ = g.ctx.Achievements().Achieve("survivor")
	}
	return nil
}

func (g *Game) OnPausedUpdate(tpf float64) error { return nil }

func (g *Game) OnPostUpdate(tpf float64) error {
	// The hud node belongs to the session being built while loading; only
	// touch it once that session is live.
	if !g.ctx.App().Machine().IsInPlay() {
		return nil
	}
	if g.hud != nil {
		g.hud.Value = fmt.Sprintf("SCORE %d  LIVES %d",
			g.ctx.Vars().Int("score"), g.ctx.Vars().Int("lives"))
	}
	return nil
}

// --- internals ---

func (g *Game) movePlayer(dx float64) {
	if !g.ctx.App().Machine().IsInPlay() || g.gameOver {
		return
	}
	players := g.ctx.World().EntitiesByType(typePlayer)
	if len(players) == 0 {
		return
	}
	p := players[0]
	p.X += dx
	if p.X < 0 {
		p.X = 0
	}
	if limit := float64(g.ctx.Settings().Width) - p.W; p.X > limit {
		p.X = limit
	}
}

func (g *Game) spawnBlock() {
	if g.gameOver {
		return
	}
	w := float64(g.ctx.Settings().Width)
	n := g.ctx.World().Size()
	x := float64((n*37)%int(w-blockSize)) + 1
	b := g.ctx.World().Spawn(typeBlock, x, -blockSize)
	b.W, b.H = blockSize, blockSize
	b.Gravity = true
}

func (g *Game) addScore(n int) {
	if !g.gameOver {
		g.ctx.Vars().Increment("score", n)
	}
}

func (g *Game) endRun() {
	g.gameOver = true
	g.beep(110, 0.5)
	if g.ctx.Settings().Menus {
		_ = g.ctx.App().StartMainMenu()
	} else {
		_ = g.ctx.App().StartNewGame()
	}
}

func (g *Game) beep(freq, seconds float64) {
	if p := g.ctx.AudioPlayer(); p != nil {
		p.PlayTone(freq, seconds, 0.6)
	}
}

func (g *Game) withMenu(fn func(*app.MenuHandler)) {
	a := g.ctx.App()
	switch a.Machine().Current() {
	case app.StateMainMenu, app.StateGameMenu:
		if m := a.MenuHandler(); m != nil {
			fn(m)
		}
	}
}

// quickSave snapshots the session into the quick slot.
func (g *Game) quickSave() {
	store := g.ctx.Saves()
	if store == nil || !g.ctx.App().Machine().IsInPlay() {
		return
	}
	sd := saveData{
		Score: g.ctx.Vars().Int("score"),
		Lives: g.ctx.Vars().Int("lives"),
	}
	data, err := json.Marshal(sd)
	if err != nil {
		return
	}
	if err := store.Save(save.DataFile{Slot: quickSlot, Data: data}); err == nil {
		g.beep(660, 0.1)
	}
}

// quickLoad restarts the session from the quick slot, or starts a new game
// when there is none.
func (g *Game) quickLoad() error {
	store := g.ctx.Saves()
	if store == nil {
		return g.ctx.App().StartNewGame()
	}
	df, err := store.Load(quickSlot)
	if err != nil {
		return g.ctx.App().StartNewGame()
	}
	return g.ctx.App().StartLoadedGame(df)
}

// entityLayer draws the world's entities as colored rectangles.
type entityLayer struct {
	game *Game
}

func (l *entityLayer) Draw(t *scene.Target) {
	for _, e := range l.game.ctx.World().Entities() {
		var c color.RGBA
		switch e.Type {
		case typePlayer:
			c = color.RGBA{G: 0xE0, B: 0x60, A: 0xFF}
		case typeBlock:
			c = color.RGBA{R: 0xE0, G: 0x40, B: 0x40, A: 0xFF}
		default:
			continue
		}
		t.FillRect(int(e.X), int(e.Y), int(e.W), int(e.H), c)
	}
}

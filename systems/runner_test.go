package systems

import (
	"image"
	"image/color"
	"math"
	"math/rand"
	"testing"

	"github.com/automoto/bullrun/components"
	cfg "github.com/automoto/bullrun/config"
)

func newTestRunner(start int) *LevelRunner {
	return NewLevelRunner(NewLevelGenerator(rand.New(rand.NewSource(1))), start)
}

// clearCourse removes every obstacle from the current attempt.
func clearCourse(r *LevelRunner) {
	r.Obstacles = nil
	r.physics.Load(nil, r.State.GoalX+cfg.Levels.GoalClearance)
}

func step(r *LevelRunner, ticks int) {
	for i := 0; i < ticks; i++ {
		r.Update(testDT, testVW, testVH)
	}
}

func TestStartLevelState(t *testing.T) {
	r := newTestRunner(0)

	if r.Player.X != cfg.Player.StartX || r.Player.Bottom() != cfg.World.GroundY || !r.Player.OnGround {
		t.Errorf("player = %+v", r.Player)
	}
	if r.Chaser.X != cfg.Player.StartX-cfg.Chaser.StartOffset || r.Chaser.Speed != cfg.Chaser.BaseSpeed {
		t.Errorf("chaser = %+v", r.Chaser)
	}
	if r.State.HUDText != "Level 1 / 10" || r.State.GoalX != 3200 || r.State.WaitingForEnter {
		t.Errorf("state = %+v", r.State)
	}
	if r.Starts() != 1 || r.Attempts() != 1 {
		t.Errorf("starts %d attempts %d", r.Starts(), r.Attempts())
	}
	if len(r.Obstacles) == 0 {
		t.Error("no obstacles generated")
	}
}

func TestStartLevelClampsIndex(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{42, 9},
		{-1, 0},
		{4, 4},
	}
	for _, tt := range tests {
		r := newTestRunner(tt.in)
		if r.State.LevelIndex != tt.want {
			t.Errorf("start %d: level %d, want %d", tt.in, r.State.LevelIndex, tt.want)
		}
	}
}

func TestRunToGoalAndAdvance(t *testing.T) {
	r := newTestRunner(0)
	clearCourse(r)
	r.HandleEvent(keyDown(cfg.KeyRight), testVW, testVH)

	lastX := r.Player.X
	for i := 0; i < 2000 && !r.State.WaitingForEnter; i++ {
		step(r, 1)
		if r.Player.X < lastX {
			t.Fatalf("tick %d: x went back from %v to %v", i, lastX, r.Player.X)
		}
		lastX = r.Player.X
	}
	if !r.State.WaitingForEnter {
		t.Fatal("never reached the goal")
	}
	if r.Starts() != 1 {
		t.Fatalf("restarted %d times on an empty course", r.Starts()-1)
	}
	if r.State.OverlayText != "Press ENTER to begin Level 2" {
		t.Errorf("overlay = %q", r.State.OverlayText)
	}

	// Frozen while waiting.
	player, chaser := r.Player, r.Chaser
	step(r, 30)
	if r.Player != player || r.Chaser != chaser {
		t.Error("world moved while waiting at the goal")
	}

	r.HandleEvent(keyRepeat(cfg.KeyEnter), testVW, testVH)
	if !r.State.WaitingForEnter {
		t.Fatal("a repeated Enter advanced the level")
	}

	r.HandleEvent(keyDown(cfg.KeyEnter), testVW, testVH)
	if r.State.WaitingForEnter || r.State.LevelIndex != 1 {
		t.Fatalf("state after Enter = %+v", r.State)
	}
	if r.Starts() != 2 || r.Attempts() != 1 {
		t.Errorf("starts %d attempts %d", r.Starts(), r.Attempts())
	}
	if r.Chaser.Speed != cfg.Chaser.BaseSpeed+cfg.Levels.SpeedBonusStep {
		t.Errorf("level 2 bull speed = %v", r.Chaser.Speed)
	}
}

func TestEnterIgnoredWhileRunning(t *testing.T) {
	r := newTestRunner(3)
	r.HandleEvent(keyDown(cfg.KeyEnter), testVW, testVH)
	if r.State.LevelIndex != 3 || r.Starts() != 1 {
		t.Errorf("Enter during play changed level: %+v", r.State)
	}
}

func TestLastLevelRestartsCampaign(t *testing.T) {
	r := newTestRunner(9)
	clearCourse(r)
	r.Player.X = r.State.GoalX - 1
	r.HandleEvent(keyDown(cfg.KeyD), testVW, testVH)
	step(r, 1)

	if !r.State.WaitingForEnter || r.State.OverlayText != "Press ENTER to restart" {
		t.Fatalf("state = %+v", r.State)
	}
	r.HandleEvent(keyDown(cfg.KeyKPEnter), testVW, testVH)
	if r.State.LevelIndex != 0 {
		t.Errorf("level = %d, want 0", r.State.LevelIndex)
	}
}

func TestCaughtRestartsOnce(t *testing.T) {
	r := newTestRunner(0)
	clearCourse(r)

	// Standing still, the bull closes the gap in about 0.7s.
	step(r, 60)

	if r.Starts() != 2 {
		t.Fatalf("starts = %d, want exactly one restart", r.Starts())
	}
	if r.Attempts() != 2 || r.State.LevelIndex != 0 {
		t.Errorf("attempts %d level %d", r.Attempts(), r.State.LevelIndex)
	}
	if r.Player.X != cfg.Player.StartX {
		t.Errorf("player x = %v after restart", r.Player.X)
	}
	if Caught(r.Chaser, r.Player) {
		t.Error("still caught after restart")
	}
}

func TestJumpConsumedWhileWaiting(t *testing.T) {
	r := newTestRunner(0)
	clearCourse(r)
	r.Player.X = r.State.GoalX
	step(r, 1)
	if !r.State.WaitingForEnter {
		t.Fatal("not waiting at goal")
	}

	r.HandleEvent(keyDown(cfg.KeySpace), testVW, testVH)
	step(r, 1)
	r.HandleEvent(keyDown(cfg.KeyEnter), testVW, testVH)
	step(r, 1)

	if !r.Player.OnGround || r.Player.VY != 0 {
		t.Errorf("jump pressed at the goal carried into the next level: %+v", r.Player)
	}
}

func TestJumpNotBufferedInAir(t *testing.T) {
	r := newTestRunner(0)
	clearCourse(r)
	r.Chaser.X = -5000
	r.HandleEvent(keyDown(cfg.KeyW), testVW, testVH)
	step(r, 1)
	if r.Player.OnGround {
		t.Fatal("did not jump")
	}

	r.HandleEvent(keyUp(cfg.KeyW), testVW, testVH)
	r.HandleEvent(keyDown(cfg.KeyW), testVW, testVH)
	step(r, 1)
	if r.Input.Intents().Jump {
		t.Error("mid-air jump press still pending")
	}

	for i := 0; i < 120 && !r.Player.OnGround; i++ {
		step(r, 1)
	}
	step(r, 1)
	if !r.Player.OnGround {
		t.Error("mid-air press fired a jump on landing")
	}
}

func TestRestartClearsGestureKeepsKeys(t *testing.T) {
	r := newTestRunner(0)
	r.HandleEvent(keyDown(cfg.KeyRight), testVW, testVH)
	r.HandleEvent(mouseDown(100, 100), testVW, testVH)
	r.HandleEvent(mouseMove(100, 400), testVW, testVH)

	r.RestartLevel()

	if r.Input.Gesture.Active {
		t.Error("gesture survived restart")
	}
	in := r.Input.Intents()
	if !in.Right || in.Duck {
		t.Errorf("intents after restart = %+v", in)
	}
}

func TestOverlayFadesIn(t *testing.T) {
	r := newTestRunner(0)
	clearCourse(r)
	r.Player.X = r.State.GoalX
	step(r, 1)

	if r.OverlayAlpha() != 0 {
		t.Fatalf("alpha = %v on the goal frame", r.OverlayAlpha())
	}
	r.Update(0.1, testVW, testVH)
	if a := r.OverlayAlpha(); a <= 0 || a >= 1 {
		t.Fatalf("alpha = %v mid-fade", a)
	}
	for i := 0; i < 10; i++ {
		r.Update(0.1, testVW, testVH)
	}
	if r.OverlayAlpha() != 1 {
		t.Errorf("alpha = %v after fade", r.OverlayAlpha())
	}
}

func TestProgress(t *testing.T) {
	r := newTestRunner(0)
	r.Player.X = r.State.GoalX / 2
	if got := r.Progress(); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Progress = %v", got)
	}
	r.Player.X = r.State.GoalX * 2
	if got := r.Progress(); got != 1 {
		t.Errorf("Progress past goal = %v", got)
	}
}

type fill struct {
	rect components.Rect
	clr  color.Color
}

type spriteDraw struct {
	id    cfg.SpriteID
	src   image.Rectangle
	dst   components.Rect
	flipX bool
}

// recordingSurface records draw calls. Sprites listed in sizes are loaded.
type recordingSurface struct {
	w, h    float64
	sizes   map[cfg.SpriteID]image.Point
	fills   []fill
	strokes []fill
	sprites []spriteDraw
	texts   []string
}

func (s *recordingSurface) Size() (float64, float64) { return s.w, s.h }

func (s *recordingSurface) FillRect(r components.Rect, clr color.Color) {
	s.fills = append(s.fills, fill{r, clr})
}

func (s *recordingSurface) StrokeRect(r components.Rect, _ float64, clr color.Color) {
	s.strokes = append(s.strokes, fill{r, clr})
}

func (s *recordingSurface) SpriteSize(id cfg.SpriteID) (int, int, bool) {
	p, ok := s.sizes[id]
	return p.X, p.Y, ok
}

func (s *recordingSurface) DrawSprite(id cfg.SpriteID, src image.Rectangle, dst components.Rect, flipX bool) {
	s.sprites = append(s.sprites, spriteDraw{id, src, dst, flipX})
}

func (s *recordingSurface) DrawTextCentered(text string, _ components.Rect, _ color.Color) {
	s.texts = append(s.texts, text)
}

func (s *recordingSurface) fillsOf(c color.RGBA) []fill {
	var out []fill
	for _, f := range s.fills {
		if f.clr == color.Color(c) {
			out = append(out, f)
		}
	}
	return out
}

func (s *recordingSurface) spritesOf(id cfg.SpriteID) []spriteDraw {
	var out []spriteDraw
	for _, d := range s.sprites {
		if d.id == id {
			out = append(out, d)
		}
	}
	return out
}

func TestDrawWithoutSprites(t *testing.T) {
	r := newTestRunner(0)
	r.Player.X = r.State.GoalX / 4
	s := &recordingSurface{w: testVW, h: testVH}
	r.Draw(s)

	var blocks, bars int
	for _, o := range r.Obstacles {
		if o.Kind == components.ObstacleJumpOver {
			blocks++
		} else {
			bars++
		}
	}
	play := cfg.Play
	if got := len(s.fillsOf(play.BlockColor)); got != blocks {
		t.Errorf("block fills = %d, want %d", got, blocks)
	}
	if got := len(s.fillsOf(play.BarColor)); got != bars {
		t.Errorf("bar fills = %d, want %d", got, bars)
	}
	if len(s.fillsOf(play.PlayerColor)) != 1 || len(s.fillsOf(play.ChaserColor)) != 1 {
		t.Error("player or bull not drawn as a fallback rectangle")
	}
	if len(s.sprites) != 0 {
		t.Errorf("drew %d sprites with none loaded", len(s.sprites))
	}

	progress := s.fillsOf(play.ProgressColor)
	if len(progress) != 1 {
		t.Fatalf("progress fills = %d", len(progress))
	}
	if want := (testVW - 40) * 0.25; math.Abs(progress[0].rect.W-want) > 1e-9 {
		t.Errorf("progress width = %v, want %v", progress[0].rect.W, want)
	}

	if len(s.texts) != 1 || s.texts[0] != "Level 1 / 10" {
		t.Errorf("texts = %q", s.texts)
	}
}

func TestDrawWithSprites(t *testing.T) {
	r := newTestRunner(0)
	s := &recordingSurface{
		w: testVW,
		h: testVH,
		sizes: map[cfg.SpriteID]image.Point{
			cfg.SpriteBackground:  {X: 640, Y: 360},
			cfg.SpriteBlock:       {X: 58, Y: 48},
			cfg.SpriteBar:         {X: 140, Y: 24},
			cfg.SpritePlayerSheet: {X: 500, Y: 200},
			cfg.SpriteChaserSheet: {X: 400, Y: 200},
		},
	}

	r.Player.VX = -cfg.Player.MoveSpeed
	r.Draw(s)

	bg := s.spritesOf(cfg.SpriteBackground)
	if len(bg) != 1 || bg[0].dst != (components.Rect{X: 0, Y: 0, W: testVW, H: testVH}) {
		t.Errorf("background = %+v", bg)
	}
	if got := len(s.spritesOf(cfg.SpriteBlock)) + len(s.spritesOf(cfg.SpriteBar)); got != len(r.Obstacles) {
		t.Errorf("obstacle sprites = %d, want %d", got, len(r.Obstacles))
	}

	player := s.spritesOf(cfg.SpritePlayerSheet)
	if len(player) != 1 {
		t.Fatalf("player sprites = %d", len(player))
	}
	if !player[0].flipX {
		t.Error("player running left not flipped")
	}
	if player[0].src.Dy() != 100 || player[0].src.Dx() != 100 || player[0].src.Min.Y != 0 {
		t.Errorf("player src = %v, want a run row cell", player[0].src)
	}

	chaser := s.spritesOf(cfg.SpriteChaserSheet)
	if len(chaser) != 1 || chaser[0].src != image.Rect(0, 0, 100, 100) {
		t.Errorf("bull = %+v", chaser)
	}
	if len(s.fillsOf(cfg.Play.PlayerColor)) != 0 {
		t.Error("fallback drawn with the sheet loaded")
	}
}

func TestPlayerPose(t *testing.T) {
	sheet := cfg.Sprites.Player
	tests := []struct {
		name     string
		mutate   func(p *components.PlayerData)
		col, row int
	}{
		{"idle", func(p *components.PlayerData) {}, 0, sheet.RunRow},
		{"airborne", func(p *components.PlayerData) { p.OnGround = false }, sheet.JumpColumn, sheet.MiscRow},
		{"ducking", func(p *components.PlayerData) { p.Ducking = true }, sheet.DuckColumn, sheet.MiscRow},
	}
	for _, tt := range tests {
		r := newTestRunner(0)
		tt.mutate(&r.Player)
		col, row := r.playerPose()
		if col != tt.col || row != tt.row {
			t.Errorf("%s: pose (%d, %d), want (%d, %d)", tt.name, col, row, tt.col, tt.row)
		}
	}
}

func TestDrawOverlayWhenWaiting(t *testing.T) {
	r := newTestRunner(0)
	clearCourse(r)
	r.Player.X = r.State.GoalX
	step(r, 1)
	for i := 0; i < 10; i++ {
		r.Update(0.1, testVW, testVH)
	}

	s := &recordingSurface{w: testVW, h: testVH}
	r.Draw(s)

	found := false
	for _, text := range s.texts {
		if text == "Press ENTER to begin Level 2" {
			found = true
		}
	}
	if !found {
		t.Errorf("overlay text missing from %q", s.texts)
	}

	panel := Translucent(cfg.Play.OverlayPanelColor, 1)
	for _, f := range s.fills {
		if f.clr == color.Color(panel) {
			want := components.Rect{X: testVW * 0.2, Y: testVH * 0.35, W: testVW * 0.6, H: testVH * 0.3}
			if f.rect != want {
				t.Errorf("panel = %+v, want %+v", f.rect, want)
			}
			return
		}
	}
	t.Error("overlay panel not drawn")
}

func TestTranslucent(t *testing.T) {
	c := color.RGBA{R: 10, G: 20, B: 30, A: 200}
	tests := []struct {
		k    float64
		want uint8
	}{
		{0, 0},
		{0.5, 100},
		{1, 200},
		{3, 200},
	}
	for _, tt := range tests {
		got := Translucent(c, tt.k)
		if got.A != tt.want || got.R != 10 || got.G != 20 || got.B != 30 {
			t.Errorf("Translucent(%v) = %+v", tt.k, got)
		}
	}
}

func TestDebugHitboxes(t *testing.T) {
	r := newTestRunner(0)
	r.Obstacles = []components.Obstacle{block(300), bar(600), block(90000)}

	s := &recordingSurface{w: testVW, h: testVH}
	r.Draw(s)
	if len(s.strokes) != 0 {
		t.Fatalf("hitboxes drawn while disabled: %d", len(s.strokes))
	}

	cfg.Debug.ShowHitboxes = true
	defer func() { cfg.Debug.ShowHitboxes = false }()

	r.Player.Ducking = true
	s = &recordingSurface{w: testVW, h: testVH}
	r.Draw(s)

	// The far block is culled.
	if len(s.strokes) != 4 {
		t.Fatalf("strokes = %d, want 4", len(s.strokes))
	}
	if s.strokes[0].clr != color.Color(debugSolidColor) || s.strokes[1].clr != color.Color(debugPassableColor) {
		t.Errorf("obstacle colours = %v, %v", s.strokes[0].clr, s.strokes[1].clr)
	}
	if s.strokes[3].clr != color.Color(debugPlayerColor) {
		t.Errorf("player colour = %v", s.strokes[3].clr)
	}
}

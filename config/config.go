package config

import "image/color"

// Config holds general window configuration
type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// WorldConfig contains the fixed world geometry shared by every level
type WorldConfig struct {
	GroundY   float64 `yaml:"groundY"`   // World-y of the floor line
	Gravity   float64 `yaml:"gravity"`   // Units per second squared
	LeftBound float64 `yaml:"leftBound"` // Player x never goes below this
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	StartX       float64 `yaml:"startX"`
	Width        float64 `yaml:"width"`
	StandHeight  float64 `yaml:"standHeight"`
	DuckHeight   float64 `yaml:"duckHeight"`
	MoveSpeed    float64 `yaml:"moveSpeed"`
	JumpVelocity float64 `yaml:"jumpVelocity"` // Negative is up
}

// ChaserConfig contains configuration for the bull that chases the player
type ChaserConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	StartOffset float64 `yaml:"startOffset"` // Distance behind the player at level start
	BaseSpeed   float64 `yaml:"baseSpeed"`

	// CatchMargin catches the player when the bull's leading edge gets this
	// close to the player's left edge, even without overlap. Large dt steps at
	// high bull speed can otherwise skip the overlapping frame.
	CatchMargin float64 `yaml:"catchMargin"`
}

// LevelConfig drives the level catalog and obstacle layout
type LevelConfig struct {
	Count int `yaml:"count"`

	BaseLength     float64 `yaml:"baseLength"`
	LengthStep     float64 `yaml:"lengthStep"`
	SpeedBonusStep float64 `yaml:"speedBonusStep"`
	BaseObstacles  int     `yaml:"baseObstacles"`
	ObstacleStep   int     `yaml:"obstacleStep"`
	BaseSpacing    float64 `yaml:"baseSpacing"`
	SpacingStep    float64 `yaml:"spacingStep"`
	MinSpacing     float64 `yaml:"minSpacing"`

	// Layout
	FirstObstacleX float64 `yaml:"firstObstacleX"`
	SpacingJitter  float64 `yaml:"spacingJitter"` // Full width of the uniform jitter window
	DuckChance     float64 `yaml:"duckChance"`
	GoalClearance  float64 `yaml:"goalClearance"` // Obstacles at or past length-GoalClearance are dropped

	BlockWidth   float64 `yaml:"blockWidth"`
	BlockHeight  float64 `yaml:"blockHeight"`
	BarWidth     float64 `yaml:"barWidth"`
	BarHeight    float64 `yaml:"barHeight"`
	BarClearance float64 `yaml:"barClearance"` // Gap between a standing head and the bar's top edge
}

// CameraConfig contains zoom and follow parameters
type CameraConfig struct {
	TargetHeightFraction  float64 `yaml:"targetHeightFraction"` // Standing player height as a share of viewport height
	MinZoom               float64 `yaml:"minZoom"`
	MaxZoom               float64 `yaml:"maxZoom"`
	GroundPaddingMin      float64 `yaml:"groundPaddingMin"`
	GroundPaddingFraction float64 `yaml:"groundPaddingFraction"`
	PlayerScreenFraction  float64 `yaml:"playerScreenFraction"`
	ZoomFloor             float64 `yaml:"zoomFloor"`
}

// FrameConfig contains frame timing limits
type FrameConfig struct {
	MaxDelta float64 `yaml:"maxDelta"` // Seconds; longer frames are clamped
}

// PlayConfig contains colours and layout for the play scene
type PlayConfig struct {
	BackgroundColor      color.RGBA `yaml:"backgroundColor"`
	GroundColor          color.RGBA `yaml:"groundColor"`
	GoalColor            color.RGBA `yaml:"goalColor"`
	BlockColor           color.RGBA `yaml:"blockColor"`
	BarColor             color.RGBA `yaml:"barColor"`
	ChaserColor          color.RGBA `yaml:"chaserColor"`
	PlayerColor          color.RGBA `yaml:"playerColor"`
	ProgressColor        color.RGBA `yaml:"progressColor"`
	TextColor            color.RGBA `yaml:"textColor"`
	OverlayDimColor      color.RGBA `yaml:"overlayDimColor"`
	OverlayPanelColor    color.RGBA `yaml:"overlayPanelColor"`
	OverlayTextColor     color.RGBA `yaml:"overlayTextColor"`
	OverlayFadeSeconds   float64    `yaml:"overlayFadeSeconds"`
	GoalMarkerWidth      float64    `yaml:"goalMarkerWidth"`
	GoalMarkerHeight     float64    `yaml:"goalMarkerHeight"`
	ProgressBarMargin    float64    `yaml:"progressBarMargin"`
	ProgressBarHeight    float64    `yaml:"progressBarHeight"`
	HUDTextX             float64    `yaml:"hudTextX"`
	HUDTextY             float64    `yaml:"hudTextY"`
	HUDTextWidth         float64    `yaml:"hudTextWidth"`
	HUDTextHeight        float64    `yaml:"hudTextHeight"`
	RunAnimationMinSpeed float64    `yaml:"runAnimationMinSpeed"` // Below this |vx| the run cycle holds frame 0
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor   color.RGBA `yaml:"backgroundColor"`
	ItemColor         color.RGBA `yaml:"itemColor"`
	HighlightColor    color.RGBA `yaml:"highlightColor"` // Selected item; green channel pulses
	OutlineColor      color.RGBA `yaml:"outlineColor"`
	InnerOutlineColor color.RGBA `yaml:"innerOutlineColor"`
	NotchColor        color.RGBA `yaml:"notchColor"`
	TextColor         color.RGBA `yaml:"textColor"`
	ItemWidth         float64    `yaml:"itemWidth"`
	ItemHeight        float64    `yaml:"itemHeight"`
	ItemGap           float64    `yaml:"itemGap"`
	PulseSeconds      float64    `yaml:"pulseSeconds"` // One half-cycle of the highlight pulse
	PulseBase         float64    `yaml:"pulseBase"`
	PulseRange        float64    `yaml:"pulseRange"`
	MenuOptions       []string   `yaml:"menuOptions"`
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu     bool `yaml:"skipMenu"`     // Skip menu and go directly to game
	StartLevel   int  `yaml:"startLevel"`   // Zero-based level the play scene starts on
	ShowHitboxes bool `yaml:"showHitboxes"` // Outline collision boxes
}

// Global configuration instances
var C *Config
var World WorldConfig
var Player PlayerConfig
var Chaser ChaserConfig
var Levels LevelConfig
var Camera CameraConfig
var Frame FrameConfig
var Play PlayConfig
var Menu MenuConfig
var Debug DebugConfig

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		Title:  "Bull Run",
	}

	World = WorldConfig{
		GroundY:   460,
		Gravity:   2200,
		LeftBound: 30,
	}

	Player = PlayerConfig{
		StartX:       120,
		Width:        44,
		StandHeight:  92,
		DuckHeight:   56,
		MoveSpeed:    420,
		JumpVelocity: -900,
	}

	Chaser = ChaserConfig{
		Width:       86,
		Height:      62,
		StartOffset: 260,
		BaseSpeed:   260,
		CatchMargin: 8,
	}

	Levels = LevelConfig{
		Count:          10,
		BaseLength:     3200,
		LengthStep:     450,
		SpeedBonusStep: 18,
		BaseObstacles:  10,
		ObstacleStep:   2,
		BaseSpacing:    270,
		SpacingStep:    9,
		MinSpacing:     170,

		FirstObstacleX: 520,
		SpacingJitter:  120,
		DuckChance:     0.45,
		GoalClearance:  220,

		BlockWidth:   58,
		BlockHeight:  48,
		BarWidth:     140,
		BarHeight:    24,
		BarClearance: 22,
	}

	Camera = CameraConfig{
		TargetHeightFraction:  0.25,
		MinZoom:               0.5,
		MaxZoom:               3.5,
		GroundPaddingMin:      36,
		GroundPaddingFraction: 0.08,
		PlayerScreenFraction:  0.30,
		ZoomFloor:             0.01,
	}

	Frame = FrameConfig{
		MaxDelta: 0.25,
	}

	Play = PlayConfig{
		BackgroundColor:      color.RGBA{R: 10, G: 12, B: 16, A: 255},
		GroundColor:          color.RGBA{R: 40, G: 45, B: 55, A: 255},
		GoalColor:            color.RGBA{R: 190, G: 200, B: 220, A: 255},
		BlockColor:           color.RGBA{R: 90, G: 180, B: 120, A: 255},
		BarColor:             color.RGBA{R: 90, G: 140, B: 200, A: 255},
		ChaserColor:          color.RGBA{R: 210, G: 70, B: 70, A: 255},
		PlayerColor:          color.RGBA{R: 220, G: 220, B: 220, A: 255},
		ProgressColor:        color.RGBA{R: 120, G: 160, B: 240, A: 255},
		TextColor:            color.RGBA{R: 230, G: 235, B: 245, A: 255},
		OverlayDimColor:      color.RGBA{R: 0, G: 0, B: 0, A: 140},
		OverlayPanelColor:    color.RGBA{R: 240, G: 240, B: 240, A: 220},
		OverlayTextColor:     color.RGBA{R: 20, G: 24, B: 32, A: 255},
		OverlayFadeSeconds:   0.35,
		GoalMarkerWidth:      16,
		GoalMarkerHeight:     160,
		ProgressBarMargin:    20,
		ProgressBarHeight:    10,
		HUDTextX:             20,
		HUDTextY:             44,
		HUDTextWidth:         260,
		HUDTextHeight:        34,
		RunAnimationMinSpeed: 1,
	}

	Menu = MenuConfig{
		BackgroundColor:   color.RGBA{R: 12, G: 12, B: 16, A: 255},
		ItemColor:         color.RGBA{R: 30, G: 34, B: 48, A: 255},
		HighlightColor:    color.RGBA{R: 80, G: 140, B: 255, A: 255},
		OutlineColor:      color.RGBA{R: 50, G: 60, B: 80, A: 255},
		InnerOutlineColor: color.RGBA{R: 12, G: 12, B: 16, A: 140},
		NotchColor:        color.RGBA{R: 12, G: 12, B: 16, A: 220},
		TextColor:         color.RGBA{R: 230, G: 235, B: 245, A: 255},
		ItemWidth:         320,
		ItemHeight:        70,
		ItemGap:           18,
		PulseSeconds:      0.39,
		PulseBase:         140,
		PulseRange:        60,
		MenuOptions:       []string{"Start", "Options", "Quit"},
	}
}

// LevelCount returns the number of levels in the catalog, never less than one.
func LevelCount() int {
	if Levels.Count < 1 {
		return 1
	}
	return Levels.Count
}

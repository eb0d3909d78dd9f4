package config

// SpriteID names a texture the renderer may draw
type SpriteID int

const (
	SpriteBackground SpriteID = iota
	SpriteBlock
	SpriteBar
	SpritePlayerSheet
	SpriteChaserSheet
	SpriteCount
)

func (s SpriteID) String() string {
	switch s {
	case SpriteBackground:
		return "background"
	case SpriteBlock:
		return "block"
	case SpriteBar:
		return "bar"
	case SpritePlayerSheet:
		return "player_sheet"
	case SpriteChaserSheet:
		return "chaser_sheet"
	default:
		return "unknown"
	}
}

// SheetLayout describes a grid sprite sheet
type SheetLayout struct {
	Columns int     `yaml:"columns"`
	Rows    int     `yaml:"rows"`
	FPS     float64 `yaml:"fps"`
}

// PlayerSheetLayout adds the fixed pose cells of the player sheet.
// Row RunRow holds the run cycle; MiscRow holds the jump and duck poses.
type PlayerSheetLayout struct {
	SheetLayout `yaml:",inline"`
	RunRow      int `yaml:"runRow"`
	MiscRow     int `yaml:"miscRow"`
	JumpColumn  int `yaml:"jumpColumn"`
	DuckColumn  int `yaml:"duckColumn"`
}

// SpriteConfig contains sprite file locations and sheet layouts
type SpriteConfig struct {
	Dir    string              `yaml:"dir"`
	Files  map[SpriteID]string `yaml:"-"`
	Player PlayerSheetLayout   `yaml:"player"`
	Chaser SheetLayout         `yaml:"chaser"`
}

// Sprites is the global sprite configuration
var Sprites SpriteConfig

func init() {
	Sprites = SpriteConfig{
		Dir: "assets/sprites",
		Files: map[SpriteID]string{
			SpriteBackground:  "bg.png",
			SpriteBlock:       "block.png",
			SpriteBar:         "bar.png",
			SpritePlayerSheet: "player_sheet.png",
			SpriteChaserSheet: "bull_sheet.png",
		},
		Player: PlayerSheetLayout{
			SheetLayout: SheetLayout{Columns: 5, Rows: 2, FPS: 12},
			RunRow:      0,
			MiscRow:     1,
			JumpColumn:  0,
			DuckColumn:  1,
		},
		Chaser: SheetLayout{Columns: 4, Rows: 2, FPS: 10},
	}
}

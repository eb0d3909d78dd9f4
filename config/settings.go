package config

import "image/color"

// Resolution represents a display resolution option
type Resolution struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Label  string `yaml:"label"`
}

// OptionsConfig contains options screen configuration
type OptionsConfig struct {
	Resolutions            []Resolution `yaml:"resolutions"`
	DefaultResolutionIndex int          `yaml:"defaultResolutionIndex"`

	BackgroundColor color.RGBA `yaml:"backgroundColor"`
	PanelColor      color.RGBA `yaml:"panelColor"`
	PanelOutline    color.RGBA `yaml:"panelOutline"`
	TextColor       color.RGBA `yaml:"textColor"`
	PanelWidth      float64    `yaml:"panelWidth"`
	PanelHeight     float64    `yaml:"panelHeight"`
	Hint            string     `yaml:"hint"`
}

// Options is the global options screen configuration
var Options OptionsConfig

func init() {
	Options = OptionsConfig{
		Resolutions: []Resolution{
			{Width: 1024, Height: 576, Label: "Compact"},
			{Width: 1280, Height: 720, Label: "Standard"},
			{Width: 1600, Height: 900, Label: "Large"},
			{Width: 1920, Height: 1080, Label: "Full HD"},
			{Width: 2560, Height: 1440, Label: "QHD"},
		},
		DefaultResolutionIndex: 1,

		BackgroundColor: color.RGBA{R: 16, G: 12, B: 20, A: 255},
		PanelColor:      color.RGBA{R: 30, G: 34, B: 48, A: 255},
		PanelOutline:    color.RGBA{R: 80, G: 180, B: 255, A: 255},
		TextColor:       color.RGBA{R: 230, G: 235, B: 245, A: 255},
		PanelWidth:      520,
		PanelHeight:     340,
		Hint:            "Click/tap rows or press ESC to return",
	}
}

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the override file name searched for when no path is given
const DefaultFile = "bullrun.yaml"

// File mirrors the global configuration as a YAML document. Keys missing
// from a document keep their current values.
type File struct {
	Window  Config        `yaml:"window"`
	World   WorldConfig   `yaml:"world"`
	Player  PlayerConfig  `yaml:"player"`
	Chaser  ChaserConfig  `yaml:"chaser"`
	Levels  LevelConfig   `yaml:"levels"`
	Camera  CameraConfig  `yaml:"camera"`
	Input   InputConfig   `yaml:"input"`
	Frame   FrameConfig   `yaml:"frame"`
	Play    PlayConfig    `yaml:"play"`
	Menu    MenuConfig    `yaml:"menu"`
	Options OptionsConfig `yaml:"options"`
	Sprites SpriteConfig  `yaml:"sprites"`
	Debug   DebugConfig   `yaml:"debug"`
}

// Current snapshots the global configuration.
func Current() File {
	return File{
		Window:  *C,
		World:   World,
		Player:  Player,
		Chaser:  Chaser,
		Levels:  Levels,
		Camera:  Camera,
		Input:   Input,
		Frame:   Frame,
		Play:    Play,
		Menu:    Menu,
		Options: Options,
		Sprites: Sprites,
		Debug:   Debug,
	}
}

// Apply replaces the global configuration with f.
func (f File) Apply() {
	window := f.Window
	C = &window
	World = f.World
	Player = f.Player
	Chaser = f.Chaser
	Levels = f.Levels
	Camera = f.Camera
	Input = f.Input
	Frame = f.Frame
	Play = f.Play
	Menu = f.Menu
	Options = f.Options
	Sprites = f.Sprites
	Debug = f.Debug
}

// Decode layers a YAML document over the current configuration without
// touching the globals.
func Decode(data []byte) (File, error) {
	f := Current()
	if err := yaml.Unmarshal(data, &f); err != nil {
		return f, err
	}
	return f, nil
}

// LoadOverrides applies a YAML override file to the global configuration.
// Search order: customPath -> ~/.bullrun/configs/bullrun.yaml -> ./configs/bullrun.yaml.
// It returns the path that was applied, or "" when no file was found.
func LoadOverrides(customPath string) (string, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := applyYAML(data); err != nil {
			return "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return customPath, nil
	}

	for _, path := range []string{userConfigPath(DefaultFile), filepath.Join("configs", DefaultFile)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if err := applyYAML(data); err != nil {
			return "", fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		return path, nil
	}
	return "", nil
}

func applyYAML(data []byte) error {
	f, err := Decode(data)
	if err != nil {
		return err
	}
	f.Apply()
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bullrun", "configs", filename)
}

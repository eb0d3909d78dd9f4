// bullrun is a side-scrolling chase game: run, jump and duck to the end of
// each level before the bull catches you.
//
// Usage:
//
//	bullrun [flags]
//
// Flags:
//
//	--seed <value>       - RNG seed for obstacle layouts (0 = time based)
//	--level <n>          - Level to start on, 1-based
//	--config <path>      - YAML file overriding tuning values
//	--log-level <level>  - debug, info, warn or error
//	--skip-menu          - Start playing immediately
//	--fullscreen         - Start fullscreen
//	--hitboxes           - Outline collision boxes
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/automoto/bullrun/assets"
	cfg "github.com/automoto/bullrun/config"
	"github.com/automoto/bullrun/fonts"
	"github.com/automoto/bullrun/platform"
	"github.com/automoto/bullrun/scenes"
	"github.com/automoto/bullrun/systems"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

var (
	flagSeed       int64
	flagLevel      int
	flagConfig     string
	flagLogLevel   string
	flagSkipMenu   bool
	flagFullscreen bool
	flagHitboxes   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bullrun",
	Short: "Bull Run - outrun the bull across ten levels",
	Long: `Bull Run is a side-scroller: run right, jump over blocks and duck
under bars before the bull catches you.

Controls:
  Left/A, Right/D  - Run
  Down/S           - Duck
  Up/W/Space       - Jump
  Enter            - Next level (at the goal)
  Esc              - Back to menu / quit
  Touch or mouse   - Hold to run, swipe up to jump, swipe down to duck

Examples:
  bullrun
  bullrun --skip-menu --level 4
  bullrun --seed 42 --config ./configs/bullrun.yaml`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().IntVar(&flagLevel, "level", 0, "Level to start on, 1-based (0 = config default)")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a YAML config override")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.Flags().BoolVar(&flagSkipMenu, "skip-menu", false, "Skip the menu and start playing")
	rootCmd.Flags().BoolVar(&flagFullscreen, "fullscreen", false, "Start in fullscreen")
	rootCmd.Flags().BoolVar(&flagHitboxes, "hitboxes", false, "Outline collision boxes")
}

func setupLogging(level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	log.SetDefault(log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "bullrun",
		Level:           lvl,
	}))
	return nil
}

func run(cmd *cobra.Command, _ []string) error {
	if err := setupLogging(flagLogLevel); err != nil {
		return err
	}

	path, err := cfg.LoadOverrides(flagConfig)
	if err != nil {
		return err
	}
	if path != "" {
		log.Info("config overrides applied", "path", path)
	}

	if cmd.Flags().Changed("skip-menu") {
		cfg.Debug.SkipMenu = flagSkipMenu
	}
	if flagHitboxes {
		cfg.Debug.ShowHitboxes = true
	}
	if flagLevel > 0 {
		cfg.Debug.StartLevel = flagLevel - 1
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Debug("seeding level generator", "seed", seed)
	levels := systems.NewLevelGenerator(rand.New(rand.NewSource(seed)))

	if err := fonts.LoadDefaults(); err != nil {
		return err
	}

	settings, err := systems.OpenSettingsStore("bullrun")
	if err != nil {
		log.Warn("settings will not be saved", "err", err)
	}
	saved := settings.Load()
	if flagFullscreen {
		saved.Fullscreen = true
	}

	ebiten.SetWindowTitle(cfg.C.Title)
	ebiten.SetWindowSize(cfg.C.Width, cfg.C.Height)
	if len(cfg.Options.Resolutions) > 0 {
		res := cfg.Options.Resolutions[systems.ClampResolutionIndex(saved.ResolutionIndex)]
		ebiten.SetWindowSize(res.Width, res.Height)
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	display := platform.NewWindowDisplay(saved.Fullscreen)

	atlas := assets.NewAtlas(cfg.Sprites.Dir, nil)
	atlas.Load()

	first := scenes.SceneMenu
	if cfg.Debug.SkipMenu {
		first = scenes.ScenePlay
	}
	catalog := scenes.Catalog{Levels: levels, StartLevel: cfg.Debug.StartLevel, Settings: settings}
	director := scenes.NewDirector(display, catalog.Build, first)
	director.AddReloader(atlas)

	game := platform.NewGame(director, platform.NewSurface(atlas, fonts.Regular.Get()))
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal("game loop failed", "err", err)
	}
	return nil
}

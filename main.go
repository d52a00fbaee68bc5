// skyfolio is a vertically scrolling portfolio platformer.
//
// Usage:
//
//	skyfolio                     - play the embedded portfolio level
//	skyfolio --screen work       - start on a given screen
//	skyfolio --config my.yaml    - override tuning from a YAML file
package main

import (
	"fmt"
	"image"
	"os"

	"github.com/automoto/skyfolio/assets"
	"github.com/automoto/skyfolio/config"
	"github.com/automoto/skyfolio/fonts"
	"github.com/automoto/skyfolio/scenes"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

var (
	flagConfig   string
	flagLevel    string
	flagScreen   string
	flagPrecise  bool
	flagDebug    bool
	flagNav      bool
	flagSeed     int64
	flagLogLevel string
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skyfolio",
	Short: "Skyfolio - a portfolio you climb through",
	Long: `Skyfolio stacks the sections of a portfolio into one tall world.
Walk with A/D or the arrows, jump with W, Up or Space, and use the bar at
the top to fly the camera to a section.

Examples:
  skyfolio
  skyfolio --screen contact
  skyfolio --precise --debug`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "YAML file with tuning overrides")
	rootCmd.Flags().StringVar(&flagLevel, "level", "portfolio", "Embedded level to load")
	rootCmd.Flags().StringVar(&flagScreen, "screen", "", "Screen id to start on")
	rootCmd.Flags().BoolVar(&flagPrecise, "precise", false, "Integrate physics by elapsed time on every screen")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Draw collision bodies and the debug HUD")
	rootCmd.Flags().BoolVar(&flagNav, "nav", true, "Show the screen navigation bar")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed for procedural effects (0 = random based on time)")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn or error")
}

func run(cmd *cobra.Command, args []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	log.SetDefault(log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "skyfolio",
		Level:           level,
	}))

	applied, err := config.LoadOverrides(flagConfig)
	if err != nil {
		return err
	}
	if applied != "" {
		log.Info("config overrides applied", "path", applied)
	}
	if flagPrecise {
		config.Physics.ForcePrecise = true
	}
	if flagDebug {
		config.Debug.DrawBodies = true
		config.Debug.ShowHUD = true
	}

	if err := fonts.LoadDefaults(config.Overlay.FontSize, config.Overlay.HUDFontSize); err != nil {
		return err
	}

	lvl, err := assets.LoadLevel(flagLevel)
	if err != nil {
		names, _ := assets.LevelNames()
		log.Error("level unavailable", "level", flagLevel, "available", names)
		return err
	}

	scene := scenes.NewWorldScene(lvl, scenes.SceneOptions{
		StartScreen: flagScreen,
		Seed:        flagSeed,
		ShowNav:     flagNav,
		OnScreenChange: func(id *string) {
			if id != nil {
				log.Debug("screen changed", "id", *id)
			}
		},
	})
	defer scene.Dispose()

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	return ebiten.RunGame(&Game{scene: scene})
}

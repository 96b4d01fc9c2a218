package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/diamondburned/gotk4-adwaita/pkg/adw"
	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/hyprmsg/internal/audio"
	"github.com/jmylchreest/hyprmsg/internal/config"
	"github.com/jmylchreest/hyprmsg/internal/display"
	"github.com/jmylchreest/hyprmsg/internal/preload"
	"github.com/jmylchreest/hyprmsg/internal/theme"
)

const appID = "io.github.jmylchreest.hyprmsg"

// Build-time variables (set via ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

var (
	logger *slog.Logger

	flags struct {
		verbose        bool
		configPath     string
		mode           string
		speed          float64
		fontSize       int
		color          string
		background     string
		exitAfter      float64
		revealPosition string
		allMonitors    bool
		noAllMonitors  bool
		sound          string
		volume         int
	}
)

// rootCmd shows the animated message; there are no subcommands.
var rootCmd = &cobra.Command{
	Use:   "hyprmsg <message>",
	Short: "Show an animated message overlay on a Wayland desktop",
	Long: `hyprmsg displays a short text message as a transient overlay window,
revealing it character-by-character or word-by-word before closing itself.

With gtk4-layer-shell available the message is anchored full-screen on every
connected monitor; without it a single regular window is shown. Escape or
Enter closes all windows at any time.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildTime),
	Args:    cobra.MinimumNArgs(1),
	RunE:    run,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false,
		"Enable verbose logging")
	rootCmd.Flags().StringVar(&flags.configPath, "config", "",
		"Path to config file (default: ~/.config/hyprmsg/config.toml)")
	rootCmd.Flags().StringVar(&flags.mode, "mode", string(config.DefaultMode),
		"Animation mode: char or word")
	rootCmd.Flags().Float64Var(&flags.speed, "speed", config.DefaultSpeed,
		"Animation speed in tokens per second")
	rootCmd.Flags().IntVar(&flags.fontSize, "font-size", config.DefaultFontSize,
		"Font size in pixels")
	rootCmd.Flags().StringVar(&flags.color, "color", config.DefaultColor,
		"Text color (CSS color syntax)")
	rootCmd.Flags().StringVar(&flags.background, "background", config.DefaultBackground,
		"Background color (CSS color syntax)")
	rootCmd.Flags().Float64Var(&flags.exitAfter, "exit-after", config.DefaultExitAfter,
		"Auto-close N seconds after the animation finishes (0 disables)")
	rootCmd.Flags().StringVar(&flags.revealPosition, "reveal-position", string(config.DefaultRevealPosition),
		"Reveal layout: left-to-center, center or left")
	rootCmd.Flags().BoolVar(&flags.allMonitors, "all-monitors", true,
		"Show the message on every monitor")
	rootCmd.Flags().BoolVar(&flags.noAllMonitors, "no-all-monitors", false,
		"Show the message in a single window only")
	rootCmd.Flags().StringVar(&flags.sound, "sound", "",
		"Sound file (wav/ogg/mp3) to play when the reveal completes")
	rootCmd.Flags().IntVar(&flags.volume, "volume", config.DefaultVolume,
		"Chime volume, 0-100")
}

func run(cmd *cobra.Command, args []string) error {
	setupLogger()

	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}

	// Re-exec with gtk4-layer-shell preloaded before GTK initializes.
	// Does not return when the re-exec succeeds.
	if err := preload.Ensure(logger); err != nil {
		logger.Warn("layer-shell preload failed", "error", err)
	}

	return runApp(cfg)
}

// loadConfig merges defaults, the config file and explicitly-set flags.
func loadConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	cfg.Message = strings.Join(args, " ")

	set := cmd.Flags()
	if set.Changed("mode") {
		cfg.Mode = config.Mode(flags.mode)
	}
	if set.Changed("speed") {
		cfg.Speed = flags.speed
	}
	if set.Changed("font-size") {
		cfg.FontSize = flags.fontSize
	}
	if set.Changed("color") {
		cfg.Color = flags.color
	}
	if set.Changed("background") {
		cfg.Background = flags.background
	}
	if set.Changed("exit-after") {
		cfg.ExitAfter = flags.exitAfter
	}
	if set.Changed("reveal-position") {
		cfg.RevealPosition = config.RevealPosition(flags.revealPosition)
	}
	if set.Changed("all-monitors") {
		cfg.AllMonitors = flags.allMonitors
	}
	if flags.noAllMonitors {
		cfg.AllMonitors = false
	}
	if set.Changed("sound") {
		cfg.Sound = flags.sound
	}
	if set.Changed("volume") {
		cfg.Volume = flags.volume
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.Clamp(logger)

	return cfg, nil
}

// runApp builds the GTK application and blocks until it quits.
func runApp(cfg *config.Config) error {
	app := adw.NewApplication(appID, 0)

	themeLoader := theme.NewLoader(logger)

	var player *audio.Player
	if cfg.Sound != "" {
		player = audio.NewPlayer(cfg.Volume, logger)
	}

	orch := display.NewOrchestrator(&app.Application, cfg, logger)
	orch.OnQuit(app.Quit)

	if player != nil {
		// One chime per invocation, when the first window finishes.
		var chimeOnce sync.Once
		orch.OnDone(func() {
			chimeOnce.Do(func() {
				go func() {
					if err := player.Play(cfg.Sound); err != nil {
						logger.Warn("failed to play completion sound",
							"file", cfg.Sound, "error", err)
					}
				}()
			})
		})
	}

	var styleWatcher *theme.Watcher

	app.ConnectActivate(func() {
		themeLoader.Load(cfg)
		themeLoader.Apply(gdk.DisplayGetDefault())

		// Windows that outlive the animation pick up stylesheet edits.
		if cfg.ExitAfter <= 0 && styleWatcher == nil {
			w, err := theme.NewWatcher(themeLoader, logger)
			if err != nil {
				logger.Warn("failed to create stylesheet watcher", "error", err)
			} else if err := w.Start(); err != nil {
				logger.Debug("stylesheet watcher not started", "error", err)
			} else {
				styleWatcher = w
			}
		}

		orch.Activate()
	})

	app.ConnectShutdown(func() {
		if styleWatcher != nil {
			_ = styleWatcher.Stop()
		}
		if player != nil {
			player.Close()
		}
	})

	// GTK must not parse our flags; cobra already consumed the real argv.
	status := app.Run([]string{os.Args[0]})
	if status != 0 {
		return fmt.Errorf("application exited with status %d", status)
	}
	return nil
}

// setupLogger configures the global slog logger.
func setupLogger() {
	level := slog.LevelWarn
	if flags.verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	logger = slog.New(handler)
	slog.SetDefault(logger)
}

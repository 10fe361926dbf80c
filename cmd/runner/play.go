package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-runner/internal/audio"
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/platform/tui"
	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var (
	flagAudioCues  bool
	flagDark       bool
	flagDebugBoxes bool
	flagHiDPI      bool
	flagVolume     float64
	flagPlayer     string
)

var playCmd = &cobra.Command{
	Use:   "play [theme]",
	Short: "Start running",
	Long: `Start a run. Without a theme (argument or --theme) a picker menu
lists every theme in both variants. Esc/B returns to the menu.

Controls:
  Space/Up/W    - Jump (hold for a higher jump)
  Down/S        - Duck, or drop faster while jumping
  R/Enter       - Restart after a crash
  X             - Reset the high score (press twice)
  P             - Pause
  T             - Next theme
  Ctrl+S        - Save a screenshot
  Q/Ctrl+C      - Quit

Examples:
  runner play
  runner play ascii
  runner play --variant slow --audio-cues
  runner play classic --dark --log-file runner.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagAudioCues, "audio-cues", false, "Accessibility mode: audio cues for obstacles")
	playCmd.Flags().BoolVar(&flagDark, "dark", false, "Prefer the dark colour scheme")
	playCmd.Flags().BoolVar(&flagDebugBoxes, "debug-boxes", false, "Draw collision boxes")
	playCmd.Flags().BoolVar(&flagHiDPI, "hidpi", false, "Use the double density sprite sheet")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.5, "Sound volume 0..1 (0 mutes)")
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Player name for the scoreboard (default: $USER)")
}

func runPlay(_ *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	base, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	variant, err := config.ParseVariant(flagVariant)
	if err != nil {
		return err
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - the run still works
		store = nil
	}
	defer func() {
		if store != nil {
			_ = store.Close()
		}
	}()

	player := audio.NewPlayer(audio.Options{
		Volume:    flagVolume,
		AudioCues: flagAudioCues,
		Logger:    logger,
	})
	if flagVolume > 0 {
		if err := player.Init(); err != nil {
			logger.Warn("sound disabled", "err", err)
		}
	}
	defer player.Close()

	opts := tui.Options{
		Runtime: core.RuntimeConfig{
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Player:    playerName(),
		Store:     store,
		Audio:     player,
		AudioCues: flagAudioCues,
		DarkMode:  flagDark,
		HiDPI:     flagHiDPI,
		Debug:     flagDebugBoxes,
		Logger:    logger,
	}

	// A theme given up front skips the menu for the first run.
	if len(args) > 0 || flagTheme != "" {
		id, err := themeID(args)
		if err != nil {
			return err
		}
		back, err := playTheme(opts, base, id, variant)
		if err != nil || !back {
			return err
		}
	}

	return menuLoop(opts, base, store, logger)
}

// menuLoop shows the picker until the player quits.
func menuLoop(opts tui.Options, base config.RunnerConfig, store *storage.Store, logger *log.Logger) error {
	for {
		width, height := terminalSize()

		result, err := tui.RunMenu(width, height)
		if err != nil {
			return err
		}
		if result.Quit {
			return nil
		}

		if result.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, width, height)
			if err != nil {
				return err
			}
			if goBack {
				continue
			}
			return nil
		}

		opts.Runtime.ScreenW, opts.Runtime.ScreenH = width, height
		// Fresh seed for each run unless one was pinned
		if flagSeed == 0 {
			opts.Runtime.Seed = time.Now().UnixNano()
		}

		back, err := playTheme(opts, base, result.Item.ThemeID, result.Item.Variant)
		if err != nil {
			logger.Error("run failed", "err", err)
			return err
		}
		if !back {
			return nil
		}
	}
}

// playTheme runs one session and reports whether the player went back to
// the menu.
func playTheme(opts tui.Options, base config.RunnerConfig, id string, variant config.Variant) (bool, error) {
	theme, err := registry.Create(id)
	if err != nil {
		return false, err
	}
	opts.Theme = theme
	opts.Variant = variant
	if opts.Runtime.ScreenW == 0 {
		opts.Runtime.ScreenW, opts.Runtime.ScreenH = terminalSize()
	}
	opts.Config = config.ApplyVariant(base, variant)

	opts.Logger.Info("run started", "theme", id, "variant", variant, "player", opts.Player)
	return tui.Run(opts)
}

func playerName() string {
	if flagPlayer != "" {
		return flagPlayer
	}
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "local"
}

func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return width, height
}

// runner is an endless runner for the terminal: jump the cacti, duck the
// birds, run as far as you can.
//
// Usage:
//
//	runner play [theme]      - Play (menu when no theme is given)
//	runner serve             - Start SSH server for remote play
//	runner scores [theme]    - Show high scores
//	runner themes            - List available themes
//	runner config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible runs
//	--db <path>          - Set database path (default: ~/.runner/scores.db)
//	--theme <id>         - Theme to play (default: classic)
//	--variant <name>     - normal or slow
//	--config <path>      - Custom config YAML
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import themes to register them
	_ "github.com/vovakirdan/tui-runner/internal/themes"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagTheme    string
	flagVariant  string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Runner - an endless runner in your terminal",
	Long: `Runner is the offline dinosaur game for the terminal. Jump over
cacti, duck under birds and chase your high score.

Available commands:
  play     - Start running (theme picker when no theme is given)
  serve    - Start SSH server for remote play
  scores   - View high scores
  themes   - Show all available themes
  config   - Print the effective configuration

Examples:
  runner play
  runner play ascii --variant slow
  runner serve --ssh :2222
  runner scores classic`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.runner/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "", "Theme id (see 'runner themes')")
	rootCmd.PersistentFlags().StringVar(&flagVariant, "variant", "normal", "Game variant: normal or slow")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(themesCmd)
	rootCmd.AddCommand(configCmd)
}

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/config"
)

var flagWriteConfig bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a run would use, as YAML, after the config
file search and the --variant flag are applied.

With --write the document is saved as the user config
(~/.runner/configs/runner.yaml) for editing.

Examples:
  runner config
  runner config --variant slow
  runner config --config ./my-runner.yaml
  runner config --write`,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagWriteConfig, "write", false, "Save to the user config path instead of printing")
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}

	if !flagWriteConfig {
		_, err = os.Stdout.Write(data)
		return err
	}

	path := config.UserConfigPath()
	if path == "" {
		return fmt.Errorf("cannot find home directory")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cannot create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("cannot write config: %w", err)
	}
	fmt.Printf("Wrote %s\n", path)
	return nil
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skybird/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default game config",
	Long: `Print the built-in game configuration as YAML.

Save it to the user config path to tweak physics, spawning or sounds:
  skybird config > ~/.skybird/configs/skybird.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	fmt.Print(string(config.DefaultYAML()))

	if path := config.UserConfigPath("skybird.yaml"); path != "" {
		fmt.Fprintf(os.Stderr, "\n# user config path: %s\n", path)
	}
}

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pokeql/pokeql/internal/config"
	"github.com/pokeql/pokeql/internal/ui"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Long: `Writes ` + config.ConfigFile + ` with the default settings to the path given by
--config (the current directory by default).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configFilePath(configPath)

		if _, err := os.Stat(path); err == nil && !initForce {
			if !term.IsTerminal(int(os.Stdin.Fd())) {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}

			var confirm bool
			err := huh.NewConfirm().
				Title(fmt.Sprintf("Overwrite %s?", path)).
				Affirmative("Yes").
				Negative("No").
				Value(&confirm).
				Run()
			if err != nil {
				return err
			}
			if !confirm {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
				return nil
			}
		}

		if err := config.Default().Save(path); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), ui.Success.Render("Wrote ")+path)
		return nil
	},
}

// configFilePath resolves --config to a file, appending the default file name
// when it points at a directory.
func configFilePath(p string) string {
	if p == "" {
		return config.ConfigFile
	}
	if info, err := os.Stat(p); err == nil && info.IsDir() {
		return filepath.Join(p, config.ConfigFile)
	}
	return p
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing config file")
	rootCmd.AddCommand(initCmd)
}

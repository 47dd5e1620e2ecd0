package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/rileyhilliard/raspimon/internal/config"
	"github.com/rileyhilliard/raspimon/internal/errors"
	"github.com/rileyhilliard/raspimon/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	initPath  string
	initForce bool
)

// initCmd writes the default config file
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default commands",
	Long: `Write the default configuration to ~/.config/raspimon/config.yaml
(or --path) so the command behind each menu option can be edited.

The console never needs this file; missing keys always fall back to the
built-in defaults.

Examples:
  raspimon init
  raspimon init --path ./.raspimon.yaml
  raspimon init --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Init(cmd.OutOrStdout(), InitOptions{
			Path:           initPath,
			Overwrite:      initForce,
			NonInteractive: !term.IsTerminal(int(os.Stdin.Fd())),
		})
	},
}

func init() {
	initCmd.Flags().StringVar(&initPath, "path", "", "where to write the config (default ~/.config/raspimon/config.yaml)")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing config file")
	rootCmd.AddCommand(initCmd)
}

// InitOptions holds options for the init command.
type InitOptions struct {
	Path           string // Target file, or empty for the global config path
	Overwrite      bool   // Overwrite existing config without asking
	NonInteractive bool   // Never prompt; fail instead of asking to overwrite
}

// Init writes the default config.
func Init(out io.Writer, opts InitOptions) error {
	target := opts.Path
	if target == "" {
		target = config.GlobalConfigPath()
	}
	if target == "" {
		return errors.New(errors.ErrConfig,
			"Couldn't find your home directory",
			"Pass --path to choose where the config goes")
	}
	target = config.ExpandTilde(target)

	overwrite := opts.Overwrite
	if _, err := os.Stat(target); err == nil && !overwrite && !opts.NonInteractive {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", target)).
					Value(&overwrite),
			),
		)

		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}

		if !overwrite {
			fmt.Fprintln(out, "Cancelled.")
			return nil
		}
	}

	if err := config.Write(target, config.DefaultConfig(), overwrite); err != nil {
		return err
	}

	fmt.Fprintln(out, ui.StatusLine(ui.SymbolSuccess, ui.SuccessStyle(), "Wrote "+target))
	return nil
}

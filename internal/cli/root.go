package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/rileyhilliard/raspimon/internal/config"
	"github.com/rileyhilliard/raspimon/internal/console"
	"github.com/rileyhilliard/raspimon/internal/errors"
	"github.com/rileyhilliard/raspimon/internal/exec"
	"github.com/rileyhilliard/raspimon/internal/logger"
	"github.com/rileyhilliard/raspimon/internal/query"
	"github.com/rileyhilliard/raspimon/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// helpWidth is the word-wrap width for the rendered help page.
const helpWidth = 80

// Global flags
var (
	cfgFile string
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "raspimon",
	Short: "Menu-driven diagnostic console for Raspberry Pi",
	Long: `raspimon shows a menu of diagnostics for the board it runs on:
temperature, CPU load, disk usage, network, logged-in sessions, and the
raspi-config tool. Type a letter to run one; type 'q' to exit.

Every option prints the underlying tool's output unchanged. Commands can be
swapped in ~/.config/raspimon/config.yaml (see 'raspimon init').`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return consoleCommand(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./.raspimon.yaml or ~/.config/raspimon/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		if code, ok := errors.GetExitCode(err); ok {
			os.Exit(code)
		}
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

// printError writes structured errors as they render themselves and
// prefixes anything else (cobra's flag errors) with the failure symbol.
func printError(w io.Writer, err error) {
	if _, ok := err.(*errors.Error); ok {
		fmt.Fprint(w, err.Error())
		return
	}
	fmt.Fprintf(w, "%s %v\n", ui.SymbolFail, err)
}

// applyColorMode resolves --no-color, NO_COLOR, and output.color.
func applyColorMode(cfg *config.Config, out io.Writer) {
	if noColor || os.Getenv("NO_COLOR") != "" {
		ui.DisableColors()
		return
	}
	ui.SetColorMode(cfg.Output.Color, out)
}

// consoleCommand loads the config and runs the menu until the user exits.
func consoleCommand(ctx context.Context, in io.Reader, out, errOut io.Writer) error {
	cfg, cfgPath, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return err
	}

	applyColorMode(cfg, out)

	log := logger.NewEnvLogger(errOut, "[raspimon]")
	if cfgPath != "" {
		log.Debug("config: %s", cfgPath)
	} else {
		log.Debug("config: built-in defaults")
	}

	queries := query.NewSet(cfg, query.Deps{
		Runner:  exec.NewLocalRunner(log),
		Sensors: query.HostSensors{},
		Confirm: terminalConfirm(in),
		Stdin:   in,
		Stdout:  out,
		Stderr:  errOut,
		Log:     log,
	})

	c := console.New(in, out, console.DefaultOptions(queries),
		console.WithHeader(ui.HeaderInfo{
			Version: formatVersion(version),
			Tagline: "Raspberry Pi diagnostics",
		}),
		console.WithRenderer(ui.NewMarkdownRenderer(ui.ColorsEnabled(), helpWidth)),
		console.WithLogger(log),
	)

	return c.Run(ctx)
}

// terminalConfirm returns a huh confirmation prompt when in is a terminal,
// and nil otherwise so piped input never blocks on a prompt.
func terminalConfirm(in io.Reader) query.Confirmer {
	if !isTerminal(in) {
		return nil
	}

	return func(ctx context.Context, title string) (bool, error) {
		var proceed bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(title).
					Affirmative("Open").
					Negative("Back").
					Value(&proceed),
			),
		)

		if err := form.RunWithContext(ctx); err != nil {
			if err == huh.ErrUserAborted {
				return false, nil
			}
			return false, err
		}
		return proceed, nil
	}
}

// isTerminal reports whether in is a terminal rather than a pipe or file.
func isTerminal(in io.Reader) bool {
	f, ok := in.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

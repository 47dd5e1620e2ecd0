package cli

import (
	"context"
	stderrors "errors"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/raspimon/internal/config"
	"github.com/rileyhilliard/raspimon/internal/errors"
	"github.com/rileyhilliard/raspimon/internal/exec"
	"github.com/rileyhilliard/raspimon/internal/logger"
	"github.com/rileyhilliard/raspimon/internal/monitor"
	"github.com/spf13/cobra"
)

var (
	monitorInterval time.Duration
	monitorTheme    string
)

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Live dashboard of CPU, temperature, network and SD card",
	Long: `Open a full-screen dashboard that refreshes on an interval.

Panels: CPU, temperature, network throughput, SD card read/write, GPU, and
fan/power (vcgencmd throttling and core voltage). The sidebar sums up CPU,
temperature, memory, disk, IP address, and bytes sent and received.

Keys:
  ←/h →/l   select widget
  t         cycle theme (dark, light, solar)
  r         sample now
  ?         all keys
  q         quit

Examples:
  raspimon monitor
  raspimon monitor --interval 500ms --theme solar`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return monitorCommand(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), monitorInterval, monitorTheme)
	},
}

func init() {
	monitorCmd.Flags().DurationVar(&monitorInterval, "interval", 0, "refresh interval (default: monitor.interval from the config)")
	monitorCmd.Flags().StringVar(&monitorTheme, "theme", "", "color theme: dark, light or solar (default: monitor.theme)")
	rootCmd.AddCommand(monitorCmd)
}

// monitorCommand loads the config, applies the flag overrides, and runs the
// dashboard until the user quits.
func monitorCommand(ctx context.Context, in io.Reader, out io.Writer, interval time.Duration, theme string) error {
	cfg, _, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return err
	}

	if interval != 0 {
		cfg.Monitor.Interval = interval
	}
	if theme != "" {
		cfg.Monitor.Theme = theme
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	applyColorMode(cfg, out)

	if !isTerminal(in) {
		return errors.New(errors.ErrConfig,
			"raspimon monitor needs a terminal",
			"Run it from an interactive shell. For piped input use the menu console: raspimon")
	}

	// stderr output would tear the alternate screen, so the dashboard stays quiet
	log := logger.Noop()
	collector := monitor.NewCollector(cfg, exec.NewLocalRunner(log), log)
	model := monitor.NewModel(collector, monitor.Options{
		Interval:    cfg.Monitor.Interval,
		HistorySize: cfg.Monitor.History,
		Theme:       cfg.Monitor.Theme,
	})

	return runDashboard(ctx, model, in, out)
}

// runDashboard runs model on the alternate screen. A cancelled ctx ends the
// program without an error.
func runDashboard(ctx context.Context, model tea.Model, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)

	_, err := p.Run()
	if err != nil && stderrors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

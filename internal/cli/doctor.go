package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/raspimon/internal/config"
	"github.com/rileyhilliard/raspimon/internal/doctor"
	"github.com/rileyhilliard/raspimon/internal/errors"
	"github.com/rileyhilliard/raspimon/internal/query"
	"github.com/rileyhilliard/raspimon/internal/ui"
	"github.com/spf13/cobra"
)

var doctorFix bool

// doctorCmd checks that every tool behind the menu is installed
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the tools behind each menu option",
	Long: `Run diagnostic checks for every menu option.

Checks:
  - Config file validity
  - Each configured tool is on PATH
  - Kernel thermal sensors (temperature fallback)
  - sudo for the Raspberry Pi config menu

Exits 1 when a required tool is missing.

Examples:
  raspimon doctor
  raspimon doctor --fix`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		cfg := loadConfigForDoctor()
		applyColorMode(cfg, out)

		checks := doctor.NewChecks(cfg, doctor.Options{
			ConfigPath: cfgFile,
			Sensors:    query.HostSensors{},
		})
		return doctorCommand(cmd.Context(), out, checks, doctorFix)
	},
}

func init() {
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "write a default config file if there is none")
	rootCmd.AddCommand(doctorCmd)
}

// loadConfigForDoctor returns the active config, or defaults when it can't
// be loaded. The config check reports the load error itself.
func loadConfigForDoctor() *config.Config {
	cfg, _, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return config.DefaultConfig()
	}
	return cfg
}

// doctorCommand runs the checks, prints the report, and returns an
// ExitError(1) when any check failed.
func doctorCommand(ctx context.Context, out io.Writer, checks []doctor.Check, fix bool) error {
	results := doctor.RunAll(ctx, checks)

	if fix {
		results = attemptFixes(ctx, checks, results)
	}

	outputDoctorText(out, checks, results, fix)

	if doctor.HasFailures(results) {
		return errors.NewExitError(1)
	}
	return nil
}

// attemptFixes tries to fix issues where possible.
func attemptFixes(ctx context.Context, checks []doctor.Check, results []doctor.CheckResult) []doctor.CheckResult {
	for i, result := range results {
		if !result.Fixable {
			continue
		}
		if err := checks[i].Fix(); err == nil {
			// Re-run the check to see if it's fixed
			results[i] = checks[i].Run(ctx)
		}
	}
	return results
}

// outputDoctorText outputs results in human-readable format.
func outputDoctorText(out io.Writer, checks []doctor.Check, results []doctor.CheckResult, fixed bool) {
	headerStyle := lipgloss.NewStyle().Bold(true)

	fmt.Fprintln(out)
	fmt.Fprintln(out, headerStyle.Render("raspimon Diagnostic Report"))
	fmt.Fprintln(out)

	grouped := doctor.GroupByCategory(checks)
	for _, category := range doctor.Categories {
		indices, ok := grouped[category]
		if !ok || len(indices) == 0 {
			continue
		}

		fmt.Fprintln(out, headerStyle.Render(category))
		for _, idx := range indices {
			renderCheckResult(out, results[idx])
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintln(out, strings.Repeat("━", ui.HeaderWidth))
	fmt.Fprintln(out)

	summary := doctor.Summary(results)
	switch {
	case !doctor.HasIssues(results):
		fmt.Fprintln(out, ui.StatusLine(ui.SymbolSuccess, ui.SuccessStyle(), summary))
	case !doctor.HasFailures(results):
		fmt.Fprintln(out, ui.StatusLine(ui.SymbolWarn, ui.WarningStyle(), summary))
	default:
		fmt.Fprintln(out, ui.StatusLine(ui.SymbolFail, ui.ErrorStyle(), summary))
	}

	if !fixed && doctor.FixableCount(results) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "  Run with %s to write a default config file.\n", ui.MutedStyle().Render("--fix"))
	}

	fmt.Fprintln(out)
}

// renderCheckResult renders a single check result.
func renderCheckResult(out io.Writer, result doctor.CheckResult) {
	var symbol string
	var style lipgloss.Style

	switch result.Status {
	case doctor.StatusPass:
		symbol = ui.SymbolSuccess
		style = ui.SuccessStyle()
	case doctor.StatusWarn:
		symbol = ui.SymbolWarn
		style = ui.WarningStyle()
	default:
		symbol = ui.SymbolFail
		style = ui.ErrorStyle()
	}

	fmt.Fprintf(out, "  %s\n", ui.StatusLine(symbol, style, result.Message))

	if result.Suggestion != "" && result.Status != doctor.StatusPass {
		// Indent suggestion
		for _, line := range strings.Split(result.Suggestion, "\n") {
			fmt.Fprintf(out, "    %s\n", ui.MutedStyle().Render(line))
		}
	}
}

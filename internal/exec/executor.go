package exec

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/rileyhilliard/raspimon/internal/errors"
)

// commandNotFoundPatterns are regex patterns to detect "command not found" errors
// from various shells. These require exit code 127.
var commandNotFoundPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)bash: (\S+): command not found`),
	regexp.MustCompile(`(?i)zsh: command not found: (\S+)`),
	regexp.MustCompile(`(?i)sh: \d+: (\S+): not found`),
	regexp.MustCompile(`(?i)-bash: (\S+): No such file or directory`),
	regexp.MustCompile(`(?i)(\S+): not found`),
	regexp.MustCompile(`(?i)(\S+): command not found`),
}

// dependencyNotFoundPatterns catch a wrapper (sudo, env) failing because the
// tool it was asked to start is missing. These can have various exit codes.
var dependencyNotFoundPatterns = []*regexp.Regexp{
	// sudo: raspi-config: command not found
	regexp.MustCompile(`(?i)sudo: (\S+): command not found`),
	// env: vcgencmd: No such file or directory
	regexp.MustCompile(`(?i)env: (\S+): No such file or directory`),
	// /bin/sh: vcgencmd: not found
	regexp.MustCompile(`(?i)/bin/sh: (\S+): not found`),
}

// launcherWords are prefixes skipped when guessing the tool a command line starts.
var launcherWords = map[string]bool{
	"sudo": true,
	"env":  true,
	"exec": true,
	"(":    true,
}

// shellSeparators split a command line into the stages that each start a tool.
var shellSeparators = regexp.MustCompile(`&&|\|\||[;|()]`)

// shellBuiltins start a stage without needing anything on PATH.
var shellBuiltins = map[string]bool{
	":":      true,
	"[":      true,
	"cd":     true,
	"echo":   true,
	"exit":   true,
	"export": true,
	"false":  true,
	"printf": true,
	"set":    true,
	"test":   true,
	"true":   true,
}

// IsCommandNotFound checks if the error output indicates a missing command.
// Returns the command name (if extractable) and whether it's a command-not-found error.
func IsCommandNotFound(stderr string, exitCode int) (string, bool) {
	// Exit code 127 is the standard for command not found
	if exitCode != 127 {
		return "", false
	}

	for _, pattern := range commandNotFoundPatterns {
		if matches := pattern.FindStringSubmatch(stderr); len(matches) > 1 {
			return strings.TrimSuffix(matches[1], ":"), true
		}
	}

	// Exit code is 127 but couldn't extract command name
	return "", true
}

// IsDependencyNotFound checks if a launcher failed because the tool it runs is missing.
func IsDependencyNotFound(stderr string) (string, bool) {
	for _, pattern := range dependencyNotFoundPatterns {
		if matches := pattern.FindStringSubmatch(stderr); len(matches) > 1 {
			return matches[1], true
		}
	}
	return "", false
}

// ToolName returns the executable a command line starts, skipping launchers
// like sudo and env. Returns "" for an empty command.
func ToolName(cmd string) string {
	for _, field := range strings.Fields(cmd) {
		if launcherWords[field] || strings.Contains(field, "=") || strings.HasPrefix(field, "-") {
			continue
		}
		return strings.TrimLeft(field, "(")
	}
	return ""
}

// ToolNames returns every executable a command line starts, in order and
// without duplicates. Stages are split on &&, ||, ;, | and parentheses, and
// shell builtins are left out.
func ToolNames(cmd string) []string {
	var tools []string
	seen := make(map[string]bool)
	for _, stage := range shellSeparators.Split(cmd, -1) {
		tool := ToolName(stage)
		if tool == "" || shellBuiltins[tool] || seen[tool] {
			continue
		}
		seen[tool] = true
		tools = append(tools, tool)
	}
	return tools
}

// HandleExecError turns a finished command into an error when it did not
// succeed. Returns nil for exit code 0.
func HandleExecError(cmd string, stderr string, exitCode int) error {
	if exitCode == 0 {
		return nil
	}

	cmdName, notFound := IsCommandNotFound(stderr, exitCode)
	if !notFound {
		cmdName, notFound = IsDependencyNotFound(stderr)
	}

	if notFound {
		if cmdName == "" {
			cmdName = ToolName(cmd)
		}
		if cmdName == "" {
			cmdName = "command"
		}
		return errors.New(errors.ErrExec,
			fmt.Sprintf("'%s' not found in PATH", cmdName),
			fmt.Sprintf("Install '%s' or point the menu option at another tool in the config file.", cmdName))
	}

	detail := strings.TrimSpace(stderr)
	if detail == "" {
		detail = "no error output"
	}
	return errors.New(errors.ErrExec,
		fmt.Sprintf("'%s' exited with code %d", cmd, exitCode),
		detail)
}

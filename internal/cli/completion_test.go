package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletionBashGeneration(t *testing.T) {
	var buf bytes.Buffer
	err := rootCmd.GenBashCompletion(&buf)

	require.NoError(t, err)
	output := buf.String()

	assert.Contains(t, output, "# bash completion for raspimon")
	assert.Contains(t, output, "__completeNoDesc", "should use dynamic completion")
	assert.Contains(t, output, "complete -o default -F __start_raspimon raspimon")
}

func TestCompletionZshGeneration(t *testing.T) {
	var buf bytes.Buffer
	err := rootCmd.GenZshCompletion(&buf)

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "#compdef raspimon")
}

func TestCompletionFishGeneration(t *testing.T) {
	var buf bytes.Buffer
	err := rootCmd.GenFishCompletion(&buf, true)

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "complete -c raspimon")
}

func TestCompletionPowershellGeneration(t *testing.T) {
	var buf bytes.Buffer
	err := rootCmd.GenPowerShellCompletion(&buf)

	require.NoError(t, err)
	output := buf.String()

	// Verify basic powershell completion structure (case insensitive check)
	assert.Contains(t, strings.ToLower(output), "powershell completion")
	assert.Contains(t, output, "Register-ArgumentCompleter")
}

func TestCompletionCommand_WritesToOutput(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"completion", "fish"})
	defer func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	}()

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "complete -c raspimon")
}

func TestCompletionCommandValidArgs(t *testing.T) {
	assert.Contains(t, completionCmd.ValidArgs, "bash")
	assert.Contains(t, completionCmd.ValidArgs, "zsh")
	assert.Contains(t, completionCmd.ValidArgs, "fish")
	assert.Contains(t, completionCmd.ValidArgs, "powershell")
	assert.Len(t, completionCmd.ValidArgs, 4)
}

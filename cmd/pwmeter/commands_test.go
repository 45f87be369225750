package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/npillmayer/pwmeter/meter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRenderCommand(t *testing.T) {
	out, _, err := execute(t, "", "render", "--password", "secret", "--log-format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, "<title>Password Strength</title>")
	assert.Contains(t, out, "Strength: Average 😏")
	assert.Contains(t, out, `<meter class="`)
	assert.Contains(t, out, "<style data-pwmeter")
}

func TestRenderToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.html")
	out, _, err := execute(t, "", "render", "--out", path)
	require.NoError(t, err)
	assert.Empty(t, out)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `value="0"`)
}

func TestRenderBadMount(t *testing.T) {
	path := writeFile(t, "cfg.yaml", "mount: '#elsewhere'\n")
	_, _, err := execute(t, "", "render", "--config", path)
	assert.Error(t, err)
}

func TestReplayPassword(t *testing.T) {
	out, _, err := execute(t, "", "replay", "--password", "abcdef", "--page=false", "--tree")
	require.NoError(t, err)
	lines := strings.Split(out, "\n")
	require.True(t, len(lines) > 6)
	assert.Contains(t, lines[0], `"a"`)
	assert.Contains(t, lines[0], `label=" "`)
	assert.Contains(t, lines[2], `level=1`)
	assert.Contains(t, lines[2], `colour=red`)
	assert.Contains(t, lines[5], `level=2`)
	assert.Contains(t, lines[5], meter.Label(2))
	assert.Contains(t, out, "<meter")
	assert.NotContains(t, out, "<html")
}

func TestReplayStdin(t *testing.T) {
	dot := filepath.Join(t.TempDir(), "tree.dot")
	out, _, err := execute(t, "abc\nabcdefghijklmno\n", "replay", "--dot", dot)
	require.NoError(t, err)
	assert.Contains(t, out, "frame   1")
	assert.Contains(t, out, "frame   2")
	assert.Contains(t, out, `label="Amazing 👏"`)
	assert.Contains(t, out, "</html>")
	data, err := os.ReadFile(dot)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "digraph g {"))
}

func TestCSSCommand(t *testing.T) {
	out, _, err := execute(t, "", "css")
	require.NoError(t, err)
	for _, c := range []string{"transparent", "red", "yellow", "orange", "lightgreen"} {
		assert.Contains(t, out, "background: "+c)
	}
	assert.Contains(t, out, "@media screen and (min-width: 52em)")
}

func TestInvalidTraceFlag(t *testing.T) {
	_, _, err := execute(t, "", "css", "--trace", "loud")
	assert.Error(t, err)
}

func TestConfigFlagUsage(t *testing.T) {
	flag := newRootCmd().PersistentFlags().Lookup("config")
	require.NotNil(t, flag)
	assert.Contains(t, flag.Usage, "TOML")
	assert.Contains(t, flag.Usage, "YAML")
}

func TestStrengthBar(t *testing.T) {
	assert.Equal(t, barWidth, lipgloss.Width(strengthBar(0, barWidth)))
	assert.Equal(t, barWidth, lipgloss.Width(strengthBar(2, barWidth)))
	assert.Equal(t, barWidth, lipgloss.Width(strengthBar(9, barWidth)))
}

func TestTUIModel(t *testing.T) {
	s, err := startSession(DefaultConfig())
	require.NoError(t, err)
	defer s.stop()
	var m tea.Model = newTUIModel(s, "test")
	for _, r := range "secret" {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	tm := m.(tuiModel)
	assert.Equal(t, "secret", tm.input.Value())
	assert.Equal(t, 2, tm.level)
	view := tm.View()
	assert.Contains(t, view, meter.Label(2))
	assert.NotContains(t, view, "secret", "password must be masked")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

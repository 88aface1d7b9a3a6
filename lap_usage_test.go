package lap

import (
	"strings"
	"testing"

	"github.com/amterp/color"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func newUsageParser(t *testing.T) *Parser {
	t.Helper()
	p := NewParser("prog", WithColor(false), WithDescription("Test application"))
	assert.NoError(t, p.AddFlag("--output", "-o", false, "Output file", ActionStoreValue))
	assert.NoError(t, p.AddFlag("--target", "", true, "Target host", ActionStoreValue))
	return p
}

func TestRenderHelp(t *testing.T) {
	p := newUsageParser(t)

	expected := `Test application

usage: prog [--help]/[-h] [--verbose]/[-v] [--output]/[-o] [--target]

options:
  --help, -h              Shows the help message and exits the program.
  --verbose, -v           Enhances output visibility of the program.
  --output, -o            Output file
  --target                Target host`

	if diff := cmp.Diff(expected, p.RenderHelp(false)); diff != "" {
		t.Errorf("RenderHelp(false) mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderHelpVerbose(t *testing.T) {
	p := newUsageParser(t)

	expected := `Test application

usage: prog [--help]/[-h] [--verbose]/[-v] [--output]/[-o] [--target]

options:
  --help, -h              Shows the help message and exits the program.
  --verbose, -v           Enhances output visibility of the program.
  --output, -o            Output file
  --target                Target host

Required Arguments:
  --target                Target host

Optional Arguments:
  --help, -h              Shows the help message and exits the program.
  --verbose, -v           Enhances output visibility of the program.
  --output, -o            Output file`

	if diff := cmp.Diff(expected, p.RenderHelp(true)); diff != "" {
		t.Errorf("RenderHelp(true) mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderHelpVerboseOmitsEmptyRequiredSection(t *testing.T) {
	p := NewParser("prog", WithColor(false))

	help := p.RenderHelp(true)

	assert.NotContains(t, help, "Required Arguments:")
	assert.Contains(t, help, "Optional Arguments:")
}

func TestRenderHelpIsIdempotent(t *testing.T) {
	p := newUsageParser(t)

	assert.Equal(t, p.RenderHelp(false), p.RenderHelp(false))
	assert.Equal(t, p.RenderHelp(true), p.RenderHelp(true))
}

func TestRenderHelpWithoutAliases(t *testing.T) {
	p := NewParser("prog", WithColor(false), WithAliases(false), WithDescription("Minimal"))
	assert.NoError(t, p.AddFlag("--output", "-o", false, "Output file", ActionStoreValue))

	expected := `Minimal

usage: prog [--help] [--output]

options:
  --help                  Shows the help message and exits the program.
  --output                Output file`

	if diff := cmp.Diff(expected, p.RenderHelp(false)); diff != "" {
		t.Errorf("RenderHelp mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderHelpColorDisabledHasNoEscapes(t *testing.T) {
	prev := color.NoColor
	t.Cleanup(func() { color.NoColor = prev })
	t.Setenv("LAP_COLOR", "always")
	p := newUsageParser(t)

	assert.False(t, strings.Contains(p.RenderHelp(true), "\x1b["))
}

func TestRenderHelpColorAlwaysKeepsAlignment(t *testing.T) {
	prev := color.NoColor
	t.Cleanup(func() { color.NoColor = prev })
	t.Setenv("LAP_COLOR", "always")
	p := NewParser("prog", WithDescription("Colored"))

	help := p.RenderHelp(false)

	assert.Contains(t, help, "\x1b[")
	assert.Contains(t, help, "--help, -h          ")
	assert.Contains(t, help, "Shows the help message and exits the program.")
}

func TestGenerateSynopsis(t *testing.T) {
	p := newUsageParser(t)

	assert.Equal(t, "usage: prog [--help]/[-h] [--verbose]/[-v] [--output]/[-o] [--target]", p.GenerateSynopsis())
}

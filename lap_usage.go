package lap

import (
	"fmt"
	"os"
	"strings"

	"github.com/amterp/color"
)

// column width of the "name, alias" cell in option listings
const optionColumnWidth = 20

var (
	greenBold = color.New(color.FgGreen, color.Bold)
	cyan      = color.New(color.FgCyan)
	bold      = color.New(color.Bold)
	red       = color.New(color.FgRed)
	yellow    = color.New(color.FgYellow)
)

// RenderHelp builds the help text. verbose adds the required/optional breakdown.
func (p *Parser) RenderHelp(verbose bool) string {
	initializeColorFromEnv()

	var sb strings.Builder
	sb.WriteString(p.description)
	sb.WriteString("\n\n")
	sb.WriteString(p.generateSynopsis())
	sb.WriteString("\n\n")
	sb.WriteString(p.paint(greenBold, "options:"))
	sb.WriteString(p.formatFlags(p.order))

	if verbose {
		var required, optional []string
		for _, name := range p.order {
			if p.flags[name].Required {
				required = append(required, name)
			} else {
				optional = append(optional, name)
			}
		}
		if len(required) > 0 {
			sb.WriteString("\n\n" + p.paint(greenBold, "Required Arguments:"))
			sb.WriteString(p.formatFlags(required))
		}
		if len(optional) > 0 {
			sb.WriteString("\n\n" + p.paint(greenBold, "Optional Arguments:"))
			sb.WriteString(p.formatFlags(optional))
		}
	}

	return sb.String()
}

// GenerateSynopsis returns the "usage:" line.
func (p *Parser) GenerateSynopsis() string {
	initializeColorFromEnv()
	return p.generateSynopsis()
}

func (p *Parser) generateSynopsis() string {
	var sb strings.Builder
	sb.WriteString(p.paint(greenBold, "usage:"))
	sb.WriteString(" ")
	sb.WriteString(p.paint(bold, p.program))
	for _, name := range p.order {
		flag := p.flags[name]
		if p.config.EnableAliases && flag.Alias != "" {
			sb.WriteString(fmt.Sprintf(" [%s]/[%s]", flag.Name, flag.Alias))
		} else {
			sb.WriteString(fmt.Sprintf(" [%s]", flag.Name))
		}
	}
	return sb.String()
}

func (p *Parser) formatFlags(names []string) string {
	var sb strings.Builder
	for _, name := range names {
		flag := p.flags[name]
		cell := flag.Name
		if p.config.EnableAliases && flag.Alias != "" {
			cell = fmt.Sprintf("%s, %s", flag.Name, flag.Alias)
		}
		// pad before coloring so escape codes don't skew the alignment
		cell = fmt.Sprintf("%-*s", optionColumnWidth, cell)
		sb.WriteString("\n  ")
		sb.WriteString(p.paint(cyan, cell))
		sb.WriteString("    ")
		sb.WriteString(flag.Help)
	}
	return sb.String()
}

func (p *Parser) paint(c *color.Color, s string) string {
	if !p.config.ColorOutput {
		return s
	}
	return c.Sprint(s)
}

func (p *Parser) printError(err error) {
	msg := p.paint(red, fmt.Sprintf("[ERROR]: %s", err.Error()))
	fmt.Fprintf(stderrWriter, "%s\nUse `%s` for more information.\n", msg, helpName)
}

func (p *Parser) printStrictNotice() {
	fmt.Fprintln(stderrWriter, p.paint(yellow,
		"[MESSAGE]: Returning the error to the caller since strict mode is enabled. To disable, use WithStrict(false)."))
}

func (p *Parser) printNoArguments() {
	hint := helpName
	if p.config.EnableAliases {
		hint = helpName + " / " + helpAlias
	}
	notice := fmt.Sprintf("No arguments provided. Use %s to see available options.", hint)
	fmt.Fprintf(stdoutWriter, "%s\n\n%s\n", p.description, p.paint(yellow, notice))
}

func initializeColorFromEnv() {
	colorValue := strings.ToLower(strings.TrimSpace(os.Getenv("LAP_COLOR")))
	switch colorValue {
	case "never":
		color.NoColor = true
	case "always":
		color.NoColor = false
	case "", "auto":
		// let amterp/color decide based on tty
	default:
		// invalid value - treat as auto
	}
}

package lap

import (
	"fmt"
	"os"
	"strings"
)

// GenerateDump creates a dump of the registry, configuration and the arguments
// about to be parsed, for debugging flag setups.
func (p *Parser) GenerateDump(args []string, opts ...ParseOpt) string {
	initializeColorFromEnv()

	var sb strings.Builder
	sb.WriteString(p.paint(greenBold, "Lap Parser Dump") + "\n")
	sb.WriteString(strings.Repeat("=", 50) + "\n\n")

	sb.WriteString(p.generateParseConfigSection(opts...))
	sb.WriteString(p.generateParserInfoSection())
	sb.WriteString(p.generateArgumentsToParseSection(args))
	sb.WriteString(p.generateFlagsSection())
	sb.WriteString(p.generateEnvironmentSection())

	return sb.String()
}

func (p *Parser) generateParseConfigSection(opts ...ParseOpt) string {
	var sb strings.Builder
	cfg := newParseCfg(opts)

	sb.WriteString(p.paint(greenBold, "Parse Configuration:") + "\n")
	sb.WriteString(fmt.Sprintf("  Aliases Enabled: %s\n", p.paint(bold, fmt.Sprintf("%t", p.config.EnableAliases))))
	sb.WriteString(fmt.Sprintf("  Color Output: %s\n", p.paint(bold, fmt.Sprintf("%t", p.config.ColorOutput))))
	sb.WriteString(fmt.Sprintf("  Strict Errors: %s\n", p.paint(bold, fmt.Sprintf("%t", p.config.StrictErrors))))
	sb.WriteString(fmt.Sprintf("  Dump Enabled: %s\n", p.paint(bold, fmt.Sprintf("%t", cfg.dump))))
	sb.WriteString("\n")

	return sb.String()
}

func (p *Parser) generateParserInfoSection() string {
	var sb strings.Builder

	sb.WriteString(p.paint(greenBold, "Parser Information:") + "\n")
	sb.WriteString(fmt.Sprintf("  Program: %s\n", p.paint(bold, p.program)))
	if p.description != "" {
		sb.WriteString(fmt.Sprintf("  Description: %s\n", p.paint(bold, p.description)))
	} else {
		sb.WriteString(fmt.Sprintf("  Description: %s\n", p.paint(cyan, "<not set>")))
	}
	sb.WriteString(fmt.Sprintf("  Registered Flags: %s\n", p.paint(bold, fmt.Sprintf("%d", len(p.order)))))
	sb.WriteString("\n")

	return sb.String()
}

func (p *Parser) generateArgumentsToParseSection(args []string) string {
	var sb strings.Builder

	sb.WriteString(p.paint(greenBold, "Arguments to Parse:") + "\n")
	if len(args) == 0 {
		sb.WriteString(fmt.Sprintf("  %s\n", p.paint(cyan, "<none>")))
	} else {
		for i, arg := range args {
			sb.WriteString(fmt.Sprintf("  [%d]: %q\n", i, arg))
		}
	}
	sb.WriteString("\n")

	return sb.String()
}

func (p *Parser) generateFlagsSection() string {
	var sb strings.Builder

	sb.WriteString(p.paint(greenBold, "Flags:") + "\n")
	for _, name := range p.order {
		flag := p.flags[name]
		sb.WriteString(fmt.Sprintf("  %s\n", p.paint(bold, flag.Name)))
		if flag.Alias != "" {
			sb.WriteString(fmt.Sprintf("    Alias: %s\n", flag.Alias))
		} else {
			sb.WriteString(fmt.Sprintf("    Alias: %s\n", p.paint(cyan, "<none>")))
		}
		sb.WriteString(fmt.Sprintf("    Key: %s\n", flag.Key()))
		sb.WriteString(fmt.Sprintf("    Action: %s\n", flag.Action))
		sb.WriteString(fmt.Sprintf("    Required: %t\n", flag.Required))
		if flag.Help != "" {
			sb.WriteString(fmt.Sprintf("    Help: %s\n", flag.Help))
		}
	}
	sb.WriteString("\n")

	return sb.String()
}

func (p *Parser) generateEnvironmentSection() string {
	var sb strings.Builder

	sb.WriteString(p.paint(greenBold, "Environment:") + "\n")
	if v, ok := os.LookupEnv("LAP_COLOR"); ok {
		sb.WriteString(fmt.Sprintf("  LAP_COLOR: %s\n", v))
	} else {
		sb.WriteString(fmt.Sprintf("  LAP_COLOR: %s\n", p.paint(cyan, "<not set>")))
	}

	return sb.String()
}

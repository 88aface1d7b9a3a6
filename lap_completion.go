package lap

import (
	"fmt"
	"strings"
)

// Complete returns the flag names and aliases starting with prefix, in registry order.
// Names already present in used are skipped.
func (p *Parser) Complete(prefix string, used ...string) []string {
	seen := make(map[string]bool)
	for _, arg := range used {
		if flag, ok := p.Lookup(arg); ok {
			seen[flag.Name] = true
		}
	}

	var candidates []string
	for _, name := range p.order {
		if seen[name] {
			continue
		}
		flag := p.flags[name]
		if strings.HasPrefix(flag.Name, prefix) {
			candidates = append(candidates, flag.Name)
		}
		if p.config.EnableAliases && flag.Alias != "" && strings.HasPrefix(flag.Alias, prefix) {
			candidates = append(candidates, flag.Alias)
		}
	}
	return candidates
}

// GenerateBashCompletion returns a bash completion script offering every registered name and alias.
func (p *Parser) GenerateBashCompletion() string {
	fn := completionFuncName(p.program)
	return fmt.Sprintf(bashCompletionTemplate, p.program, fn, p.completionWords(), fn, p.program)
}

// GenerateZshCompletion returns a zsh completion script offering every registered name and alias.
func (p *Parser) GenerateZshCompletion() string {
	fn := completionFuncName(p.program)
	return fmt.Sprintf(zshCompletionTemplate, p.program, fn, p.zshSpecs(), fn, p.program)
}

// GenerateCompletion dispatches on the shell name ("bash" or "zsh").
func (p *Parser) GenerateCompletion(shell string) (string, error) {
	switch strings.ToLower(shell) {
	case "bash":
		return p.GenerateBashCompletion(), nil
	case "zsh":
		return p.GenerateZshCompletion(), nil
	}
	return "", fmt.Errorf("unsupported shell %q (supported: bash, zsh)", shell)
}

func (p *Parser) completionWords() string {
	return strings.Join(p.Complete(""), " ")
}

// zshSpecs renders one _arguments spec per flag, e.g. '(--output -o)'{--output,-o}'[Output file]:value:'
func (p *Parser) zshSpecs() string {
	var lines []string
	for _, name := range p.order {
		flag := p.flags[name]
		help := zshEscape(flag.Help)
		suffix := ":value:"
		if flag.IsStoreTrue() {
			suffix = ""
		}
		if p.config.EnableAliases && flag.Alias != "" {
			lines = append(lines, fmt.Sprintf("'(%s %s)'{%s,%s}'[%s]%s'",
				flag.Name, flag.Alias, flag.Name, flag.Alias, help, suffix))
		} else {
			lines = append(lines, fmt.Sprintf("'%s[%s]%s'", flag.Name, help, suffix))
		}
	}
	return strings.Join(lines, " \\\n        ")
}

func zshEscape(s string) string {
	r := strings.NewReplacer("'", `'\''`, "[", `\[`, "]", `\]`, ":", `\:`)
	return r.Replace(s)
}

// completionFuncName turns a program name into a valid shell function name.
func completionFuncName(program string) string {
	var sb strings.Builder
	for _, r := range program {
		if r == '_' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			sb.WriteRune(r)
		} else {
			sb.WriteRune('_')
		}
	}
	return sb.String()
}

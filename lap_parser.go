package lap

import (
	"fmt"
)

const defaultDescription = "Welcome!"

const (
	helpName     = "--help"
	helpAlias    = "-h"
	verboseName  = "--verbose"
	verboseAlias = "-v"
)

type Parser struct {
	program     string
	description string
	config      Config
	flags       map[string]*Flag // flag name -> definition
	order       []string         // flag names in registration order
}

func NewParser(program string, opts ...Option) *Parser {
	cfg := &parserCfg{
		config:      DefaultConfig(),
		description: defaultDescription,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	p := &Parser{
		program:     program,
		description: cfg.description,
		config:      cfg.config,
		flags:       make(map[string]*Flag),
	}
	p.registerBuiltins()
	return p
}

// registerBuiltins adds the help flag, plus the verbose flag when aliases are enabled.
// The minimal variant has only a bare --help.
func (p *Parser) registerBuiltins() {
	if !p.config.EnableAliases {
		p.put(Flag{
			Name:   helpName,
			Help:   "Shows the help message and exits the program.",
			Action: ActionStoreTrue,
		})
		return
	}
	p.put(Flag{
		Name:   helpName,
		Alias:  helpAlias,
		Help:   "Shows the help message and exits the program.",
		Action: ActionStoreTrue,
	})
	p.put(Flag{
		Name:   verboseName,
		Alias:  verboseAlias,
		Help:   "Enhances output visibility of the program.",
		Action: ActionStoreTrue,
	})
}

func (p *Parser) SetDescription(desc string) *Parser {
	p.description = desc
	return p
}

func (p *Parser) Description() string {
	return p.description
}

func (p *Parser) Program() string {
	return p.program
}

func (p *Parser) Config() Config {
	return p.config
}

// AddFlag registers a flag. Re-adding an existing name replaces its definition
// but keeps its original position in the registry.
func (p *Parser) AddFlag(name, alias string, required bool, help string, action Action) error {
	flag := Flag{
		Name:     name,
		Alias:    alias,
		Required: required,
		Help:     help,
		Action:   action,
	}
	if err := flag.Validate(); err != nil {
		if p.config.StrictErrors {
			p.printStrictNotice()
		}
		return err
	}
	p.put(flag)
	return nil
}

// MustAddFlag is AddFlag with the permissive error policy: a bad definition is
// reported on stderr and the process exits with ExitValidation.
func (p *Parser) MustAddFlag(name, alias string, required bool, help string, action Action) {
	flag := Flag{Name: name, Alias: alias, Required: required, Help: help, Action: action}
	if err := flag.Validate(); err != nil {
		p.printError(err)
		osExit(ExitValidation)
		return
	}
	p.put(flag)
}

func (p *Parser) put(flag Flag) {
	if _, exists := p.flags[flag.Name]; !exists {
		p.order = append(p.order, flag.Name)
	}
	p.flags[flag.Name] = &flag
}

// Flags returns copies of all registered flags in registry order.
func (p *Parser) Flags() []Flag {
	out := make([]Flag, 0, len(p.order))
	for _, name := range p.order {
		out = append(out, *p.flags[name])
	}
	return out
}

// Lookup finds a flag by its name, or by its alias when aliases are enabled.
func (p *Parser) Lookup(token string) (Flag, bool) {
	for _, name := range p.order {
		flag := p.flags[name]
		if flag.matches(token, p.config.EnableAliases) {
			return *flag, true
		}
	}
	return Flag{}, false
}

func (p *Parser) String() string {
	return fmt.Sprintf("Parser(%s, %d flags)", p.program, len(p.order))
}

package lap

import (
	"errors"
	"fmt"
	"os"
)

// Parse scans args against the registry and resolves every registered flag.
// It never writes output or exits; help, empty input and validation failures
// are all reported as errors (see HelpInvokedErr, NoArgumentsErr,
// InvalidUsageError and MissingRequiredArgumentError).
func (p *Parser) Parse(args []string) (*Result, error) {
	return p.parse(args, &parseCfg{})
}

// ParseOrError behaves like Parse but also honors ParseOpts. When dump is
// requested, DumpInvokedErr is returned without parsing.
func (p *Parser) ParseOrError(args []string, opts ...ParseOpt) (*Result, error) {
	return p.parse(args, newParseCfg(opts))
}

// ParseArgs applies the configured error policy. Help and empty input always
// terminate the process (status 0 and 1). With StrictErrors, validation errors
// are returned after a notice on stderr; otherwise they are reported and the
// process exits with ExitCode(err).
func (p *Parser) ParseArgs(args []string, opts ...ParseOpt) (*Result, error) {
	result, err := p.parse(args, newParseCfg(opts))
	if err == nil {
		return result, nil
	}
	if p.handleTerminal(args, err, opts) {
		return nil, err
	}
	if p.config.StrictErrors {
		p.printStrictNotice()
		return nil, err
	}
	p.printError(err)
	osExit(ExitCode(err))
	return nil, err
}

// ParseOrExit always terminates the process on error, regardless of StrictErrors.
func (p *Parser) ParseOrExit(args []string, opts ...ParseOpt) *Result {
	result, err := p.parse(args, newParseCfg(opts))
	if err == nil {
		return result
	}
	if !p.handleTerminal(args, err, opts) {
		p.printError(err)
		osExit(ExitCode(err))
	}
	return nil
}

// ParseOS parses the process arguments, excluding the program name.
func (p *Parser) ParseOS(opts ...ParseOpt) (*Result, error) {
	return p.ParseArgs(os.Args[1:], opts...)
}

// handleTerminal deals with the outcomes that end the process whatever the
// error policy is: help, dump and empty input. It reports whether err was one of them.
func (p *Parser) handleTerminal(args []string, err error, opts []ParseOpt) bool {
	var helpErr *helpInvokedError
	switch {
	case errors.As(err, &helpErr):
		fmt.Fprintln(stdoutWriter, p.RenderHelp(helpErr.verbose))
		osExit(ExitOK)
	case errors.Is(err, DumpInvokedErr):
		fmt.Fprint(stdoutWriter, p.GenerateDump(args, opts...))
		osExit(ExitOK)
	case errors.Is(err, NoArgumentsErr):
		p.printNoArguments()
		osExit(ExitUsage)
	default:
		return false
	}
	return true
}

func newParseCfg(opts []ParseOpt) *parseCfg {
	cfg := &parseCfg{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

func (p *Parser) parse(args []string, cfg *parseCfg) (*Result, error) {
	if cfg.dump {
		return nil, DumpInvokedErr
	}

	if p.contains(args, helpName) {
		return nil, &helpInvokedError{verbose: p.contains(args, verboseName)}
	}

	values := p.scan(args)

	if len(values) == 0 {
		if len(args) > 0 {
			return nil, &InvalidUsageError{Args: args}
		}
		return nil, NoArgumentsErr
	}

	return p.resolve(values)
}

// contains reports whether the registered flag name, or its alias, appears in args.
func (p *Parser) contains(args []string, name string) bool {
	flag, ok := p.flags[name]
	if !ok {
		return false
	}
	for _, arg := range args {
		if flag.matches(arg, p.config.EnableAliases) {
			return true
		}
	}
	return false
}

// scan matches every token against every registered flag. A match takes the
// next token as its value unless that token looks like a flag. Later
// occurrences overwrite earlier ones and unknown tokens are skipped.
func (p *Parser) scan(args []string) map[string]Value {
	values := make(map[string]Value)
	for i, arg := range args {
		for _, name := range p.order {
			if !p.flags[name].matches(arg, p.config.EnableAliases) {
				continue
			}
			if i+1 < len(args) && !looksLikeFlag(args[i+1]) {
				values[name] = StringValue(args[i+1])
			} else {
				values[name] = BoolValue(true)
			}
		}
	}
	return values
}

func (p *Parser) resolve(values map[string]Value) (*Result, error) {
	result := newResult()
	for _, name := range p.order {
		flag := p.flags[name]
		v, present := values[name]
		switch {
		case present && flag.IsStoreTrue():
			result.set(flag.Key(), BoolValue(true))
		case present:
			result.set(flag.Key(), v)
		case flag.Required:
			return nil, &MissingRequiredArgumentError{Name: name}
		case flag.IsStoreTrue():
			result.set(flag.Key(), BoolValue(false))
		default:
			result.set(flag.Key(), AbsentValue())
		}
	}
	return result, nil
}

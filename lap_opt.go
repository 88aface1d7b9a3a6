package lap

// Config selects which variant of the parser behavior is active.
type Config struct {
	EnableAliases bool // match and display short aliases; also registers -h and --verbose/-v
	ColorOutput   bool // colorize usage headers and diagnostics
	StrictErrors  bool // ParseOrError/AddFlag print a notice to stderr before returning errors
}

func DefaultConfig() Config {
	return Config{
		EnableAliases: true,
		ColorOutput:   true,
		StrictErrors:  true,
	}
}

type Option func(*parserCfg)

type parserCfg struct {
	config      Config
	description string
}

func WithConfig(cfg Config) Option {
	return func(c *parserCfg) {
		c.config = cfg
	}
}

func WithAliases(enable bool) Option {
	return func(c *parserCfg) {
		c.config.EnableAliases = enable
	}
}

func WithColor(enable bool) Option {
	return func(c *parserCfg) {
		c.config.ColorOutput = enable
	}
}

func WithStrict(strict bool) Option {
	return func(c *parserCfg) {
		c.config.StrictErrors = strict
	}
}

func WithDescription(desc string) Option {
	return func(c *parserCfg) {
		c.description = desc
	}
}

type parseCfg struct {
	dump bool
}

type ParseOpt func(*parseCfg)

func WithDump(dump bool) ParseOpt {
	return func(c *parseCfg) {
		c.dump = dump
	}
}

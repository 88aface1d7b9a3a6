package lap

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

type Format int

const (
	FormatYAML Format = iota
	FormatTOML
)

// FormatFromPath picks the definition format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return FormatYAML, fmt.Errorf("unsupported definitions file %q (expected .yaml, .yml or .toml)", path)
}

// Definitions is a declarative set of flags, e.g.
//
//	description: Copies things
//	flags:
//	  - name: --output
//	    alias: -o
//	    help: Output file
//	  - name: --force
//	    action: store_true
type Definitions struct {
	Description string
	Flags       []Flag
}

type definitionsDoc struct {
	Description string    `yaml:"description" toml:"description"`
	Flags       []flagDoc `yaml:"flags" toml:"flags"`
}

type flagDoc struct {
	Name     string `yaml:"name" toml:"name"`
	Alias    string `yaml:"alias" toml:"alias"`
	Required bool   `yaml:"required" toml:"required"`
	Help     string `yaml:"help" toml:"help"`
	Action   string `yaml:"action" toml:"action"`
}

func LoadDefinitions(r io.Reader, format Format) (*Definitions, error) {
	var doc definitionsDoc
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil && err != io.EOF {
			return nil, fmt.Errorf("decode yaml definitions: %w", err)
		}
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(&doc)
		if err != nil {
			return nil, fmt.Errorf("decode toml definitions: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("decode toml definitions: unknown keys %v", undecoded)
		}
	default:
		return nil, fmt.Errorf("unknown definitions format %d", format)
	}

	defs := &Definitions{Description: doc.Description}
	for i, fd := range doc.Flags {
		action, err := ParseAction(fd.Action)
		if err != nil {
			return nil, fmt.Errorf("flag %d (%s): %w", i, fd.Name, err)
		}
		defs.Flags = append(defs.Flags, Flag{
			Name:     fd.Name,
			Alias:    fd.Alias,
			Required: fd.Required,
			Help:     fd.Help,
			Action:   action,
		})
	}
	return defs, nil
}

func LoadDefinitionsFile(path string) (*Definitions, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	defs, err := LoadDefinitions(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return defs, nil
}

// AddDefinitions registers every flag in defs, stopping at the first invalid one.
// The description replaces the parser's only when set.
func (p *Parser) AddDefinitions(defs *Definitions) error {
	for _, flag := range defs.Flags {
		if err := flag.Register(p); err != nil {
			return err
		}
	}
	if defs.Description != "" {
		p.description = defs.Description
	}
	return nil
}

// Package config loads the runtime-provided layout configuration.
//
// Two pieces of configuration feed the object model: the hidden-field table
// (which core classes carry VM-private fields, and which ones) and the list
// of value-semantic classes whose virtual instances need no identity. Both
// ship with built-in defaults and can be overridden from a TOML file; either
// way, the hidden table is verified eagerly so a configuration gap fails at
// startup instead of surfacing as a wrong layout later.
//
// A configuration file may also carry class definitions for tooling (see
// cmd/inspect), describing a hierarchy with JVM field descriptors:
//
//	value_types = ["Ljava/lang/Integer;"]
//
//	[[class]]
//	type = "LPoint;"
//	super = "Ljava/lang/Object;"
//
//	[[class.field]]
//	name = "x"
//	descriptor = "I"
package config

import (
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/wippyai/jvm-runtime/errors"
	"github.com/wippyai/jvm-runtime/kind"
	"github.com/wippyai/jvm-runtime/layout"
)

// Config is the runtime configuration document.
type Config struct {
	// ValueTypes lists class symbols treated as no-identity value types.
	ValueTypes []string `toml:"value_types"`

	// Classes optionally defines a class hierarchy for tooling.
	Classes []ClassDef `toml:"class"`

	// Hidden overrides the built-in hidden-field table when non-empty.
	// Keys are class type symbols, values ordered hidden field names.
	Hidden map[string][]string `toml:"hidden"`
}

// ClassDef describes one class for tooling.
type ClassDef struct {
	Type   string     `toml:"type"`
	Super  string     `toml:"super"`
	Fields []FieldDef `toml:"field"`
}

// FieldDef describes one declared field by JVM descriptor.
type FieldDef struct {
	Name       string `toml:"name"`
	Descriptor string `toml:"descriptor"`
	Static     bool   `toml:"static"`
}

// Default returns the built-in configuration: the default hidden-field
// table and the boxed primitive classes as value types.
func Default() *Config {
	return &Config{
		ValueTypes: []string{
			"Ljava/lang/Boolean;",
			"Ljava/lang/Byte;",
			"Ljava/lang/Short;",
			"Ljava/lang/Character;",
			"Ljava/lang/Integer;",
			"Ljava/lang/Float;",
			"Ljava/lang/Long;",
			"Ljava/lang/Double;",
		},
	}
}

// Load reads a configuration file. Missing optional sections fall back to
// the built-in defaults at use sites; Validate still applies.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Load("read config file", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Load("parse config file", err)
	}
	return &cfg, nil
}

// HiddenTable builds the hidden-field table: the override from the file if
// present, the built-in default otherwise.
func (c *Config) HiddenTable() *layout.HiddenTable {
	if len(c.Hidden) == 0 {
		return layout.DefaultHiddenTable()
	}
	entries := make(map[layout.Symbol][]string, len(c.Hidden))
	for class, names := range c.Hidden {
		entries[layout.Symbol(class)] = names
	}
	return layout.NewHiddenTable(entries)
}

// ValueTypeSymbols returns the configured value-type class symbols.
func (c *Config) ValueTypeSymbols() []layout.Symbol {
	out := make([]layout.Symbol, len(c.ValueTypes))
	for i, s := range c.ValueTypes {
		out[i] = layout.Symbol(s)
	}
	return out
}

// Validate checks the configuration eagerly: the hidden table must cover
// exactly the recognized class set, and every class definition must be
// well-formed with known field descriptors.
func (c *Config) Validate() error {
	if err := c.HiddenTable().Verify(); err != nil {
		return err
	}
	for _, cd := range c.Classes {
		if cd.Type == "" {
			return errors.InvalidInput(errors.PhaseConfig, "class definition without type symbol")
		}
		for _, fd := range cd.Fields {
			if fd.Name == "" {
				return errors.New(errors.PhaseConfig, errors.KindInvalidInput).
					Class(cd.Type).
					Detail("field without name").
					Build()
			}
			if _, err := fd.Kind(); err != nil {
				return err
			}
		}
	}
	return nil
}

// Kind resolves the field's JVM descriptor to a value kind.
func (f *FieldDef) Kind() (kind.Kind, error) {
	if f.Descriptor == "" {
		return kind.Illegal, errors.New(errors.PhaseConfig, errors.KindInvalidInput).
			Field(f.Name).
			Detail("field without descriptor").
			Build()
	}
	k := kind.FromDescriptor(f.Descriptor[0])
	if k == kind.Illegal {
		return kind.Illegal, errors.New(errors.PhaseConfig, errors.KindInvalidInput).
			Field(f.Name).
			Detail("unknown field descriptor %q", f.Descriptor).
			Build()
	}
	return k, nil
}

// Decls converts a class definition to linked field declarations.
func (c *ClassDef) Decls() ([]layout.FieldDecl, error) {
	decls := make([]layout.FieldDecl, 0, len(c.Fields))
	for _, fd := range c.Fields {
		k, err := fd.Kind()
		if err != nil {
			return nil, err
		}
		decls = append(decls, layout.FieldDecl{
			Name:   fd.Name,
			Kind:   k,
			Static: fd.Static,
		})
	}
	return decls, nil
}

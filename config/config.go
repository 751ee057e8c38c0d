// File: config.go
// Description: Loads parser tuning options from a TOML or YAML file,
//              auto-detected by extension. The configuration surface here
//              is small and fixed-shape — nesting depth, argument caps,
//              input size, strict-version enforcement — so Options is a typed struct
//              rather than the freeform dot-notation map the rest of this
//              codebase uses for larger service configs; the dual TOML/YAML
//              unmarshaling strategy is kept.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	lcierrors "github.com/rubicks/lci/errors"
)

// Format represents the configuration file format.
type Format int

const (
	FormatAuto Format = iota
	FormatTOML
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "auto"
	}
}

// Options holds the parser's tunable limits and feature toggles.
//
// MaxNestingDepth bounds recursive-descent depth for block and expression
// nesting, guarding against stack exhaustion on pathological input.
// MaxOperatorArgs bounds the operand count an n-ary operator (ALL OF, ANY
// OF, SMOOSH) may carry; an operand beyond it is a parse error.
// MaxInputSize bounds the byte length of a source file the lexer will
// accept; zero disables the check. StrictVersion makes the parser reject a
// HAI banner whose version token isn't in major.minor form; when false
// (the default) the version is recorded but not validated.
type Options struct {
	MaxNestingDepth int  `toml:"max_nesting_depth" yaml:"max_nesting_depth"`
	MaxOperatorArgs int  `toml:"max_operator_args" yaml:"max_operator_args"`
	MaxInputSize    int  `toml:"max_input_size" yaml:"max_input_size"`
	StrictVersion   bool `toml:"strict_version" yaml:"strict_version"`
}

// Default returns the Options a parser uses when no configuration file is
// supplied.
func Default() Options {
	return Options{
		MaxNestingDepth: 256,
		MaxOperatorArgs: 64,
		MaxInputSize:    1 << 20,
		StrictVersion:   false,
	}
}

// Load reads Options from filePath, auto-detecting TOML vs YAML by
// extension unless format is explicitly given.
func Load(filePath string, format Format) (Options, error) {
	opts := Default()

	content, err := os.ReadFile(filePath)
	if err != nil {
		return opts, lcierrors.Wrap(err, lcierrors.CodeInternal,
			lcierrors.Position{File: filePath}, "failed to read config file")
	}

	if format == FormatAuto {
		format = detectFormat(filePath)
	}

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(content, &opts); err != nil {
			return opts, lcierrors.Wrap(err, lcierrors.CodeInternal,
				lcierrors.Position{File: filePath}, "failed to parse YAML config")
		}
	default:
		if err := toml.Unmarshal(content, &opts); err != nil {
			return opts, lcierrors.Wrap(err, lcierrors.CodeInternal,
				lcierrors.Position{File: filePath}, "failed to parse TOML config")
		}
	}

	return opts, nil
}

func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatTOML
	}
}

// String renders opts as a one-line summary of every field.
func (o Options) String() string {
	return fmt.Sprintf("Options{max_nesting_depth: %d, max_operator_args: %d, max_input_size: %d, strict_version: %t}",
		o.MaxNestingDepth, o.MaxOperatorArgs, o.MaxInputSize, o.StrictVersion)
}

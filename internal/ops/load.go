package ops

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
	"tlog.app/go/errors"
)

// Format represents the operator table file format.
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

type tableFile struct {
	Operators map[string]int `toml:"operators" yaml:"operators"`
}

// LoadFile reads operator bindings from a TOML or YAML file and overlays
// them on the default table, so a file can both add operators and retune
// the stock ones. The format is detected from the file extension, TOML
// being the default.
//
//	[operators]
//	"|" = 5
//	"<" = 10
func LoadFile(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read operator table")
	}

	format := detectFormat(path)

	var file tableFile
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &file)
	default:
		err = toml.Unmarshal(data, &file)
	}
	if err != nil {
		return nil, errors.Wrap(err, "decode %v operator table %v", format, path)
	}

	table := Default()
	for op, prec := range file.Operators {
		if len(op) != 1 {
			return nil, errors.New("operator %q: must be a single character", op)
		}
		if prec <= 0 {
			return nil, errors.New("operator %q: precedence must be positive, got %d", op, prec)
		}
		table.Add(op[0], prec)
	}

	return table, nil
}

func detectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatTOML  = "toml"
	FormatYAML  = "yaml"
)

// Formats lists every value accepted by Encode and WriteTable callers.
var Formats = []string{FormatTable, FormatJSON, FormatTOML, FormatYAML}

// ValidFormat reports whether name is one of Formats, ignoring case.
func ValidFormat(name string) bool {
	name = strings.ToLower(name)
	for _, f := range Formats {
		if f == name {
			return true
		}
	}
	return false
}

// Encode writes m in a machine-readable format. The table format is handled
// by WriteTable.
func Encode(w io.Writer, format string, m Model) error {
	switch strings.ToLower(format) {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(m)
	case FormatTOML:
		return toml.NewEncoder(w).Encode(m)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(m); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unsupported output format %q", format)
}

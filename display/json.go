package display

import (
	"encoding/json"
	"os"
)

// MarshalJSON marshals JSON compactly when output is piped, pretty when
// a human is reading the terminal.
func MarshalJSON(v interface{}) ([]byte, error) {
	if stat, err := os.Stdout.Stat(); err == nil && stat.Mode()&os.ModeCharDevice == 0 {
		return json.Marshal(v)
	}
	return json.MarshalIndent(v, "", "  ")
}

package format

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// JSONParser reads a flat JSON object of key/value string pairs. The key
// becomes the original's context, the value its singular form. Metadata
// keys starting with "$" are skipped.
type JSONParser struct{}

func NewJSONParser() *JSONParser { return &JSONParser{} }

func (p *JSONParser) Format() string { return "json" }

func (p *JSONParser) Extensions() []string { return []string{"json"} }

func (p *JSONParser) Read(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	data = stripBOM(data)

	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	entries := make([]Entry, 0, len(m))
	for k, v := range m {
		if len(k) > 0 && k[0] == '$' {
			continue
		}
		s, ok := v.(string)
		if !ok {
			continue
		}
		entries = append(entries, Entry{Context: k, Singular: s})
	}
	return entries, nil
}

func stripBOM(b []byte) []byte {
	bom := []byte{0xEF, 0xBB, 0xBF}
	if len(b) >= 3 && bytes.Equal(b[:3], bom) {
		return b[3:]
	}
	return b
}

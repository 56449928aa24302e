package config

import (
	"bytes"

	"github.com/BurntSushi/toml"
)

// TOML adapts BurntSushi/toml to koanf.Parser.
type TOML struct{}

// TOMLParser returns a koanf parser for TOML config files.
func TOMLParser() *TOML {
	return &TOML{}
}

func (p *TOML) Unmarshal(b []byte) (map[string]any, error) {
	out := make(map[string]any)
	if _, err := toml.Decode(string(b), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (p *TOML) Marshal(m map[string]any) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(m); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

package caliber

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadFile reads a JSON array of profiles and merges it over the built-in
// arsenal. Definitions sharing a built-in name replace it. Every loaded
// profile is clamped, so the returned library is always simulation safe.
func LoadFile(path string) (map[string]*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read caliber definitions file: %w", err)
	}
	return load(data)
}

func load(data []byte) (map[string]*Profile, error) {
	var defs []Profile
	if err := json.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("failed to parse caliber definitions: %w", err)
	}

	library := Builtin()
	for i := range defs {
		p := defs[i]
		if p.Name == "" {
			return nil, fmt.Errorf("caliber definition %d has no name", i)
		}
		p.Clamp()
		library[p.Name] = &p
	}
	return library, nil
}

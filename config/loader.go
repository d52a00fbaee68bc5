package config

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// LocalConfigPath is checked when no explicit config path is given.
const LocalConfigPath = "configs/skyfolio.yaml"

// sections maps top-level YAML keys onto the config globals.
func sections() map[string]any {
	return map[string]any{
		"window":   C,
		"player":   &Player,
		"physics":  &Physics,
		"platform": &Platform,
		"planet":   &Planet,
		"bubble":   &Bubble,
		"camera":   &Camera,
		"spawn_fx": &SpawnFx,
		"overlay":  &Overlay,
		"debug":    &Debug,
	}
}

// LoadOverrides applies a YAML override file on top of the defaults.
// Search order: customPath -> ./configs/skyfolio.yaml -> defaults.
// It returns the path that was applied, or "" when running on defaults.
func LoadOverrides(customPath string) (string, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := ApplyOverrides(data); err != nil {
			return "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return customPath, nil
	}

	data, err := os.ReadFile(LocalConfigPath)
	if err != nil {
		return "", nil
	}
	if err := ApplyOverrides(data); err != nil {
		return "", fmt.Errorf("failed to parse config %s: %w", LocalConfigPath, err)
	}
	return LocalConfigPath, nil
}

// ApplyOverrides decodes each top-level section onto its global. Keys missing
// from the document keep their current values.
func ApplyOverrides(data []byte) error {
	var doc map[string]yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return err
	}

	targets := sections()
	keys := make([]string, 0, len(doc))
	for k := range doc {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		target, ok := targets[k]
		if !ok {
			return fmt.Errorf("unknown config section %q", k)
		}
		node := doc[k]
		if err := node.Decode(target); err != nil {
			return fmt.Errorf("section %s: %w", k, err)
		}
	}
	return nil
}

package difficulty

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/policy.yaml
var defaultPolicyYAML []byte

const policyFile = "policy.yaml"

// Load reads the difficulty policy.
// Search order: customPath -> ~/.mathplay/policy.yaml -> ./configs/policy.yaml -> embedded default.
// Only an unreadable or unparsable customPath is an error; every other source
// is skipped silently when missing or broken.
func Load(customPath string) (Policy, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultPolicy(), fmt.Errorf("failed to read policy %s: %w", customPath, err)
		}
		p, err := Parse(data)
		if err != nil {
			return DefaultPolicy(), fmt.Errorf("failed to parse policy %s: %w", customPath, err)
		}
		return p, nil
	}

	if userPath := userConfigPath(policyFile); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if p, err := Parse(data); err == nil {
				return p, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", policyFile)); err == nil {
		if p, err := Parse(data); err == nil {
			return p, nil
		}
	}

	p, err := Parse(defaultPolicyYAML)
	if err != nil {
		return DefaultPolicy(), nil
	}
	return p, nil
}

// Parse decodes a YAML policy on top of the defaults and repairs invalid values.
func Parse(data []byte) (Policy, error) {
	p := DefaultPolicy()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return DefaultPolicy(), err
	}
	p.normalize()
	return p, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mathplay", filename)
}

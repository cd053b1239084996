package cobrax

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// DumpConfig renders the value as YAML.
func DumpConfig(src any) (string, error) {
	data, err := yaml.Marshal(src)
	if err != nil {
		return "", fmt.Errorf("can't render config: %w", err)
	}
	return string(data), nil
}

package analytics

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadWeights reads engagement score weights from a YAML file. A missing
// file is not an error: the defaults apply.
func LoadWeights(path string) (Weights, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultWeights, nil
		}
		return DefaultWeights, fmt.Errorf("could not read weights file: %w", err)
	}

	w := DefaultWeights
	if err := yaml.Unmarshal(data, &w); err != nil {
		return DefaultWeights, fmt.Errorf("could not parse weights file: %w", err)
	}

	sum := w.Attention + w.Posture + w.BlinkRate
	if sum < 0.99 || sum > 1.01 {
		return DefaultWeights, fmt.Errorf("engagement weights must sum to 1, got %.2f", sum)
	}
	return w, nil
}

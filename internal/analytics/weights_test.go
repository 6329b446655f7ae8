package analytics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeWeightsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "weights.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadWeightsMissingFileUsesDefaults(t *testing.T) {
	w, err := LoadWeights(filepath.Join(t.TempDir(), "nope.yaml"))

	require.NoError(t, err)
	assert.Equal(t, DefaultWeights, w)
}

func TestLoadWeightsValidFile(t *testing.T) {
	path := writeWeightsFile(t, "attention: 0.6\nposture: 0.2\nblink_rate: 0.2\n")

	w, err := LoadWeights(path)

	require.NoError(t, err)
	assert.InDelta(t, 0.6, w.Attention, 0.001)
	assert.InDelta(t, 0.2, w.Posture, 0.001)
	assert.InDelta(t, 0.2, w.BlinkRate, 0.001)
}

func TestLoadWeightsPartialFileKeepsDefaults(t *testing.T) {
	// Only attention is overridden; the others keep their defaults and the
	// sum check still passes.
	path := writeWeightsFile(t, "attention: 0.5\n")

	w, err := LoadWeights(path)

	require.NoError(t, err)
	assert.InDelta(t, DefaultWeights.Posture, w.Posture, 0.001)
}

func TestLoadWeightsBadSum(t *testing.T) {
	path := writeWeightsFile(t, "attention: 0.9\nposture: 0.9\nblink_rate: 0.9\n")

	w, err := LoadWeights(path)

	assert.Error(t, err)
	assert.Equal(t, DefaultWeights, w)
}

func TestLoadWeightsMalformedYAML(t *testing.T) {
	path := writeWeightsFile(t, "attention: [not a number\n")

	_, err := LoadWeights(path)

	assert.Error(t, err)
}

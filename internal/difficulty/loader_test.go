package difficulty

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_EmbeddedMatchesDefault(t *testing.T) {
	p, err := Parse(defaultPolicyYAML)
	require.NoError(t, err)
	assert.Equal(t, DefaultPolicy(), p)
}

func TestParse_PartialOverride(t *testing.T) {
	p, err := Parse([]byte("tower:\n  easy:\n    target: {min: 3, max: 6}\n    max_block: 3\nstreak_threshold: 5\n"))
	require.NoError(t, err)

	assert.Equal(t, Range{Min: 3, Max: 6}, p.TowerRange(Easy))
	assert.Equal(t, 3, p.TowerPreset(Easy).MaxBlock)
	assert.Equal(t, Range{Min: 11, Max: 20}, p.TowerRange(Medium))
	assert.Equal(t, Easy, p.FromStreak(5))
	assert.Equal(t, Medium, p.FromStreak(6))
}

func TestParse_RepairsInvalidValues(t *testing.T) {
	p, err := Parse([]byte("tower:\n  hard:\n    target: {min: 9, max: 2}\ngrade_ranges:\n  0: 99\n  2: -4\ndefault_range: 0\nscale:\n  medium: 0.5\n"))
	require.NoError(t, err)

	def := DefaultPolicy()
	assert.Equal(t, def.TowerRange(Hard), p.TowerRange(Hard))
	assert.Equal(t, 10, p.GradeRange(1))
	assert.Equal(t, 10, p.GradeRange(2), "invalid grade 2 entry drops back to grade 1")
	assert.Equal(t, 10, p.DefaultRange)
	assert.Equal(t, 1.5, p.Scale[Medium])
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse([]byte("tower: [not, a, map"))
	assert.Error(t, err)
}

func TestLoad_CustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.yaml")
	require.NoError(t, os.WriteFile(path, []byte("default_range: 12\n"), 0o600))

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 12, p.GradeRange(0))
}

func TestLoad_MissingCustomPath(t *testing.T) {
	p, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
	assert.Equal(t, DefaultPolicy(), p)
}

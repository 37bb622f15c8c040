// ABOUTME: Tests for named filter preset persistence
// ABOUTME: Covers append order, delete-by-index, and load-overwrite semantics
package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kindredhq/kindred/store"
)

func TestPresetsEmptyByDefault(t *testing.T) {
	p := NewPresets(store.NewMemoryKV())
	presets, err := p.List()
	require.NoError(t, err)
	assert.Empty(t, presets)
}

func TestSaveAppendsInOrder(t *testing.T) {
	p := NewPresets(store.NewMemoryKV())

	_, err := p.Save("close friends", Filter{MinStrength: 4})
	require.NoError(t, err)
	_, err = p.Save("tech sector", Filter{Sector: "technology", LastContactBucket: Bucket60})
	require.NoError(t, err)
	// Duplicate names are allowed.
	_, err = p.Save("close friends", Filter{MinStrength: 5})
	require.NoError(t, err)

	presets, err := p.List()
	require.NoError(t, err)
	require.Len(t, presets, 3)
	assert.Equal(t, "close friends", presets[0].Name)
	assert.Equal(t, "tech sector", presets[1].Name)
	assert.Equal(t, 5, presets[2].MinStrength)
	assert.NotEqual(t, presets[0].ID, presets[2].ID)
}

func TestDeleteByIndexPreservesOrder(t *testing.T) {
	p := NewPresets(store.NewMemoryKV())
	for _, name := range []string{"a", "b", "c", "d"} {
		_, err := p.Save(name, Filter{})
		require.NoError(t, err)
	}

	require.NoError(t, p.Delete(1))

	presets, err := p.List()
	require.NoError(t, err)
	require.Len(t, presets, 3)
	assert.Equal(t, "a", presets[0].Name)
	assert.Equal(t, "c", presets[1].Name)
	assert.Equal(t, "d", presets[2].Name)

	assert.Error(t, p.Delete(3))
	assert.Error(t, p.Delete(-1))
}

func TestPresetCapturesOnlyFilterParams(t *testing.T) {
	p := NewPresets(store.NewMemoryKV())
	preset, err := p.Save("vc follow", Filter{
		Query:             "should not be captured",
		MinStrength:       3,
		Sector:            "venture",
		LastContactBucket: BucketOverdue,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, preset.MinStrength)
	assert.Equal(t, "venture", preset.Sector)
	assert.Equal(t, BucketOverdue, preset.LastContactBucket)

	// Loading overwrites the three parameters but never the free text.
	current := Filter{Query: "grace", MinStrength: 5}
	loaded := current.WithPreset(preset)
	assert.Equal(t, "grace", loaded.Query)
	assert.Equal(t, 3, loaded.MinStrength)
	assert.Equal(t, "venture", loaded.Sector)
	assert.Equal(t, BucketOverdue, loaded.LastContactBucket)
}

// ABOUTME: Named filter presets persisted as a JSON list in local storage
// ABOUTME: Presets capture the three filter parameters, never the free text
package engine

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/kindredhq/kindred/models"
	"github.com/kindredhq/kindred/store"
)

// Presets manages the persisted preset list. Names are not required to be
// unique; deletion is by positional index within the stored list.
type Presets struct {
	kv store.KV
}

func NewPresets(kv store.KV) *Presets {
	return &Presets{kv: kv}
}

// List returns all saved presets in storage order. An absent key means an
// empty list.
func (p *Presets) List() ([]models.FilterPreset, error) {
	raw, err := p.kv.Get(store.KeyFilterPresets)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load presets: %w", err)
	}
	var presets []models.FilterPreset
	if err := json.Unmarshal(raw, &presets); err != nil {
		return nil, fmt.Errorf("failed to load presets: %w", err)
	}
	return presets, nil
}

// Save appends a named snapshot of the filter's three parameters.
func (p *Presets) Save(name string, f Filter) (models.FilterPreset, error) {
	preset := models.FilterPreset{
		ID:                ulid.Make().String(),
		Name:              name,
		MinStrength:       f.MinStrength,
		Sector:            f.Sector,
		LastContactBucket: f.LastContactBucket,
		CreatedAt:         time.Now().UTC(),
	}
	presets, err := p.List()
	if err != nil {
		return models.FilterPreset{}, err
	}
	presets = append(presets, preset)
	if err := p.write(presets); err != nil {
		return models.FilterPreset{}, err
	}
	return preset, nil
}

// Delete removes the preset at index, preserving the relative order of
// the rest.
func (p *Presets) Delete(index int) error {
	presets, err := p.List()
	if err != nil {
		return err
	}
	if index < 0 || index >= len(presets) {
		return fmt.Errorf("preset index %d out of range", index)
	}
	presets = append(presets[:index], presets[index+1:]...)
	return p.write(presets)
}

func (p *Presets) write(presets []models.FilterPreset) error {
	raw, err := json.Marshal(presets)
	if err != nil {
		return fmt.Errorf("failed to save presets: %w", err)
	}
	if err := p.kv.Put(store.KeyFilterPresets, raw); err != nil {
		return fmt.Errorf("failed to save presets: %w", err)
	}
	return nil
}

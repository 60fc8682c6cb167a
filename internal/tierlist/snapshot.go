package tierlist

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/meur/tierboard/internal/models"
)

// ErrInvalidSnapshot is returned for snapshots that fail validation
var ErrInvalidSnapshot = errors.New("invalid snapshot")

// ParseSnapshot decodes and validates a persisted snapshot. The value must be
// an object with a tiers array, a non-null items object and an
// unrankedItemIds array, and the decoded state must pass Check.
func ParseSnapshot(raw []byte) (models.TierListState, error) {
	var shape map[string]json.RawMessage
	if err := json.Unmarshal(raw, &shape); err != nil || shape == nil {
		return models.TierListState{}, fmt.Errorf("%w: not an object", ErrInvalidSnapshot)
	}
	if !isJSONKind(shape["tiers"], '[') {
		return models.TierListState{}, fmt.Errorf("%w: tiers is not an array", ErrInvalidSnapshot)
	}
	if !isJSONKind(shape["items"], '{') {
		return models.TierListState{}, fmt.Errorf("%w: items is not an object", ErrInvalidSnapshot)
	}
	if !isJSONKind(shape["unrankedItemIds"], '[') {
		return models.TierListState{}, fmt.Errorf("%w: unrankedItemIds is not an array", ErrInvalidSnapshot)
	}

	var state models.TierListState
	if err := json.Unmarshal(raw, &state); err != nil {
		return models.TierListState{}, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	normalize(&state)
	if err := Check(state); err != nil {
		return models.TierListState{}, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	return state, nil
}

// MarshalSnapshot encodes a state in the persisted snapshot format
func MarshalSnapshot(state models.TierListState) ([]byte, error) {
	return json.Marshal(state.Clone())
}

func isJSONKind(raw json.RawMessage, open byte) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && raw[0] == open
}

// normalize replaces nil lists so they encode as [] rather than null
func normalize(state *models.TierListState) {
	if state.Items == nil {
		state.Items = map[string]models.Item{}
	}
	if state.UnrankedItemIDs == nil {
		state.UnrankedItemIDs = []string{}
	}
	if state.Tiers == nil {
		state.Tiers = []models.Tier{}
	}
	for i := range state.Tiers {
		if state.Tiers[i].ItemIDs == nil {
			state.Tiers[i].ItemIDs = []string{}
		}
	}
}

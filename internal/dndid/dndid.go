// Package dndid maps container identities to the drop keys used by the drag
// surface. Drop keys never collide with item ids because item ids are uuids
// or seed ids without the "container:" prefix.
package dndid

import (
	"strings"

	"github.com/meur/tierboard/internal/models"
)

// UnrankedDropID is the reserved drop key of the unranked pool
const UnrankedDropID = "container:unranked"

const tierDropPrefix = "container:tier:"

// TierDropID returns the drop key of a tier
func TierDropID(tierID string) string {
	return tierDropPrefix + tierID
}

// ParseTierDropID recovers the tier id from a drop key.
// It returns "", false for keys that are not tier drop keys.
func ParseTierDropID(key string) (string, bool) {
	tierID, ok := strings.CutPrefix(key, tierDropPrefix)
	if !ok || tierID == "" {
		return "", false
	}
	return tierID, true
}

// DropID returns the drop key of any container
func DropID(c models.ContainerID) string {
	if c == models.UnrankedContainer {
		return UnrankedDropID
	}
	return TierDropID(string(c))
}

// ParseDropID recovers a container identity from a drop key without checking
// that the tier exists.
func ParseDropID(key string) (models.ContainerID, bool) {
	if key == UnrankedDropID {
		return models.UnrankedContainer, true
	}
	if tierID, ok := ParseTierDropID(key); ok {
		return models.TierContainer(tierID), true
	}
	return "", false
}

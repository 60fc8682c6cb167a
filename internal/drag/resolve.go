package drag

import (
	"github.com/meur/tierboard/internal/dndid"
	"github.com/meur/tierboard/internal/models"
	"github.com/meur/tierboard/internal/tierlist"
)

// TargetKind tags what a hovered key refers to
type TargetKind int

const (
	TargetUnknown TargetKind = iota
	TargetItem
	TargetContainer
)

func (k TargetKind) String() string {
	switch k {
	case TargetItem:
		return "item"
	case TargetContainer:
		return "container"
	default:
		return "unknown"
	}
}

// Target is the resolved meaning of a hovered key
type Target struct {
	Kind      TargetKind
	ID        string             // Hovered key
	Container models.ContainerID // Container holding the item, or the container itself
}

// Resolve looks up a hovered key: an item yields its container, a reserved
// drop key of an existing container yields that container.
func Resolve(state models.TierListState, key string) Target {
	if c, ok := tierlist.ContainerOf(state, key); ok {
		return Target{Kind: TargetItem, ID: key, Container: c}
	}
	if c, ok := dndid.ParseDropID(key); ok && tierlist.HasContainer(state, c) {
		return Target{Kind: TargetContainer, ID: key, Container: c}
	}
	return Target{Kind: TargetUnknown, ID: key}
}

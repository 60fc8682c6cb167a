package tierlist

import (
	"github.com/google/uuid"

	"github.com/meur/tierboard/internal/models"
)

// Action is a state transition that can be dispatched to a Board
type Action interface {
	apply(models.TierListState) (models.TierListState, bool)
}

// AddItem appends a new item to the unranked pool
type AddItem struct {
	Content string
	Image   string
}

// DeleteItem removes an item everywhere
type DeleteItem struct {
	ItemID string
}

// MoveItem relocates an item to the end of another container
type MoveItem struct {
	ItemID string
	From   models.ContainerID
	To     models.ContainerID
}

// ReorderItem moves an item to another item's slot in the same container
type ReorderItem struct {
	ItemID string
	OverID string
}

// LoadState replaces the whole state
type LoadState struct {
	State models.TierListState
}

func (a AddItem) apply(s models.TierListState) (models.TierListState, bool) {
	return add(s, a.Content, a.Image, uuid.NewString)
}

func (a DeleteItem) apply(s models.TierListState) (models.TierListState, bool) {
	return remove(s, a.ItemID)
}

func (a MoveItem) apply(s models.TierListState) (models.TierListState, bool) {
	return move(s, a.ItemID, a.From, a.To)
}

func (a ReorderItem) apply(s models.TierListState) (models.TierListState, bool) {
	return reorder(s, a.ItemID, a.OverID)
}

func (a LoadState) apply(models.TierListState) (models.TierListState, bool) {
	return Load(a.State.Clone()), true
}

// Reduce applies an action to a state. A nil action is a no-op.
func Reduce(state models.TierListState, a Action) models.TierListState {
	if a == nil {
		return state
	}
	next, _ := a.apply(state)
	return next
}

package tierlist

import (
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/meur/tierboard/internal/models"
)

// maxIDAttempts bounds the search for an unused item id
const maxIDAttempts = 8

// Add appends a new item to the end of the unranked pool. It is a no-op when
// both content and image are empty.
func Add(state models.TierListState, content, image string) models.TierListState {
	next, _ := add(state, content, image, uuid.NewString)
	return next
}

// Delete removes an item from the dictionary and from every list.
func Delete(state models.TierListState, itemID string) models.TierListState {
	next, _ := remove(state, itemID)
	return next
}

// Move relocates an item from one container to the end of another.
// Move does not preserve position: moving back appends to the tail.
func Move(state models.TierListState, itemID string, from, to models.ContainerID) models.TierListState {
	next, _ := move(state, itemID, from, to)
	return next
}

// Reorder puts itemID at overID's slot within their shared container.
func Reorder(state models.TierListState, itemID, overID string) models.TierListState {
	next, _ := reorder(state, itemID, overID)
	return next
}

// Load replaces the state wholesale.
func Load(snapshot models.TierListState) models.TierListState {
	return snapshot
}

// ContainerOf returns the container currently holding itemID.
func ContainerOf(state models.TierListState, itemID string) (models.ContainerID, bool) {
	if slices.Contains(state.UnrankedItemIDs, itemID) {
		return models.UnrankedContainer, true
	}
	for _, t := range state.Tiers {
		if slices.Contains(t.ItemIDs, itemID) {
			return models.TierContainer(t.ID), true
		}
	}
	return "", false
}

// HasContainer reports whether c names the unranked pool or an existing tier.
func HasContainer(state models.TierListState, c models.ContainerID) bool {
	_, ok := itemIDs(state, c)
	return ok
}

func add(state models.TierListState, content, image string, newID func() string) (models.TierListState, bool) {
	content = strings.TrimSpace(content)
	image = strings.TrimSpace(image)
	if content == "" && image == "" {
		return state, false
	}

	var id string
	for i := 0; i < maxIDAttempts; i++ {
		candidate := newID()
		if _, taken := state.Items[candidate]; candidate != "" && !taken {
			id = candidate
			break
		}
	}
	if id == "" {
		return state, false
	}

	item := models.Item{ID: id, Content: content}
	if models.IsInlineImage(image) {
		item.ImageBase64 = image
	} else {
		item.ImageURL = image
	}

	next := state.Clone()
	next.Items[id] = item
	next.UnrankedItemIDs = append(next.UnrankedItemIDs, id)
	return next, true
}

func remove(state models.TierListState, itemID string) (models.TierListState, bool) {
	if _, ok := state.Items[itemID]; !ok {
		return state, false
	}

	next := state.Clone()
	delete(next.Items, itemID)
	next.UnrankedItemIDs = without(next.UnrankedItemIDs, itemID)
	for i := range next.Tiers {
		next.Tiers[i].ItemIDs = without(next.Tiers[i].ItemIDs, itemID)
	}
	return next, true
}

func move(state models.TierListState, itemID string, from, to models.ContainerID) (models.TierListState, bool) {
	if from == to {
		return state, false
	}
	if _, ok := state.Items[itemID]; !ok {
		return state, false
	}
	source, ok := itemIDs(state, from)
	if !ok || !slices.Contains(source, itemID) {
		return state, false
	}
	if !HasContainer(state, to) {
		return state, false
	}

	next := state.Clone()
	setItemIDs(&next, from, without(source, itemID))
	target, _ := itemIDs(next, to)
	if !slices.Contains(target, itemID) {
		setItemIDs(&next, to, append(target, itemID))
	}
	return next, true
}

func reorder(state models.TierListState, itemID, overID string) (models.TierListState, bool) {
	if itemID == overID {
		return state, false
	}
	if _, ok := state.Items[itemID]; !ok {
		return state, false
	}
	if _, ok := state.Items[overID]; !ok {
		return state, false
	}
	c, ok := ContainerOf(state, itemID)
	if !ok {
		return state, false
	}
	if overContainer, ok := ContainerOf(state, overID); !ok || overContainer != c {
		return state, false
	}

	ids, _ := itemIDs(state, c)
	next := state.Clone()
	setItemIDs(&next, c, arrayMove(ids, slices.Index(ids, itemID), slices.Index(ids, overID)))
	return next, true
}

// arrayMove removes the element at from and inserts it at to.
func arrayMove(ids []string, from, to int) []string {
	out := slices.Clone(ids)
	moved := out[from]
	out = slices.Delete(out, from, from+1)
	return slices.Insert(out, to, moved)
}

func itemIDs(state models.TierListState, c models.ContainerID) ([]string, bool) {
	if c == models.UnrankedContainer {
		return state.UnrankedItemIDs, true
	}
	if i := state.TierIndex(string(c)); i >= 0 {
		return state.Tiers[i].ItemIDs, true
	}
	return nil, false
}

// setItemIDs assigns the list of c; state must already be a private copy.
func setItemIDs(state *models.TierListState, c models.ContainerID, ids []string) {
	if c == models.UnrankedContainer {
		state.UnrankedItemIDs = ids
		return
	}
	if i := state.TierIndex(string(c)); i >= 0 {
		state.Tiers[i].ItemIDs = ids
	}
}

func without(ids []string, itemID string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != itemID {
			out = append(out, id)
		}
	}
	return out
}

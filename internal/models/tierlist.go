package models

import (
	"time"
)

// ContainerID identifies a droppable container: the unranked pool or a tier
type ContainerID string

// UnrankedContainer is the container identity of the unranked pool
const UnrankedContainer ContainerID = "unranked"

// TierContainer returns the container identity of a tier
func TierContainer(tierID string) ContainerID {
	return ContainerID(tierID)
}

// Tier represents a single tier in a tier list
type Tier struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Color   string   `json:"color"`
	ItemIDs []string `json:"itemIds"` // Item IDs in order
}

// TierListState is the normalized state of a tier list
type TierListState struct {
	Tiers           []Tier          `json:"tiers"`
	Items           map[string]Item `json:"items"`
	UnrankedItemIDs []string        `json:"unrankedItemIds"`
}

// Clone returns a deep copy of the state
func (s TierListState) Clone() TierListState {
	out := TierListState{
		Tiers:           make([]Tier, len(s.Tiers)),
		Items:           make(map[string]Item, len(s.Items)),
		UnrankedItemIDs: append([]string{}, s.UnrankedItemIDs...),
	}
	for i, t := range s.Tiers {
		t.ItemIDs = append([]string{}, t.ItemIDs...)
		out.Tiers[i] = t
	}
	for id, item := range s.Items {
		out.Items[id] = item
	}
	return out
}

// TierIndex returns the position of a tier, or -1
func (s TierListState) TierIndex(tierID string) int {
	for i, t := range s.Tiers {
		if t.ID == tierID {
			return i
		}
	}
	return -1
}

// ShareRecord is a published, immutable snapshot of a tier list
type ShareRecord struct {
	ID        string        `json:"id"`
	Data      TierListState `json:"data"`
	CreatedAt time.Time     `json:"created_at"`
}

// DefaultTiers returns the seed tier configuration
func DefaultTiers() []Tier {
	return []Tier{
		{ID: "1", Name: "夯", Color: "#e83426", ItemIDs: []string{}},
		{ID: "2", Name: "顶级", Color: "#f3c645", ItemIDs: []string{}},
		{ID: "3", Name: "人上人", Color: "#fffa00", ItemIDs: []string{}},
		{ID: "4", Name: "NPC", Color: "#faefcf", ItemIDs: []string{}},
		{ID: "5", Name: "拉完了", Color: "#ffffff", ItemIDs: []string{}},
	}
}

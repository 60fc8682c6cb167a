package tierlist

import (
	"fmt"

	"github.com/meur/tierboard/internal/models"
)

// Check verifies the global invariant: every item id appears in exactly one
// container list, lists hold no unknown ids, and tier ids are unique.
func Check(state models.TierListState) error {
	seen := make(map[string]models.ContainerID, len(state.Items))

	visit := func(c models.ContainerID, ids []string) error {
		for _, id := range ids {
			if _, ok := state.Items[id]; !ok {
				return fmt.Errorf("container %q references unknown item %q", c, id)
			}
			if prev, dup := seen[id]; dup {
				return fmt.Errorf("item %q appears in both %q and %q", id, prev, c)
			}
			seen[id] = c
		}
		return nil
	}

	if err := visit(models.UnrankedContainer, state.UnrankedItemIDs); err != nil {
		return err
	}
	tierIDs := make(map[string]bool, len(state.Tiers))
	for _, t := range state.Tiers {
		if t.ID == "" || models.ContainerID(t.ID) == models.UnrankedContainer {
			return fmt.Errorf("invalid tier id %q", t.ID)
		}
		if tierIDs[t.ID] {
			return fmt.Errorf("duplicate tier id %q", t.ID)
		}
		tierIDs[t.ID] = true
		if err := visit(models.TierContainer(t.ID), t.ItemIDs); err != nil {
			return err
		}
	}

	for id, item := range state.Items {
		if item.ID != id {
			return fmt.Errorf("item key %q holds item %q", id, item.ID)
		}
		if _, ok := seen[id]; !ok {
			return fmt.Errorf("item %q is not in any container", id)
		}
	}
	return nil
}

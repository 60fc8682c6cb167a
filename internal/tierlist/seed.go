package tierlist

import "github.com/meur/tierboard/internal/models"

var seedItems = []models.Item{
	{ID: "item1", Content: "高松燈"},
	{ID: "item2", Content: "千早愛音"},
	{ID: "item3", Content: "長崎爽世"},
	{ID: "item4", Content: "要樂奈"},
	{ID: "item5", Content: "椎名立希"},
	{ID: "item6", Content: "三角初華"},
	{ID: "item7", Content: "豐川祥子"},
	{ID: "item8", Content: "八幡海鈴"},
	{ID: "item9", Content: "若葉睦"},
	{ID: "item10", Content: "祐天寺若麥"},
}

// DefaultState returns the seed state: five empty tiers except tier "1",
// which holds item4, and the remaining nine items unranked.
func DefaultState() models.TierListState {
	state := models.TierListState{
		Tiers:           models.DefaultTiers(),
		Items:           make(map[string]models.Item, len(seedItems)),
		UnrankedItemIDs: []string{},
	}
	for _, item := range seedItems {
		state.Items[item.ID] = item
		if item.ID == "item4" {
			state.Tiers[0].ItemIDs = append(state.Tiers[0].ItemIDs, item.ID)
			continue
		}
		state.UnrankedItemIDs = append(state.UnrankedItemIDs, item.ID)
	}
	return state
}

// EmptyState returns the seed tiers with no items
func EmptyState() models.TierListState {
	return models.TierListState{
		Tiers:           models.DefaultTiers(),
		Items:           map[string]models.Item{},
		UnrankedItemIDs: []string{},
	}
}

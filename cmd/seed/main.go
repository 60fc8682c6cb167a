package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/meur/tierboard/internal/storage"
	"github.com/meur/tierboard/internal/tierlist"
)

// seedItem is one entry of an items file
type seedItem struct {
	Content string `json:"content"`
	Image   string `json:"image,omitempty"`
}

func main() {
	dbPath := flag.String("db", "./tierboard.db", "SQLite database path")
	itemsPath := flag.String("items", "", "Optional JSON file of items to import")
	empty := flag.Bool("empty", false, "Start from empty tiers instead of the default items")
	flag.Parse()

	store, err := storage.New(*dbPath)
	if err != nil {
		slog.Error("Failed to open database", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	state := tierlist.DefaultState()
	if *empty {
		state = tierlist.EmptyState()
	}

	if *itemsPath != "" {
		items, err := readItems(*itemsPath)
		if err != nil {
			slog.Error("Failed to read items", "path", *itemsPath, "error", err)
			os.Exit(1)
		}
		before := len(state.Items)
		for _, item := range items {
			state = tierlist.Add(state, item.Content, item.Image)
		}
		fmt.Printf("Imported %d of %d items from %s\n", len(state.Items)-before, len(items), *itemsPath)
	}

	raw, err := tierlist.MarshalSnapshot(state)
	if err != nil {
		slog.Error("Failed to encode snapshot", "error", err)
		os.Exit(1)
	}
	if err := store.WriteSlot(tierlist.StorageKey, raw); err != nil {
		slog.Error("Failed to write snapshot", "error", err)
		os.Exit(1)
	}

	fmt.Printf("✓ Seeded %d tiers and %d items into %s\n", len(state.Tiers), len(state.Items), *dbPath)
}

// readItems accepts either [{"content": ..., "image": ...}] or ["name", ...]
func readItems(path string) ([]seedItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var items []seedItem
	if err := json.Unmarshal(data, &items); err == nil {
		return items, nil
	}

	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return nil, fmt.Errorf("expected an array of items or names: %w", err)
	}
	items = make([]seedItem, 0, len(names))
	for _, name := range names {
		items = append(items, seedItem{Content: name})
	}
	return items, nil
}

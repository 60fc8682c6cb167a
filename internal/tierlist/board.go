package tierlist

import (
	"log/slog"
	"sync"

	"github.com/meur/tierboard/internal/models"
)

// StorageKey is the key of the local slot holding the snapshot
const StorageKey = "tier-list-state"

// Slot is a local key-value slot. ReadSlot returns nil, nil when the key is
// absent.
type Slot interface {
	ReadSlot(key string) ([]byte, error)
	WriteSlot(key string, value []byte) error
}

// Board owns the tier list state for one editor session
type Board struct {
	mu      sync.Mutex
	state   models.TierListState
	slot    Slot
	logger  *slog.Logger
	gesture bool
	dirty   bool
}

// Open builds a Board from the snapshot in slot, falling back to the default
// seed when the slot is empty, unreadable or holds an invalid snapshot.
// A nil slot keeps the board in memory only.
func Open(slot Slot, logger *slog.Logger) *Board {
	if logger == nil {
		logger = slog.Default()
	}
	b := &Board{slot: slot, logger: logger, state: DefaultState()}
	if slot == nil {
		return b
	}

	raw, err := slot.ReadSlot(StorageKey)
	switch {
	case err != nil:
		logger.Warn("failed to read snapshot, using default seed", "error", err)
	case raw == nil:
		logger.Info("no snapshot found, using default seed")
	default:
		state, err := ParseSnapshot(raw)
		if err != nil {
			logger.Warn("discarding persisted snapshot", "error", err)
			break
		}
		b.state = state
	}
	return b
}

// State returns a copy of the current state
func (b *Board) State() models.TierListState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state.Clone()
}

// Dispatch applies an action and writes the result to the slot right away,
// including any placement still pending from a live gesture.
func (b *Board) Dispatch(a Action) models.TierListState {
	return b.dispatch(a, false)
}

// DispatchLive applies an action on behalf of a live gesture. Its write is
// held until EndGesture when a gesture is open.
func (b *Board) DispatchLive(a Action) models.TierListState {
	return b.dispatch(a, true)
}

func (b *Board) dispatch(a Action, live bool) models.TierListState {
	b.mu.Lock()
	defer b.mu.Unlock()

	if a == nil {
		return b.state.Clone()
	}
	next, changed := a.apply(b.state)
	if changed {
		b.state = next
		b.logger.Debug("state updated", "action", actionName(a), "live", live)
		if live && b.gesture {
			b.dirty = true
		} else {
			b.persistLocked()
		}
	}
	return b.state.Clone()
}

// Reset replaces the state with the default seed
func (b *Board) Reset() models.TierListState {
	return b.Dispatch(LoadState{State: DefaultState()})
}

// BeginGesture holds writes of DispatchLive until EndGesture
func (b *Board) BeginGesture() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.gesture = true
}

// EndGesture flushes any change made during the gesture
func (b *Board) EndGesture() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.gesture = false
	if b.dirty {
		b.persistLocked()
	}
}

// Flush writes pending gesture changes without ending the gesture
func (b *Board) Flush() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.dirty {
		b.persistLocked()
	}
}

func (b *Board) persistLocked() {
	b.dirty = false
	if b.slot == nil {
		return
	}

	raw, err := MarshalSnapshot(b.state)
	if err != nil {
		b.logger.Warn("failed to encode snapshot", "error", err)
		return
	}
	if err := b.slot.WriteSlot(StorageKey, raw); err != nil {
		b.logger.Warn("failed to persist snapshot", "error", err)
	}
}

func actionName(a Action) string {
	switch a.(type) {
	case AddItem:
		return "add"
	case DeleteItem:
		return "delete"
	case MoveItem:
		return "move"
	case ReorderItem:
		return "reorder"
	case LoadState:
		return "load"
	default:
		return "unknown"
	}
}

// Package drag turns pointer gestures into tier list transitions.
//
// A Coordinator tracks at most one gesture. While dragging, each hover event
// is resolved to a target container; crossing into another container moves
// the item there immediately, hovering a sibling reorders it. Targets that do
// not resolve are ignored so the gesture can continue.
package drag

import (
	"log/slog"
	"sync"

	"github.com/meur/tierboard/internal/models"
	"github.com/meur/tierboard/internal/tierlist"
)

// Phase is the gesture state
type Phase int

const (
	Idle Phase = iota
	Dragging
)

func (p Phase) String() string {
	if p == Dragging {
		return "dragging"
	}
	return "idle"
}

// Dispatcher is the state container driven by the coordinator
type Dispatcher interface {
	State() models.TierListState
	DispatchLive(tierlist.Action) models.TierListState
	BeginGesture()
	EndGesture()
}

// Event is a gesture event
type Event interface {
	isEvent()
}

// Start begins a gesture on an item
type Start struct {
	ActiveID string
}

// Hover reports the key currently under the pointer
type Hover struct {
	OverID string
}

// End finishes the gesture with a drop
type End struct{}

// Cancel aborts the gesture
type Cancel struct{}

func (Start) isEvent()  {}
func (Hover) isEvent()  {}
func (End) isEvent()    {}
func (Cancel) isEvent() {}

// Coordinator is the Idle/Dragging state machine
type Coordinator struct {
	mu       sync.Mutex
	board    Dispatcher
	logger   *slog.Logger
	phase    Phase
	activeID string
	source   models.ContainerID
}

// NewCoordinator creates an idle coordinator bound to board
func NewCoordinator(board Dispatcher, logger *slog.Logger) *Coordinator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Coordinator{board: board, logger: logger}
}

// Handle processes one event. Events are handled strictly one at a time and
// each dispatches at most one transition.
func (c *Coordinator) Handle(ev Event) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch ev := ev.(type) {
	case Start:
		c.start(ev.ActiveID)
	case Hover:
		c.hover(ev.OverID)
	case End:
		c.finish("drop")
	case Cancel:
		c.finish("cancel")
	}
}

// HoverAt detects the droppable under the pointer and handles it as a hover.
// It reports whether a target was detected.
func (c *Coordinator) HoverAt(p models.Point, droppables []models.Droppable) bool {
	key, ok := DetectTarget(p, droppables)
	if !ok {
		return false
	}
	c.Handle(Hover{OverID: key})
	return true
}

// Status returns the phase, the active item and its current container
func (c *Coordinator) Status() (Phase, string, models.ContainerID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase, c.activeID, c.source
}

func (c *Coordinator) start(activeID string) {
	if c.phase == Dragging {
		c.finish("restart")
	}

	c.phase = Dragging
	c.activeID = activeID
	c.source, _ = tierlist.ContainerOf(c.board.State(), activeID)
	c.board.BeginGesture()
	c.logger.Debug("drag started", "active", activeID, "source", c.source)
}

func (c *Coordinator) hover(overID string) {
	if c.phase != Dragging || overID == "" || overID == c.activeID {
		return
	}

	state := c.board.State()
	source, ok := tierlist.ContainerOf(state, c.activeID)
	if !ok {
		return
	}
	c.source = source

	target := Resolve(state, overID)
	switch {
	case target.Kind == TargetUnknown:
		return
	case target.Container != source:
		next := c.board.DispatchLive(tierlist.MoveItem{ItemID: c.activeID, From: source, To: target.Container})
		if moved, ok := tierlist.ContainerOf(next, c.activeID); ok {
			c.source = moved
		}
	case target.Kind == TargetItem:
		c.board.DispatchLive(tierlist.ReorderItem{ItemID: c.activeID, OverID: overID})
	}
}

func (c *Coordinator) finish(reason string) {
	if c.phase != Dragging {
		return
	}
	c.logger.Debug("drag finished", "active", c.activeID, "container", c.source, "reason", reason)
	c.phase = Idle
	c.activeID = ""
	c.source = ""
	c.board.EndGesture()
}

package drag

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meur/tierboard/internal/dndid"
	"github.com/meur/tierboard/internal/models"
	"github.com/meur/tierboard/internal/tierlist"
)

// recordingBoard wraps a Board and counts dispatches that changed state
type recordingBoard struct {
	*tierlist.Board
	actions []tierlist.Action
	begins  int
	ends    int
}

func (r *recordingBoard) DispatchLive(a tierlist.Action) models.TierListState {
	r.actions = append(r.actions, a)
	return r.Board.DispatchLive(a)
}

func (r *recordingBoard) BeginGesture() {
	r.begins++
	r.Board.BeginGesture()
}

func (r *recordingBoard) EndGesture() {
	r.ends++
	r.Board.EndGesture()
}

func newTestCoordinator(t *testing.T) (*Coordinator, *recordingBoard) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	board := &recordingBoard{Board: tierlist.Open(nil, logger)}
	return NewCoordinator(board, logger), board
}

func TestCoordinator_StartAndEnd(t *testing.T) {
	c, board := newTestCoordinator(t)

	c.Handle(Start{ActiveID: "item4"})
	phase, active, source := c.Status()
	assert.Equal(t, Dragging, phase)
	assert.Equal(t, "item4", active)
	assert.Equal(t, models.ContainerID("1"), source)

	c.Handle(End{})
	phase, active, _ = c.Status()
	assert.Equal(t, Idle, phase)
	assert.Empty(t, active)
	assert.Empty(t, board.actions)
	assert.Equal(t, 1, board.begins)
	assert.Equal(t, 1, board.ends)
}

func TestCoordinator_HoverOtherContainerItemMoves(t *testing.T) {
	c, board := newTestCoordinator(t)

	c.Handle(Start{ActiveID: "item1"})
	c.Handle(Hover{OverID: "item4"})

	state := board.State()
	assert.Equal(t, []string{"item4", "item1"}, state.Tiers[0].ItemIDs)
	assert.NotContains(t, state.UnrankedItemIDs, "item1")
	_, _, source := c.Status()
	assert.Equal(t, models.ContainerID("1"), source)

	// now in the same container: hovering item4 reorders
	c.Handle(Hover{OverID: "item4"})
	assert.Equal(t, []string{"item1", "item4"}, board.State().Tiers[0].ItemIDs)
	require.Len(t, board.actions, 2)
	assert.IsType(t, tierlist.MoveItem{}, board.actions[0])
	assert.IsType(t, tierlist.ReorderItem{}, board.actions[1])
}

func TestCoordinator_HoverEmptyContainer(t *testing.T) {
	c, board := newTestCoordinator(t)

	c.Handle(Start{ActiveID: "item2"})
	c.Handle(Hover{OverID: dndid.TierDropID("3")})
	c.Handle(Hover{OverID: dndid.TierDropID("5")})
	c.Handle(End{})

	state := board.State()
	assert.Empty(t, state.Tiers[2].ItemIDs)
	assert.Equal(t, []string{"item2"}, state.Tiers[4].ItemIDs)
	require.NoError(t, tierlist.Check(state))
}

func TestCoordinator_HoverBackToUnranked(t *testing.T) {
	c, board := newTestCoordinator(t)

	c.Handle(Start{ActiveID: "item4"})
	c.Handle(Hover{OverID: dndid.UnrankedDropID})

	state := board.State()
	assert.Empty(t, state.Tiers[0].ItemIDs)
	assert.Equal(t, "item4", state.UnrankedItemIDs[len(state.UnrankedItemIDs)-1])
}

func TestCoordinator_SameContainerKeyIsNoop(t *testing.T) {
	c, board := newTestCoordinator(t)
	before := board.State()

	c.Handle(Start{ActiveID: "item1"})
	c.Handle(Hover{OverID: dndid.UnrankedDropID})

	assert.Empty(t, board.actions)
	assert.Equal(t, before, board.State())
}

func TestCoordinator_SameContainerItemReorders(t *testing.T) {
	c, board := newTestCoordinator(t)

	c.Handle(Start{ActiveID: "item2"})
	c.Handle(Hover{OverID: "item3"})

	assert.Equal(t, []string{"item1", "item3", "item2"}, board.State().UnrankedItemIDs[:3])
}

func TestCoordinator_IgnoredHovers(t *testing.T) {
	c, board := newTestCoordinator(t)
	before := board.State()

	// idle
	c.Handle(Hover{OverID: "item3"})

	c.Handle(Start{ActiveID: "item1"})
	c.Handle(Hover{OverID: "item1"})
	c.Handle(Hover{OverID: ""})
	c.Handle(Hover{OverID: "nowhere"})
	c.Handle(Hover{OverID: dndid.TierDropID("42")})
	c.Handle(Hover{OverID: "container:tier:"})

	assert.Empty(t, board.actions)
	assert.Equal(t, before, board.State())
	phase, _, _ := c.Status()
	assert.Equal(t, Dragging, phase)
}

func TestCoordinator_UnknownActiveItem(t *testing.T) {
	c, board := newTestCoordinator(t)

	c.Handle(Start{ActiveID: "ghost"})
	c.Handle(Hover{OverID: dndid.TierDropID("2")})

	assert.Empty(t, board.actions)
}

func TestCoordinator_CancelKeepsLivePlacement(t *testing.T) {
	c, board := newTestCoordinator(t)

	c.Handle(Start{ActiveID: "item1"})
	c.Handle(Hover{OverID: dndid.TierDropID("2")})
	c.Handle(Cancel{})

	phase, _, _ := c.Status()
	assert.Equal(t, Idle, phase)
	assert.Equal(t, []string{"item1"}, board.State().Tiers[1].ItemIDs)
	assert.Len(t, board.actions, 1)
}

func TestCoordinator_RestartCancelsPrevious(t *testing.T) {
	c, board := newTestCoordinator(t)

	c.Handle(Start{ActiveID: "item1"})
	c.Handle(Start{ActiveID: "item4"})

	phase, active, source := c.Status()
	assert.Equal(t, Dragging, phase)
	assert.Equal(t, "item4", active)
	assert.Equal(t, models.ContainerID("1"), source)
	assert.Equal(t, 2, board.begins)
	assert.Equal(t, 1, board.ends)

	// end or cancel while idle does nothing
	c.Handle(End{})
	c.Handle(End{})
	c.Handle(Cancel{})
	assert.Equal(t, 2, board.ends)
}

func TestCoordinator_HoverAt(t *testing.T) {
	c, board := newTestCoordinator(t)
	droppables := []models.Droppable{
		{ID: dndid.TierDropID("1"), Rect: models.Rect{X: 0, Y: 0, Width: 800, Height: 100}},
		{ID: "item4", Rect: models.Rect{X: 10, Y: 10, Width: 80, Height: 80}},
		{ID: dndid.TierDropID("2"), Rect: models.Rect{X: 0, Y: 100, Width: 800, Height: 100}},
		{ID: dndid.UnrankedDropID, Rect: models.Rect{X: 820, Y: 0, Width: 300, Height: 600}},
	}

	c.Handle(Start{ActiveID: "item1"})
	// far right edge of the empty tier 2, nearer to the unranked center
	assert.True(t, c.HoverAt(models.Point{X: 790, Y: 190}, droppables))
	assert.Equal(t, []string{"item1"}, board.State().Tiers[1].ItemIDs)

	assert.False(t, c.HoverAt(models.Point{X: 1, Y: 1}, nil))
}

func TestResolve(t *testing.T) {
	state := tierlist.DefaultState()

	tests := []struct {
		key       string
		kind      TargetKind
		container models.ContainerID
	}{
		{"item4", TargetItem, "1"},
		{"item1", TargetItem, models.UnrankedContainer},
		{dndid.UnrankedDropID, TargetContainer, models.UnrankedContainer},
		{dndid.TierDropID("5"), TargetContainer, "5"},
		{dndid.TierDropID("6"), TargetUnknown, ""},
		{"unranked", TargetUnknown, ""},
		{"item99", TargetUnknown, ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got := Resolve(state, tt.key)
			assert.Equal(t, tt.kind, got.Kind)
			assert.Equal(t, tt.container, got.Container)
			assert.Equal(t, tt.key, got.ID)
		})
	}
}

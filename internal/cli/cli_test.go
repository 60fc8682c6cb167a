package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meur/tierboard/internal/models"
)

func run(t *testing.T, db string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--db", db, "--origin", "http://tiers.test"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func showJSON(t *testing.T, db string) models.TierListState {
	t.Helper()
	out, err := run(t, db, "show", "--json")
	require.NoError(t, err)
	var state models.TierListState
	require.NoError(t, json.Unmarshal([]byte(out), &state))
	return state
}

func TestShow_Default(t *testing.T) {
	db := filepath.Join(t.TempDir(), "cli.db")

	out, err := run(t, db, "show")
	require.NoError(t, err)
	assert.Contains(t, out, "[1] 夯")
	assert.Contains(t, out, "要樂奈(item4)")
	assert.Contains(t, out, "[unranked] 高松燈(item1)")
}

func TestEditCommands(t *testing.T) {
	db := filepath.Join(t.TempDir(), "cli.db")

	out, err := run(t, db, "add", "Taki")
	require.NoError(t, err)
	newID := strings.TrimSpace(strings.TrimPrefix(out, "Added "))
	require.NotEmpty(t, newID)

	_, err = run(t, db, "move", newID, "container:tier:2")
	require.NoError(t, err)
	_, err = run(t, db, "move", "item1", "2")
	require.NoError(t, err)
	_, err = run(t, db, "reorder", "item1", newID)
	require.NoError(t, err)
	_, err = run(t, db, "delete", "item4")
	require.NoError(t, err)

	state := showJSON(t, db)
	assert.Equal(t, []string{"item1", newID}, state.Tiers[1].ItemIDs)
	assert.Empty(t, state.Tiers[0].ItemIDs)
	assert.Equal(t, "Taki", state.Items[newID].Content)

	_, err = run(t, db, "reset")
	require.NoError(t, err)
	assert.Len(t, showJSON(t, db).Items, 10)
}

func TestEditCommands_Errors(t *testing.T) {
	db := filepath.Join(t.TempDir(), "cli.db")

	tests := [][]string{
		{"add"},
		{"add", "   "},
		{"add", "--image", filepath.Join(t.TempDir(), "missing.png")},
		{"delete", "ghost"},
		{"move", "ghost", "2"},
		{"move", "item1", "9"},
		{"reorder", "item1", "item4"},
		{"reorder", "item1", "ghost"},
	}

	for _, args := range tests {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			_, err := run(t, db, args...)
			assert.Error(t, err)
		})
	}
	assert.Len(t, showJSON(t, db).Items, 10)
}

func TestShare(t *testing.T) {
	db := filepath.Join(t.TempDir(), "cli.db")

	out, err := run(t, db, "share")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "http://tiers.test/share/"))
}

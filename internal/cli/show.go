package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/meur/tierboard/internal/models"
)

func newShowCommand(opts *options) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the tier list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, board, err := opts.openBoard(cmd)
			if err != nil {
				return err
			}
			defer store.Close()

			state := board.State()
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(state)
			}
			printState(cmd.OutOrStdout(), state)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output the snapshot as JSON")
	return cmd
}

func printState(w io.Writer, state models.TierListState) {
	for _, t := range state.Tiers {
		fmt.Fprintf(w, "[%s] %-8s %s\n", t.ID, t.Name, formatItems(state, t.ItemIDs))
	}
	fmt.Fprintf(w, "[unranked] %s\n", formatItems(state, state.UnrankedItemIDs))
}

func formatItems(state models.TierListState, ids []string) string {
	if len(ids) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		item := state.Items[id]
		label := item.Content
		if item.HasImage() {
			label += " 🖼"
		}
		parts = append(parts, fmt.Sprintf("%s(%s)", strings.TrimSpace(label), id))
	}
	return strings.Join(parts, ", ")
}

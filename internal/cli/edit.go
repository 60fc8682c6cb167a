package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/meur/tierboard/internal/dndid"
	"github.com/meur/tierboard/internal/imaging"
	"github.com/meur/tierboard/internal/models"
	"github.com/meur/tierboard/internal/tierlist"
)

func newAddCommand(opts *options) *cobra.Command {
	var image string

	cmd := &cobra.Command{
		Use:   "add [content]",
		Short: "Add an item to the unranked pool",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content := ""
			if len(args) == 1 {
				content = args[0]
			}
			ref, err := resolveImage(image)
			if err != nil {
				return err
			}
			if strings.TrimSpace(content) == "" && ref == "" {
				return errors.New("content or --image is required")
			}

			store, board, err := opts.openBoard(cmd)
			if err != nil {
				return err
			}
			defer store.Close()

			state := board.Dispatch(tierlist.AddItem{Content: content, Image: ref})
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s\n", state.UnrankedItemIDs[len(state.UnrankedItemIDs)-1])
			return nil
		},
	}

	cmd.Flags().StringVar(&image, "image", "", "Image file to ingest, or an image URL")
	return cmd
}

// resolveImage ingests a local file into a data URL; URLs pass through
func resolveImage(ref string) (string, error) {
	if ref == "" || strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") || models.IsInlineImage(ref) {
		return ref, nil
	}
	f, err := os.Open(ref)
	if err != nil {
		return "", err
	}
	defer f.Close()

	thumb, err := imaging.Ingest(f, imaging.Size)
	if err != nil {
		return "", err
	}
	return thumb.DataURL, nil
}

func newDeleteCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <item-id>",
		Short: "Delete an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, board, err := opts.openBoard(cmd)
			if err != nil {
				return err
			}
			defer store.Close()

			if _, ok := board.State().Items[args[0]]; !ok {
				return fmt.Errorf("item not found: %s", args[0])
			}
			board.Dispatch(tierlist.DeleteItem{ItemID: args[0]})
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
			return nil
		},
	}
}

func newMoveCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "move <item-id> <container>",
		Short: "Move an item to the end of a tier or the unranked pool",
		Long: `Move an item to the end of another container. The container is a tier
id, "unranked", or a drop key such as container:tier:2.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, board, err := opts.openBoard(cmd)
			if err != nil {
				return err
			}
			defer store.Close()

			state := board.State()
			from, ok := tierlist.ContainerOf(state, args[0])
			if !ok {
				return fmt.Errorf("item not found: %s", args[0])
			}
			to := parseContainer(args[1])
			if !tierlist.HasContainer(state, to) {
				return fmt.Errorf("unknown container: %s", args[1])
			}

			board.Dispatch(tierlist.MoveItem{ItemID: args[0], From: from, To: to})
			fmt.Fprintf(cmd.OutOrStdout(), "Moved %s to %s\n", args[0], to)
			return nil
		},
	}
}

func parseContainer(arg string) models.ContainerID {
	if c, ok := dndid.ParseDropID(arg); ok {
		return c
	}
	return models.ContainerID(arg)
}

func newReorderCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "reorder <item-id> <over-id>",
		Short: "Move an item to another item's position in the same container",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, board, err := opts.openBoard(cmd)
			if err != nil {
				return err
			}
			defer store.Close()

			state := board.State()
			a, okA := tierlist.ContainerOf(state, args[0])
			b, okB := tierlist.ContainerOf(state, args[1])
			if !okA || !okB {
				return errors.New("both items must exist")
			}
			if a != b {
				return errors.New("items must be in the same container")
			}

			board.Dispatch(tierlist.ReorderItem{ItemID: args[0], OverID: args[1]})
			fmt.Fprintf(cmd.OutOrStdout(), "Reordered %s\n", args[0])
			return nil
		},
	}
}

func newResetCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Restore the default tier list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, board, err := opts.openBoard(cmd)
			if err != nil {
				return err
			}
			defer store.Close()

			board.Reset()
			fmt.Fprintln(cmd.OutOrStdout(), "Reset to default tier list")
			return nil
		},
	}
}

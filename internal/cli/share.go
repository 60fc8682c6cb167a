package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meur/tierboard/internal/share"
	"github.com/meur/tierboard/internal/storage"
)

func newShareCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "share",
		Short: "Publish the tier list and print its share link",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, board, err := opts.openBoard(cmd)
			if err != nil {
				return err
			}
			defer store.Close()

			publisher := share.NewPublisher(storage.NewShareBackend(store, opts.origin), opts.origin, opts.logger(cmd))
			res, err := publisher.Publish(cmd.Context(), board.State())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.URL)
			return nil
		},
	}
}

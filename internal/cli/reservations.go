package cli

import (
	"context"

	"github.com/deppfellow/lightbnb/internal/lib/utils"
	"github.com/spf13/cobra"
)

func newReservationsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reservations",
		Short: "Inspect reservations",
	}
	cmd.AddCommand(newReservationsListCommand(a))
	return cmd
}

func newReservationsListCommand(a *app) *cobra.Command {
	var (
		guestID int64
		limit   int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a guest's past reservations",
		Args:  cobra.NoArgs,
	}
	cmd.Flags().Int64Var(&guestID, "guest-id", 0, "guest user id")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of reservations (default 10)")
	_ = cmd.MarkFlagRequired("guest-id")

	cmd.RunE = a.run("reservations/list", func(ctx context.Context) error {
		if err := a.connect(ctx); err != nil {
			return err
		}

		reservations, err := a.services.Reservations.ListPast(ctx, guestID, limit)
		if err != nil {
			return err
		}
		return utils.WriteJSON(a.out, reservations)
	})
	return cmd
}

package cli

import (
	"context"
	"errors"

	"github.com/deppfellow/lightbnb/internal/database"
	"github.com/deppfellow/lightbnb/internal/lib/utils"
	"github.com/spf13/cobra"
)

var errUnhealthy = errors.New("database is unhealthy")

func newStatusCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Check database connectivity",
		Args:  cobra.NoArgs,
	}
	cmd.RunE = a.run("status", func(ctx context.Context) error {
		if err := a.connect(ctx); err != nil {
			return err
		}

		report := a.server.CheckHealth(ctx)
		if err := utils.WriteJSON(a.out, report); err != nil {
			return err
		}
		if !report.Healthy() {
			return errUnhealthy
		}
		return nil
	})
	return cmd
}

func newSchemaCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Create or upgrade the LightBnB tables",
		Args:  cobra.NoArgs,
	}
	cmd.RunE = a.run("schema", func(ctx context.Context) error {
		return database.Migrate(ctx, a.logger, a.cfg.Database.DSN())
	})
	return cmd
}

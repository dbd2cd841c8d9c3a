// Package cli is the lightbnb operator tool. Every subcommand loads the
// configuration from the environment, runs one data-access operation inside
// a New Relic transaction and prints the result as JSON.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/deppfellow/lightbnb/internal/config"
	"github.com/deppfellow/lightbnb/internal/repository"
	"github.com/deppfellow/lightbnb/internal/server"
	"github.com/deppfellow/lightbnb/internal/service"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	loggerPkg "github.com/deppfellow/lightbnb/internal/logger"
)

// app holds the dependencies shared by the subcommands of one run. The
// database is only opened by commands that need it.
type app struct {
	out io.Writer

	cfg           *config.Config
	logger        *zerolog.Logger
	loggerService *loggerPkg.LoggerService

	server   *server.Server
	services *service.Services
}

// Execute runs the lightbnb command tree with args, writing results to out.
// Resources opened by the command are released before it returns.
func Execute(ctx context.Context, out io.Writer, args []string) error {
	a := &app{out: out}

	root := newRootCommand(a)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if teardownErr := a.teardown(context.WithoutCancel(ctx)); err == nil {
		err = teardownErr
	}
	return err
}

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "lightbnb",
		Short:         "Query and seed the LightBnB database",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(a.out)

	root.AddCommand(
		newStatusCommand(a),
		newSchemaCommand(a),
		newUsersCommand(a),
		newReservationsCommand(a),
		newPropertiesCommand(a),
	)
	return root
}

func (a *app) setup() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	loggerService, err := loggerPkg.NewLoggerService(cfg.Observability)
	if err != nil {
		return err
	}

	log := loggerPkg.NewLoggerWithService(cfg.Observability, loggerService).
		With().
		Str("run_id", uuid.NewString()).
		Logger()

	a.cfg = cfg
	a.logger = &log
	a.loggerService = loggerService
	return nil
}

// connect opens the database and wires repositories and services onto it.
func (a *app) connect(ctx context.Context) error {
	if a.services != nil {
		return nil
	}

	srv, err := server.New(ctx, a.cfg, a.logger, a.loggerService)
	if err != nil {
		return err
	}

	a.server = srv
	a.services = service.NewServices(srv, repository.NewRepositories(srv))
	return nil
}

func (a *app) teardown(ctx context.Context) error {
	if a.server != nil {
		return a.server.Shutdown(ctx)
	}
	if a.loggerService != nil {
		a.loggerService.Shutdown()
	}
	return nil
}

// run loads the configuration, then wraps fn in a New Relic transaction
// named after the command and logs its failure.
func (a *app) run(name string, fn func(ctx context.Context) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		if a.cfg == nil {
			if err := a.setup(); err != nil {
				return err
			}
		}

		ctx, end := a.loggerService.StartTransaction(cmd.Context(), "cli/"+name)

		err := fn(ctx)
		end(err)

		if err != nil {
			a.logger.Error().Err(err).Str("command", name).Msg("command failed")
			return fmt.Errorf("%s: %w", name, err)
		}
		return nil
	}
}

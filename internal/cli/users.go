package cli

import (
	"context"
	"errors"

	"github.com/deppfellow/lightbnb/internal/lib/utils"
	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/spf13/cobra"
)

var errUserLookup = errors.New("exactly one of --email or --id is required")

func newUsersCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Look up and register users",
	}
	cmd.AddCommand(newUsersGetCommand(a), newUsersAddCommand(a))
	return cmd
}

func newUsersGetCommand(a *app) *cobra.Command {
	var (
		email string
		id    int64
	)

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Print a user by email or id (null when absent)",
		Args:  cobra.NoArgs,
	}
	cmd.Flags().StringVar(&email, "email", "", "user email")
	cmd.Flags().Int64Var(&id, "id", 0, "user id")
	cmd.MarkFlagsMutuallyExclusive("email", "id")

	cmd.RunE = a.run("users/get", func(ctx context.Context) error {
		byEmail, byID := cmd.Flags().Changed("email"), cmd.Flags().Changed("id")
		if byEmail == byID {
			return errUserLookup
		}

		if err := a.connect(ctx); err != nil {
			return err
		}

		var (
			user *model.User
			err  error
		)
		if byEmail {
			user, err = a.services.Users.GetByEmail(ctx, email)
		} else {
			user, err = a.services.Users.GetByID(ctx, id)
		}
		if err != nil {
			return err
		}
		return utils.WriteJSON(a.out, user)
	})
	return cmd
}

func newUsersAddCommand(a *app) *cobra.Command {
	var input model.NewUser

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a user",
		Args:  cobra.NoArgs,
	}
	cmd.Flags().StringVar(&input.Name, "name", "", "display name")
	cmd.Flags().StringVar(&input.Email, "email", "", "email address")
	cmd.Flags().StringVar(&input.Password, "password", "", "password hash")

	cmd.RunE = a.run("users/add", func(ctx context.Context) error {
		if err := a.connect(ctx); err != nil {
			return err
		}

		created, err := a.services.Users.Register(ctx, input)
		if err != nil {
			return err
		}
		return utils.WriteJSON(a.out, created)
	})
	return cmd
}

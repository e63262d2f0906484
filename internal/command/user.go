package command

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stolasapp/bulletin/internal/accounts"
)

func userCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "User commands",
	}
	cmd.AddCommand(
		userCreateCommand(),
		userDeleteCommand(),
	)
	return cmd
}

func userCreateCommand() *cobra.Command {
	var (
		reg    accounts.Registration
		groups []string
	)
	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create user",
		Long: "Registers a user with the provided username and password, applying the same\n" +
			"validation as the web form. Passwords may be provided via stdin or through the\n" +
			"interactive prompt.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (runErr error) {
			_, logger, store, err := loadConfig(cmd.Context())
			if err != nil {
				return err
			}
			defer func() {
				if err := store.Close(); err != nil {
					runErr = errors.Join(runErr, err)
				}
			}()

			reg.Username = args[0]
			if reg.Groups, err = groupIDs(cmd.Context(), store, groups); err != nil {
				return err
			}
			if reg.Password, err = prompt("password: ", true); err != nil {
				return err
			}

			user, err := accounts.New(store, logger).Register(cmd.Context(), reg)
			if err != nil {
				return err
			}
			logger.DebugContext(cmd.Context(), "created user", slog.Uint64("user_id", user.ID))
			return nil
		},
	}
	cmd.Flags().StringVar(&reg.FirstName, "first-name", "", "first name (required)")
	cmd.Flags().StringVar(&reg.LastName, "last-name", "", "last name (required)")
	cmd.Flags().StringVar(&reg.Email, "email", "", "email address (required)")
	cmd.Flags().StringSliceVar(&groups, "group", nil, "group to join; may be repeated")
	return cmd
}

func userDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete NAME",
		Short: "Delete user",
		Long: "Permanently deletes the user, their group memberships and their posts. " +
			"This operation is permanent and irreversible.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (runErr error) {
			_, logger, store, err := loadConfig(cmd.Context())
			if err != nil {
				return err
			}
			defer func() {
				if err := store.Close(); err != nil {
					runErr = errors.Join(runErr, err)
				}
			}()

			name := strings.ToLower(args[0])
			logger = logger.With(slog.String("name", name))
			if _, err = store.GetUserByName(cmd.Context(), name); err != nil {
				return err
			}
			ok, err := confirm("Are you sure you want to delete this user?")
			if !ok || err != nil {
				logger.InfoContext(cmd.Context(), "aborted user deletion")
				return err
			}
			return accounts.New(store, logger).Delete(cmd.Context(), name)
		},
	}
}

package command

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stolasapp/bulletin/internal/accounts"
	"github.com/stolasapp/bulletin/internal/devseed"
)

func seedCommand() *cobra.Command {
	var (
		seed uint64
		opts = devseed.DefaultOptions
	)
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Fill the database with generated data",
		Long: "Creates generated groups, users and posts for development. Every generated\n" +
			"user has the password " + devseed.Password + ". The seed defaults to $" +
			devseed.SeedEnv + " or a random value.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (runErr error) {
			_, logger, store, err := loadConfig(cmd.Context())
			if err != nil {
				return err
			}
			defer func() {
				if err := store.Close(); err != nil {
					runErr = errors.Join(runErr, err)
				}
			}()

			if !cmd.Flags().Changed("seed") {
				seed = devseed.Seed()
			}
			res, err := devseed.Populate(cmd.Context(), logger, accounts.New(store, logger), store, seed, opts)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "seed %d: %d posts by %s\n",
				seed, res.Posts, strings.Join(res.Users, ", "))
			return err
		},
	}
	cmd.Flags().Uint64Var(&seed, "seed", 0, "generator seed")
	cmd.Flags().IntVar(&opts.Groups, "groups", opts.Groups, "number of groups")
	cmd.Flags().IntVar(&opts.Users, "users", opts.Users, "number of users")
	cmd.Flags().IntVar(&opts.MaxPostsUser, "max-posts", opts.MaxPostsUser, "maximum posts per user")
	return cmd
}

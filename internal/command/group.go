package command

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/stolasapp/bulletin/internal/storage"
)

func groupCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "group",
		Short: "Group commands",
	}
	cmd.AddCommand(
		groupCreateCommand(),
		groupListCommand(),
	)
	return cmd
}

func groupCreateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create NAME",
		Short: "Create group",
		Long:  "Creates a group that users can join when registering.",
		Args:  cobra.ExactArgs(1),
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

			group, err := store.CreateGroup(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to create group %q: %w", args[0], err)
			}
			logger.InfoContext(cmd.Context(), "created group",
				slog.Uint64("group_id", group.ID),
				slog.String("name", group.Name),
			)
			return nil
		},
	}
}

func groupListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List groups",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (runErr error) {
			_, _, store, err := loadConfig(cmd.Context())
			if err != nil {
				return err
			}
			defer func() {
				if err := store.Close(); err != nil {
					runErr = errors.Join(runErr, err)
				}
			}()

			groups, err := store.ListGroups(cmd.Context())
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0) //nolint:mnd // column padding
			_, _ = fmt.Fprintln(tw, "ID\tNAME")
			for _, group := range groups {
				_, _ = fmt.Fprintf(tw, "%d\t%s\n", group.ID, group.Name)
			}
			return tw.Flush()
		},
	}
}

// groupIDs resolves group names to IDs.
func groupIDs(ctx context.Context, store storage.Groups, names []string) ([]uint64, error) {
	if len(names) == 0 {
		return nil, nil
	}
	groups, err := store.ListGroups(ctx)
	if err != nil {
		return nil, err
	}
	byName := make(map[string]uint64, len(groups))
	for _, group := range groups {
		byName[group.Name] = group.ID
	}
	ids := make([]uint64, 0, len(names))
	for _, name := range names {
		id, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("group %q: %w", name, storage.ErrNotFound)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

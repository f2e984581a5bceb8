package main

import (
	"fmt"

	"github.com/spf13/cobra"

	taskRepo "voice-task-tracker/internal/task/repository/sqlite"
	"voice-task-tracker/pkg/database"
)

func newMigrateCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the task database schema",
	}

	var target int

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrator(cmd, flags, func(m *taskRepo.Migrator) error {
				n, err := m.Migrate(cmd.Context())
				if err != nil {
					return err
				}
				return printVersion(cmd, m, fmt.Sprintf("applied %d migration(s)", n))
			})
		},
	}

	downCmd := &cobra.Command{
		Use:   "down",
		Short: "Revert migrations newer than --to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrator(cmd, flags, func(m *taskRepo.Migrator) error {
				n, err := m.Rollback(cmd.Context(), target)
				if err != nil {
					return err
				}
				return printVersion(cmd, m, fmt.Sprintf("reverted %d migration(s)", n))
			})
		},
	}
	downCmd.Flags().IntVar(&target, "to", 0, "version to roll back to (0 reverts everything)")

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show applied and pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrator(cmd, flags, func(m *taskRepo.Migrator) error {
				current, err := m.Version(cmd.Context())
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				for _, mg := range m.Migrations() {
					state := "pending"
					if mg.Version <= current {
						state = "applied"
					}
					fmt.Fprintf(out, "%04d %-24s %s\n", mg.Version, mg.Name, state)
				}
				return nil
			})
		},
	}

	cmd.AddCommand(upCmd, downCmd, statusCmd)
	return cmd
}

func withMigrator(cmd *cobra.Command, flags *globalFlags, fn func(m *taskRepo.Migrator) error) error {
	if err := flags.resolve(); err != nil {
		return err
	}

	db, err := database.OpenSQLite(cmd.Context(), flags.dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	m, err := taskRepo.NewMigrator(db, flags.logger())
	if err != nil {
		return err
	}
	return fn(m)
}

func printVersion(cmd *cobra.Command, m *taskRepo.Migrator, summary string) error {
	v, err := m.Version(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s, schema version %d\n", summary, v)
	return nil
}

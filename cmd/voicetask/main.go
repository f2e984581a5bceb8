package main

import (
	"fmt"
	"os"
	_ "time/tzdata"

	"github.com/spf13/cobra"

	"voice-task-tracker/config"
	"voice-task-tracker/pkg/log"
)

// globalFlags are shared by every subcommand. Empty values fall back to config.
type globalFlags struct {
	dsn      string
	timezone string
	verbose  bool
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "voicetask",
		Short: "Voice Task Tracker - turn utterances into tasks",
		Long: `voicetask parses spoken or typed utterances into structured tasks
and manages the task database used by the API server.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&flags.dsn, "dsn", "", "SQLite DSN (default from config database.dsn)")
	rootCmd.PersistentFlags().StringVar(&flags.timezone, "timezone", "", "IANA timezone for relative dates (default from config nlp.timezone)")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(
		newParseCmd(flags),
		newMigrateCmd(flags),
		newCalendarAuthCmd(flags),
	)
	return rootCmd
}

// resolve fills empty flags from the loaded configuration.
func (f *globalFlags) resolve() error {
	if f.dsn != "" && f.timezone != "" {
		return nil
	}
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if f.dsn == "" {
		f.dsn = cfg.Database.DSN
	}
	if f.timezone == "" {
		f.timezone = cfg.NLP.Timezone
	}
	return nil
}

func (f *globalFlags) logger() log.Logger {
	if !f.verbose {
		return log.NewNop()
	}
	return log.Init(log.ZapConfig{
		Level:        "debug",
		Mode:         log.ModeDebug,
		Encoding:     log.EncodingConsole,
		ColorEnabled: true,
	})
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"voice-task-tracker/internal/nlp"
	"voice-task-tracker/internal/nlp/phrase"
	nlpUC "voice-task-tracker/internal/nlp/usecase"
	"voice-task-tracker/pkg/datemath"
)

type parseOutput struct {
	Original string         `json:"original"`
	Parsed   nlp.ParsedTask `json:"parsed"`
}

func newParseCmd(flags *globalFlags) *cobra.Command {
	var now string

	cmd := &cobra.Command{
		Use:   "parse UTTERANCE...",
		Short: "Parse an utterance and print the task attributes as JSON",
		Example: `  voicetask parse "Remind me to review the pull request by tomorrow evening, it's high priority"
  voicetask parse --now 2024-05-01T10:00:00Z "call the client at 3:30 pm, it's critical"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.resolve(); err != nil {
				return err
			}

			clock, err := fixedClock(now)
			if err != nil {
				return err
			}
			parser, err := datemath.NewParser(flags.timezone)
			if err != nil {
				return err
			}

			uc := nlpUC.New(flags.logger(), phrase.New(parser, clock))
			transcript := strings.Join(args, " ")
			parsed, err := uc.ParseVoiceInput(cmd.Context(), transcript)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(parseOutput{Original: transcript, Parsed: parsed})
		},
	}
	cmd.Flags().StringVar(&now, "now", "", "resolve relative dates against this RFC 3339 instant instead of the current time")
	return cmd
}

// fixedClock returns nil (the real clock) for an empty value.
func fixedClock(value string) (func() time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, fmt.Errorf("invalid --now: %w", err)
	}
	return func() time.Time { return t }, nil
}

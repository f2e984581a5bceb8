package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"voice-task-tracker/config"
	"voice-task-tracker/pkg/gcalendar"
)

func newCalendarAuthCmd(flags *globalFlags) *cobra.Command {
	var credentialsPath, tokenPath string

	cmd := &cobra.Command{
		Use:   "calendar-auth",
		Short: "Authorize Google Calendar access and save the OAuth token",
		Long: `Runs the OAuth consent flow for desktop-app credentials. Open the printed
URL, sign in, then paste the authorization code. The token is written to
--token (default from config google_calendar.token_path).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if credentialsPath == "" || tokenPath == "" {
				cfg, err := config.Load()
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if credentialsPath == "" {
					credentialsPath = cfg.GoogleCalendar.CredentialsPath
				}
				if tokenPath == "" {
					tokenPath = cfg.GoogleCalendar.TokenPath
				}
			}
			if credentialsPath == "" {
				return fmt.Errorf("no credentials file: pass --credentials or set google_calendar.credentials_path")
			}

			data, err := os.ReadFile(credentialsPath)
			if err != nil {
				return fmt.Errorf("read credentials: %w", err)
			}
			oauthCfg, err := gcalendar.InstalledAppConfig(data)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Open this URL in a browser and sign in with your Google account:")
			fmt.Fprintln(out)
			fmt.Fprintln(out, gcalendar.AuthURL(oauthCfg))
			fmt.Fprintln(out)
			fmt.Fprint(out, "Paste the authorization code: ")

			var code string
			if _, err := fmt.Fscan(cmd.InOrStdin(), &code); err != nil {
				return fmt.Errorf("read authorization code: %w", err)
			}

			if err := gcalendar.ExchangeAndSaveToken(cmd.Context(), oauthCfg, strings.TrimSpace(code), tokenPath); err != nil {
				return err
			}
			flags.logger().Infof(cmd.Context(), "calendar-auth: token saved to %s", tokenPath)
			fmt.Fprintf(out, "\nToken saved to %s. Restart the API server to enable calendar reminders.\n", tokenPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&credentialsPath, "credentials", "", "OAuth desktop-app credentials JSON")
	cmd.Flags().StringVar(&tokenPath, "token", "", "where to write the token")
	return cmd
}

package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"devgate/internal/app"
	"devgate/internal/middleware"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "devgate",
		Short:         "Telegram bot that verifies new group members with a programming question",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runBot,
	}
	cmd.PersistentFlags().String("config", "config/config.yaml", "Path to the YAML config file.")

	cmd.AddCommand(newRunCmd(), newTokenCmd())
	return cmd
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the bot (default when no command is given)",
		Args:  cobra.NoArgs,
		RunE:  runBot,
	}
}

func runBot(cmd *cobra.Command, _ []string) error {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	return app.Run(path)
}

func newTokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Print a bearer token for the verification history API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			secret, _ := cmd.Flags().GetString("secret")
			if strings.TrimSpace(secret) == "" {
				secret = os.Getenv("DEVGATE_API_SECRET")
			}
			if strings.TrimSpace(secret) == "" {
				return errors.New("missing api secret (set via --secret or DEVGATE_API_SECRET)")
			}
			subject, _ := cmd.Flags().GetString("subject")
			chatIDs, err := cmd.Flags().GetInt64Slice("chats")
			if err != nil {
				return err
			}
			ttl, _ := cmd.Flags().GetDuration("ttl")
			if ttl <= 0 {
				return fmt.Errorf("ttl must be positive, got %s", ttl)
			}

			token, err := middleware.IssueToken([]byte(secret), subject, chatIDs, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().String("secret", "", "server.api_secret of the running bot (defaults to DEVGATE_API_SECRET).")
	cmd.Flags().String("subject", "operator", "Token subject.")
	cmd.Flags().Int64Slice("chats", nil, "Chat id(s) the token may read. If empty, allows all.")
	cmd.Flags().Duration("ttl", 24*time.Hour, "Token lifetime.")
	return cmd
}

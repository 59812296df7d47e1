// optivanactl is a command-line client for the Optivana API.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jarradburge/optivana-vanthex-monorepo/client"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

type cliState struct {
	apiURL  string
	token   string
	timeout time.Duration

	api *client.Client
}

func newRootCmd() *cobra.Command {
	st := &cliState{}

	rootCmd := &cobra.Command{
		Use:           "optivanactl",
		Short:         "Manage Optivana stores, campaigns and alerts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if st.token == "" {
				return fmt.Errorf("an API token is required (--token or OPTIVANA_TOKEN)")
			}
			api, err := client.New(client.Config{
				BaseURL: st.apiURL,
				Token:   st.token,
				Timeout: st.timeout,
			})
			if err != nil {
				return err
			}
			st.api = api
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&st.apiURL, "api-url", envOr("OPTIVANA_API_URL", "http://localhost:5000"), "Optivana API base URL")
	rootCmd.PersistentFlags().StringVar(&st.token, "token", os.Getenv("OPTIVANA_TOKEN"), "Bearer token")
	rootCmd.PersistentFlags().DurationVar(&st.timeout, "timeout", 60*time.Second, "Request timeout")

	rootCmd.AddCommand(newStoreCmd(st))
	rootCmd.AddCommand(newCampaignCmd(st))
	rootCmd.AddCommand(newAlertsCmd(st))
	return rootCmd
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// printJSON writes v indented to the command's output.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

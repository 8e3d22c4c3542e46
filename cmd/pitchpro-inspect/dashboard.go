package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	pitchpro "github.com/Chesron92/PitchPro-webapp-sub001"
	"github.com/Chesron92/PitchPro-webapp-sub001/internal/config"
	"github.com/Chesron92/PitchPro-webapp-sub001/internal/logging"
	"github.com/Chesron92/PitchPro-webapp-sub001/internal/store/pgstore"
)

var (
	dashUID   string
	dashToken string
	dashHint  string
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Assemble and print a dashboard bundle",
	Long:  "Resolves the account's role, runs the full concurrent reconciliation and prints the resulting bundle as JSON, including per-entity provenance and partial failures.",
	RunE:  runDashboard,
}

func init() {
	dashboardCmd.Flags().StringVar(&dashUID, "uid", "", "account id to build the dashboard for")
	dashboardCmd.Flags().StringVar(&dashToken, "token", "", "session token naming the account (alternative to --uid)")
	dashboardCmd.Flags().StringVar(&dashHint, "hint", "", "session role hint")
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	ctx := cmd.Context()
	client, err := pgstore.Connect(ctx, cfg.DatabaseURL, logger)
	if err != nil {
		return err
	}
	defer client.Close()

	provider, err := resolveProvider(client, cfg, dashUID, dashToken, dashHint)
	if err != nil {
		return err
	}

	core := pitchpro.New(client,
		pitchpro.WithLogger(logger),
		pitchpro.WithEnrichLimit(cfg.EnrichLimit),
	)
	bundle := core.BuildFor(ctx, provider)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(bundle)
}

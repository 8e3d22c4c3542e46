package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Chesron92/PitchPro-webapp-sub001/internal/config"
	"github.com/Chesron92/PitchPro-webapp-sub001/internal/logging"
	"github.com/Chesron92/PitchPro-webapp-sub001/internal/role"
	"github.com/Chesron92/PitchPro-webapp-sub001/internal/session"
	"github.com/Chesron92/PitchPro-webapp-sub001/internal/store/pgstore"
	"github.com/Chesron92/PitchPro-webapp-sub001/internal/types"
)

var (
	roleUID   string
	roleToken string
	roleHint  string
)

var roleCmd = &cobra.Command{
	Use:   "role",
	Short: "Resolve the canonical role of an account",
	Long:  "Fetches the raw account record and runs the resolution chain over it, printing the resolved role and the rule that decided it.",
	RunE:  runRole,
}

func init() {
	roleCmd.Flags().StringVar(&roleUID, "uid", "", "account id to resolve")
	roleCmd.Flags().StringVar(&roleToken, "token", "", "session token naming the account (alternative to --uid)")
	roleCmd.Flags().StringVar(&roleHint, "hint", "", "session role hint, as the navigation state would carry it")
	rootCmd.AddCommand(roleCmd)
}

func runRole(cmd *cobra.Command, _ []string) error {
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

	provider, err := resolveProvider(client, cfg, roleUID, roleToken, roleHint)
	if err != nil {
		return err
	}
	principal := provider.CurrentPrincipal()

	rec, err := provider.AccountRecord(ctx, principal.ID)
	if err != nil {
		logger.Warn("account record unreadable, resolving without it", "error", err)
	}
	resolved, rule := role.ResolveWithRule(rec, provider.RoleHint())

	return json.NewEncoder(os.Stdout).Encode(map[string]string{
		"principal": principal.ID,
		"role":      resolved.String(),
		"rule":      rule,
	})
}

// resolveProvider builds a session provider from either an explicit uid or a
// signed token.
func resolveProvider(client *pgstore.Store, cfg *config.Config, uid, token, hint string) (session.Provider, error) {
	switch {
	case uid != "":
		return &session.StoreBacked{
			Principal: &types.Principal{ID: uid},
			Hint:      hint,
			Client:    client,
		}, nil
	case token != "":
		if cfg.SessionSecret == "" {
			return nil, fmt.Errorf("SESSION_SECRET is required to use --token")
		}
		provider, err := session.FromToken(token, cfg.SessionSecret, client)
		if err != nil {
			return nil, err
		}
		if hint != "" {
			provider.Hint = hint
		}
		return provider, nil
	default:
		return nil, fmt.Errorf("either --uid or --token is required")
	}
}

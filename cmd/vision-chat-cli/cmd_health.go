package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"jan-server/services/vision-chat-api/internal/domain/health"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check server and provider health",
	RunE:  runHealth,
}

func runHealth(cmd *cobra.Command, args []string) error {
	report, err := newClient(cmd).Health(cmd.Context())
	if err != nil {
		return err
	}
	if err := printJSON(cmd.OutOrStdout(), report); err != nil {
		return err
	}
	if report.Status != health.StatusHealthy {
		return fmt.Errorf("provider %s is %s", report.Provider, report.ProviderStatus)
	}
	return nil
}

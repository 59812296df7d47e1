package main

import (
	"github.com/google/uuid"
	"github.com/jarradburge/optivana-vanthex-monorepo/client"
	"github.com/jarradburge/optivana-vanthex-monorepo/models"
	"github.com/spf13/cobra"
)

func newAlertsCmd(st *cliState) *cobra.Command {
	alertsCmd := &cobra.Command{
		Use:   "alerts",
		Short: "List and acknowledge alerts",
	}

	var (
		storeID   string
		alertType string
		limit     int
	)
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List alerts for the current user",
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := client.AlertFilter{Type: models.AlertType(alertType), Limit: limit}
			if storeID != "" {
				id, err := uuid.Parse(storeID)
				if err != nil {
					return err
				}
				filter.StoreID = &id
			}
			alerts, err := st.api.ListAlerts(cmd.Context(), filter)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), alerts)
		},
	}
	listCmd.Flags().StringVar(&storeID, "store", "", "Only alerts for this store")
	listCmd.Flags().StringVar(&alertType, "type", "", "Alert type filter")
	listCmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of alerts (server default when 0)")

	readCmd := &cobra.Command{
		Use:   "read <alertId>",
		Short: "Mark an alert as read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return err
			}
			alert, err := st.api.MarkAlertRead(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), alert)
		},
	}

	alertsCmd.AddCommand(listCmd, readCmd)
	return alertsCmd
}

package main

import (
	"github.com/google/uuid"
	"github.com/jarradburge/optivana-vanthex-monorepo/models"
	"github.com/spf13/cobra"
)

func newCampaignCmd(st *cliState) *cobra.Command {
	campaignCmd := &cobra.Command{
		Use:   "campaign",
		Short: "Inspect and scale campaigns",
	}

	getCmd := &cobra.Command{
		Use:   "get <campaignId>",
		Short: "Show a campaign",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return err
			}
			campaign, err := st.api.GetCampaign(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), campaign)
		},
	}

	var (
		action         string
		variants       []string
		budgetIncrease float64
	)
	scaleCmd := &cobra.Command{
		Use:   "scale <campaignId>",
		Short: "Scale, pause or stop campaign variants",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return err
			}
			out, err := st.api.ScaleCampaign(cmd.Context(), id, models.ScaleAction(action), variants, budgetIncrease)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
	scaleCmd.Flags().StringVar(&action, "action", string(models.ScaleActionScale), "scale, pause or stop")
	scaleCmd.Flags().StringSliceVar(&variants, "variant", nil, "Variant ID (repeatable)")
	scaleCmd.Flags().Float64Var(&budgetIncrease, "budget-increase", 0, "Daily budget increase when scaling")
	_ = scaleCmd.MarkFlagRequired("variant")

	campaignCmd.AddCommand(getCmd, scaleCmd)
	return campaignCmd
}

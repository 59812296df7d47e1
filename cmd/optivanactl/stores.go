package main

import (
	"github.com/google/uuid"
	"github.com/jarradburge/optivana-vanthex-monorepo/models"
	"github.com/spf13/cobra"
)

func newStoreCmd(st *cliState) *cobra.Command {
	storeCmd := &cobra.Command{
		Use:   "store",
		Short: "Inspect and create stores",
	}

	getCmd := &cobra.Command{
		Use:   "get <storeId>",
		Short: "Show a store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return err
			}
			store, err := st.api.GetStore(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), store)
		},
	}

	var name, domain, mode string
	initiateCmd := &cobra.Command{
		Use:   "initiate",
		Short: "Create a store through the engine",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := st.api.InitiateStore(cmd.Context(), models.InitiateStoreRequest{
				Name:   name,
				Domain: domain,
				Mode:   models.StoreMode(mode),
			})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), store)
		},
	}
	initiateCmd.Flags().StringVar(&name, "name", "", "Store name (required)")
	initiateCmd.Flags().StringVar(&domain, "domain", "", "Store domain (required)")
	initiateCmd.Flags().StringVar(&mode, "mode", string(models.StoreModeAutonomous), "autonomous, hybrid or manual")
	_ = initiateCmd.MarkFlagRequired("name")
	_ = initiateCmd.MarkFlagRequired("domain")

	storeCmd.AddCommand(getCmd, initiateCmd)
	return storeCmd
}

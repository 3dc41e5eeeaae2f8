package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"travelplanner/internal/cli"
	"travelplanner/internal/modules/pricing"
)

func newEstimateCmd() *cobra.Command {
	var (
		days   int
		budget string
	)
	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate trip cost from the static budget table",
		RunE: func(cmd *cobra.Command, _ []string) error {
			tier, err := pricing.ParseTier(budget)
			if err != nil {
				return err
			}
			est, err := pricing.Estimate(tier, days)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout())
			fmt.Fprint(cmd.OutOrStdout(), cli.RenderEstimate(est))
			return nil
		},
	}
	cmd.Flags().IntVarP(&days, "days", "n", 5, "Trip length in days")
	cmd.Flags().StringVarP(&budget, "budget", "b", string(pricing.TierMidRange), "Budget tier (Budget, Mid-Range, Luxury)")
	return cmd
}

func newTiersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tiers",
		Short: "Show the per-day cost table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout())
			fmt.Fprint(cmd.OutOrStdout(), cli.RenderTiers(pricing.Table()))
			return nil
		},
	}
}

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"travelplanner/internal/cli"
	"travelplanner/internal/modules/pricing"
	"travelplanner/internal/service"
)

func newPlanCmd(factory appFactory) *cobra.Command {
	var in service.PlanInput
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate an AI itinerary with a cost estimate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, factory, func(ctx context.Context, a *app) error {
				res, err := a.planner.Plan(ctx, in)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout())
				fmt.Fprint(cmd.OutOrStdout(), cli.RenderResult(res))
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&in.City, "city", "c", "", "Destination city")
	cmd.Flags().StringVarP(&in.Interests, "interests", "i", "", "Comma-separated interests")
	cmd.Flags().IntVarP(&in.Days, "days", "n", 5, "Trip length in days (1-14)")
	cmd.Flags().StringVarP(&in.Budget, "budget", "b", string(pricing.TierMidRange), "Budget tier")
	_ = cmd.MarkFlagRequired("city")
	return cmd
}

func newAskCmd(factory appFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "ask <question...>",
		Short: "Ask the travel assistant a free-form question",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			question := strings.Join(args, " ")
			return withApp(cmd, factory, func(ctx context.Context, a *app) error {
				answer, err := a.assistant.Ask(ctx, question)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout())
				fmt.Fprint(cmd.OutOrStdout(), cli.RenderAnswer(question, answer))
				return nil
			})
		},
	}
}

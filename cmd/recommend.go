package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Nour-Al-Hazzouri/majorly/internal/results"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Rank majors against a Tier-1 assessment",
	Run: func(cmd *cobra.Command, _ []string) {
		recommend(cmd)
	},
}

func init() {
	rootCmd.AddCommand(recommendCmd)

	recommendCmd.Flags().BoolP("auto-approve", "y", false, "print the results and exit without the action menu")
	recommendCmd.Flags().Bool("show-dismissed", false, "do not exclude candidates listed in the dismiss file")
}

func recommend(cmd *cobra.Command) {
	ctx := context.Background()

	s := newSession(cmd.Name())

	candidates, err := s.filter(ctx, cmd, results.TierRecommend, s.catalog.MajorCandidates())
	if err != nil {
		s.logger.Fatal("filtering failed", zap.Error(err))
	}

	if candidates.Len() == 0 {
		s.logger.Info("exiting", zap.String("reason", "no majors left after filters"))
		return
	}

	responses, err := s.responses(true)
	if err != nil {
		s.logger.Fatal("getting responses", zap.Error(err))
	}

	if err := s.validator.Responses(responses); err != nil {
		s.logger.Fatal("responses are invalid", zap.Error(err))
	}

	ranked := s.engine.Recommend(candidates.Items, responses.UserResponses())

	res := results.New(results.TierRecommend, "", s.engine.Config().Weights, ranked)
	review(cmd, s.logger, res, s.config.ExcludeFile)
}

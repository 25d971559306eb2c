package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Nour-Al-Hazzouri/majorly/internal/questionnaire"
	"github.com/Nour-Al-Hazzouri/majorly/internal/results"
)

var deepDiveCmd = &cobra.Command{
	Use:   "deep-dive",
	Short: "Rank the specializations and occupations of one major",
	Run: func(cmd *cobra.Command, _ []string) {
		deepDive(cmd)
	},
}

func init() {
	rootCmd.AddCommand(deepDiveCmd)

	deepDiveCmd.Flags().String("major", "", "major id to dive into")
	deepDiveCmd.Flags().BoolP("auto-approve", "y", false, "print the results and exit without the action menu")
	deepDiveCmd.Flags().Bool("show-dismissed", false, "do not exclude candidates listed in the dismiss file")

	deepDiveCmd.MarkFlagRequired("major")
}

func deepDive(cmd *cobra.Command) {
	ctx := context.Background()

	s := newSession(cmd.Name())

	majorID := cmd.Flag("major").Value.String()
	major := s.catalog.FindMajor(majorID)
	if major == nil {
		s.logger.Fatal("major with given id not found",
			zap.Strings("existed majors ids", s.catalog.MajorIDs()),
			zap.String("major id", majorID),
		)
	}

	scale := s.engine.Config().Scale

	candidates, err := s.filter(ctx, cmd, results.TierDeepDive, major.DeepDive(scale))
	if err != nil {
		s.logger.Fatal("filtering failed", zap.Error(err))
	}

	if candidates.Len() == 0 {
		s.logger.Info("exiting", zap.String("reason", "no specializations or occupations left after filters"))
		return
	}

	responses, err := s.responses(false)
	if err != nil {
		s.logger.Fatal("getting responses", zap.Error(err))
	}

	if len(responses.Ratings) == 0 {
		qs := major.DeepDiveQuestions()
		s.logger.Info("starting the deep-dive questionnaire", zap.Int("questions", len(qs)))

		collector := questionnaire.New(questionnaire.PromptSelect, scale, s.logger)
		responses.Ratings, err = collector.CollectDeepDive(qs)
		if err != nil {
			s.logger.Fatal("collecting answers", zap.Error(err))
		}
	}

	if err := s.validator.Responses(responses); err != nil {
		s.logger.Fatal("responses are invalid", zap.Error(err))
	}

	ranked := s.engine.DeepDive(candidates.Items, responses.Ratings)

	res := results.New(results.TierDeepDive, major.ID, s.engine.Config().DeepDiveWeights, ranked)
	review(cmd, s.logger, res, s.config.ExcludeFile)
}

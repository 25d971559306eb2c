package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Nour-Al-Hazzouri/majorly/internal/logger"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Print the deep-dive questions of one major",
	Run: func(cmd *cobra.Command, _ []string) {
		printQuestions(cmd)
	},
}

func init() {
	rootCmd.AddCommand(questionsCmd)

	questionsCmd.Flags().String("major", "", "major id")
	questionsCmd.MarkFlagRequired("major")
}

func printQuestions(cmd *cobra.Command) {
	s := newSession(cmd.Name())

	majorID := cmd.Flag("major").Value.String()
	major := s.catalog.FindMajor(majorID)
	if major == nil {
		s.logger.Fatal("major with given id not found",
			zap.Strings("existed majors ids", s.catalog.MajorIDs()),
			zap.String("major id", majorID),
		)
	}

	qs := major.DeepDiveQuestions()
	s.logger.Info("deep-dive questions", zap.String(logger.FieldMajor, major.ID), zap.Int("count", len(qs)))

	for _, q := range qs {
		fmt.Printf("%s\t%s\n", q.ID, q.Text)
	}
}

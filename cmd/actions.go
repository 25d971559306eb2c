package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Nour-Al-Hazzouri/majorly/internal/catalog"
	"github.com/Nour-Al-Hazzouri/majorly/internal/logger"
	"github.com/Nour-Al-Hazzouri/majorly/internal/results"
	"github.com/Nour-Al-Hazzouri/majorly/internal/utils"
)

const (
	PromptShow            = "Show results"
	PromptExplain         = "Explain a result"
	PromptAppendToDismiss = "Dismiss all shown results"
	PromptResultsToFile   = "Dump results to file"
	PromptExit            = "Exit"
	PromptBack            = "back"

	maxReasonLogLength = 160
)

var errExit = errors.New("exit requested")

// review shows the ranked results and, unless auto-approve is set, offers the
// action menu until the user exits.
func review(cmd *cobra.Command, log *zap.Logger, res *results.Results, dismissFile string) {
	log = logger.WithRunFields(log, res.RunID, res.Tier, res.Major)

	if res.Len() == 0 {
		log.Info("exiting", zap.String("reason", "no candidates left to rank"))
		return
	}

	showResults(log, res)

	if cmd.Flag("auto-approve").Value.String() == "true" {
		return
	}

	items := []string{PromptShow, PromptExplain, PromptResultsToFile}
	if dismissFile != "" {
		items = append(items, PromptAppendToDismiss)
	}
	items = append(items, PromptExit)

	prompt := promptui.Select{
		Label: "What next?",
		Items: items,
	}

	for {
		_, action, err := prompt.Run()
		if err != nil {
			log.Fatal("exiting", zap.Error(err))
		}

		if err := handleAction(action, log, res, dismissFile); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			log.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleAction(action string, log *zap.Logger, res *results.Results, dismissFile string) error {
	switch action {
	case PromptShow:
		showResults(log, res)
		return nil
	case PromptExplain:
		return explain(res)
	case PromptResultsToFile:
		filename, err := res.DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump results to file: %w", err)
		}
		log.Info("dumping result to file", zap.String("filename", filename))
		return nil
	case PromptAppendToDismiss:
		if err := dismiss(res, dismissFile); err != nil {
			return err
		}
		log.Info("appended to dismiss file", zap.String("filename", dismissFile), zap.Int("count", res.Len()))
		res.Exclude(res.IDs())
		return errExit
	case PromptExit:
		log.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func showResults(log *zap.Logger, res *results.Results) {
	log.Info("current list of results", zap.Int("count", res.Len()))

	for _, item := range res.Items {
		fields := append(logger.ResultFields(item), zap.String("reasoning", utils.JoinForLog(item.Reasoning, maxReasonLogLength)))
		log.Debug("result", fields...)
	}

	fmt.Println(strings.Join(res.Lines(), "\n"))
}

func explain(res *results.Results) error {
	for {
		resultPrompt := promptui.Select{
			Label: "Choose a result and press ENTER",
			Items: append(res.Lines(), PromptBack),
		}

		idx, selected, err := resultPrompt.Run()
		if err != nil {
			return err
		}

		if selected == PromptBack {
			return nil
		}

		text, err := res.Explain(res.Items[idx].CandidateID)
		if err != nil {
			return err
		}
		fmt.Print(text)
	}
}

func dismiss(res *results.Results, dismissFile string) error {
	dismissed, err := catalog.GetDismissedFromFile(dismissFile)
	if err != nil {
		return err
	}

	dismissed.Append(catalog.Dismiss(res.Items, res.Tier, time.Now()))

	return dismissed.ToFile(dismissFile)
}

package cmd

import (
	"context"
	"fmt"
	"log"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/Nour-Al-Hazzouri/majorly/internal/catalog"
	"github.com/Nour-Al-Hazzouri/majorly/internal/engine"
	"github.com/Nour-Al-Hazzouri/majorly/internal/filtering"
	"github.com/Nour-Al-Hazzouri/majorly/internal/logger"
	"github.com/Nour-Al-Hazzouri/majorly/internal/questionnaire"
	"github.com/Nour-Al-Hazzouri/majorly/internal/validation"
)

// session is what every scoring command needs before it can rank.
type session struct {
	logger    *zap.Logger
	config    *Config
	catalog   *catalog.Catalog
	engine    *engine.Engine
	validator *validation.Validator
}

// newSession builds the logger, reads the config and loads a valid catalog.
// It exits on any failure.
func newSession(command string) *session {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"), command)
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	if config == nil {
		logger.Fatal("config is required")
	}

	logger.Info("starting the majorly", zap.String("version", version), zap.String("command", command))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	eng, err := engine.New(config.Engine)
	if err != nil {
		logger.Fatal("invalid engine configuration", zap.Error(err))
	}

	validator, err := validation.New(config.Engine.Scale)
	if err != nil {
		logger.Fatal("creating a validator", zap.Error(err))
	}

	if strings.TrimSpace(config.Catalog) == "" {
		logger.Fatal("catalog is required",
			zap.String("hint", "set MAJORLY_CATALOG environment variable, the --catalog flag or the 'catalog' key in the configuration file"),
		)
	}

	cat, err := catalog.Load(config.Catalog)
	if err != nil {
		logger.Fatal("loading catalog", zap.Error(err))
	}

	if err := validator.Catalog(cat); err != nil {
		logger.Fatal("catalog is invalid", zap.String("catalog", config.Catalog), zap.Error(err))
	}

	logger.Info("catalog loaded",
		zap.Int("majors", len(cat.Majors)),
		zap.Int("skills", len(cat.Skills)),
		zap.Int("interests", len(cat.Interests)),
		zap.Int("strengths", len(cat.Strengths)),
	)

	return &session{
		logger:    logger,
		config:    config,
		catalog:   cat,
		engine:    eng,
		validator: validator,
	}
}

// filter prunes candidates with the configured exclusions and dismiss file.
func (s *session) filter(ctx context.Context, cmd *cobra.Command, tier string, candidates *catalog.Candidates) (*catalog.Candidates, error) {
	showDismissed := false
	if cmd != nil {
		flag := cmd.Flag("show-dismissed")
		if flag != nil && strings.EqualFold(flag.Value.String(), "true") {
			showDismissed = true
		}
	}

	steps := []filtering.Filter{
		filtering.NewExcluded(),
		filtering.NewDismissFile(showDismissed),
		filtering.NewEmptyProfile(),
	}

	if !s.config.DropEmptyProfiles {
		filtering.DisableByName(steps, "empty_profile", "drop-empty-profiles is not set")
	}

	cfg := &filtering.Config{
		Excluded:    s.config.Exclude,
		DismissFile: s.config.ExcludeFile,
		Tier:        tier,
	}

	left, report, err := filtering.Run(ctx, cfg, filtering.Deps{Logger: s.logger}, steps, candidates)
	if err != nil {
		return nil, err
	}

	s.logger.Info("filtering finished", zap.Int("dropped", report.Dropped()), zap.Int("left", left.Len()))

	for _, status := range filtering.Describe(steps) {
		s.logger.Debug("filter status",
			zap.String("name", status.Name),
			zap.Bool("enabled", status.Enabled),
			zap.String("reason", status.Reason),
			zap.Any("details", status.Details),
		)
	}

	return left, nil
}

// responses loads the responses file, or asks the Tier-1 questionnaire when
// no file is configured.
func (s *session) responses(tier1 bool) (*catalog.Responses, error) {
	if path := strings.TrimSpace(s.config.Responses); path != "" {
		r, err := catalog.LoadResponses(path)
		if err != nil {
			return nil, err
		}
		s.logger.Info("responses loaded", zap.String("responses", path))
		return r, nil
	}

	if !tier1 {
		return &catalog.Responses{}, nil
	}

	collector := questionnaire.New(questionnaire.PromptSelect, s.config.Engine.Scale, s.logger)
	return collector.CollectTier1(s.catalog)
}

package logger

import (
	"strings"

	"go.uber.org/zap"

	"github.com/Nour-Al-Hazzouri/majorly/internal/engine"
)

const (
	// FieldTier is the structured log field key for the assessment tier.
	FieldTier = "tier"
	// FieldMajor is the structured log field key for the major a deep-dive is scoped to.
	FieldMajor = "major_id"
	// FieldRunID is the structured log field key for one scoring run.
	FieldRunID = "run_id"
	// FieldCandidate is the structured log field key for a candidate identifier.
	FieldCandidate = "candidate_id"
)

// StringField describes a string-valued structured logging field.
type StringField struct {
	Key   string
	Value string
}

// StringFields converts the provided key/value pairs into zap fields, trimming
// whitespace and omitting entries with empty keys or values.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		if key == "" {
			continue
		}

		value := strings.TrimSpace(field.Value)
		if value == "" {
			continue
		}

		result = append(result, zap.String(key, value))
	}

	return result
}

// WithFields safely attaches the provided fields to the logger.
// If the logger is nil or no fields are supplied, the input logger is returned
// unchanged, defaulting to a no-op logger when nil.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// RunFields returns the fields that identify one scoring run.
// Empty values are ignored to keep log entries compact when information is missing.
func RunFields(runID, tier, major string) []zap.Field {
	return StringFields(
		StringField{Key: FieldRunID, Value: runID},
		StringField{Key: FieldTier, Value: tier},
		StringField{Key: FieldMajor, Value: major},
	)
}

// WithRunFields attaches the run fields to the provided logger.
func WithRunFields(logger *zap.Logger, runID, tier, major string) *zap.Logger {
	return WithFields(logger, RunFields(runID, tier, major)...)
}

// ResultFields describes a ranked result.
func ResultFields(r engine.MatchResult) []zap.Field {
	return []zap.Field{
		zap.Int("rank", r.Rank),
		zap.String(FieldCandidate, r.CandidateID),
		zap.Float64("match_percentage", r.Rounded()),
		zap.Float64("skill_score", engine.Round2(r.Breakdown.Skill)),
		zap.Float64("interest_score", engine.Round2(r.Breakdown.Interest)),
		zap.Float64("strength_score", engine.Round2(r.Breakdown.Strength)),
		zap.Int("reasons", len(r.Reasoning)),
	}
}

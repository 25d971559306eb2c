package catalog

import (
	"fmt"
	"math"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/Nour-Al-Hazzouri/majorly/internal/engine"
)

// Responses is a completed assessment as written in a responses file.
// Ratings holds deep-dive answers keyed by question id.
type Responses struct {
	SkillsCurrent    []engine.SkillRef `mapstructure:"skills_current" validate:"dive,required"`
	SkillsAspiration []engine.SkillRef `mapstructure:"skills_aspiration" validate:"dive,required"`
	Interests        engine.RatingMap  `mapstructure:"interests" validate:"dive,keys,required,endkeys,rating"`
	Strengths        engine.RatingMap  `mapstructure:"strengths" validate:"dive,keys,required,endkeys,rating"`
	Ratings          engine.RatingMap  `mapstructure:"ratings" validate:"dive,keys,required,endkeys,rating"`
}

// LoadResponses reads a YAML responses file.
func LoadResponses(path string) (*Responses, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading responses %q: %w", path, err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing responses %q: %w", path, err)
	}

	return DecodeResponses(raw)
}

// DecodeResponses converts loosely typed input into Responses. Ratings given
// as strings ("4") or whole floats (4.0) are accepted; fractions, booleans
// and empty strings are rejected.
func DecodeResponses(raw map[string]any) (*Responses, error) {
	var r Responses

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:  mapstructure.DecodeHookFuncType(wholeRatingHook),
		ErrorUnused: true,
		Result:      &r,
	})
	if err != nil {
		return nil, err
	}

	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("decoding responses: %w", err)
	}

	return &r, nil
}

// wholeRatingHook turns every value bound for an int into a whole number or
// fails.
func wholeRatingHook(_ reflect.Type, to reflect.Type, data any) (any, error) {
	if to.Kind() != reflect.Int {
		return data, nil
	}

	switch v := data.(type) {
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return nil, fmt.Errorf("rating %q is not a whole number", v)
		}
		return n, nil
	case float64:
		if v != math.Trunc(v) {
			return nil, fmt.Errorf("rating %v is not a whole number", v)
		}
		return int(v), nil
	case float32:
		if float64(v) != math.Trunc(float64(v)) {
			return nil, fmt.Errorf("rating %v is not a whole number", v)
		}
		return int(v), nil
	case bool:
		return nil, fmt.Errorf("rating %v is not a number", v)
	default:
		return data, nil
	}
}

// UserResponses returns the Tier-1 answers with normalized skill ids.
func (r *Responses) UserResponses() engine.UserResponses {
	return engine.UserResponses{
		SkillsCurrent:    normalizeSkills(r.SkillsCurrent),
		SkillsAspiration: normalizeSkills(r.SkillsAspiration),
		Interests:        r.Interests,
		Strengths:        r.Strengths,
	}
}

func normalizeSkills(refs []engine.SkillRef) []engine.SkillRef {
	if refs == nil {
		return nil
	}

	result := make([]engine.SkillRef, 0, len(refs))
	for _, ref := range refs {
		result = append(result, engine.NormalizeSkillRef(ref))
	}
	return result
}

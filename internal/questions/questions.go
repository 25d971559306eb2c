// Package questions builds the deep-dive questionnaire for a major: curated
// category questions plus situational questions generated from occupation
// task statements.
package questions

import (
	"fmt"
	"strings"
	"unicode"
)

const situationalTemplate = "How much would you enjoy %s?"

// Question is one rated prompt. Its ID is the key used in rating maps.
type Question struct {
	ID       string `json:"id" yaml:"id" validate:"required"`
	Text     string `json:"text" yaml:"text" validate:"required"`
	Category string `json:"category,omitempty" yaml:"category,omitempty"`
}

// TaskQuestionID is the identifier of the n-th (1-based) generated question
// for an occupation.
func TaskQuestionID(occupationID string, n int) string {
	return fmt.Sprintf("%s/task-%d", occupationID, n)
}

// Situational turns each task statement into a question. Empty tasks are
// skipped but still consume their index so ids stay stable.
func Situational(occupationID string, tasks []string) []Question {
	result := make([]Question, 0, len(tasks))
	for i, task := range tasks {
		phrase := Phrase(task)
		if phrase == "" {
			continue
		}

		result = append(result, Question{
			ID:       TaskQuestionID(occupationID, i+1),
			Text:     fmt.Sprintf(situationalTemplate, phrase),
			Category: "situational",
		})
	}
	return result
}

// Phrase keeps the first clause of a task statement and rewrites its leading
// verb as a gerund: "Conduct research, analyze data." -> "conducting research".
func Phrase(task string) string {
	clause := firstClause(task)
	if clause == "" {
		return ""
	}

	verb, rest, _ := strings.Cut(clause, " ")
	phrase := Gerund(verb)
	if rest = strings.TrimSpace(rest); rest != "" {
		phrase += " " + rest
	}
	return phrase
}

func firstClause(task string) string {
	task = strings.TrimSpace(task)
	if idx := strings.IndexAny(task, ",;:."); idx != -1 {
		task = task[:idx]
	}
	return strings.Join(strings.Fields(task), " ")
}

// Gerund returns the present participle of a verb in lower case.
func Gerund(verb string) string {
	v := strings.ToLower(strings.TrimSpace(verb))
	if v == "" || (len(v) > 5 && strings.HasSuffix(v, "ing")) {
		return v
	}
	if len(v) <= 2 {
		return v + "ing"
	}

	switch {
	case strings.HasSuffix(v, "ie"):
		return strings.TrimSuffix(v, "ie") + "ying"
	case strings.HasSuffix(v, "e") && !strings.HasSuffix(v, "ee") &&
		!strings.HasSuffix(v, "ye") && !strings.HasSuffix(v, "oe"):
		return strings.TrimSuffix(v, "e") + "ing"
	case doublesFinal(v):
		return v + v[len(v)-1:] + "ing"
	default:
		return v + "ing"
	}
}

// stressedFinal lists longer verbs stressed on the last syllable. Their final
// consonant doubles like in short verbs; stress cannot be derived from
// spelling, so verbs outside this list keep a single consonant.
var stressedFinal = map[string]bool{
	"admit":    true,
	"begin":    true,
	"commit":   true,
	"compel":   true,
	"control":  true,
	"equip":    true,
	"forget":   true,
	"occur":    true,
	"omit":     true,
	"patrol":   true,
	"permit":   true,
	"prefer":   true,
	"refer":    true,
	"regret":   true,
	"submit":   true,
	"transfer": true,
}

// doublesFinal reports consonant-vowel-consonant verbs whose final consonant
// doubles: short ones (plan, run, set) and the stressedFinal list.
func doublesFinal(v string) bool {
	if stressedFinal[v] {
		return true
	}

	r := []rune(v)
	n := len(r)
	if n < 3 || n > 4 {
		return false
	}

	last, mid, before := r[n-1], r[n-2], r[n-3]
	if !isConsonant(last) || strings.ContainsRune("wxy", last) {
		return false
	}
	if !isVowel(mid) || !isConsonant(before) {
		return false
	}

	vowels := 0
	for _, c := range r {
		if isVowel(c) {
			vowels++
		}
	}
	return vowels == 1
}

func isVowel(r rune) bool {
	return strings.ContainsRune("aeiou", r)
}

func isConsonant(r rune) bool {
	return unicode.IsLetter(r) && !isVowel(r)
}

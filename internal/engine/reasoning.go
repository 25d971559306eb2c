package engine

// Reasoning strings attached to match results.
const (
	ReasonStrongSkills = "Strong alignment with your current and target skills."
	ReasonSomeSkills   = "Matches some of your core abilities."
	ReasonInterests    = "Highly aligns with your academic and career interests."
	ReasonStrengths    = "Greatly suits your personal strengths."
)

// Reasons explains a breakdown. Rules are checked in a fixed order and only
// the two skill rules exclude each other.
func Reasons(b ScoreBreakdown, t Thresholds) []string {
	reasons := make([]string, 0, 3)

	switch {
	case b.Skill >= t.StrongSkill:
		reasons = append(reasons, ReasonStrongSkills)
	case b.Skill >= t.SomeSkill:
		reasons = append(reasons, ReasonSomeSkills)
	}

	if b.Interest >= t.Interest {
		reasons = append(reasons, ReasonInterests)
	}

	if b.Strength >= t.Strength {
		reasons = append(reasons, ReasonStrengths)
	}

	return reasons
}

package ledger

// Inputs are the three preference signals of one assessment.
type Inputs struct {
	CareerGoal        bool
	SkillLevel        bool
	EducationPriority bool
}

// Weights parameterize the guidance score derivation. Variants of the
// deployment tune these; the stock table is 50 + 15/20/15.
type Weights struct {
	Base           int
	GoalBonus      int
	SkillBonus     int
	EducationBonus int
}

// DefaultWeights returns the stock score table.
func DefaultWeights() Weights {
	return Weights{Base: 50, GoalBonus: 15, SkillBonus: 20, EducationBonus: 15}
}

// Score derives the guidance score for a set of inputs. Pure and
// deterministic; with the stock table the result is always in [50,100].
func (w Weights) Score(in Inputs) int {
	score := w.Base
	if in.CareerGoal {
		score += w.GoalBonus
	}
	if in.SkillLevel {
		score += w.SkillBonus
	}
	if in.EducationPriority {
		score += w.EducationBonus
	}
	return score
}

// Min and Max bound the scores this table can produce.
func (w Weights) Min() int { return w.Base }

func (w Weights) Max() int {
	return w.Base + w.GoalBonus + w.SkillBonus + w.EducationBonus
}

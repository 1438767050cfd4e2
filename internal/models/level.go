package models

import "strings"

const (
	LevelBeginner     = "Beginner"
	LevelJunior       = "Junior"
	LevelIntermediate = "Intermediate"
)

var (
	noExperienceHints   = []string{"no", "cero", "0", "nada", "none"}
	someExperienceHints = []string{"junior", "algo", "poco", "some", "little"}
)

// ClassifyLevel maps free-text experience to a level by substring matching.
// It is a heuristic: "algo de experiencia pero cero en esto" reads as
// Beginner because the no-experience hints are checked first.
func ClassifyLevel(experience string) string {
	e := strings.ToLower(experience)
	switch {
	case containsAny(e, noExperienceHints):
		return LevelBeginner
	case containsAny(e, someExperienceHints):
		return LevelJunior
	default:
		return LevelIntermediate
	}
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}

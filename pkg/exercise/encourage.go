package exercise

import "fmt"

// SetSize is the number of cycles that make up one set.
const SetSize = 5

// Encouragement returns the message shown after a completed cycle, if any.
// A message appears every SetSize cycles.
func Encouragement(cycles int) (string, bool) {
	if cycles <= 0 || cycles%SetSize != 0 {
		return "", false
	}
	switch cycles {
	case SetSize:
		return "Great job! You've completed your first set.", true
	case 2 * SetSize:
		return "Amazing! You've completed two sets. Keep going!", true
	}
	return fmt.Sprintf("Wonderful! You've completed %d sets.", cycles/SetSize), true
}

// SetProgress is how many cycles of the current set are done, from 0 to
// SetSize. A just-finished set shows as full.
func SetProgress(cycles int) int {
	switch {
	case cycles <= 0:
		return 0
	case cycles%SetSize == 0:
		return SetSize
	}
	return cycles % SetSize
}

package matching

import (
	"strings"
)

// Urgency buckets a free-text urgency answer into one of three levels.
type Urgency string

// Urgency levels, from most to least acute.
const (
	UrgencyEmergency Urgency = "emergency"
	UrgencyUrgent    Urgency = "urgent"
	UrgencyRoutine   Urgency = "routine"
)

// ClassifyUrgency buckets an urgency answer by keyword containment. Any
// text mentioning "emergency" is an emergency, "urgent" is urgent, and
// everything else (including empty input) is routine.
func ClassifyUrgency(text string) Urgency {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "emergency"):
		return UrgencyEmergency
	case strings.Contains(lower, "urgent"):
		return UrgencyUrgent
	default:
		return UrgencyRoutine
	}
}

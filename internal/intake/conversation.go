// Package intake implements the scripted conversational intake: a finite
// state machine that collects what the user needs, their insurance,
// preferred location and urgency, then hands the derived criteria to the
// matcher.
package intake

import (
	"errors"
	"strings"

	"github.com/jonathan/care-finder/internal/matching"
	"github.com/jonathan/care-finder/internal/types"
)

// Step identifies the current state of the conversation.
type Step string

// Conversation steps, in transition order. Transitions are linear; the only
// backward edge is the explicit restart from ShowingResults.
const (
	StepGreeting            Step = "greeting"
	StepCollectingSymptoms  Step = "symptoms"
	StepCollectingInsurance Step = "insurance"
	StepCollectingLocation  Step = "location"
	StepCollectingUrgency   Step = "urgency"
	StepShowingResults      Step = "results"
)

// MaxResults is the presentation cap applied to the final result turn. The
// matcher itself is uncapped.
const MaxResults = 5

// ErrEmptyAnswer is returned when an answer carries no text. Blank answers
// never advance the conversation.
var ErrEmptyAnswer = errors.New("intake: answer must not be empty")

// Turn is one assistant turn: a message, optionally a fixed option set,
// and optionally a ranked provider result list.
type Turn struct {
	Message   string           `json:"message"`
	Options   []string         `json:"options,omitempty"`
	Providers []types.Provider `json:"providers,omitempty"`
}

// Conversation holds the state of one intake session. It is owned by a
// single session and mutated only by discrete user events; it is not safe
// for concurrent use and is never persisted.
type Conversation struct {
	providers []types.Provider

	step      Step
	need      string
	insurance string
	location  string
	urgency   string
}

// New creates a conversation at the Greeting step over the given candidate
// provider collection.
func New(providers []types.Provider) *Conversation {
	return &Conversation{providers: providers, step: StepGreeting}
}

// Step returns the current conversation step.
func (c *Conversation) Step() Step {
	return c.step
}

// Greeting returns the opening assistant turn. It does not change state.
func (c *Conversation) Greeting() Turn {
	return Turn{Message: greetingMessage, Options: greetingOptions}
}

// Advance feeds one user answer into the conversation and returns the next
// assistant turn. Any non-empty string is accepted; a wrong or ambiguous
// answer only shows up as a poor match set at the end, never as an error.
func (c *Conversation) Advance(answer string) (Turn, error) {
	if strings.TrimSpace(answer) == "" {
		return Turn{}, ErrEmptyAnswer
	}

	switch c.step {
	case StepGreeting:
		c.need = answer
		c.step = StepCollectingSymptoms
		return Turn{Message: insuranceMessage, Options: insuranceOptions}, nil

	case StepCollectingSymptoms:
		c.insurance = answer
		c.step = StepCollectingInsurance
		return Turn{Message: locationMessage, Options: locationOptions}, nil

	case StepCollectingInsurance:
		c.location = answer
		c.step = StepCollectingLocation
		return Turn{Message: urgencyMessage, Options: urgencyOptions}, nil

	case StepCollectingLocation:
		c.urgency = answer
		c.step = StepCollectingUrgency
		return c.complete(), nil

	case StepShowingResults:
		if isRestart(answer) {
			c.Reset()
			return c.Greeting(), nil
		}
		return Turn{Message: restartMessage, Options: restartOptions}, nil

	default:
		// CollectingUrgency is transient: complete() moves straight to
		// ShowingResults, so an answer here means restart handling.
		return Turn{Message: restartMessage, Options: restartOptions}, nil
	}
}

// complete derives criteria from the four collected answers, runs the
// matcher and produces the result turn. Always transitions to
// ShowingResults, even on an empty match set.
func (c *Conversation) complete() Turn {
	matched := matching.Match(c.providers, c.Criteria())
	c.step = StepShowingResults

	if len(matched) == 0 {
		return Turn{Message: noResultsMessage}
	}
	if len(matched) > MaxResults {
		matched = matched[:MaxResults]
	}

	return Turn{Message: resultsMessage(c.urgency), Providers: matched}
}

// Criteria returns the match criteria derived from the answers collected so
// far. Unfilled answers are inactive criteria.
func (c *Conversation) Criteria() matching.Criteria {
	return matching.Criteria{
		Need:        c.need,
		Insurance:   c.insurance,
		Location:    c.location,
		UrgencyText: c.urgency,
	}
}

// Reset returns the conversation to Greeting and discards all answers.
func (c *Conversation) Reset() {
	c.step = StepGreeting
	c.need = ""
	c.insurance = ""
	c.location = ""
	c.urgency = ""
}

// resultsMessage selects the explanatory preamble for the result turn based
// on the urgency bucket.
func resultsMessage(urgencyText string) string {
	switch matching.ClassifyUrgency(urgencyText) {
	case matching.UrgencyEmergency:
		return emergencyResultsMessage
	case matching.UrgencyUrgent:
		return urgentResultsMessage
	default:
		return routineResultsMessage
	}
}

func isRestart(answer string) bool {
	return strings.Contains(strings.ToLower(answer), "start over")
}

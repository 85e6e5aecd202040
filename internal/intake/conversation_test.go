package intake

import (
	"fmt"
	"testing"

	"github.com/jonathan/care-finder/internal/taxonomy"
	"github.com/jonathan/care-finder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scenarioProviders builds the ten-provider fixture: two Hospitals in
// Utica, one Urgent Care in Utica, seven others elsewhere or in other
// categories.
func scenarioProviders() []types.Provider {
	providers := []types.Provider{
		{ID: "hosp-utica-1", Name: "St. Elizabeth Medical Center", Category: taxonomy.CategoryHospital, Location: "Utica"},
		{ID: "hosp-utica-2", Name: "Faxton St. Luke's", Category: taxonomy.CategoryHospital, Location: "Utica"},
		{ID: "uc-utica", Name: "Utica Urgent Care", Category: taxonomy.CategoryUrgentCare, Location: "Utica"},
		{ID: "hosp-rome", Name: "Rome Health", Category: taxonomy.CategoryHospital, Location: "Rome"},
		{ID: "uc-rome", Name: "Rome Urgent Care", Category: taxonomy.CategoryUrgentCare, Location: "Rome"},
	}
	for i := 0; i < 5; i++ {
		providers = append(providers, types.Provider{
			ID:       fmt.Sprintf("pc-%d", i),
			Name:     fmt.Sprintf("Primary Care %d", i),
			Category: taxonomy.CategoryPrimaryCare,
			Location: "Oneida",
		})
	}
	return providers
}

func TestConversation_GreetingTurn(t *testing.T) {
	c := New(nil)
	assert.Equal(t, StepGreeting, c.Step())

	turn := c.Greeting()
	assert.Contains(t, turn.Message, "What brings you here today?")
	assert.Len(t, turn.Options, 4)
	// Greeting does not change state
	assert.Equal(t, StepGreeting, c.Step())
}

func TestConversation_LinearTransitions(t *testing.T) {
	c := New(scenarioProviders())

	turn, err := c.Advance("I need urgent care")
	require.NoError(t, err)
	assert.Equal(t, StepCollectingSymptoms, c.Step())
	assert.Contains(t, turn.Message, "what insurance do you have?")
	assert.Contains(t, turn.Options, "No insurance")

	turn, err = c.Advance("No insurance")
	require.NoError(t, err)
	assert.Equal(t, StepCollectingInsurance, c.Step())
	assert.Contains(t, turn.Message, "Where would you prefer to receive care?")
	assert.Contains(t, turn.Options, "Anywhere in Oneida County")

	turn, err = c.Advance("Utica")
	require.NoError(t, err)
	assert.Equal(t, StepCollectingLocation, c.Step())
	assert.Contains(t, turn.Message, "When do you need to be seen?")

	turn, err = c.Advance("Routine - Flexible timing")
	require.NoError(t, err)
	assert.Equal(t, StepShowingResults, c.Step())
	assert.NotEmpty(t, turn.Message)
}

func TestConversation_AnyNonEmptyAnswerAdvancesFromGreeting(t *testing.T) {
	for _, answer := range []string{"x", "I broke my arm", "Mental health support", "???"} {
		c := New(nil)
		_, err := c.Advance(answer)
		require.NoError(t, err)
		assert.Equal(t, StepCollectingSymptoms, c.Step())
	}
}

func TestConversation_EmptyAnswerDoesNotAdvance(t *testing.T) {
	c := New(nil)

	_, err := c.Advance("")
	assert.ErrorIs(t, err, ErrEmptyAnswer)
	assert.Equal(t, StepGreeting, c.Step())

	_, err = c.Advance("   ")
	assert.ErrorIs(t, err, ErrEmptyAnswer)
	assert.Equal(t, StepGreeting, c.Step())
}

func TestConversation_EndToEndUrgentScenario(t *testing.T) {
	c := New(scenarioProviders())

	answers := []string{
		"I need urgent care",
		"No insurance",
		"Utica",
		"Urgent - Today or tomorrow",
	}

	var turn Turn
	var err error
	for _, answer := range answers {
		turn, err = c.Advance(answer)
		require.NoError(t, err)
	}

	require.Equal(t, StepShowingResults, c.Step())
	assert.Contains(t, turn.Message, "urgent care facilities")

	// Urgent keeps hospitals and urgent care in Utica only; "urgent" does
	// not trigger the hospital-first partition, so input order is kept.
	ids := make([]string, 0, len(turn.Providers))
	for _, p := range turn.Providers {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"hosp-utica-1", "hosp-utica-2", "uc-utica"}, ids)
}

func TestConversation_EmergencyPreambleAndPartition(t *testing.T) {
	providers := []types.Provider{
		{ID: "uc", Name: "Urgent Care", Category: taxonomy.CategoryUrgentCare, Location: "Utica", Specialties: []string{"Emergency Walk-in"}},
		{ID: "hosp", Name: "Hospital", Category: taxonomy.CategoryHospital, Location: "Utica"},
	}
	c := New(providers)

	for _, answer := range []string{"chest pain", "No insurance", "Utica"} {
		_, err := c.Advance(answer)
		require.NoError(t, err)
	}
	turn, err := c.Advance("Emergency - Right now")
	require.NoError(t, err)

	assert.Contains(t, turn.Message, "911")
	require.Len(t, turn.Providers, 2)
	assert.Equal(t, "hosp", turn.Providers[0].ID)
}

func TestConversation_ResultsCappedAtFive(t *testing.T) {
	providers := make([]types.Provider, 0, 12)
	for i := 0; i < 12; i++ {
		providers = append(providers, types.Provider{
			ID:       fmt.Sprintf("pc-%d", i),
			Name:     fmt.Sprintf("Primary Care %d", i),
			Category: taxonomy.CategoryPrimaryCare,
			Location: "Utica",
		})
	}
	c := New(providers)

	for _, answer := range []string{"Routine checkup", "No insurance", "Anywhere in Oneida County"} {
		_, err := c.Advance(answer)
		require.NoError(t, err)
	}
	turn, err := c.Advance("Routine - Flexible timing")
	require.NoError(t, err)

	assert.Len(t, turn.Providers, MaxResults)
}

func TestConversation_NoResultsMessage(t *testing.T) {
	c := New(scenarioProviders())

	for _, answer := range []string{"Mental health support", "No insurance", "Utica"} {
		_, err := c.Advance(answer)
		require.NoError(t, err)
	}
	turn, err := c.Advance("Routine - Flexible timing")
	require.NoError(t, err)

	assert.Empty(t, turn.Providers)
	assert.Contains(t, turn.Message, "No providers found")
}

func TestConversation_RestartDiscardsAnswers(t *testing.T) {
	c := New(scenarioProviders())

	for _, answer := range []string{"I need urgent care", "Medicaid", "Utica", "Urgent - Today or tomorrow"} {
		_, err := c.Advance(answer)
		require.NoError(t, err)
	}
	require.Equal(t, StepShowingResults, c.Step())

	// A non-restart answer stays at results
	_, err := c.Advance("thanks")
	require.NoError(t, err)
	assert.Equal(t, StepShowingResults, c.Step())

	// The restart action returns to Greeting and clears every answer
	turn, err := c.Advance("Yes, start over")
	require.NoError(t, err)
	assert.Equal(t, StepGreeting, c.Step())
	assert.Contains(t, turn.Message, "What brings you here today?")
	assert.True(t, c.Criteria().IsEmpty(), "criteria derived after restart must not contain stale answers")
}

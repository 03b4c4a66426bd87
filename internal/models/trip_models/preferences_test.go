package trip_models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizedAppliesDefaults(t *testing.T) {
	p := Preferences{Destination: " Kyoto ", DurationDays: 3}.Normalized()

	assert.Equal(t, "Kyoto", p.Destination)
	assert.Equal(t, DefaultInterests, p.Interests)
	assert.Equal(t, BudgetMedium, p.Budget)
	assert.Equal(t, StyleModerate, p.TravelStyle)
}

func TestNormalizedCleansInterests(t *testing.T) {
	p := Preferences{
		Destination:  "Kyoto",
		DurationDays: 3,
		Interests:    []string{" Food ", "TEMPLES", "  ", ""},
	}.Normalized()

	assert.Equal(t, []string{"food", "temples"}, p.Interests)
}

func TestNormalizedDoesNotMutateReceiver(t *testing.T) {
	original := Preferences{Destination: " Kyoto ", DurationDays: 3, Interests: []string{" Food "}}
	_ = original.Normalized()

	assert.Equal(t, " Kyoto ", original.Destination)
	assert.Equal(t, []string{" Food "}, original.Interests)
}

func TestStyleMultiplier(t *testing.T) {
	assert.Equal(t, 0.8, Preferences{TravelStyle: StyleRelaxed}.StyleMultiplier())
	assert.Equal(t, 1.0, Preferences{TravelStyle: StyleModerate}.StyleMultiplier())
	assert.Equal(t, 1.3, Preferences{TravelStyle: StylePacked}.StyleMultiplier())
	assert.Equal(t, 1.0, Preferences{}.StyleMultiplier())
}

func TestBudgetMultiplier(t *testing.T) {
	assert.Equal(t, 0.8, Preferences{Budget: BudgetLow}.BudgetMultiplier())
	assert.Equal(t, 1.0, Preferences{Budget: BudgetMedium}.BudgetMultiplier())
	assert.Equal(t, 1.4, Preferences{Budget: BudgetHigh}.BudgetMultiplier())
}

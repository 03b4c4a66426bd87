package pipeline

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripgenie/internal/models/trip_models"
	"tripgenie/internal/schema"
	"tripgenie/pkg/utils"
)

func testPrefs() trip_models.Preferences {
	return trip_models.Preferences{
		Destination:  "Kyoto",
		DurationDays: 3,
		Interests:    []string{"culture", "food"},
		StartDate:    "2026-09-06",
	}
}

// passStage returns a trivially succeeding stage that records its execution.
func passStage(name string, order *[]string) Stage {
	return &fakeStage{
		name: name,
		kind: KindDeterministic,
		run: func(_ context.Context, in Context) (Context, error) {
			*order = append(*order, name)
			return in, nil
		},
	}
}

func TestCoordinatorRunsStagesInOrder(t *testing.T) {
	var order []string
	stages := []Stage{
		passStage("validate", &order),
		passStage("explore", &order),
		&fakeStage{
			name: "plan",
			kind: KindDeterministic,
			run: func(_ context.Context, in Context) (Context, error) {
				order = append(order, "plan")
				in.Itinerary = testItinerary()
				return in, nil
			},
		},
	}

	c := NewCoordinator(stages, DefaultRetryPolicy(), time.Minute)
	result, err := c.Run(context.Background(), testPrefs())
	require.NoError(t, err)

	assert.Equal(t, []string{"validate", "explore", "plan"}, order)
	require.Len(t, result.Metadata.Stages, 3)
	assert.Equal(t, "validate", result.Metadata.Stages[0].Name)
	assert.Equal(t, OutcomeSucceeded, result.Metadata.Stages[0].Outcome)
	assert.Equal(t, "Kyoto", result.Itinerary.Destination)
}

func TestCoordinatorRejectsInvalidPreferencesBeforeAnyStage(t *testing.T) {
	var order []string
	c := NewCoordinator([]Stage{passStage("validate", &order)}, DefaultRetryPolicy(), time.Minute)

	cases := []trip_models.Preferences{
		{DurationDays: 3, Interests: []string{"food"}},                            // no destination
		{Destination: "Kyoto", DurationDays: 0, Interests: []string{"food"}},      // bad duration
		{Destination: "Kyoto", DurationDays: 31, Interests: []string{"food"}},     // over cap
		{Destination: "Kyoto", DurationDays: 3, Budget: trip_models.Budget("xx"), Interests: []string{"food"}}, // bad enum
	}
	for i, prefs := range cases {
		_, err := c.Run(context.Background(), prefs)
		var perr *Error
		require.ErrorAs(t, err, &perr, "case %d", i)
		assert.Equal(t, FailureInvalidInput, perr.Kind, "case %d", i)
	}
	assert.Empty(t, order, "no stage may run on invalid input")
}

func TestCoordinatorAppliesPreferenceDefaults(t *testing.T) {
	var got trip_models.Preferences
	stages := []Stage{&fakeStage{
		name: "probe",
		kind: KindDeterministic,
		run: func(_ context.Context, in Context) (Context, error) {
			got = in.Preferences
			in.Itinerary = testItinerary()
			return in, nil
		},
	}}

	c := NewCoordinator(stages, DefaultRetryPolicy(), time.Minute)
	_, err := c.Run(context.Background(), trip_models.Preferences{
		Destination:  "  Kyoto  ",
		DurationDays: 3,
		Interests:    []string{" Food ", "TEMPLES"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Kyoto", got.Destination)
	assert.Equal(t, []string{"food", "temples"}, got.Interests)
	assert.Equal(t, trip_models.BudgetMedium, got.Budget)
	assert.Equal(t, trip_models.StyleModerate, got.TravelStyle)
}

func TestCoordinatorShortCircuitsOnStageFailure(t *testing.T) {
	var order []string
	stages := []Stage{
		passStage("validate", &order),
		&fakeStage{
			name: "explore",
			kind: KindAPIDriven,
			run: func(_ context.Context, in Context) (Context, error) {
				order = append(order, "explore")
				return in, fmt.Errorf("%w: nothing matched", utils.ErrNoPlacesFound)
			},
		},
		passStage("rank", &order),
	}

	c := NewCoordinator(stages, DefaultRetryPolicy(), time.Minute)
	result, err := c.Run(context.Background(), testPrefs())
	assert.Nil(t, result)

	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, FailureNoResults, perr.Kind)
	assert.Equal(t, "explore", perr.Stage)
	assert.Equal(t, []string{"validate", "explore"}, order, "stages after a failure must not run")
}

func TestCoordinatorClassifiesProviderOutage(t *testing.T) {
	stages := []Stage{&fakeStage{
		name: "explore",
		kind: KindAPIDriven,
		run: func(_ context.Context, in Context) (Context, error) {
			return in, fmt.Errorf("%w: socket closed", utils.ErrProviderUnavailable)
		},
	}}

	c := NewCoordinator(stages, DefaultRetryPolicy(), time.Minute)
	_, err := c.Run(context.Background(), testPrefs())

	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, FailureUpstreamUnavailable, perr.Kind)
}

func TestCoordinatorTimeout(t *testing.T) {
	stages := []Stage{&fakeStage{
		name: "explore",
		kind: KindAPIDriven,
		run: func(ctx context.Context, in Context) (Context, error) {
			<-ctx.Done()
			return in, ctx.Err()
		},
	}}

	c := NewCoordinator(stages, DefaultRetryPolicy(), 10*time.Millisecond)
	_, err := c.Run(context.Background(), testPrefs())

	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, FailureTimeout, perr.Kind)
}

func TestCoordinatorValidatesDeterministicStageOutput(t *testing.T) {
	stages := []Stage{&fakeStage{
		name: "distance_filter",
		kind: KindComputational,
		out: schema.Schema{Fields: []schema.Field{
			{Path: "places", Kind: schema.List, Required: true, MinLen: 1},
		}},
		run: func(_ context.Context, in Context) (Context, error) {
			return in, nil // never sets places
		},
	}}

	c := NewCoordinator(stages, DefaultRetryPolicy(), time.Minute)
	_, err := c.Run(context.Background(), testPrefs())

	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, FailureGenerationFailed, perr.Kind)
	assert.Equal(t, "distance_filter", perr.Stage)
}

func TestCoordinatorSurfacesDegradedNotes(t *testing.T) {
	stages := []Stage{&fakeStage{
		name: "weather",
		kind: KindAPIDriven,
		run: func(_ context.Context, in Context) (Context, error) {
			in.Degraded = append(in.Degraded, "weather: forecast unavailable")
			in.Itinerary = testItinerary()
			return in, nil
		},
	}}

	c := NewCoordinator(stages, DefaultRetryPolicy(), time.Minute)
	result, err := c.Run(context.Background(), testPrefs())
	require.NoError(t, err)
	require.Len(t, result.Metadata.Degraded, 1)
	assert.Contains(t, result.Metadata.Degraded[0], "weather")
}

func TestCoordinatorRetriesGenerativeStageOnly(t *testing.T) {
	generativeCalls := 0
	deterministicCalls := 0
	stages := []Stage{
		&fakeStage{
			name: "rank",
			kind: KindGenerative,
			run: func(_ context.Context, in Context) (Context, error) {
				generativeCalls++
				if generativeCalls < 2 {
					return in, fmt.Errorf("%w: not an array", utils.ErrMalformedLLMOutput)
				}
				return in, nil
			},
		},
		&fakeStage{
			name: "format",
			kind: KindDeterministic,
			run: func(_ context.Context, in Context) (Context, error) {
				deterministicCalls++
				in.Itinerary = testItinerary()
				return in, nil
			},
		},
	}

	c := NewCoordinator(stages, RetryPolicy{MaxAttempts: 3}, time.Minute)
	result, err := c.Run(context.Background(), testPrefs())
	require.NoError(t, err)

	assert.Equal(t, 2, generativeCalls)
	assert.Equal(t, 1, deterministicCalls)
	assert.Equal(t, 2, result.Metadata.Stages[0].Attempts)
	assert.Equal(t, 1, result.Metadata.Stages[1].Attempts)
}

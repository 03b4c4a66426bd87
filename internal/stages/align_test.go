package stages

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripgenie/internal/models/trip_models"
	"tripgenie/internal/pipeline"
)

func alignedContext() pipeline.Context {
	in := baseContext(2, trip_models.StyleModerate)
	temple := placeAt("temple", 2, 4.5)
	temple.DistanceKm = 2
	market := placeAt("market", 4, 4.0)
	market.DistanceKm = 4
	arcade := placeAt("arcade", 6, 3.0)
	arcade.DistanceKm = 6
	in.Places = []trip_models.PlaceCandidate{temple, market, arcade}

	in.Itinerary = &trip_models.Itinerary{
		Destination: "Kyoto",
		StartDate:   "2026-09-06",
		EndDate:     "2026-09-07",
		Days: []trip_models.ItineraryDay{
			{DayNumber: 1, Date: "2026-09-06", Activities: []trip_models.Activity{
				{Time: "09:00", Place: temple},
				{Time: "14:00", Place: market},
			}},
			{DayNumber: 2, Date: "2026-09-07", Activities: []trip_models.Activity{
				{Time: "10:00", Place: arcade},
			}},
		},
	}
	return in
}

func TestAlignFillsDistanceTotals(t *testing.T) {
	stage := NewAlignmentChecker()

	out, err := stage.Run(context.Background(), alignedContext())
	require.NoError(t, err)

	it := out.Itinerary
	assert.InDelta(t, 6, it.Days[0].TotalDistanceKm, 0.001)
	assert.InDelta(t, 6, it.Days[1].TotalDistanceKm, 0.001)
	assert.InDelta(t, 12, it.TotalDistanceKm, 0.001)
}

func TestAlignRejectsWrongDayCount(t *testing.T) {
	stage := NewAlignmentChecker()

	in := alignedContext()
	in.Preferences.DurationDays = 3

	_, err := stage.Run(context.Background(), in)
	var perr *pipeline.Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, pipeline.FailureGenerationFailed, perr.Kind)
	assert.Equal(t, StageAlign, perr.Stage)
}

func TestAlignRejectsNonContiguousDays(t *testing.T) {
	stage := NewAlignmentChecker()

	in := alignedContext()
	in.Itinerary.Days[1].DayNumber = 3

	_, err := stage.Run(context.Background(), in)
	var perr *pipeline.Error
	require.ErrorAs(t, err, &perr)
	assert.Contains(t, perr.Message, "contiguous")
}

func TestAlignRejectsUnknownPlace(t *testing.T) {
	stage := NewAlignmentChecker()

	in := alignedContext()
	in.Itinerary.Days[0].Activities[0].Place = placeAt("phantom", 1, 5.0)

	_, err := stage.Run(context.Background(), in)
	var perr *pipeline.Error
	require.ErrorAs(t, err, &perr)
	assert.Contains(t, perr.Message, "phantom")
}

func TestAlignRejectsDuplicateScheduling(t *testing.T) {
	stage := NewAlignmentChecker()

	in := alignedContext()
	in.Itinerary.Days[1].Activities[0].Place = in.Itinerary.Days[0].Activities[0].Place

	_, err := stage.Run(context.Background(), in)
	var perr *pipeline.Error
	require.ErrorAs(t, err, &perr)
	assert.Contains(t, perr.Message, "more than once")
}

func TestAlignLeavesActivityCountsUntouched(t *testing.T) {
	stage := NewAlignmentChecker()

	in := alignedContext()
	before := in.Itinerary.ActivityCount()

	out, err := stage.Run(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, before, out.Itinerary.ActivityCount())
}

package stages

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripgenie/internal/models/trip_models"
	"tripgenie/pkg/utils"
)

func resolvingGeo() *fakeGeo {
	return &fakeGeo{resolve: func(_ context.Context, text string) (*trip_models.GeoLocation, error) {
		if text == "Kyoto" {
			return kyoto(), nil
		}
		if text == "Osaka" {
			return &trip_models.GeoLocation{Name: "Osaka", Latitude: 34.69, Longitude: 135.50}, nil
		}
		return nil, fmt.Errorf("%w: %q", utils.ErrLocationNotFound, text)
	}}
}

func TestValidateResolvesDestinationAndOrigin(t *testing.T) {
	stage := NewInputValidator(resolvingGeo())

	in := baseContext(3, trip_models.StyleModerate)
	in.Destination = nil
	in.Preferences.Origin = "Osaka"

	out, err := stage.Run(context.Background(), in)
	require.NoError(t, err)
	require.NotNil(t, out.Destination)
	assert.Equal(t, "Kyoto", out.Destination.Name)
	require.NotNil(t, out.Origin)
	assert.Equal(t, "Osaka", out.Origin.Name)
}

func TestValidateDefaultsStartDateAWeekOut(t *testing.T) {
	stage := NewInputValidator(resolvingGeo())

	in := baseContext(3, trip_models.StyleModerate)
	in.Preferences.StartDate = ""

	out, err := stage.Run(context.Background(), in)
	require.NoError(t, err)

	want := utils.FormatDate(time.Now().AddDate(0, 0, 7))
	assert.Equal(t, want, out.Preferences.StartDate)
}

func TestValidateRejectsBadStartDates(t *testing.T) {
	stage := NewInputValidator(resolvingGeo())

	for _, date := range []string{"06-09-2026", "next tuesday", "2020-01-01"} {
		in := baseContext(3, trip_models.StyleModerate)
		in.Preferences.StartDate = date

		_, err := stage.Run(context.Background(), in)
		assert.ErrorIs(t, err, utils.ErrInvalidInput, "date %q", date)
	}
}

func TestValidateUnresolvableDestinationFailsRun(t *testing.T) {
	stage := NewInputValidator(resolvingGeo())

	in := baseContext(3, trip_models.StyleModerate)
	in.Preferences.Destination = "Atlantis"

	_, err := stage.Run(context.Background(), in)
	assert.ErrorIs(t, err, utils.ErrLocationNotFound)
}

func TestValidateUnresolvableOriginIsNotFatal(t *testing.T) {
	stage := NewInputValidator(resolvingGeo())

	in := baseContext(3, trip_models.StyleModerate)
	in.Preferences.Origin = "Atlantis"

	out, err := stage.Run(context.Background(), in)
	require.NoError(t, err)
	assert.Nil(t, out.Origin)
	assert.NotNil(t, out.Destination)
}

package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"tripgenie/internal/models/trip_models"
	"tripgenie/pkg/utils"
)

const wttrBaseURL = "https://wttr.in"

// WttrProvider fetches forecasts from wttr.in (JSON "j1" format). The service
// needs no API key, which keeps the weather path usable out of the box.
type WttrProvider struct {
	baseURL string
	client  *http.Client
}

func NewWttrProvider() *WttrProvider {
	return &WttrProvider{
		baseURL: wttrBaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// NewWttrProviderWithBase is used by tests to point at a local server.
func NewWttrProviderWithBase(baseURL string) *WttrProvider {
	p := NewWttrProvider()
	p.baseURL = baseURL
	return p
}

func (w *WttrProvider) Configured() bool { return true }

type wttrResponse struct {
	Weather []struct {
		Date     string `json:"date"`
		MaxTempC string `json:"maxtempC"`
		MinTempC string `json:"mintempC"`
		Hourly   []struct {
			WeatherDesc []struct {
				Value string `json:"value"`
			} `json:"weatherDesc"`
			ChanceOfRain string `json:"chanceofrain"`
		} `json:"hourly"`
	} `json:"weather"`
}

func (w *WttrProvider) Forecast(ctx context.Context, loc trip_models.GeoLocation, start time.Time, days int) ([]trip_models.WeatherDay, error) {
	url := fmt.Sprintf("%s/%f,%f?format=j1", w.baseURL, loc.Latitude, loc.Longitude)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: weather request: %v", utils.ErrProviderUnavailable, err)
	}

	resp, err := w.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: weather fetch: %v", utils.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: weather fetch status %d", utils.ErrProviderUnavailable, resp.StatusCode)
	}

	var payload wttrResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: weather decode: %v", utils.ErrProviderUnavailable, err)
	}

	if days > len(payload.Weather) {
		days = len(payload.Weather)
	}

	forecast := make([]trip_models.WeatherDay, 0, days)
	for i := 0; i < days; i++ {
		day := payload.Weather[i]

		condition := "Clear"
		description := "clear sky"
		rain := 0.0
		if len(day.Hourly) > 0 {
			midday := day.Hourly[len(day.Hourly)/2]
			if len(midday.WeatherDesc) > 0 {
				condition = midday.WeatherDesc[0].Value
				description = midday.WeatherDesc[0].Value
			}
			rain = parseFloat(midday.ChanceOfRain)
		}

		forecast = append(forecast, trip_models.WeatherDay{
			Date:                utils.FormatDate(start.AddDate(0, 0, i)),
			Condition:           condition,
			TemperatureMax:      parseFloat(day.MaxTempC),
			TemperatureMin:      parseFloat(day.MinTempC),
			PrecipitationChance: rain,
			Description:         description,
		})
	}
	return forecast, nil
}

func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

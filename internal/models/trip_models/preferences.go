package trip_models

import "strings"

type Budget string

const (
	BudgetLow    Budget = "low"
	BudgetMedium Budget = "medium"
	BudgetHigh   Budget = "high"
)

type TravelStyle string

const (
	StyleRelaxed  TravelStyle = "relaxed"
	StyleModerate TravelStyle = "moderate"
	StylePacked   TravelStyle = "packed"
)

// Budgets and TravelStyles are the allowed enum values, used by schema validation.
var (
	Budgets      = []string{string(BudgetLow), string(BudgetMedium), string(BudgetHigh)}
	TravelStyles = []string{string(StyleRelaxed), string(StyleModerate), string(StylePacked)}
)

// DefaultInterests is applied when a request carries no interests at all.
var DefaultInterests = []string{"sightseeing", "culture", "food"}

// Preferences is the immutable input of a pipeline run.
type Preferences struct {
	Destination      string      `json:"destination"`
	Origin           string      `json:"origin,omitempty"`
	DurationDays     int         `json:"duration_days"`
	Interests        []string    `json:"interests"`
	Budget           Budget      `json:"budget"`
	TravelStyle      TravelStyle `json:"travel_style"`
	StartDate        string      `json:"start_date,omitempty"` // YYYY-MM-DD
	SpecialInterests string      `json:"special_interests,omitempty"`
}

// Normalized returns a copy with trimmed, lower-cased interests and defaulted
// budget/style, leaving the receiver untouched.
func (p Preferences) Normalized() Preferences {
	out := p
	out.Destination = strings.TrimSpace(p.Destination)
	out.Origin = strings.TrimSpace(p.Origin)

	if len(p.Interests) == 0 {
		out.Interests = append([]string(nil), DefaultInterests...)
	} else {
		interests := make([]string, 0, len(p.Interests))
		for _, interest := range p.Interests {
			interest = strings.ToLower(strings.TrimSpace(interest))
			if interest != "" {
				interests = append(interests, interest)
			}
		}
		out.Interests = interests
	}

	if out.Budget == "" {
		out.Budget = BudgetMedium
	}
	if out.TravelStyle == "" {
		out.TravelStyle = StyleModerate
	}
	return out
}

// StyleMultiplier scales the distance ceiling by travel pace.
func (p Preferences) StyleMultiplier() float64 {
	switch p.TravelStyle {
	case StyleRelaxed:
		return 0.8
	case StylePacked:
		return 1.3
	default:
		return 1.0
	}
}

// BudgetMultiplier scales activity cost estimates.
func (p Preferences) BudgetMultiplier() float64 {
	switch p.Budget {
	case BudgetLow:
		return 0.8
	case BudgetHigh:
		return 1.4
	default:
		return 1.0
	}
}

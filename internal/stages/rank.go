package stages

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"tripgenie/internal/models/trip_models"
	"tripgenie/internal/pipeline"
	"tripgenie/internal/providers"
	"tripgenie/internal/schema"
	"tripgenie/pkg/config"
	"tripgenie/pkg/utils"
)

// maxPromptedPlaces bounds how many candidates go into the ranking prompt.
// Places beyond it keep a zero relevance and rank on popularity alone.
const maxPromptedPlaces = 30

const rankSystemPrompt = "You are a travel expert scoring places for a traveller. " +
	"Reply with a JSON array of numbers between 0 and 100, one per place, in the exact order given. " +
	"Higher means a better match for the traveller's interests. No prose, JSON only."

// Ranker asks the language model to score each candidate's relevance to the
// traveller's interests, then combines relevance with a rating-derived
// popularity signal into the final ordering. When the model keeps returning
// garbage, ranking falls back to popularity alone.
type Ranker struct {
	llm providers.LLMProvider
	cfg *config.Settings
}

func NewRanker(llm providers.LLMProvider, cfg *config.Settings) *Ranker {
	return &Ranker{llm: llm, cfg: cfg}
}

func (r *Ranker) Name() string             { return StageRank }
func (r *Ranker) Kind() pipeline.StageKind { return pipeline.KindGenerative }

func (r *Ranker) OutputSchema() schema.Schema {
	return schema.Schema{Fields: []schema.Field{
		{Path: "ranked_places", Kind: schema.List, Required: true, MinLen: 1},
		{Path: "ranked_places.*.name", Kind: schema.String, Required: true},
		{Path: "ranked_places.*.score", Kind: schema.Float, Required: true, Min: schema.Bound(0), Max: schema.Bound(100)},
		{Path: "ranked_places.*.rank", Kind: schema.Int, Required: true, Min: schema.Bound(1)},
	}}
}

func (r *Ranker) Run(ctx context.Context, in pipeline.Context) (pipeline.Context, error) {
	prompted := in.Places
	if len(prompted) > maxPromptedPlaces {
		prompted = prompted[:maxPromptedPlaces]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Traveller interests: %s.\n", strings.Join(in.Preferences.Interests, ", "))
	fmt.Fprintf(&b, "Travel style: %s. Budget: %s.\n", in.Preferences.TravelStyle, in.Preferences.Budget)
	if in.Preferences.SpecialInterests != "" {
		fmt.Fprintf(&b, "Special requests: %s.\n", in.Preferences.SpecialInterests)
	}
	b.WriteString("Places:\n")
	for i, p := range prompted {
		fmt.Fprintf(&b, "%d. %s (%s, rating %.1f)\n", i+1, p.Name, p.Category, p.Rating)
	}
	fmt.Fprintf(&b, "Return a JSON array of exactly %d scores.", len(prompted))
	if in.RetryFeedback != "" {
		fmt.Fprintf(&b, "\nYour previous reply was rejected: %s. Return only the JSON array.", in.RetryFeedback)
	}

	raw, err := r.llm.Complete(ctx, rankSystemPrompt, b.String())
	if err != nil {
		return in, err
	}

	var scores []float64
	if err := json.Unmarshal([]byte(utils.ExtractJSON(raw)), &scores); err != nil {
		return in, fmt.Errorf("%w: scores are not a JSON array: %v", utils.ErrMalformedLLMOutput, err)
	}
	if len(scores) != len(prompted) {
		return in, fmt.Errorf("%w: got %d scores for %d places", utils.ErrMalformedLLMOutput, len(scores), len(prompted))
	}
	for _, s := range scores {
		if s < 0 || s > 100 {
			return in, fmt.Errorf("%w: score %.1f outside 0..100", utils.ErrMalformedLLMOutput, s)
		}
	}

	relevance := func(i int) float64 {
		if i < len(scores) {
			return scores[i]
		}
		return 0
	}
	out := in
	out.Ranked = r.combine(in.Places, relevance)
	return out, nil
}

// Fallback ranks on popularity alone, so a dead or incoherent model still
// yields a usable ordering.
func (r *Ranker) Fallback(_ context.Context, in pipeline.Context) (pipeline.Context, error) {
	if len(in.Places) == 0 {
		return in, fmt.Errorf("%w: no places to rank", utils.ErrNoPlacesFound)
	}
	out := in
	out.Ranked = r.combine(in.Places, func(i int) float64 {
		return popularity(in.Places[i])
	})
	return out, nil
}

// combine merges relevance and popularity with the configured weights and
// produces the ranked list, ties keeping input order.
func (r *Ranker) combine(places []trip_models.PlaceCandidate, relevance func(int) float64) []trip_models.RankedPlace {
	ranked := make([]trip_models.RankedPlace, len(places))
	for i, p := range places {
		score := relevance(i)*r.cfg.RankingRelevanceWeight + popularity(p)*r.cfg.RankingPopularityWeight
		ranked[i] = trip_models.RankedPlace{PlaceCandidate: p, Score: score}
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Score > ranked[j].Score })
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}

// popularity maps a 0..5 star rating onto the 0..100 score scale.
func popularity(p trip_models.PlaceCandidate) float64 {
	return p.Rating * 20
}

package response_models

// HealthResponse reports service liveness and which external providers carry
// working credentials. The service stays "ok" with unconfigured providers;
// runs needing them fail per request instead.
type HealthResponse struct {
	Status    string          `json:"status"`
	Providers map[string]bool `json:"providers"`
}

// InterestsResponse is the catalog of interests the UI can offer.
type InterestsResponse struct {
	Interests []string `json:"interests"`
}

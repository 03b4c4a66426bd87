package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Settings holds every tunable the service reads from the environment.
type Settings struct {
	// API keys
	GoogleMapsAPIKey string

	// LLM provider
	LLMProvider string // "gemini" or "openai"
	LLMAPIKey   string
	LLMModel    string

	// Server
	Port string

	// Place discovery
	MaxSearchQueries   int
	MaxResultsPerQuery int
	MaxTotalPlaces     int
	MaxPlacesPerDay    int

	// Distance filtering
	MaxTravelDistanceKm float64

	// Ranking weights
	RankingRelevanceWeight  float64
	RankingPopularityWeight float64

	// Pipeline orchestration
	MaxGenerativeAttempts int
	RunTimeout            time.Duration
}

func Load() *Settings {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading settings from environment")
	}

	return &Settings{
		GoogleMapsAPIKey: os.Getenv("GOOGLE_MAPS_API_KEY"),

		LLMProvider: getEnv("LLM_PROVIDER", "gemini"),
		LLMAPIKey:   os.Getenv("LLM_API_KEY"),
		LLMModel:    getEnv("LLM_MODEL", "gemini-1.5-flash"),

		Port: getEnv("PORT", "8000"),

		MaxSearchQueries:   getEnvInt("MAX_SEARCH_QUERIES", 5),
		MaxResultsPerQuery: getEnvInt("MAX_RESULTS_PER_QUERY", 10),
		MaxTotalPlaces:     getEnvInt("MAX_TOTAL_PLACES", 60),
		MaxPlacesPerDay:    getEnvInt("MAX_PLACES_PER_DAY", 5),

		MaxTravelDistanceKm: getEnvFloat("MAX_TRAVEL_DISTANCE_KM", 200),

		RankingRelevanceWeight:  getEnvFloat("RANKING_RELEVANCE_WEIGHT", 0.6),
		RankingPopularityWeight: getEnvFloat("RANKING_POPULARITY_WEIGHT", 0.4),

		MaxGenerativeAttempts: getEnvInt("MAX_GENERATIVE_ATTEMPTS", 3),
		RunTimeout:            time.Duration(getEnvInt("RUN_TIMEOUT_SECONDS", 120)) * time.Second,
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Printf("Invalid value for %s, using default %d", key, fallback)
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
		log.Printf("Invalid value for %s, using default %v", key, fallback)
	}
	return fallback
}

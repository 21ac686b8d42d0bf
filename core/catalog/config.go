package catalog

// Config holds configuration for the movie catalog search API.
type Config struct {
	// SearchURL is the movie search endpoint.
	SearchURL string `mapstructure:"search_url" default:"https://api.themoviedb.org/3/search/movie"`
	// APIKey is sent as the api_key query parameter.
	APIKey string `mapstructure:"api_key" default:""`
	// TimeoutSeconds bounds a single search request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"15"`
}

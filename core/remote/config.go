package remote

// Config holds configuration for the remote key-value backend.
type Config struct {
	// BaseURL is the root of the JSON document tree; records live at <base>/<identifier>.json.
	BaseURL string `mapstructure:"base_url" default:"https://mymoviesprint.firebaseio.com/"`
	// TimeoutSeconds bounds a single remote request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"15"`
	// Workers is the number of remote requests allowed in flight at once.
	Workers int `mapstructure:"workers" default:"4"`
}

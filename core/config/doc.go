// Package config provides configuration management for the movie manager.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file (loaded through godotenv).
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port)
//   - Log: Logging level, format and optional rotating log file
//   - Database: local store driver and connection details
//   - Catalog: movie search endpoint and API key
//   - Remote: key-value backend base URL and worker count
//   - Storage: S3/MinIO credentials and backup bucket
//
// Defaults come from the `default` struct tags of each section. Environment variables
// override them using the upper-cased dotted key with dots replaced by underscores,
// e.g. CATALOG_API_KEY sets catalog.api_key.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config

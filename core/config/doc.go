// Package config provides configuration management for data-manager.
//
// It utilizes Viper for loading configuration from environment variables
// and a .env file, with defaults declared as struct tags on the partial
// configuration types.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key, mounted features)
//   - Database: MySQL/SQLite connection details
//   - Storage: S3/MinIO credentials and bucket settings
//   - Log: Logging level and format
//   - Import: reconciliation defaults (identity fields, throttling)
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config

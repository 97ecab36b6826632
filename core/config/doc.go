// Package config provides configuration management for the S3 client.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file (skipped when DOCKER_ENV is set).
//
// # Configuration Structure
//
// The Config struct is divided into subsections:
//   - Storage: endpoint URL and credentials (S3_ENDPOINT_URL, AWS_ACCESS_KEY_ID,
//     AWS_SECRET_ACCESS_KEY, or the nested STORAGE_* names)
//   - Log: logging level and format (LOG_LEVEL, LOG_FORMAT)
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Storage.Endpoint)
package config

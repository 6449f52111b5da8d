// Package config provides environment configuration for portinfo.
//
// It utilizes godotenv to read an optional .env file and Viper to map
// environment variables onto the Config struct, with defaults taken from
// `default` struct tags.
//
// # Configuration Structure
//
//   - Log: logging level (LOG_LEVEL) and format (LOG_FORMAT)
//
// The command-line port is not part of this struct; it is parsed separately
// by the cmd package.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(cfg.Log.Level)
package config

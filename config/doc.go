// Package config loads command configuration with Viper.
//
// LoadConfig merges, in increasing precedence, flag defaults, a config.yml
// found next to the command, the environment (including a .env file loaded
// with godotenv) and flags given on the command line, then unmarshals the
// result through mapstructure tags.
//
// # Usage
//
//	var cfg DemoConfig
//	err := config.LoadConfig("pipesdemo", &cfg,
//	    config.WithEnvPrefix("PIPESDEMO"),
//	    config.WithFlags(flags),
//	)
//	cfg.ApplyDefaults()
//	err = cfg.Validate()
//
// PIPESDEMO_LOGGING_LEVEL=debug then sets logging.level.
package config

// Package config loads runtime configuration for the vidhub CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment, optionally seeded from a .env file in the working
//     directory (see parseEnv).
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the REST API, e.g. http://localhost:4000/api/v1
//	-d string   directory for the local database and log file
//	-t int      request timeout (seconds)
//	-l string   log level: debug, info, warn or error
//
// Environment
//
//	VIDHUB_API_URL   base URL of the REST API
//	VIDHUB_DATA_DIR  data directory
//	LOG_LEVEL        log level
//	LOG_DEV          "true" for human-readable development logs
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so it can be either a
// string like "10s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "http://localhost:4000/api/v1",
//	  "data_dir": ".vidhub",
//	  "database_file": "vidhub.db",
//	  "request_timeout": "10s",
//	  "log_level": "info",
//	  "log_dev": false
//	}
//
// Malformed values in any source panic, as the CLI cannot start without a
// usable configuration.
package config

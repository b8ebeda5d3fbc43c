package config

import "os"

// Development reports whether the DEVELOPMENT environment variable is set to
// a non-zero value. It switches the server to the pretty terminal log handler.
func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}

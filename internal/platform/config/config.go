package config

import "os"

// Server captures HTTP server level configuration.
type Server struct {
	Addr     string
	LogLevel string
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("CONSENTLENS_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	logLevel := os.Getenv("CONSENTLENS_LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}
	return Server{
		Addr:     addr,
		LogLevel: logLevel,
	}
}

package logging

import (
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// StartupLogger collects the resolved run configuration and emits a single
// structured zerolog event before the pipeline starts. One event makes it
// easy to see exactly how a run was configured when reading its log later.
type StartupLogger struct {
	name     string
	config   map[string]string
	features map[string]bool
}

// NewStartupLogger creates a StartupLogger for the given tool name.
func NewStartupLogger(name string) *StartupLogger {
	return &StartupLogger{
		name:     name,
		config:   make(map[string]string),
		features: make(map[string]bool),
	}
}

// Config registers a non-sensitive configuration key-value pair.
func (s *StartupLogger) Config(key, value string) *StartupLogger {
	s.config[key] = value
	return s
}

// Feature registers a boolean feature flag (e.g. "cache", "recompress").
func (s *StartupLogger) Feature(name string, enabled bool) *StartupLogger {
	s.features[name] = enabled
	return s
}

// EnvOrDefault returns the value of the named environment variable, or
// defaultVal if the variable is empty or unset.
func EnvOrDefault(envVar, defaultVal string) string {
	if v := os.Getenv(envVar); v != "" {
		return v
	}
	return defaultVal
}

// Log emits a single structured INFO log event with all collected information.
func (s *StartupLogger) Log() {
	evt := log.Info().
		Dict("tool", zerolog.Dict().
			Str("name", s.name).
			Str("goVersion", runtime.Version()).
			Str("arch", runtime.GOARCH).
			Str("logLevel", os.Getenv("DECK_LOG_LEVEL")))

	if len(s.config) > 0 {
		evt = evt.Dict("config", dictFromMap(s.config))
	}

	if len(s.features) > 0 {
		d := zerolog.Dict()
		for k, v := range s.features {
			d = d.Bool(k, v)
		}
		evt = evt.Dict("features", d)
	}

	evt.Msg("Startup complete")
}

// dictFromMap converts a map[string]string into a zerolog.Event (Dict).
func dictFromMap(m map[string]string) *zerolog.Event {
	d := zerolog.Dict()
	for k, v := range m {
		d = d.Str(k, v)
	}
	return d
}

package main

import (
	"log"
	"strconv"

	"github.com/coregx/minire/meta"
)

type config struct {
	debug   bool
	matcher meta.Config
}

func getConfig(logger *log.Logger, getenv func(string) string) config {
	env := envReader{logger: logger, getenv: getenv}
	env.verbose = env.boolean("DEBUG", false)

	matcher := meta.DefaultConfig()
	matcher.EnablePrefilter = env.boolean("MINIGREP_PREFILTER", matcher.EnablePrefilter)
	matcher.EnableLiteralSearch = env.boolean("MINIGREP_LITERAL_SEARCH", matcher.EnableLiteralSearch)
	matcher.MinLiteralLen = env.integer("MINIGREP_MIN_LITERAL_LEN", matcher.MinLiteralLen)

	return config{
		debug:   env.verbose,
		matcher: matcher,
	}
}

// envReader reads settings from env vars. Values are recorded in logs only
// when verbose is set, since stderr is the tool's diagnostic channel.
type envReader struct {
	logger  *log.Logger
	getenv  func(string) string
	verbose bool
}

func (e *envReader) printf(format string, v ...any) {
	if e.verbose {
		e.logger.Printf(format, v...)
	}
}

// envString extracts string from env var.
// It returns the provided defaultValue if the env var is empty.
func (e *envReader) envString(name string, defaultValue string) string {
	str := e.getenv(name)
	if str != "" {
		e.printf("%s=[%s] using %s=%s default=%s", name, str, name, str, defaultValue)
		return str
	}
	e.printf("%s=[%s] using %s=%s default=%s", name, str, name, defaultValue, defaultValue)
	return defaultValue
}

// boolean extracts bool from env var.
// It returns the provided defaultValue if the env var is empty or invalid.
func (e *envReader) boolean(name string, defaultValue bool) bool {
	str := e.envString(name, "")
	if str != "" {
		value, errConv := strconv.ParseBool(str)
		if errConv == nil {
			e.printf("%s=[%s] using %s=%t default=%t", name, str, name, value, defaultValue)
			return value
		}
		e.logger.Printf("bad %s=[%s]: error: %v", name, str, errConv)
	}
	return defaultValue
}

// integer extracts int from env var.
// It returns the provided defaultValue if the env var is empty or invalid.
func (e *envReader) integer(name string, defaultValue int) int {
	str := e.envString(name, "")
	if str != "" {
		value, errConv := strconv.Atoi(str)
		if errConv == nil {
			e.printf("%s=[%s] using %s=%d default=%d", name, str, name, value, defaultValue)
			return value
		}
		e.logger.Printf("bad %s=[%s]: error: %v", name, str, errConv)
	}
	return defaultValue
}

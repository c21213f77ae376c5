package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/tohojo/stgit-console/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envExecutable      = "STGIT_CONSOLE_EXECUTABLE"
	envShowNames       = "STGIT_CONSOLE_SHOW_PATCH_NAMES"
	envIndexOnly       = "STGIT_CONSOLE_REFRESH_INDEX_ONLY"
	envConfirmStageAll = "STGIT_CONSOLE_CONFIRM_STAGE_ALL"
	envWidth           = "STGIT_CONSOLE_WIDTH"
	envHeight          = "STGIT_CONSOLE_HEIGHT"
	envShowFooter      = "STGIT_CONSOLE_FOOTER"
	envVerbose         = "STGIT_CONSOLE_VERBOSE"
	envTrace           = "STGIT_CONSOLE_TRACE"
	envLogFile         = "STGIT_CONSOLE_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("stgit-console", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	executable := fs.String("stg", envOrDefault(env, envExecutable, ""), "patch-stack engine executable (defaults to stg on PATH)")
	showNames := fs.Bool("show-patch-names", envOrBool(env, envShowNames, true), "prefix rendered descriptions with patch names")
	indexOnly := fs.Bool("refresh-index-only", envOrBool(env, envIndexOnly, false), "refresh from staged changes only by default")
	confirmStageAll := fs.Bool("confirm-stage-all", envOrBool(env, envConfirmStageAll, true), "prompt before staging everything when refreshing with a clean index")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "print success messages for commands")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			Executable:      *executable,
			ShowPatchNames:  *showNames,
			IndexOnly:       *indexOnly,
			ConfirmStageAll: *confirmStageAll,
			Width:           *width,
			Height:          *height,
			ShowFooter:      *footer,
			Verbose:         *verbose,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"stg":                *executable,
			"show-patch-names":   strconv.FormatBool(*showNames),
			"refresh-index-only": strconv.FormatBool(*indexOnly),
			"confirm-stage-all":  strconv.FormatBool(*confirmStageAll),
			"width":              strconv.Itoa(*width),
			"height":             strconv.Itoa(*height),
			"footer":             strconv.FormatBool(*footer),
			"verbose":            strconv.FormatBool(*verbose),
			"trace":              strconv.FormatBool(*trace),
			"logFile":            *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

// Validate rejects configurations the application cannot run with.
func Validate(cfg Config) error {
	if strings.ContainsAny(cfg.App.Executable, " \t") {
		return fmt.Errorf("engine executable must be a bare command or path, got %q", cfg.App.Executable)
	}
	return nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

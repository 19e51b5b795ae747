package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"

	"github.com/lecterntools/lectern/config"
	"github.com/lecterntools/lectern/pkg/paths"
	"github.com/lecterntools/lectern/util/pathutil"
)

var (
	registry   = make(map[string]*logrus.Entry)
	registryMu sync.Mutex
)

// NewLogger returns the shared logger entry for a component, creating
// and configuring it on first use. Settings come from the logging:
// block of lectern.yml, with LECTERN_LOG_* variables taking precedence.
func NewLogger(component string) *logrus.Entry {
	registryMu.Lock()
	defer registryMu.Unlock()

	if entry, ok := registry[component]; ok {
		return entry
	}

	logCfg := loadLogConfig()

	logger := logrus.New()
	logger.SetLevel(resolveLevel(logCfg))
	if os.Getenv("LECTERN_LOG_CALLER") == "true" || logCfg.ReportCaller {
		logger.SetReportCaller(true)
	}
	logger.SetFormatter(newFormatter(logCfg.Format))
	logger.SetOutput(resolveOutput(component, logCfg, logger.GetLevel()))

	entry := logger.WithField("component", component)
	registry[component] = entry
	return entry
}

// loadLogConfig reads the logging block from the nearest lectern.yml.
// Missing or malformed configuration falls back to defaults so logging
// never blocks startup.
func loadLogConfig() Config {
	var logCfg Config
	cfg, err := config.LoadDefault()
	if err != nil {
		return logCfg
	}
	if err := cfg.UnmarshalExtension("logging", &logCfg); err != nil {
		logrus.Warnf("Ignoring malformed logging section: %v", err)
	}
	return logCfg
}

func resolveLevel(cfg Config) logrus.Level {
	name := os.Getenv("LECTERN_LOG_LEVEL")
	if name == "" {
		name = cfg.Level
	}
	level, err := logrus.ParseLevel(name)
	if name == "" || err != nil {
		return logrus.InfoLevel
	}
	return level
}

func newFormatter(fc FormatConfig) logrus.Formatter {
	switch fc.Preset {
	case "json":
		return &logrus.JSONFormatter{}
	case "simple":
		return &TextFormatter{Config: FormatConfig{
			DisableTimestamp: true,
			DisableComponent: true,
		}}
	default:
		return &TextFormatter{Config: fc}
	}
}

// resolveOutput assembles the writer set: the component's log file
// plus stderr when structured logs belong there. With no usable sink
// the logger writes nowhere rather than falling back to stderr, since
// the presenter owns the terminal.
func resolveOutput(component string, cfg Config, level logrus.Level) io.Writer {
	var writers []io.Writer
	if file := openLogFile(component, cfg); file != nil {
		writers = append(writers, file)
	}
	if stderrEnabled(cfg, level) {
		writers = append(writers, os.Stderr)
	}

	switch len(writers) {
	case 0:
		return io.Discard
	case 1:
		return writers[0]
	default:
		return io.MultiWriter(writers...)
	}
}

// openLogFile opens the configured log file, or the default
// $XDG_STATE_HOME/lectern/logs/<component>-<date>.log so log files
// never land next to the presented documents. Failures only rate a
// warning when a file was explicitly requested.
func openLogFile(component string, cfg Config) io.Writer {
	var path string
	if cfg.File.Enabled && cfg.File.Path != "" {
		path = pathutil.ExpandLenient(cfg.File.Path)
	} else {
		name := fmt.Sprintf("%s-%s.log", component, time.Now().Format("2006-01-02"))
		path = filepath.Join(paths.LogsDir(), name)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		if cfg.File.Enabled {
			logrus.Warnf("Failed to create log directory %s: %v", filepath.Dir(path), err)
		}
		return nil
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		if cfg.File.Enabled {
			logrus.Warnf("Failed to open log file %s: %v", path, err)
		}
		return nil
	}
	return file
}

// stderrEnabled decides whether structured logs also go to stderr.
// "always" and "never" are explicit. "auto" writes there only when
// debugging or when stderr is not a terminal, keeping interactive
// presentations clean.
func stderrEnabled(cfg Config, level logrus.Level) bool {
	switch cfg.Format.StructuredToStderr {
	case "always":
		return true
	case "never":
		return false
	}

	if os.Getenv("LECTERN_DEBUG") == "1" || level == logrus.DebugLevel {
		return true
	}
	return !isatty.IsTerminal(os.Stderr.Fd()) && !isatty.IsCygwinTerminal(os.Stderr.Fd())
}

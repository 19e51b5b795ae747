package config

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/lecterntools/lectern/errors"
	"github.com/lecterntools/lectern/pkg/paths"
)

// Project file names recognized, in precedence order.
var configNames = []string{
	"lectern.yml",
	"lectern.yaml",
	".lectern.yml",
	".lectern.yaml",
	"lectern.toml",
}

var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

// Load reads and parses a single configuration file. The format is
// chosen by extension: .toml uses TOML, everything else YAML.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigNotFound(path)
		}
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to read config").
			WithDetail("path", path)
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		var config Config
		if err := toml.Unmarshal([]byte(expandEnvVars(string(data))), &config); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse config TOML").
				WithDetail("path", path)
		}
		return finish(&config)
	}
	return LoadFromBytes(data)
}

// LoadDefault loads the layered configuration starting from the current
// directory.
func LoadDefault() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to resolve working directory")
	}
	return LoadFrom(cwd)
}

// LoadFrom loads the layered configuration: the global file under the
// XDG config directory first, then a project file found walking up from
// startDir merged over it.
func LoadFrom(startDir string) (*Config, error) {
	return LoadFromWithLogger(startDir, logrus.New())
}

// LoadFromWithLogger is LoadFrom with debug logging of each layer.
// A missing project config is not an error: the global layer (or the
// bare defaults) serve alone, since presenting a document requires no
// config.
func LoadFromWithLogger(startDir string, logger *logrus.Logger) (*Config, error) {
	merged := loadGlobalLayer(logger)

	if projectPath, err := FindConfigFile(startDir); err == nil {
		logger.WithField("path", projectPath).Debug("Found project config")
		project, err := parseFile(projectPath)
		if err != nil {
			return nil, err
		}
		if merged == nil {
			merged = project
		} else {
			logger.Debug("Merging project over global config")
			merged = mergeConfigs(merged, project)
		}
	}

	if merged == nil {
		merged = &Config{}
	}

	cfg, err := finish(merged)
	if err != nil {
		return nil, err
	}
	logger.Debug("Configuration ready")
	return cfg, nil
}

// LoadFromBytes parses YAML configuration from a byte slice.
func LoadFromBytes(data []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal([]byte(expandEnvVars(string(data))), &config); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse config YAML")
	}
	return finish(&config)
}

// loadGlobalLayer reads ~/.config/lectern/lectern.yml if present.
// A broken global file is worth a warning, never a failed start.
func loadGlobalLayer(logger *logrus.Logger) *Config {
	path := paths.GlobalConfigFile()
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil
	}

	logger.WithField("path", path).Debug("Found global config")
	data, err := os.ReadFile(path)
	if err != nil {
		logger.WithError(err).Warn("Ignoring unreadable global config")
		return nil
	}
	var cfg Config
	if err := yaml.Unmarshal([]byte(expandEnvVars(string(data))), &cfg); err != nil {
		logger.WithError(err).Warn("Ignoring malformed global config")
		return nil
	}
	return &cfg
}

func parseFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to read project config file").
			WithDetail("path", path)
	}

	decode := yaml.Unmarshal
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		decode = toml.Unmarshal
	}
	var config Config
	if err := decode([]byte(expandEnvVars(string(data))), &config); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse project config file").
			WithDetail("path", path)
	}
	return &config, nil
}

// finish applies defaults, schema validation, and semantic validation.
func finish(config *Config) (*Config, error) {
	config.SetDefaults()

	validator, err := NewSchemaValidator()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to build schema validator")
	}
	if err := validator.Validate(config); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigValidation, "schema validation failed")
	}
	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "config constraint check failed")
	}
	return config, nil
}

// FindConfigFile returns the nearest project configuration: each name
// in configNames is tried in every directory from startDir up to the
// filesystem root, then the global file is the fallback.
func FindConfigFile(startDir string) (string, error) {
	for dir := startDir; ; {
		if path := configIn(dir); path != "" {
			return path, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	if global := paths.GlobalConfigFile(); global != "" {
		if info, err := os.Stat(global); err == nil && !info.IsDir() {
			return global, nil
		}
	}

	return "", errors.ConfigNotFound(startDir).WithDetail("searchPath", startDir)
}

func configIn(dir string) string {
	for _, name := range configNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// expandEnvVars replaces ${VAR} with the variable's value and supports
// ${VAR:-default} fallbacks.
func expandEnvVars(content string) string {
	return envVarRegex.ReplaceAllStringFunc(content, func(match string) string {
		name := strings.TrimSuffix(strings.TrimPrefix(match, "${"), "}")
		name, fallback, _ := strings.Cut(name, ":-")
		if value := os.Getenv(name); value != "" {
			return value
		}
		return fallback
	})
}

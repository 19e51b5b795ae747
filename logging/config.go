package logging

// Config is the logging: block of lectern.yml.
type Config struct {
	// Level is the minimum level to emit ("debug", "info", "warn",
	// "error"). LECTERN_LOG_LEVEL overrides it.
	Level string `yaml:"level"`

	// ReportCaller adds the file, line, and function to each entry.
	// LECTERN_LOG_CALLER=true enables it too.
	ReportCaller bool `yaml:"report_caller"`

	File   FileSinkConfig `yaml:"file"`
	Format FormatConfig   `yaml:"format"`
}

// FileSinkConfig points logging at a specific file instead of the
// default state-directory location.
type FileSinkConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// FormatConfig controls how entries are rendered.
type FormatConfig struct {
	// Preset selects a formatter: "default" (rich text), "simple"
	// (level and message only), or "json".
	Preset string `yaml:"preset"`

	// DisableTimestamp and DisableComponent trim those parts from the
	// text formats.
	DisableTimestamp bool `yaml:"disable_timestamp"`
	DisableComponent bool `yaml:"disable_component"`

	// StructuredToStderr is "auto" (stderr only when debugging or
	// non-interactive), "always", or "never".
	StructuredToStderr string `yaml:"structured_to_stderr"`
}

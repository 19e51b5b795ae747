package logging

import (
	"bytes"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/lecterntools/lectern/tui/theme"
)

// levelTags maps logrus levels to bracketed markers, shortening
// "warning" to WARN so columns line up.
var levelTags = map[logrus.Level]string{
	logrus.TraceLevel: "[TRACE]",
	logrus.DebugLevel: "[DEBUG]",
	logrus.InfoLevel:  "[INFO]",
	logrus.WarnLevel:  "[WARN]",
	logrus.ErrorLevel: "[ERROR]",
	logrus.FatalLevel: "[FATAL]",
	logrus.PanicLevel: "[PANIC]",
}

// TextFormatter renders one entry per line: timestamp, level,
// component, optional caller, message, then the extra fields in
// sorted order.
type TextFormatter struct {
	Config FormatConfig
}

// Format implements logrus.Formatter.
func (f *TextFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	b := entry.Buffer
	if b == nil {
		b = &bytes.Buffer{}
	}

	if !f.Config.DisableTimestamp {
		b.WriteString(entry.Time.Format("2006-01-02 15:04:05"))
		b.WriteByte(' ')
	}

	b.WriteString(levelTags[entry.Level])

	if component, ok := entry.Data["component"]; ok && !f.Config.DisableComponent {
		fmt.Fprintf(b, " [%s]", theme.DefaultTheme.Accent.Render(fmt.Sprint(component)))
	}

	if entry.HasCaller() {
		fmt.Fprintf(b, " [%s:%d %s]",
			filepath.Base(entry.Caller.File), entry.Caller.Line, filepath.Base(entry.Caller.Function))
	}

	b.WriteByte(' ')
	b.WriteString(entry.Message)

	for _, key := range sortedFieldKeys(entry.Data) {
		fmt.Fprintf(b, " %s=%v", key, entry.Data[key])
	}

	b.WriteByte('\n')
	return b.Bytes(), nil
}

// sortedFieldKeys returns the entry's field names minus the component,
// sorted so repeated runs log identical lines.
func sortedFieldKeys(data logrus.Fields) []string {
	keys := make([]string, 0, len(data))
	for key := range data {
		if key != "component" {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}

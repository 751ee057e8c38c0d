// File: format.go
// Description: Output formats for log entries: structured JSON for
//              machine consumption, and a compact text form for
//              interactive terminal use.
package log

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Format selects how a Formatter renders an Entry.
type Format int

const (
	FormatText Format = iota
	FormatJSON
)

func (f Format) String() string {
	if f == FormatJSON {
		return "json"
	}
	return "text"
}

// ParseFormat parses a case-insensitive format name, defaulting to
// FormatText on an unrecognized string.
func ParseFormat(s string) Format {
	if strings.EqualFold(s, "json") {
		return FormatJSON
	}
	return FormatText
}

// Formatter renders an Entry to bytes suitable for writing to an
// io.Writer.
type Formatter interface {
	Format(entry *Entry) ([]byte, error)
}

// TextFormatter renders "time LEVEL [logger] message[: error] key=value ...".
type TextFormatter struct{}

func (TextFormatter) Format(e *Entry) ([]byte, error) {
	var b strings.Builder
	b.WriteString(e.Time.Format(time.RFC3339))
	b.WriteString(" ")
	b.WriteString(strings.ToUpper(e.Level.String()))
	if e.Logger != "" {
		fmt.Fprintf(&b, " [%s]", e.Logger)
	}
	b.WriteString(" ")
	b.WriteString(e.Message)
	if e.Err != nil {
		fmt.Fprintf(&b, ": %s", e.Err.Error())
	}
	for k, v := range e.Fields {
		fmt.Fprintf(&b, " %s=%v", k, v)
	}
	b.WriteString("\n")
	return []byte(b.String()), nil
}

// JSONFormatter renders an Entry as a single line of JSON.
type JSONFormatter struct{}

func (JSONFormatter) Format(e *Entry) ([]byte, error) {
	data := map[string]interface{}{
		"time":  e.Time.Format(time.RFC3339),
		"level": e.Level.String(),
	}
	if e.Logger != "" {
		data["logger"] = e.Logger
	}
	data["message"] = e.Message
	if e.Err != nil {
		data["error"] = e.Err.Error()
	}
	for k, v := range e.Fields {
		data[k] = v
	}
	out, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

// GetFormatter returns the Formatter for f.
func GetFormatter(f Format) Formatter {
	if f == FormatJSON {
		return JSONFormatter{}
	}
	return TextFormatter{}
}

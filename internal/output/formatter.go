// Package output shapes everything marscard prints: text or JSON per
// command, tabular card listings, and structured CLI errors with
// remediation hints.
package output

import (
	"encoding/json"
	"io"
	"os"
)

// JSONMode resolves whether a command emits JSON. The --json flag wins;
// otherwise MARSCARD_OUTPUT_FORMAT=json switches every command at once,
// which keeps scripted callers from threading the flag everywhere.
func JSONMode(jsonFlag bool) bool {
	if jsonFlag {
		return true
	}
	switch os.Getenv("MARSCARD_OUTPUT_FORMAT") {
	case "json", "JSON":
		return true
	}
	return false
}

// Formatter writes a command's output in either text or JSON form.
type Formatter struct {
	w    io.Writer
	json bool
}

// NewFormatter creates a formatter over w.
func NewFormatter(w io.Writer, jsonMode bool) *Formatter {
	return &Formatter{w: w, json: jsonMode}
}

// Stdout returns a formatter over standard output.
func Stdout(jsonMode bool) *Formatter {
	return NewFormatter(os.Stdout, jsonMode)
}

// IsJSON reports whether the formatter emits JSON.
func (f *Formatter) IsJSON() bool { return f.json }

// Writer returns the underlying writer.
func (f *Formatter) Writer() io.Writer { return f.w }

// JSON writes v as indented JSON.
func (f *Formatter) JSON(v interface{}) error {
	return WriteJSON(f.w, v)
}

// OutputData writes jsonData when in JSON mode, otherwise runs textFn
// against the formatter's writer.
func (f *Formatter) OutputData(jsonData interface{}, textFn func(w io.Writer) error) error {
	if f.json {
		return f.JSON(jsonData)
	}
	return textFn(f.w)
}

// WriteJSON writes v as indented JSON to w.
func WriteJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// PrintJSON writes v as indented JSON to stdout.
func PrintJSON(v interface{}) error {
	return WriteJSON(os.Stdout, v)
}

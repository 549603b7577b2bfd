package output

import "time"

// ErrorResponse is the JSON shape of a failed command.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
	Hint    string `json:"hint,omitempty"` // Remediation hint (suggested fix command)
}

// TimestampedResponse stamps a response with its generation time.
type TimestampedResponse struct {
	GeneratedAt time.Time `json:"generated_at"`
}

// NewTimestamped returns a response base stamped with the current UTC
// time.
func NewTimestamped() TimestampedResponse {
	return TimestampedResponse{GeneratedAt: time.Now().UTC()}
}

// CardListItem is a single card in list output.
type CardListItem struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Type       string         `json:"type,omitempty"`
	Cost       int            `json:"cost"`
	Behaviors  int            `json:"behaviors"`
	Categories map[string]int `json:"categories,omitempty"`
	Rows       int            `json:"rows"`
	Overflow   bool           `json:"overflow,omitempty"`
}

// ListResponse is the output format for the list command.
type ListResponse struct {
	TimestampedResponse
	Cards []CardListItem `json:"cards"`
	Count int            `json:"count"`
}

// VersionResponse is the output format for the version command.
type VersionResponse struct {
	TimestampedResponse
	Version   string `json:"version"`
	Commit    string `json:"commit,omitempty"`
	BuiltAt   string `json:"built_at,omitempty"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

package domain

import (
	"time"
)

// Field is a labelled value rendered inside a notification. Order is
// significant: fields render top-to-bottom in the order they were added.
type Field struct {
	Label  string
	Value  string
	Inline bool
}

// Announcement represents a one-off announcement in the domain layer
type Announcement struct {
	Title       string
	Body        string
	Link        string
	ImageURL    string
	PublishedAt time.Time
	Fields      []Field
	Metadata    map[string]string
}

// IsValid checks whether the announcement carries enough data to publish
func (a *Announcement) IsValid() bool {
	return a.Title != "" && a.Body != ""
}

// Severity classifies alerts
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// Color returns the embed color conventionally used for the severity
func (s Severity) Color() int {
	switch s {
	case SeverityWarning:
		return 0xFFA500
	case SeverityCritical:
		return 0xFF0000
	default:
		return 0x00FF00
	}
}

// String returns the string representation of Severity
func (s Severity) String() string {
	if s == "" {
		return string(SeverityInfo)
	}
	return string(s)
}

// Alert represents an operational alert in the domain layer
type Alert struct {
	Severity  Severity
	Title     string
	Message   string
	Source    string
	Timestamp time.Time
	Fields    []Field
}

// IsValid checks whether the alert carries enough data to publish
func (a *Alert) IsValid() bool {
	return a.Title != "" && a.Message != ""
}

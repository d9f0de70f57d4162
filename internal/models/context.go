// Package models holds the externally supplied recording context consumed
// by technical-accuracy scoring. These shapes mirror what the recording
// frontend emits; missing fields are tolerated everywhere and treated as
// absent rather than failing a request.
package models

import "strings"

// TimelineEvent is a single recorded action in a demo session.
type TimelineEvent struct {
	Timestamp   float64 `json:"timestamp,omitempty"`
	Action      string  `json:"action,omitempty"`
	Description string  `json:"description,omitempty"`
}

// TimelineContext is the ordered action timeline of a recording.
type TimelineContext struct {
	Timeline []TimelineEvent `json:"timeline"`
}

// SessionEvent is a recorded DOM interaction. Target is kept free-form
// because recorders disagree about its shape; the scorer only reads the
// visible text and the data-testid / aria-label attributes when present.
type SessionEvent struct {
	Type      string                 `json:"type,omitempty"`
	Timestamp int64                  `json:"timestamp,omitempty"`
	Target    map[string]interface{} `json:"target,omitempty"`
}

// UILabels extracts the lower-cased UI element labels referenced by a set
// of session events: visible text, data-testid, and aria-label values.
func UILabels(events []SessionEvent) map[string]struct{} {
	labels := map[string]struct{}{}
	for _, ev := range events {
		if ev.Target == nil {
			continue
		}
		if text, ok := ev.Target["text"].(string); ok && strings.TrimSpace(text) != "" {
			labels[strings.ToLower(strings.TrimSpace(text))] = struct{}{}
		}
		attrs, ok := ev.Target["attributes"].(map[string]interface{})
		if !ok {
			continue
		}
		if v, ok := attrs["data-testid"].(string); ok && v != "" {
			labels[strings.ToLower(v)] = struct{}{}
		}
		if v, ok := attrs["aria-label"].(string); ok && v != "" {
			labels[strings.ToLower(v)] = struct{}{}
		}
	}
	return labels
}

// Package audit provides structured event logging for kiosk
// provisioning mutations. Events are stored as JSON Lines (JSONL) in a
// single append-only file under the state directory.
package audit

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// EventType classifies a provisioning event.
type EventType string

const (
	EventAccountCreate  EventType = "account-create"
	EventAccountDelete  EventType = "account-delete"
	EventAutoLogonOn    EventType = "autologon-enable"
	EventAutoLogonOff   EventType = "autologon-disable"
	EventBrowserInstall EventType = "browser-install"
	EventTaskRegister   EventType = "task-register"
	EventTaskDelete     EventType = "task-delete"
	EventSecretCreate   EventType = "secret-create"
	EventSecretDelete   EventType = "secret-delete"
	EventError          EventType = "error"
)

// Event represents a single audit log entry.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	Details   string    `json:"details,omitempty"`
}

// Logger writes and reads the provisioning event history.
// Events are stored in {stateDir}/kiosk.events.jsonl.
type Logger struct {
	stateDir string
}

// NewLogger creates a new audit logger rooted at stateDir.
func NewLogger(stateDir string) *Logger {
	return &Logger{stateDir: stateDir}
}

// eventPath returns the path to the JSONL event log.
func (l *Logger) eventPath() string {
	return filepath.Join(l.stateDir, "kiosk.events.jsonl")
}

// Log appends an event to the audit log.
func (l *Logger) Log(event Event) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	path := l.eventPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create audit log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open audit log: %w", err)
	}
	defer f.Close()

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write event: %w", err)
	}

	return nil
}

// LogEvent is a convenience method that creates and logs an event.
func (l *Logger) LogEvent(eventType EventType, details string) error {
	return l.Log(Event{
		Timestamp: time.Now(),
		Type:      eventType,
		Details:   details,
	})
}

// Events reads all events in chronological order. A missing log file
// yields no events, not an error.
func (l *Logger) Events() ([]Event, error) {
	f, err := os.Open(l.eventPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open audit log: %w", err)
	}
	defer f.Close()

	var events []Event
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var event Event
		if err := json.Unmarshal(line, &event); err != nil {
			continue // Skip malformed lines
		}
		events = append(events, event)
	}

	if err := scanner.Err(); err != nil {
		return events, fmt.Errorf("error reading audit log: %w", err)
	}

	return events, nil
}

// Remove deletes the audit log.
func (l *Logger) Remove() error {
	if err := os.Remove(l.eventPath()); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

package card

import (
	"log/slog"
	"sync"
)

// Progress stage labels reported by the Compositor.
const (
	StageFetching = "fetching stats"
	StageFetched  = "stats obtained"
	StageComposed = "image composed"
)

// ProgressSink receives progress updates for one render.
type ProgressSink interface {
	ReportStage(label string)
	ReportFailure(stage, message string)
}

// NopSink discards progress.
type NopSink struct{}

// ReportStage implements ProgressSink.
func (NopSink) ReportStage(string) {}

// ReportFailure implements ProgressSink.
func (NopSink) ReportFailure(string, string) {}

// LogSink reports progress through a structured logger.
type LogSink struct {
	Logger *slog.Logger
}

// ReportStage implements ProgressSink.
func (s LogSink) ReportStage(label string) {
	s.Logger.Debug("card stage", "stage", label)
}

// ReportFailure implements ProgressSink.
func (s LogSink) ReportFailure(stage, message string) {
	s.Logger.Warn("card stage failed", "stage", stage, "message", message)
}

// ProgressEvent is one recorded progress update.
type ProgressEvent struct {
	Stage   string
	Message string
	Failed  bool
}

// RecordingSink keeps every update in order. It is safe for concurrent use.
type RecordingSink struct {
	mu     sync.Mutex
	events []ProgressEvent
}

// ReportStage implements ProgressSink.
func (s *RecordingSink) ReportStage(label string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ProgressEvent{Stage: label})
}

// ReportFailure implements ProgressSink.
func (s *RecordingSink) ReportFailure(stage, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ProgressEvent{Stage: stage, Message: message, Failed: true})
}

// Events returns a copy of the recorded updates.
func (s *RecordingSink) Events() []ProgressEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]ProgressEvent(nil), s.events...)
}

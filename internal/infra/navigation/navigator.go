// Package navigation adapts the core's navigation requests to the host.
package navigation

import (
	"context"
	"log/slog"
	"maps"
	"slices"
	"sync"

	"placebook/internal/domain/repository"
)

// loggingNavigator is used by headless hosts such as the CLI: there is no
// screen to move to, so the request is only logged.
type loggingNavigator struct {
	logger *slog.Logger
}

// NewLoggingNavigator returns a navigator that logs each destination
func NewLoggingNavigator(logger *slog.Logger) repository.Navigator {
	return &loggingNavigator{logger: logger}
}

func (n *loggingNavigator) Navigate(_ context.Context, destination string, params map[string]any) error {
	attrs := make([]any, 0, len(params)+1)
	attrs = append(attrs, slog.String("destination", destination))
	for _, key := range slices.Sorted(maps.Keys(params)) {
		attrs = append(attrs, slog.Any(key, params[key]))
	}

	n.logger.Info("[Navigator] Navigate", attrs...)

	return nil
}

// Navigation is one recorded request
type Navigation struct {
	Destination string
	Params      map[string]any
}

// RecordingNavigator keeps every request in order
type RecordingNavigator struct {
	mu      sync.Mutex
	history []Navigation
}

// NewRecordingNavigator creates an empty recorder
func NewRecordingNavigator() *RecordingNavigator {
	return &RecordingNavigator{}
}

func (n *RecordingNavigator) Navigate(_ context.Context, destination string, params map[string]any) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.history = append(n.history, Navigation{Destination: destination, Params: params})

	return nil
}

// History returns a copy of the recorded requests
func (n *RecordingNavigator) History() []Navigation {
	n.mu.Lock()
	defer n.mu.Unlock()

	return slices.Clone(n.history)
}

// Last returns the most recent request
func (n *RecordingNavigator) Last() (Navigation, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if len(n.history) == 0 {
		return Navigation{}, false
	}

	return n.history[len(n.history)-1], true
}

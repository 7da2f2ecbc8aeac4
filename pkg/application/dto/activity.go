package dto

import (
	"time"

	"github.com/vsinha/tradeops/pkg/infrastructure/events"
)

// ActivityEntry is one recorded event of an entity's activity stream
type ActivityEntry struct {
	Type      string    `json:"type" yaml:"type"`
	Stream    string    `json:"stream" yaml:"stream"`
	Version   int       `json:"version" yaml:"version"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	Data      any       `json:"data" yaml:"data"`
}

// NewActivityEntries converts stored events in order
func NewActivityEntries(recorded []events.Event) []ActivityEntry {
	out := make([]ActivityEntry, 0, len(recorded))
	for _, e := range recorded {
		out = append(out, ActivityEntry{
			Type:      e.Type(),
			Stream:    e.StreamID(),
			Version:   e.Version(),
			Timestamp: e.Timestamp(),
			Data:      e.Data(),
		})
	}
	return out
}

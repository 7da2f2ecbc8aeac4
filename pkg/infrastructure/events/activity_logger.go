package events

import "github.com/vsinha/tradeops/pkg/logger"

// ActivityTypes lists every event type the activity log records
var ActivityTypes = []string{
	EntityCreatedEvent,
	StatusChangedEvent,
	StatusAutoChangedEvent,
	DocumentNormalizedEvent,
}

// NewActivityLogger returns a handler that writes each activity event to log
func NewActivityLogger(log logger.Logger) *HandlerFunc {
	if log == nil {
		log = logger.GetDefault()
	}
	return &HandlerFunc{
		Types: ActivityTypes,
		Fn: func(e Event) error {
			log.Debug("Activity recorded",
				"type", e.Type(),
				"stream", e.StreamID(),
				"version", e.Version(),
			)
			return nil
		},
	}
}

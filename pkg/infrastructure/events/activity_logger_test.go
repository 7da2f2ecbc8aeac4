package events

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/tradeops/pkg/logger"
)

func TestActivityLogger(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewLogger(&logger.Config{
		Level:      logger.DebugLevel,
		Output:     &buf,
		TimeFormat: "15:04:05",
	})
	store := NewInMemoryEventStore(log)
	listener := NewActivityLogger(log)

	for _, eventType := range ActivityTypes {
		assert.True(t, listener.CanHandle(eventType), eventType)
	}
	assert.False(t, listener.CanHandle("deal.archived"))

	require.NoError(t, store.Subscribe(ActivityTypes, listener))
	require.NoError(t, store.AppendEvent("quote/7", NewEvent(StatusChangedEvent, "quote/7", nil)))
	store.Wait()

	assert.Contains(t, buf.String(), "Activity recorded")
	assert.Contains(t, buf.String(), "quote/7")

	require.NoError(t, store.Unsubscribe(listener))
	buf.Reset()
	require.NoError(t, store.AppendEvent("quote/7", NewEvent(StatusChangedEvent, "quote/7", nil)))
	store.Wait()
	assert.Empty(t, buf.String())
}

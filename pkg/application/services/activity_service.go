package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/vsinha/tradeops/pkg/application/dto"
	"github.com/vsinha/tradeops/pkg/domain/entities"
	"github.com/vsinha/tradeops/pkg/infrastructure/events"
)

// ActivityService reads the activity log written by the other services
type ActivityService struct {
	events events.EventStore
}

// NewActivityService creates a new activity service
func NewActivityService(store events.EventStore) *ActivityService {
	return &ActivityService{events: store}
}

// History returns the activity of one entity, oldest first
func (s *ActivityService) History(ctx context.Context, entityType entities.EntityType, id uuid.UUID) ([]dto.ActivityEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	stream := events.StreamFor(entityType, id)
	recorded, err := s.events.ReadEvents(stream, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to read activity of %s: %w", stream, err)
	}
	return dto.NewActivityEntries(recorded), nil
}

// Feed returns every recorded event from the given position onwards
func (s *ActivityService) Feed(ctx context.Context, fromPosition int) ([]dto.ActivityEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	recorded, err := s.events.ReadAllEvents(fromPosition)
	if err != nil {
		return nil, fmt.Errorf("failed to read activity feed: %w", err)
	}
	return dto.NewActivityEntries(recorded), nil
}

package events

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/vsinha/tradeops/pkg/domain/entities"
)

const (
	EntityCreatedEvent      = "entity.created"
	StatusChangedEvent      = "status.changed"
	StatusAutoChangedEvent  = "status.auto_changed"
	DocumentNormalizedEvent = "document.normalized"
)

// StreamFor names the activity stream of one entity, e.g. "deal/<uuid>"
func StreamFor(entityType entities.EntityType, id uuid.UUID) string {
	return fmt.Sprintf("%s/%s", entityType, id)
}

type EntityCreated struct {
	EntityType entities.EntityType `json:"entity_type" yaml:"entity_type"`
	EntityID   uuid.UUID           `json:"entity_id" yaml:"entity_id"`
	Reference  string              `json:"reference" yaml:"reference"`
	Source     string              `json:"source,omitempty" yaml:"source,omitempty"`
}

// StatusChanged records a status update. Trigger names the entity whose own
// change caused an automatic update; it is empty for direct changes.
type StatusChanged struct {
	EntityType entities.EntityType `json:"entity_type" yaml:"entity_type"`
	EntityID   uuid.UUID           `json:"entity_id" yaml:"entity_id"`
	From       entities.Status     `json:"from" yaml:"from"`
	To         entities.Status     `json:"to" yaml:"to"`
	Trigger    string              `json:"trigger,omitempty" yaml:"trigger,omitempty"`
}

type DocumentNormalized struct {
	Category   entities.DocumentCategory `json:"category" yaml:"category"`
	Target     entities.EntityType       `json:"target" yaml:"target"`
	EntityID   uuid.UUID                 `json:"entity_id" yaml:"entity_id"`
	Confidence float64                   `json:"confidence,omitempty" yaml:"confidence,omitempty"`
	Warnings   []string                  `json:"warnings" yaml:"warnings"`
}

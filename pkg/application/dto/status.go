package dto

import (
	"github.com/google/uuid"

	"github.com/vsinha/tradeops/pkg/domain/entities"
	"github.com/vsinha/tradeops/pkg/domain/services/transitions"
)

// StatusChange is one applied status update
type StatusChange struct {
	EntityType entities.EntityType `json:"entity_type" yaml:"entity_type"`
	EntityID   uuid.UUID           `json:"entity_id" yaml:"entity_id"`
	From       entities.Status     `json:"from" yaml:"from"`
	To         entities.Status     `json:"to" yaml:"to"`
	// Automatic marks changes made by a cascade rather than a caller.
	Automatic bool `json:"automatic" yaml:"automatic"`
}

// StatusChangeResult is a requested change plus any cascaded changes
type StatusChangeResult struct {
	Change   StatusChange   `json:"change" yaml:"change"`
	Cascades []StatusChange `json:"cascades,omitempty" yaml:"cascades,omitempty"`
}

// StatusOptions lists the statuses an entity may move to next
type StatusOptions struct {
	EntityType entities.EntityType `json:"entity_type" yaml:"entity_type"`
	Current    entities.Status     `json:"current" yaml:"current"`
	Allowed    []entities.Status   `json:"allowed" yaml:"allowed"`
	Terminal   bool                `json:"terminal" yaml:"terminal"`
}

// TransitionCheck is the answer to a single legality query
type TransitionCheck struct {
	EntityType entities.EntityType `json:"entity_type" yaml:"entity_type"`
	From       entities.Status     `json:"from" yaml:"from"`
	To         entities.Status     `json:"to" yaml:"to"`
	Legal      bool                `json:"legal" yaml:"legal"`
}

// StatusEntry is one status of a lifecycle with its outgoing edges
type StatusEntry struct {
	Status   entities.Status   `json:"status" yaml:"status"`
	Next     []entities.Status `json:"next" yaml:"next"`
	Terminal bool              `json:"terminal" yaml:"terminal"`
}

// StatusCatalog is the full lifecycle of one entity type in order
type StatusCatalog struct {
	EntityType entities.EntityType `json:"entity_type" yaml:"entity_type"`
	Statuses   []StatusEntry       `json:"statuses" yaml:"statuses"`
}

// NewStatusCatalog lists the lifecycle of an entity type from its transition graph
func NewStatusCatalog(entityType entities.EntityType) StatusCatalog {
	statuses := transitions.Statuses(entityType)
	catalog := StatusCatalog{EntityType: entityType, Statuses: make([]StatusEntry, 0, len(statuses))}
	for _, s := range statuses {
		catalog.Statuses = append(catalog.Statuses, StatusEntry{
			Status:   s,
			Next:     transitions.AllowedNext(entityType, s),
			Terminal: transitions.IsTerminal(entityType, s),
		})
	}
	return catalog
}

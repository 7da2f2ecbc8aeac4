package dto

import (
	"github.com/google/uuid"

	"github.com/vsinha/tradeops/pkg/domain/entities"
)

// IntakeReport describes an entity created from a document together with
// the activity its creation recorded
type IntakeReport struct {
	EntityType    entities.EntityType `json:"entity_type" yaml:"entity_type"`
	EntityID      uuid.UUID           `json:"entity_id" yaml:"entity_id"`
	Reference     string              `json:"reference" yaml:"reference"`
	Status        entities.Status     `json:"status" yaml:"status"`
	Normalization NormalizationReport `json:"normalization" yaml:"normalization"`
	Activity      []ActivityEntry     `json:"activity" yaml:"activity"`
}

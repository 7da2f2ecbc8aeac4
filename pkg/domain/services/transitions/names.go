package transitions

import "github.com/vsinha/tradeops/pkg/domain/entities"

// AllowedNextByName is AllowedNext for loosely spelled entity and status names
func AllowedNextByName(entityType, current string) []entities.Status {
	e, ok := entities.ParseEntityType(entityType)
	if !ok {
		return []entities.Status{}
	}
	return AllowedNext(e, entities.NormalizeStatus(current))
}

// IsLegalByName is IsLegal for loosely spelled entity and status names
func IsLegalByName(entityType, from, to string) bool {
	e, ok := entities.ParseEntityType(entityType)
	if !ok {
		return false
	}
	return IsLegal(e, entities.NormalizeStatus(from), entities.NormalizeStatus(to))
}

// StatusesByName is Statuses for a loosely spelled entity name
func StatusesByName(entityType string) []entities.Status {
	e, ok := entities.ParseEntityType(entityType)
	if !ok {
		return []entities.Status{}
	}
	return Statuses(e)
}

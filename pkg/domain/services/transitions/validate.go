package transitions

import (
	"fmt"

	"github.com/vsinha/tradeops/pkg/domain/entities"
)

// ValidationResult describes the structural health of one lifecycle graph
type ValidationResult struct {
	EntityType entities.EntityType
	// Cycles are loops such as a quote revision round-trip. They are legal
	// and reported for inspection only.
	Cycles      [][]entities.Status
	Unreachable []entities.Status
	Errors      []string
}

// Valid reports whether the graph has no structural errors
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// Validate checks the lifecycle graph of an entity type: every edge must end
// in a known status, no edge may repeat, and every status must be reachable
// from the initial status.
func Validate(entityType entities.EntityType) *ValidationResult {
	g, ok := graphs[entityType]
	if !ok {
		return &ValidationResult{
			EntityType: entityType,
			Errors:     []string{fmt.Sprintf("no lifecycle graph for %s", entityType)},
		}
	}
	return validateGraph(entityType, entities.InitialStatus(entityType), g)
}

func validateGraph(entityType entities.EntityType, initial entities.Status, g graph) *ValidationResult {
	result := &ValidationResult{
		EntityType:  entityType,
		Cycles:      make([][]entities.Status, 0),
		Unreachable: make([]entities.Status, 0),
		Errors:      make([]string, 0),
	}

	known := make(map[entities.Status]bool, len(g.order))
	for _, s := range g.order {
		known[s] = true
	}
	if !known[initial] {
		result.Errors = append(result.Errors, fmt.Sprintf("initial status %q is not in the status set", initial))
	}

	for _, from := range g.order {
		seen := make(map[entities.Status]bool)
		for _, to := range g.next[from] {
			if !known[to] {
				result.Errors = append(result.Errors, fmt.Sprintf("%s -> %s ends outside the status set", from, to))
			}
			if seen[to] {
				result.Errors = append(result.Errors, fmt.Sprintf("duplicate edge %s -> %s", from, to))
			}
			seen[to] = true
		}
	}
	for from := range g.next {
		if !known[from] {
			result.Errors = append(result.Errors, fmt.Sprintf("edges declared for unknown status %q", from))
		}
	}

	visited := make(map[entities.Status]bool)
	onPath := make(map[entities.Status]bool)
	if known[initial] {
		walk(initial, g, visited, onPath, nil, &result.Cycles)
	}
	for _, s := range g.order {
		if !visited[s] {
			result.Unreachable = append(result.Unreachable, s)
			result.Errors = append(result.Errors, fmt.Sprintf("status %q is unreachable from %q", s, initial))
		}
	}

	return result
}

// walk is a depth-first traversal recording every back edge as a cycle
func walk(
	current entities.Status,
	g graph,
	visited map[entities.Status]bool,
	onPath map[entities.Status]bool,
	path []entities.Status,
	cycles *[][]entities.Status,
) {
	visited[current] = true
	onPath[current] = true
	path = append(path, current)

	for _, next := range g.next[current] {
		if !visited[next] {
			walk(next, g, visited, onPath, path, cycles)
			continue
		}
		if !onPath[next] {
			continue
		}
		for i, s := range path {
			if s == next {
				cycle := make([]entities.Status, 0, len(path)-i+1)
				cycle = append(cycle, path[i:]...)
				*cycles = append(*cycles, append(cycle, next))
				break
			}
		}
	}

	onPath[current] = false
}

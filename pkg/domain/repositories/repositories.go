// Package repositories declares the persistence contracts the application
// layer depends on. Storage engines live outside the domain.
package repositories

import "errors"

// ErrNotFound is returned when no entity exists under the requested id
var ErrNotFound = errors.New("not found")

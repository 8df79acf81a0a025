// Package domain holds the repository and audit contracts shared by the
// application services.
package domain

import (
	"github.com/felixgeelhaar/cowork/pkg/domain/space"
)

// SpaceRepository handles the persistence of the coworking documents in the
// .cowork/ directory.
type SpaceRepository interface {
	Initialize() error
	IsInitialized() bool
	// LoadSpace assembles the space from the persisted documents, seeding
	// the default rooms and products when no data exists. Malformed or
	// absent documents degrade to an empty collection, never a failure.
	LoadSpace() (*space.Space, error)
	// SaveSpace rewrites the client, product, room and booking documents.
	SaveSpace(*space.Space) error
	RecordEvent(event Event) error
	LoadEvents() ([]Event, error)
}

package templates

import "context"

// Store persists user-registered templates across processes. The registry
// keeps an in-memory working set and writes through to its store; Load is
// called once at startup.
//
// Implementations:
//   - memory: no persistence, for tests and embedding
//   - file: JSON files in a config directory, for CLI use
//   - redis: shared hash, for multi-instance deployments
//   - mongo: collection-backed, for the hosted API
type Store interface {
	// Load returns all persisted templates.
	Load(ctx context.Context) ([]Stored, error)

	// Save persists a template, replacing any existing entry with the same id.
	Save(ctx context.Context, t Stored) error

	// Delete removes a template by id. Deleting a missing id is not an error.
	Delete(ctx context.Context, id string) error

	// Close releases any underlying connections.
	Close() error
}

package devon

import "context"

// Viewer displays the rendered diagnostics to the user.
type Viewer interface {
	// View displays the items and blocks until the user exits.
	View(ctx context.Context, store *Store) error
}

// Package catalog implements the remote gemstone-catalog accessor: a typed
// HTTP/JSON client with bearer authentication and a small error taxonomy.
package catalog

import (
	"context"

	"github.com/msurana/gemvault/internal/client/models"
)

// Client is the remote catalog contract consumed by the coordinator.
type Client interface {
	// List fetches one page of gemstones matching the query.
	List(ctx context.Context, q models.Query) (models.Page, error)

	// Get fetches a single gemstone by id.
	Get(ctx context.Context, id string) (*models.Gemstone, error)

	// Create stores a new gemstone and returns the server's resulting entity,
	// including its initial audit trail.
	Create(ctx context.Context, g models.Gemstone) (*models.Gemstone, error)

	// Update applies a partial update and returns the resulting entity.
	Update(ctx context.Context, id string, patch models.GemstonePatch) (*models.Gemstone, error)

	// Delete removes a gemstone by id.
	Delete(ctx context.Context, id string) error
}

// TokenSource supplies the bearer credential attached to every request.
// Invalidate is called when the server answers 401, so the session layer can
// drop the stored token and force re-authentication.
type TokenSource interface {
	Token() (string, error)
	Invalidate()
}

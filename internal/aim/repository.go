package aim

import "context"

// Repository defines the storage interface for aims.
type Repository interface {
	// CreateAim adds a new aim to the repository and sets its ID.
	CreateAim(ctx context.Context, a *Aim) error

	// GetAim retrieves an aim by ID. Returns nil, nil if it does not exist.
	GetAim(ctx context.Context, id int64) (*Aim, error)

	// ListAims returns every stored aim in creation order.
	ListAims(ctx context.Context) ([]Aim, error)

	// Apply executes a mutation command.
	// Returns ErrAimNotFound if the command targets a missing aim.
	Apply(ctx context.Context, cmd Command) error

	// Close releases any resources held by the repository.
	Close() error
}

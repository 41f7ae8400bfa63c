package maintenance

import (
	"context"

	domain "quarters/internal/domain/maintenance"
)

// Store persists the maintenance issue document.
type Store interface {
	All(ctx context.Context) ([]domain.Issue, error)
	Replace(ctx context.Context, issues []domain.Issue) error
	Mutate(ctx context.Context, fn func(issues []domain.Issue) ([]domain.Issue, error)) error
}

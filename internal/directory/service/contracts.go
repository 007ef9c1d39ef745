package service

import (
	"context"

	"pcdir/internal/directory/models"
	person "pcdir/internal/person/models"
)

// EntryStore is the registry the service orchestrates. The in-memory store is
// the only implementation in this core.
type EntryStore interface {
	AppendPC(ctx context.Context, b models.PCBuilder) (*models.Entry, error)
	List(ctx context.Context) []*models.Entry
	FindByOwnerEmail(ctx context.Context, email person.EmailAddress) []*models.Entry
	Count(ctx context.Context) int
}

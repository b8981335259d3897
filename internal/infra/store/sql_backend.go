package store

import (
	"context"

	"github.com/dthstore/dthstore-api/internal/entity"
	"github.com/dthstore/dthstore-api/internal/infra/database"
)

// SQLBackend adapts the postgres lead repository to the router's Backend
// contract. Ids stay client-generated; postgres never substitutes them.
type SQLBackend struct {
	repo *database.LeadRepository
}

func NewSQLBackend(repo *database.LeadRepository) *SQLBackend {
	return &SQLBackend{repo: repo}
}

func (b *SQLBackend) GetLeads(ctx context.Context) ([]entity.Lead, error) {
	return b.repo.List(ctx)
}

func (b *SQLBackend) AddLead(ctx context.Context, lead *entity.Lead) (*entity.Lead, error) {
	if err := b.repo.Create(ctx, lead); err != nil {
		return nil, err
	}
	return lead, nil
}

func (b *SQLBackend) UpdateLead(ctx context.Context, lead *entity.Lead) error {
	return b.repo.Update(ctx, lead)
}

func (b *SQLBackend) DeleteLead(ctx context.Context, id string) error {
	return b.repo.Delete(ctx, id)
}

package attachment_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-movement-report/internal/application/attachment"
	"github.com/jhoicas/stock-movement-report/internal/domain"
	"github.com/jhoicas/stock-movement-report/internal/domain/entity"
)

type memAttachments map[string]*entity.Attachment

func (m memAttachments) Create(_ context.Context, a *entity.Attachment) error {
	m[a.ID] = a
	return nil
}

func (m memAttachments) GetByID(_ context.Context, id string) (*entity.Attachment, error) {
	return m[id], nil
}

func TestGet(t *testing.T) {
	repo := memAttachments{"A1": {ID: "A1", CompanyID: "C1", Name: "r.xlsx", Data: []byte("x")}}
	uc := attachment.NewUseCase(repo)
	ctx := context.Background()

	att, err := uc.Get(ctx, "C1", "A1")
	require.NoError(t, err)
	assert.Equal(t, "r.xlsx", att.Name)

	_, err = uc.Get(ctx, "C2", "A1")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.Get(ctx, "C1", "NOPE")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Get(ctx, "C1", " ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

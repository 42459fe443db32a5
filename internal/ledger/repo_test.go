package ledger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/overloadref/overloadref/internal/ledger"
)

func TestRepo_MutationsAlwaysFail(t *testing.T) {
	// Update and Delete refuse before ever touching storage
	repo := ledger.NewRepo(nil)

	err := repo.Update(context.Background(), &ledger.LogEntry{ID: "some-id"})
	assert.ErrorIs(t, err, ledger.ErrImmutableLedger)

	err = repo.Delete(context.Background(), "some-id")
	assert.ErrorIs(t, err, ledger.ErrImmutableLedger)
}

func TestMockRepo_MutationsAlwaysFail(t *testing.T) {
	repo := ledger.NewMockLedgerRepo()

	err := repo.Update(context.Background(), &ledger.LogEntry{ID: "some-id"})
	assert.ErrorIs(t, err, ledger.ErrImmutableLedger)

	err = repo.Delete(context.Background(), "some-id")
	assert.ErrorIs(t, err, ledger.ErrImmutableLedger)
}

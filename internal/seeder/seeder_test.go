package seeder

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pcdir/internal/directory/service"
	"pcdir/internal/directory/store"
)

func TestSeedFleet(t *testing.T) {
	svc := service.NewDirectoryService(store.NewInMemory())
	s := New(svc, slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx := context.Background()

	require.NoError(t, s.SeedFleet(ctx))

	pcs := svc.ListPCs(ctx)
	require.Len(t, pcs, 6)

	// Every seeded machine is owned, powered on, and densely numbered.
	for i, pc := range pcs {
		assert.Equal(t, i, pc.ID())
		assert.NotNil(t, pc.Owner())
		assert.True(t, pc.Status().IsOn())
	}

	// The two Vista machines are the outdated ones.
	outdated := 0
	for _, pc := range pcs {
		if pc.OS().IsOutdated() {
			outdated++
		}
	}
	assert.Equal(t, 2, outdated)

	// Seeded mail routing works end to end.
	require.NoError(t, svc.SendEmail(ctx, "don@drumpf.com", "upgrade!"))
	byName := svc.SearchByOwnerName(ctx, "don", "")
	require.Len(t, byName, 1)
	assert.Equal(t, 1, byName[0].MailboxLen())
}

func TestSeedFleet_Twice(t *testing.T) {
	svc := service.NewDirectoryService(store.NewInMemory())
	s := New(svc, slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx := context.Background()

	require.NoError(t, s.SeedFleet(ctx))
	// Owners are identical values, so a second seed shares them instead of failing.
	require.NoError(t, s.SeedFleet(ctx))

	pcs := svc.ListPCs(ctx)
	require.Len(t, pcs, 12)
	assert.Same(t, pcs[0].Owner(), pcs[6].Owner())
}

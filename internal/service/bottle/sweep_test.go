package service

import (
	"context"
	"errors"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/alcotheque/cellar/internal/model"
	"github.com/alcotheque/cellar/internal/service/mocks"
)

func TestServiceSweep(t *testing.T) {
	t.Parallel()

	ownerID := gofakeit.UUID()

	clean := stockedBottle(gofakeit.UUID(), model.Quantities{InStock: 2})

	// Stored status disagrees with the counters: partial write or
	// legacy data.
	drifted := stockedBottle(gofakeit.UUID(), model.Quantities{Opened: 3})
	drifted.Status = model.StageInStock

	d := deps{repository: mocks.NewMockBottleRepository(t)}
	d.repository.
		On("List", mock.Anything, ownerID).
		Return([]*model.Bottle{clean, drifted}, nil).
		Twice()
	d.repository.
		On("UpdateStatus", mock.Anything, drifted.ID, model.StageOpened).
		Return(nil).
		Once()

	svc := newSvc(d)

	repaired, err := svc.Sweep(context.Background(), ownerID)
	require.NoError(t, err)
	assert.Equal(t, 1, repaired)

	// Second pass with no intervening transitions: zero writes. The
	// single UpdateStatus expectation above would fail on a repeat.
	repaired, err = svc.Sweep(context.Background(), ownerID)
	require.NoError(t, err)
	assert.Equal(t, 0, repaired)
}

func TestServiceSweepNeverTouchesCounters(t *testing.T) {
	t.Parallel()

	ownerID := gofakeit.UUID()

	drifted := stockedBottle(gofakeit.UUID(), model.Quantities{Consumed: 2, Gifted: 2})
	drifted.Status = model.StageGifted

	d := deps{repository: mocks.NewMockBottleRepository(t)}
	d.repository.
		On("List", mock.Anything, ownerID).
		Return([]*model.Bottle{drifted}, nil).
		Once()
	// Tie-break: consumed beats gifted. Only UpdateStatus may run;
	// an ApplyUpdate or UpdateFields call would fail the mock.
	d.repository.
		On("UpdateStatus", mock.Anything, drifted.ID, model.StageConsumed).
		Return(nil).
		Once()

	repaired, err := newSvc(d).Sweep(context.Background(), ownerID)
	require.NoError(t, err)
	assert.Equal(t, 1, repaired)
}

func TestServiceSweepAll(t *testing.T) {
	t.Parallel()

	ownerA, ownerB := gofakeit.UUID(), gofakeit.UUID()

	drifted := stockedBottle(gofakeit.UUID(), model.Quantities{Consumed: 1})
	drifted.Status = model.StageInStock

	d := deps{repository: mocks.NewMockBottleRepository(t)}
	d.repository.On("Owners", mock.Anything).Return([]string{ownerA, ownerB}, nil).Once()
	d.repository.
		On("List", mock.Anything, ownerA).
		Return([]*model.Bottle{drifted}, nil).
		Once()
	d.repository.
		On("List", mock.Anything, ownerB).
		Return(([]*model.Bottle)(nil), errors.New("db read failed")).
		Once()
	d.repository.
		On("UpdateStatus", mock.Anything, drifted.ID, model.StageConsumed).
		Return(nil).
		Once()

	// A failing owner is skipped, the pass still reports the repair.
	repaired, err := newSvc(d).SweepAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, repaired)
}

func TestServiceSweepListError(t *testing.T) {
	t.Parallel()

	ownerID := gofakeit.UUID()

	d := deps{repository: mocks.NewMockBottleRepository(t)}
	d.repository.
		On("List", mock.Anything, ownerID).
		Return(([]*model.Bottle)(nil), errors.New("db read failed")).
		Once()

	repaired, err := newSvc(d).Sweep(context.Background(), ownerID)
	require.Error(t, err)
	assert.Zero(t, repaired)
}

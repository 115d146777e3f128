package sqlite

import (
	"context"
	"testing"
	"time"

	"animals-safety/internal/domain/animals"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestRepo(t *testing.T) *AnimalsRepo {
	t.Helper()

	db, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, Migrate(db))
	// idempotente
	require.NoError(t, Migrate(db))

	return NewAnimalsRepo(db)
}

func TestAnimalsRepo_AppendAndGet(t *testing.T) {
	ctx := context.Background()
	repo := openTestRepo(t)

	now := time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)
	in := animals.Animal{
		ID: "id-1", Name: "Milou", Breed: animals.BreedDog,
		Age: 6, Weight: 473.6, Height: 14.7, CreatedAt: now,
	}
	require.NoError(t, repo.Append(ctx, in))

	got, err := repo.GetByID(ctx, "id-1")
	require.NoError(t, err)
	assert.Equal(t, in.ID, got.ID)
	assert.Equal(t, in.Name, got.Name)
	assert.Equal(t, in.Breed, got.Breed)
	assert.Equal(t, in.Age, got.Age)
	assert.Equal(t, in.Weight, got.Weight)
	assert.Equal(t, in.Height, got.Height)
	assert.True(t, now.Equal(got.CreatedAt), "created_at %v != %v", got.CreatedAt, now)
}

func TestAnimalsRepo_DuplicateIDFails(t *testing.T) {
	ctx := context.Background()
	repo := openTestRepo(t)

	a := animals.Animal{ID: "dup", Name: "Rex", Breed: animals.BreedDog, CreatedAt: time.Now()}
	require.NoError(t, repo.Append(ctx, a))
	assert.Error(t, repo.Append(ctx, a))
}

func TestAnimalsRepo_ListInInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := openTestRepo(t)

	base := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)
	for i, id := range []string{"zeta", "alpha", "mid"} {
		require.NoError(t, repo.Append(ctx, animals.Animal{
			ID: id, Name: id, Breed: animals.BreedCat,
			CreatedAt: base.Add(-time.Duration(i) * time.Hour),
		}))
	}

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "zeta", items[0].ID)
	assert.Equal(t, "alpha", items[1].ID)
	assert.Equal(t, "mid", items[2].ID)
}

func TestAnimalsRepo_GetByID_NotFound(t *testing.T) {
	repo := openTestRepo(t)

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, animals.ErrNotFound)
}

func TestOpen_EmptyDSN(t *testing.T) {
	_, err := Open(context.Background(), " ")
	assert.Error(t, err)
}

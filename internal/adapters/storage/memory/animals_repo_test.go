package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"animals-safety/internal/domain/animals"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnimalRepo_AppendKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewAnimalRepo()

	for _, id := range []string{"c", "a", "b"} {
		require.NoError(t, repo.Append(ctx, animals.Animal{ID: id, Name: "n-" + id, Breed: animals.BreedCat}))
	}

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "c", items[0].ID)
	assert.Equal(t, "a", items[1].ID)
	assert.Equal(t, "b", items[2].ID)

	got, err := repo.GetByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "n-a", got.Name)
}

func TestAnimalRepo_RejectsMissingAndDuplicateID(t *testing.T) {
	ctx := context.Background()
	repo := NewAnimalRepo()

	assert.Error(t, repo.Append(ctx, animals.Animal{ID: "  "}))

	require.NoError(t, repo.Append(ctx, animals.Animal{ID: "x"}))
	assert.Error(t, repo.Append(ctx, animals.Animal{ID: "x"}))

	items, _ := repo.List(ctx)
	assert.Len(t, items, 1)
}

func TestAnimalRepo_GetByID_NotFound(t *testing.T) {
	_, err := NewAnimalRepo().GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, animals.ErrNotFound)
}

func TestAnimalRepo_ListReturnsCopy(t *testing.T) {
	ctx := context.Background()
	repo := NewAnimalRepo()
	require.NoError(t, repo.Append(ctx, animals.Animal{ID: "x", Name: "Rex"}))

	items, _ := repo.List(ctx)
	items[0].Name = "mutated"

	got, _ := repo.GetByID(ctx, "x")
	assert.Equal(t, "Rex", got.Name)
}

func TestAnimalRepo_ConcurrentAppends(t *testing.T) {
	ctx := context.Background()
	repo := NewAnimalRepo()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = repo.Append(ctx, animals.Animal{ID: fmt.Sprintf("id-%d", i)})
		}(i)
	}
	wg.Wait()

	items, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 50)
	for _, a := range items {
		got, err := repo.GetByID(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, a.ID, got.ID)
	}
}

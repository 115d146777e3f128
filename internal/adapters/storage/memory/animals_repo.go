package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"animals-safety/internal/domain/animals"
)

// animalRepo guarda el orden de inserción en un slice y un índice por id.
// El mutex cubre el caso de varios writers (requests HTTP concurrentes).
type animalRepo struct {
	mu    sync.RWMutex
	items []animals.Animal
	byID  map[string]int
}

func NewAnimalRepo() animals.Repository {
	return &animalRepo{
		items: make([]animals.Animal, 0),
		byID:  make(map[string]int),
	}
}

func (r *animalRepo) Append(ctx context.Context, a animals.Animal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(a.ID) == "" {
		return errors.New("animal id required")
	}
	if _, exists := r.byID[a.ID]; exists {
		return errors.New("animal already exists")
	}
	r.byID[a.ID] = len(r.items)
	r.items = append(r.items, a)
	return nil
}

func (r *animalRepo) GetByID(ctx context.Context, id string) (animals.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.byID[id]
	if !ok {
		return animals.Animal{}, animals.ErrNotFound
	}
	return r.items[i], nil
}

func (r *animalRepo) List(ctx context.Context) ([]animals.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]animals.Animal, len(r.items))
	copy(out, r.items)
	return out, nil
}

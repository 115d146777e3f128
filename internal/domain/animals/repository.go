package animals

import "context"

// Repository es el store compartido de animales.
// Desde este módulo es append-only; List respeta el orden de inserción.
type Repository interface {
	Append(ctx context.Context, a Animal) error
	GetByID(ctx context.Context, id string) (Animal, error)
	List(ctx context.Context) ([]Animal, error)
}

// Notifier muestra un mensaje transitorio al usuario (el "snackbar").
// Debe ser no bloqueante y best-effort.
type Notifier interface {
	Notify(ctx context.Context, message string)
}

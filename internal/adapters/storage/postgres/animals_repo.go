package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"animals-safety/internal/domain/animals"
)

type AnimalsRepo struct {
	db *sql.DB
}

func NewAnimalsRepo(db *sql.DB) *AnimalsRepo {
	return &AnimalsRepo{db: db}
}

// Append inserta una fila; seq (BIGSERIAL) conserva el orden de inserción.
func (r *AnimalsRepo) Append(ctx context.Context, a animals.Animal) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO animals (
			id, name, breed,
			age, weight, height,
			created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		a.ID,
		a.Name,
		string(a.Breed),
		a.Age,
		a.Weight,
		a.Height,
		a.CreatedAt,
	)
	return err
}

func (r *AnimalsRepo) GetByID(ctx context.Context, id string) (animals.Animal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return animals.Animal{}, animals.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, name, breed,
			age, weight, height,
			created_at
		FROM animals
		WHERE id = $1
	`, id)

	var a animals.Animal
	var breed string
	if err := row.Scan(
		&a.ID,
		&a.Name,
		&breed,
		&a.Age,
		&a.Weight,
		&a.Height,
		&a.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return animals.Animal{}, animals.ErrNotFound
		}
		return animals.Animal{}, err
	}
	a.Breed = animals.Breed(breed)

	return a, nil
}

func (r *AnimalsRepo) List(ctx context.Context) ([]animals.Animal, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, name, breed,
			age, weight, height,
			created_at
		FROM animals
		ORDER BY seq ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]animals.Animal, 0)
	for rows.Next() {
		var a animals.Animal
		var breed string
		if err := rows.Scan(
			&a.ID,
			&a.Name,
			&breed,
			&a.Age,
			&a.Weight,
			&a.Height,
			&a.CreatedAt,
		); err != nil {
			return nil, err
		}
		a.Breed = animals.Breed(breed)
		out = append(out, a)
	}

	return out, rows.Err()
}

package animals

import (
	"strings"
	"time"
)

// Breed es el catálogo cerrado de categorías de animal.
// El orden de declaración importa: el primero es el default del formulario.
type Breed string

const (
	BreedDog     Breed = "dog"
	BreedCat     Breed = "cat"
	BreedRabbit  Breed = "rabbit"
	BreedBird    Breed = "bird"
	BreedHamster Breed = "hamster"
	BreedHorse   Breed = "horse"
)

var breeds = []Breed{
	BreedDog,
	BreedCat,
	BreedRabbit,
	BreedBird,
	BreedHamster,
	BreedHorse,
}

// Breeds devuelve una copia del catálogo en orden de declaración.
func Breeds() []Breed {
	out := make([]Breed, len(breeds))
	copy(out, breeds)
	return out
}

// DefaultBreed es la selección inicial (primer valor declarado).
func DefaultBreed() Breed {
	return breeds[0]
}

// ParseBreed acepta el label sin importar mayúsculas ni espacios alrededor.
// String vacío => DefaultBreed.
func ParseBreed(s string) (Breed, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultBreed(), nil
	}
	for _, b := range breeds {
		if string(b) == s {
			return b, nil
		}
	}
	return "", ErrInvalidBreed
}

func (b Breed) Valid() bool {
	for _, v := range breeds {
		if v == b {
			return true
		}
	}
	return false
}

// Animal es un registro ya validado; nunca se construye a medias.
type Animal struct {
	ID string

	Name  string
	Breed Breed

	Age    int
	Weight float64
	Height float64

	CreatedAt time.Time
}

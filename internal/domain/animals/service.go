package animals

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"animals-safety/internal/platform/logger"

	"github.com/google/uuid"
)

type Service struct {
	repo     Repository
	notifier Notifier
	log      logger.Logger

	now   func() time.Time
	newID func() string
}

// NewService arma el caso de uso. notifier y log pueden ser nil.
func NewService(repo Repository, notifier Notifier, log logger.Logger) *Service {
	if notifier == nil {
		notifier = discardNotifier{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo:     repo,
		notifier: notifier,
		log:      log.With(map[string]any{"module": "animals"}),
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// CreateInput son los valores crudos del formulario.
type CreateInput struct {
	Name   string
	Breed  Breed
	Age    string
	Weight string
	Height string
}

// VerifyAndCreate valida y, si todo está ok, agrega el animal al store.
// En error notifica un único mensaje y devuelve false; el caller navega solo con true.
func (s *Service) VerifyAndCreate(ctx context.Context, in CreateInput) bool {
	_, err := s.Create(ctx, in)
	return err == nil
}

// Create es VerifyAndCreate devolviendo el registro o el error.
// Los errores de validación son *ValidationError; se notifican igual.
func (s *Service) Create(ctx context.Context, in CreateInput) (Animal, error) {
	// Breed viene de un selector cerrado: un valor fuera del catálogo es un bug
	// del caller, no un error de input, así que no se notifica.
	if in.Breed != "" && !in.Breed.Valid() {
		return Animal{}, ErrInvalidBreed
	}

	a, verr := s.build(in)
	if verr != nil {
		s.log.Debug("animal rejected", map[string]any{"kind": string(verr.Kind), "field": verr.Field})
		s.notifier.Notify(ctx, verr.Message())
		return Animal{}, verr
	}

	if err := s.repo.Append(ctx, a); err != nil {
		s.log.Error("append animal failed", map[string]any{"id": a.ID, "error": err.Error()})
		s.notifier.Notify(ctx, MessageSaveFailed)
		return Animal{}, fmt.Errorf("append animal: %w", err)
	}

	s.log.Info("animal created", map[string]any{"id": a.ID, "breed": string(a.Breed)})
	return a, nil
}

// build aplica las validaciones en orden fijo; la primera que falla corta.
func (s *Service) build(in CreateInput) (Animal, *ValidationError) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Animal{}, ErrEmptyName
	}

	age, err := strconv.Atoi(strings.TrimSpace(in.Age))
	if err != nil {
		return Animal{}, &ValidationError{Kind: KindInvalidAge, Field: "age", Err: err}
	}
	if age < 0 {
		return Animal{}, &ValidationError{Kind: KindInvalidAge, Field: "age", Err: fmt.Errorf("negative age %d", age)}
	}

	weight, err := parseMeasure(in.Weight)
	if err != nil {
		return Animal{}, &ValidationError{Kind: KindInvalidWeight, Field: "weight", Err: err}
	}

	height, err := parseMeasure(in.Height)
	if err != nil {
		return Animal{}, &ValidationError{Kind: KindInvalidHeight, Field: "height", Err: err}
	}

	breed := in.Breed
	if breed == "" {
		breed = DefaultBreed()
	}

	return Animal{
		ID:        s.newID(),
		Name:      name,
		Breed:     breed,
		Age:       age,
		Weight:    weight,
		Height:    height,
		CreatedAt: s.now(),
	}, nil
}

// parseMeasure usa ParseFloat tal cual; NaN/Inf no se pueden serializar a JSON.
// ParseFloat devuelve ±Inf con ErrRange en overflow, así que eso ya cae en err.
func parseMeasure(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("non-finite value %q", raw)
	}
	return v, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Animal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Animal{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Animal, error) {
	return s.repo.List(ctx)
}

type discardNotifier struct{}

func (discardNotifier) Notify(context.Context, string) {}

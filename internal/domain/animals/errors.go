package animals

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidBreed = errors.New("invalid breed")
)

// MessageSaveFailed se notifica cuando el store rechaza el append (solo backends SQL).
const MessageSaveFailed = "The animal could not be saved"

// ErrorKind identifica cuál validación falló primero.
type ErrorKind string

const (
	KindEmptyName     ErrorKind = "EMPTY_NAME"
	KindInvalidAge    ErrorKind = "INVALID_AGE"
	KindInvalidWeight ErrorKind = "INVALID_WEIGHT"
	KindInvalidHeight ErrorKind = "INVALID_HEIGHT"
)

// Message es el texto fijo que ve el usuario.
func (k ErrorKind) Message() string {
	switch k {
	case KindEmptyName:
		return "The name must not be empty"
	case KindInvalidAge:
		return "The age is not valid"
	case KindInvalidWeight:
		return "The weight is not valid"
	case KindInvalidHeight:
		return "The height is not valid"
	default:
		return "The animal is not valid"
	}
}

// ValidationError describe el primer campo inválido del formulario.
// Err guarda el error de strconv cuando lo hubo.
type ValidationError struct {
	Kind  ErrorKind
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("invalid %s", e.Field)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Is compara por Kind, así errors.Is(err, ErrInvalidAge) funciona
// aunque el error traiga la causa de strconv.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Message delega en el Kind.
func (e *ValidationError) Message() string { return e.Kind.Message() }

var (
	ErrEmptyName     = &ValidationError{Kind: KindEmptyName, Field: "name"}
	ErrInvalidAge    = &ValidationError{Kind: KindInvalidAge, Field: "age"}
	ErrInvalidWeight = &ValidationError{Kind: KindInvalidWeight, Field: "weight"}
	ErrInvalidHeight = &ValidationError{Kind: KindInvalidHeight, Field: "height"}
)

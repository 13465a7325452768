package domain

import (
	"errors"
	"fmt"
	"strconv"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrValidation = errors.New("validation error")

	ErrNegativeAmount     = errors.New("negative amount")
	ErrNegativeQuantity   = errors.New("negative quantity")
	ErrNonIntegerQuantity = errors.New("non-integer quantity")
	ErrNonFiniteValue     = errors.New("non-finite value")
)

// ValidationKind identifica la regla de validación que falló.
type ValidationKind int

const (
	NegativeAmount ValidationKind = iota + 1
	NegativeQuantity
	NonIntegerQuantity
	NonFiniteValue
)

func (k ValidationKind) sentinel() error {
	switch k {
	case NegativeAmount:
		return ErrNegativeAmount
	case NegativeQuantity:
		return ErrNegativeQuantity
	case NonIntegerQuantity:
		return ErrNonIntegerQuantity
	case NonFiniteValue:
		return ErrNonFiniteValue
	default:
		return nil
	}
}

// String devuelve el mensaje legible de la regla.
func (k ValidationKind) String() string {
	if s := k.sentinel(); s != nil {
		return s.Error()
	}
	return "unknown validation kind " + strconv.Itoa(int(k))
}

// Code devuelve el código estable usado en respuestas HTTP.
func (k ValidationKind) Code() string {
	switch k {
	case NegativeAmount:
		return "NEGATIVE_AMOUNT"
	case NegativeQuantity:
		return "NEGATIVE_QUANTITY"
	case NonIntegerQuantity:
		return "NON_INTEGER_QUANTITY"
	case NonFiniteValue:
		return "NON_FINITE_VALUE"
	default:
		return "VALIDATION"
	}
}

// ValidationError error tipado de los constructores de valores validados.
// Value conserva la entrada cruda que no cumplió la regla.
type ValidationError struct {
	Kind  ValidationKind
	Field string
	Value float64
}

// NewValidationError construye el error para el campo y la entrada indicados.
func NewValidationError(kind ValidationKind, field string, value float64) *ValidationError {
	return &ValidationError{Kind: kind, Field: field, Value: value}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s (%v)", e.Field, e.Kind, e.Value)
}

// Is permite errors.Is(err, ErrValidation) y errors.Is(err, ErrNegativeAmount), etc.
func (e *ValidationError) Is(target error) bool {
	if target == ErrValidation {
		return true
	}
	s := e.Kind.sentinel()
	return s != nil && s == target
}

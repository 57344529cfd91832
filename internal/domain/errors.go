package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas). Los casos de uso los
// devuelven envueltos o directos; la capa HTTP los traduce con errors.Is/As.
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrCyclicBundle      = errors.New("composición de bundle cíclica")
)

// ValidationError acumula todos los campos faltantes o mal formados de una
// petición; se construye completo antes de tocar el almacén.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("campos inválidos o faltantes: %s", strings.Join(e.Fields, ", "))
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// ConflictError señala un SKU duplicado, detectado por pre-chequeo o por la
// violación de unicidad del almacén traducida; ambas rutas producen el mismo error.
type ConflictError struct {
	SKU string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("el SKU %q ya existe", e.SKU)
}

func (e *ConflictError) Unwrap() error { return ErrConflict }

// CycleError reporta el camino de productos donde la composición se cierra
// sobre sí misma.
type CycleError struct {
	Path []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("ciclo de composición detectado: %s", strings.Join(e.Path, " -> "))
}

func (e *CycleError) Unwrap() error { return ErrCyclicBundle }

package repository

import (
	"context"

	"github.com/invorya/stockwatch/internal/domain/entity"
)

// BundleRepository define el puerto para las aristas de composición de bundles.
type BundleRepository interface {
	// ListComponents devuelve las aristas directas del bundle; vacío si el
	// producto no es bundle.
	ListComponents(ctx context.Context, bundleID string) ([]*entity.BundleComponent, error)
	// ReplaceComponents sustituye el conjunto completo de aristas del bundle.
	ReplaceComponents(ctx context.Context, bundleID string, components []*entity.BundleComponent) error
}

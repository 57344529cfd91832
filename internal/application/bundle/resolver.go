package bundle

import (
	"context"
	"fmt"

	"github.com/invorya/stockwatch/internal/domain"
	"github.com/invorya/stockwatch/internal/domain/entity"
	"github.com/invorya/stockwatch/internal/domain/repository"
)

// Resolver aplana la composición de bundles: expande el grafo de componentes
// en profundidad y acumula la cantidad total requerida por producto hoja,
// multiplicando los factores anidados. La lógica de reserva de stock que
// consume este resultado vive fuera de este servicio.
type Resolver struct {
	bundleRepo  repository.BundleRepository
	productRepo repository.ProductRepository
}

// NewResolver construye el resolver.
func NewResolver(bundleRepo repository.BundleRepository, productRepo repository.ProductRepository) *Resolver {
	return &Resolver{
		bundleRepo:  bundleRepo,
		productRepo: productRepo,
	}
}

// Resolve devuelve la cantidad total requerida por producto hoja para armar
// una unidad del bundle. Un producto sin componentes es hoja con
// multiplicador 1, así que sobre un no-bundle devuelve {id: 1}.
//
// Mantiene el conjunto de ancestros del camino actual: si un producto
// reaparece en su propio camino falla con CycleError en vez de recursar
// sin fin. Un componente compartido por dos ramas (diamante) es válido y
// sus cantidades se suman.
func (r *Resolver) Resolve(ctx context.Context, bundleID string) (map[string]int64, error) {
	product, err := r.productRepo.GetByID(ctx, bundleID)
	if err != nil {
		return nil, fmt.Errorf("get bundle product: %w", err)
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	required := make(map[string]int64)
	onPath := make(map[string]bool)
	if err := r.expand(ctx, bundleID, 1, onPath, nil, required); err != nil {
		return nil, err
	}
	return required, nil
}

func (r *Resolver) expand(ctx context.Context, productID string, multiplier int64, onPath map[string]bool, path []string, required map[string]int64) error {
	if onPath[productID] {
		return &domain.CycleError{Path: append(path, productID)}
	}
	components, err := r.bundleRepo.ListComponents(ctx, productID)
	if err != nil {
		return fmt.Errorf("list components of %s: %w", productID, err)
	}
	if len(components) == 0 {
		required[productID] += multiplier
		return nil
	}

	onPath[productID] = true
	path = append(path, productID)
	for _, c := range components {
		if err := r.expand(ctx, c.ComponentID, multiplier*c.QuantityInBundle, onPath, path, required); err != nil {
			return err
		}
	}
	delete(onPath, productID)
	return nil
}

// Replace valida y sustituye las aristas directas de un bundle. Rechaza la
// auto-referencia y cualquier arista que cerraría un ciclo transitivo con el
// grafo ya almacenado, todo antes de escribir.
func (r *Resolver) Replace(ctx context.Context, bundleID string, components []*entity.BundleComponent) error {
	product, err := r.productRepo.GetByID(ctx, bundleID)
	if err != nil {
		return fmt.Errorf("get bundle product: %w", err)
	}
	if product == nil {
		return domain.ErrNotFound
	}

	seen := make(map[string]bool)
	for _, c := range components {
		if c.ComponentID == bundleID {
			return &domain.CycleError{Path: []string{bundleID, bundleID}}
		}
		if c.QuantityInBundle <= 0 {
			return &domain.ValidationError{Fields: []string{"quantity_in_bundle"}}
		}
		comp, err := r.productRepo.GetByID(ctx, c.ComponentID)
		if err != nil {
			return fmt.Errorf("get component product: %w", err)
		}
		if comp == nil {
			return &domain.ValidationError{Fields: []string{"component_id"}}
		}
		// Si bundleID ya es alcanzable desde el componente, la arista nueva
		// cerraría el ciclo.
		if err := r.ensureNotReachable(ctx, c.ComponentID, bundleID, seen, []string{bundleID}); err != nil {
			return err
		}
	}
	return r.bundleRepo.ReplaceComponents(ctx, bundleID, components)
}

// ensureNotReachable recorre el grafo almacenado desde `from` y falla con
// CycleError si toca `target`. `seen` memoriza subárboles ya descartados.
func (r *Resolver) ensureNotReachable(ctx context.Context, from, target string, seen map[string]bool, path []string) error {
	if from == target {
		return &domain.CycleError{Path: append(path, from)}
	}
	if seen[from] {
		return nil
	}
	seen[from] = true
	components, err := r.bundleRepo.ListComponents(ctx, from)
	if err != nil {
		return fmt.Errorf("list components of %s: %w", from, err)
	}
	for _, c := range components {
		if err := r.ensureNotReachable(ctx, c.ComponentID, target, seen, append(path, from)); err != nil {
			return err
		}
	}
	return nil
}

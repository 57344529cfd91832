package bundle_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorya/stockwatch/internal/application/bundle"
	"github.com/invorya/stockwatch/internal/domain"
	"github.com/invorya/stockwatch/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeCatalog struct{ products map[string]*entity.Product }

func (f *fakeCatalog) Create(_ context.Context, p *entity.Product) error {
	f.products[p.ID] = p
	return nil
}

func (f *fakeCatalog) GetByID(_ context.Context, id string) (*entity.Product, error) {
	return f.products[id], nil
}

func (f *fakeCatalog) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	for _, p := range f.products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeCatalog) List(_ context.Context, _, _ int) ([]*entity.Product, error) {
	return nil, nil
}

type fakeBundleGraph struct {
	edges        map[string][]*entity.BundleComponent
	replaceCalls int
}

func (f *fakeBundleGraph) ListComponents(_ context.Context, bundleID string) ([]*entity.BundleComponent, error) {
	return f.edges[bundleID], nil
}

func (f *fakeBundleGraph) ReplaceComponents(_ context.Context, bundleID string, components []*entity.BundleComponent) error {
	f.replaceCalls++
	f.edges[bundleID] = components
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildResolver registra los productos pedidos y las aristas indicadas como
// "A>B:2" (el bundle A usa 2 de B).
func buildResolver(t *testing.T, ids []string, edges map[string][]*entity.BundleComponent) (*bundle.Resolver, *fakeBundleGraph) {
	t.Helper()
	catalog := &fakeCatalog{products: make(map[string]*entity.Product)}
	for _, id := range ids {
		catalog.products[id] = &entity.Product{ID: id, Name: "Producto " + id, SKU: "SKU-" + id}
	}
	if edges == nil {
		edges = make(map[string][]*entity.BundleComponent)
	}
	graph := &fakeBundleGraph{edges: edges}
	return bundle.NewResolver(graph, catalog), graph
}

func edge(bundleID, componentID string, qty int64) *entity.BundleComponent {
	return &entity.BundleComponent{BundleID: bundleID, ComponentID: componentID, QuantityInBundle: qty}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de Resolve
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: un producto sin componentes es hoja de sí mismo con cantidad 1.
func TestResolve_ProductoSimpleSeResuelveASiMismo(t *testing.T) {
	r, _ := buildResolver(t, []string{"A"}, nil)

	out, err := r.Resolve(context.Background(), "A")
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"A": 1}, out)
}

// Caso 2: bundle plano → las cantidades directas, sin el bundle en el mapa.
func TestResolve_BundlePlano(t *testing.T) {
	r, _ := buildResolver(t, []string{"A", "B", "C"}, map[string][]*entity.BundleComponent{
		"A": {edge("A", "B", 2), edge("A", "C", 3)},
	})

	out, err := r.Resolve(context.Background(), "A")
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"B": 2, "C": 3}, out)
}

// Caso 3: anidamiento multiplica los factores de cada nivel.
func TestResolve_AnidadoMultiplicaFactores(t *testing.T) {
	r, _ := buildResolver(t, []string{"A", "B", "C"}, map[string][]*entity.BundleComponent{
		"A": {edge("A", "B", 2)},
		"B": {edge("B", "C", 3)},
	})

	out, err := r.Resolve(context.Background(), "A")
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"C": 6}, out, "2 bundles B por 3 C cada uno son 6 C")
}

// Caso 4: un componente compartido por dos ramas (diamante) suma, no es ciclo.
func TestResolve_DiamanteSumaCantidades(t *testing.T) {
	r, _ := buildResolver(t, []string{"A", "B", "C", "D"}, map[string][]*entity.BundleComponent{
		"A": {edge("A", "B", 1), edge("A", "C", 1)},
		"B": {edge("B", "D", 2)},
		"C": {edge("C", "D", 3)},
	})

	out, err := r.Resolve(context.Background(), "A")
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"D": 5}, out, "el diamante es composición válida")
}

// Caso 5: ciclo directo A→B→A falla con el camino completo.
func TestResolve_CicloDirectoFalla(t *testing.T) {
	r, _ := buildResolver(t, []string{"A", "B"}, map[string][]*entity.BundleComponent{
		"A": {edge("A", "B", 1)},
		"B": {edge("B", "A", 1)},
	})

	_, err := r.Resolve(context.Background(), "A")
	require.Error(t, err)

	var cycErr *domain.CycleError
	require.ErrorAs(t, err, &cycErr)
	assert.True(t, errors.Is(err, domain.ErrCyclicBundle))
	assert.Contains(t, cycErr.Path, "A")
	assert.Contains(t, cycErr.Path, "B")
}

// Caso 6: ciclo transitivo A→B→C→A también se detecta.
func TestResolve_CicloTransitivoFalla(t *testing.T) {
	r, _ := buildResolver(t, []string{"A", "B", "C"}, map[string][]*entity.BundleComponent{
		"A": {edge("A", "B", 1)},
		"B": {edge("B", "C", 2)},
		"C": {edge("C", "A", 1)},
	})

	_, err := r.Resolve(context.Background(), "A")
	var cycErr *domain.CycleError
	require.ErrorAs(t, err, &cycErr)
	assert.Equal(t, []string{"A", "B", "C", "A"}, cycErr.Path)
}

// Caso 7: producto inexistente → ErrNotFound.
func TestResolve_ProductoInexistente(t *testing.T) {
	r, _ := buildResolver(t, []string{"A"}, nil)

	_, err := r.Resolve(context.Background(), "ZZZ")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de Replace
// ──────────────────────────────────────────────────────────────────────────────

// Caso 8: un bundle no puede contenerse a sí mismo.
func TestReplace_AutoReferenciaRechazada(t *testing.T) {
	r, graph := buildResolver(t, []string{"A"}, nil)

	err := r.Replace(context.Background(), "A", []*entity.BundleComponent{edge("A", "A", 1)})

	var cycErr *domain.CycleError
	require.ErrorAs(t, err, &cycErr)
	assert.Zero(t, graph.replaceCalls, "no debe escribirse nada")
}

// Caso 9: cantidad cero o negativa es inválida.
func TestReplace_CantidadInvalida(t *testing.T) {
	r, graph := buildResolver(t, []string{"A", "B"}, nil)

	err := r.Replace(context.Background(), "A", []*entity.BundleComponent{edge("A", "B", 0)})

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{"quantity_in_bundle"}, vErr.Fields)
	assert.Zero(t, graph.replaceCalls)
}

// Caso 10: componente que no existe en el catálogo.
func TestReplace_ComponenteInexistente(t *testing.T) {
	r, graph := buildResolver(t, []string{"A"}, nil)

	err := r.Replace(context.Background(), "A", []*entity.BundleComponent{edge("A", "ZZZ", 1)})

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{"component_id"}, vErr.Fields)
	assert.Zero(t, graph.replaceCalls)
}

// Caso 11: una arista que cerraría un ciclo con el grafo almacenado se
// rechaza ANTES de escribir; las aristas previas quedan intactas.
func TestReplace_CicloTransitivoNoEscribe(t *testing.T) {
	r, graph := buildResolver(t, []string{"A", "B", "C"}, map[string][]*entity.BundleComponent{
		"B": {edge("B", "C", 1)},
		"C": {edge("C", "A", 1)},
	})

	err := r.Replace(context.Background(), "A", []*entity.BundleComponent{edge("A", "B", 1)})

	var cycErr *domain.CycleError
	require.ErrorAs(t, err, &cycErr)
	assert.Zero(t, graph.replaceCalls)
	assert.Empty(t, graph.edges["A"], "el bundle no debe quedar a medio escribir")
}

// Caso 12: sustitución válida reemplaza el conjunto completo de aristas.
func TestReplace_SustituyeAristas(t *testing.T) {
	r, graph := buildResolver(t, []string{"A", "B", "C"}, map[string][]*entity.BundleComponent{
		"A": {edge("A", "B", 1)},
	})

	err := r.Replace(context.Background(), "A", []*entity.BundleComponent{edge("A", "C", 4)})
	require.NoError(t, err)
	assert.Equal(t, 1, graph.replaceCalls)
	require.Len(t, graph.edges["A"], 1)
	assert.Equal(t, "C", graph.edges["A"][0].ComponentID)
	assert.Equal(t, int64(4), graph.edges["A"][0].QuantityInBundle)
}

// Caso 13: bundle inexistente → ErrNotFound.
func TestReplace_BundleInexistente(t *testing.T) {
	r, _ := buildResolver(t, []string{"A"}, nil)

	err := r.Replace(context.Background(), "ZZZ", []*entity.BundleComponent{edge("ZZZ", "A", 1)})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

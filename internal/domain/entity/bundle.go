package entity

// BundleComponent es la arista padre→hijo de la composición de bundles:
// el producto bundle requiere QuantityInBundle unidades del componente.
// El grafo debe ser acíclico; el resolver lo verifica al expandir.
type BundleComponent struct {
	BundleID         string
	ComponentID      string
	QuantityInBundle int64
}

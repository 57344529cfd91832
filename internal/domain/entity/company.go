package entity

import "time"

// Company representa una organización/tenant de la plataforma. Es la frontera
// de aislamiento: toda bodega pertenece a exactamente una empresa y borrar la
// empresa arrastra sus bodegas.
type Company struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

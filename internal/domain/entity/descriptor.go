package entity

import "time"

// Descriptor es una categoría nombrada que los productos usan como Type.
// No puede eliminarse mientras algún producto la referencie.
type Descriptor struct {
	ID        string
	Name      string // único
	CreatedBy string // UserID
	CreatedAt time.Time
	UpdatedAt time.Time
}

package dto

import "time"

// CreateDescriptorRequest entrada para crear un descriptor.
type CreateDescriptorRequest struct {
	Name string `json:"name"`
}

// DescriptorResponse salida de un descriptor.
type DescriptorResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

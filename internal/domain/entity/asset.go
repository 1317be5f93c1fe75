package entity

import "time"

// Tipos válidos para Asset.
const (
	AssetTypeComputer = "computer"
	AssetTypeNotebook = "notebook"
)

// Estados válidos para Asset.
const (
	AssetStatusActive      = "active"
	AssetStatusInactive    = "inactive"
	AssetStatusMaintenance = "maintenance"
)

// Asset representa un equipo físico (computador o notebook) con nombre único
// y los productos que tiene instalados.
type Asset struct {
	ID        string
	Name      string // único
	Type      string // computer, notebook
	Status    string // active, inactive, maintenance
	Products  []AssetProduct
	CreatedBy string // UserID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AssetProduct es el vínculo producto-instalado con su fecha de instalación.
type AssetProduct struct {
	ProductID   string
	InstalledAt time.Time
}

// IsValidAssetType verifica el tipo de activo.
func IsValidAssetType(t string) bool {
	return t == AssetTypeComputer || t == AssetTypeNotebook
}

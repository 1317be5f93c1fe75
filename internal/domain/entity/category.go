package entity

// DefaultCategories es el conjunto cerrado de categorías de producto.
// Se comparte entre la validación de Product y el seed de Descriptor para no
// duplicar literales. Extender solo agregando valores, nunca renombrando.
var DefaultCategories = []string{
	"HD",
	"SSD",
	"Memoria Ram",
	"Teclado e Mouse",
	"Suporte de notebook",
	"Cabo HDMI",
	"Cabo de força",
	"Cabo VGA",
	"Cabo Displayport",
	"Filtro de linha",
	"Carregador + cabo usb C",
	"Cabo USB A-A",
	"Cabo USC A-B",
	"Smartphone",
}

// IsValidCategory verifica pertenencia al conjunto cerrado de categorías.
func IsValidCategory(name string) bool {
	for _, c := range DefaultCategories {
		if c == name {
			return true
		}
	}
	return false
}

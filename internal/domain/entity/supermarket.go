package entity

import "time"

// Supermarket representa una sucursal de la cadena. Nombre único global;
// el borrado es lógico (Status) y nunca elimina la fila.
type Supermarket struct {
	ID        string
	Name      string
	Address   string
	Phone     string
	Status    Status
	CreatedBy string // ID del admin que la creó
	CreatedAt time.Time
	UpdatedAt time.Time
}

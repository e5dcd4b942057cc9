package entity

import "time"

// Role rol de un usuario. Conjunto cerrado: toda decisión de autorización
// hace match exacto contra estas constantes, nunca contra strings sueltos.
type Role string

// Roles válidos para User. Admin y Provider son globales (sin sucursal);
// Manager y Worker operan atados a una sucursal.
const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleWorker   Role = "worker"
	RoleProvider Role = "provider"
)

// ParseRole valida un rol recibido del exterior. Devuelve false si no
// pertenece al conjunto cerrado.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleManager, RoleWorker, RoleProvider:
		return Role(s), true
	}
	return "", false
}

// Global indica si el rol opera sobre todas las sucursales (no lleva
// referencia a supermercado).
func (r Role) Global() bool {
	return r == RoleAdmin || r == RoleProvider
}

// User representa una cuenta del sistema. Nunca se borra físicamente:
// archivarla (StatusArchived) la vuelve invisible para login y listados.
type User struct {
	ID            string
	FirstName     string
	LastName      string
	Email         string // único, almacenado en minúsculas
	PasswordHash  string // bcrypt hash, nunca plano en dominio después de persistir
	Role          Role
	Status        Status
	SupermarketID *string // requerido para manager/worker; nil para roles globales
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// SupermarketName nombre de la sucursal asignada; lo pueblan las consultas
	// con JOIN para las respuestas, no es columna de users.
	SupermarketName *string
}

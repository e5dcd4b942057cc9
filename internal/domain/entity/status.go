package entity

// Status estado de ciclo de vida de un registro. El borrado siempre es
// lógico: Archived conserva el historial y excluye el registro de todos los
// listados por defecto. Cada consulta que quiera ver archivados debe pedirlo
// explícitamente.
type Status string

const (
	StatusActive   Status = "active"
	StatusArchived Status = "archived"
)

// Active indica si el registro es visible para la operación normal.
func (s Status) Active() bool {
	return s == StatusActive
}

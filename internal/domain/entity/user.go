package entity

// Roles for User. Managers additionally see revenue figures and the
// reports module; attendants get the sales-floor views.
const (
	RoleManager   = "manager"
	RoleAttendant = "attendant"
)

// User is a staff account.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, never the plain password
	Role         string // manager, attendant
}

package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin      = "admin"
	RoleDoctor     = "doctor"
	RoleNurse      = "nurse"
	RoleSecretary  = "secretary"
	RoleLaborant   = "laborant"
	RolePharmacist = "pharmacist"
)

// ValidRole indica si role es uno de los roles del hospital.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleDoctor, RoleNurse, RoleSecretary, RoleLaborant, RolePharmacist:
		return true
	}
	return false
}

// User representa un miembro del personal con acceso al sistema.
type User struct {
	ID           string
	Username     string // único
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	FirstName    string
	LastName     string
	Email        string
	Role         string // admin, doctor, nurse, secretary, laborant, pharmacist
	Department   string
	Phone        string
	IsActive     bool
	CreatedAt    time.Time
}

// FullName devuelve "Nombre Apellido".
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

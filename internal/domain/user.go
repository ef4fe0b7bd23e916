package domain

// Role represents a capability of an authenticated user.
// The set is closed: patient, professional, administrator.
type Role string

const (
	RolePatient       Role = "patient"
	RoleProfessional  Role = "professional"
	RoleAdministrator Role = "administrator"
)

// ParseRole validates a role string coming from the authentication collaborator
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RolePatient, RoleProfessional, RoleAdministrator:
		return Role(s), true
	default:
		return "", false
	}
}

// User is an already-authenticated identity with its role set
type User struct {
	ID    int64
	Roles []Role
}

// HasRole returns true if the user carries the given role
func (u *User) HasRole(role Role) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// IsAdministrator returns true if the user carries the administrator role
func (u *User) IsAdministrator() bool {
	return u.HasRole(RoleAdministrator)
}

// AccessScope describes which of a patient's appointments the requester may see
type AccessScope int

const (
	// ScopeNone доступ запрещен
	ScopeNone AccessScope = iota
	// ScopeAll все консультации пациента
	ScopeAll
	// ScopeOwnAsProfessional только консультации, где запрашивающий - профессионал
	ScopeOwnAsProfessional
)

// ResolvePatientAccess applies the permission rules for patient-scoped queries:
// administrators see all; professionals see only appointments where they are
// the professional; patients see only their own.
func ResolvePatientAccess(u *User, patientID int64) AccessScope {
	if u.IsAdministrator() {
		return ScopeAll
	}
	if u.HasRole(RoleProfessional) {
		return ScopeOwnAsProfessional
	}
	if u.HasRole(RolePatient) && u.ID == patientID {
		return ScopeAll
	}
	return ScopeNone
}

// CanViewAppointment returns true if the user may read the given appointment
func CanViewAppointment(u *User, a *Appointment) bool {
	if u.IsAdministrator() {
		return true
	}
	if u.HasRole(RoleProfessional) && u.ID == a.ProfessionalID {
		return true
	}
	return u.ID == a.PatientID
}

// CanCancelAppointment returns true if the user may cancel the given appointment
func CanCancelAppointment(u *User, a *Appointment) bool {
	return CanViewAppointment(u, a)
}

// CanViewProfessionalAppointments returns true if the user may list the
// appointments of the given professional
func CanViewProfessionalAppointments(u *User, professionalID int64) bool {
	if u.IsAdministrator() {
		return true
	}
	return u.HasRole(RoleProfessional) && u.ID == professionalID
}

// CanManageSlot returns true if the user may create, update or delete slots
// of the given professional
func CanManageSlot(u *User, professionalID int64) bool {
	if u.IsAdministrator() {
		return true
	}
	return u.HasRole(RoleProfessional) && u.ID == professionalID
}

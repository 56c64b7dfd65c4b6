package domain

// Role is the professional category governing which capabilities
// (navigation, appointment taxonomy, dashboard metrics) are exposed.
type Role string

const (
	RoleDoctor     Role = "doctor"
	RoleTutor      Role = "tutor"
	RoleGymTrainer Role = "gym_trainer"
	RoleBarber     Role = "barber"
	RoleUnknown    Role = "unknown"
)

// ParseRole maps an arbitrary string to a Role. Unrecognized or empty
// values fold into RoleUnknown so that capability resolution stays total.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleDoctor, RoleTutor, RoleGymTrainer, RoleBarber:
		return Role(s)
	default:
		return RoleUnknown
	}
}

// KnownRoles lists every role with a dedicated capability profile,
// RoleUnknown excluded.
func KnownRoles() []Role {
	return []Role{RoleDoctor, RoleTutor, RoleGymTrainer, RoleBarber}
}

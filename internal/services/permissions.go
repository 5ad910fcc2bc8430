package services

// RoleTable is the static role-to-permission mapping, loaded once at
// process start and shared read-only.
type RoleTable struct {
	permissions map[string][]string
}

// NewRoleTable returns the fixed three-role clinic permission table.
func NewRoleTable() *RoleTable {
	return &RoleTable{
		permissions: map[string][]string{
			"admin":     {"manage_users", "manage_vets"},
			"vet":       {"view_schedule", "write_prescriptions"},
			"reception": {"schedule_appointments"},
		},
	}
}

// Permissions returns the permission set for a role. Unknown roles
// yield an empty set, never an error.
func (t *RoleTable) Permissions(role string) []string {
	perms, ok := t.permissions[role]
	if !ok {
		return []string{}
	}
	out := make([]string, len(perms))
	copy(out, perms)
	return out
}

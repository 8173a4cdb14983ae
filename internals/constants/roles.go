package constants

// Role titles as stored in the roles table. The bootstrap admin identity
// (configured via ADMIN_LOGIN/ADMIN_PASSWORD) also carries RoleAdmin.
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

var AllRoles = []string{RoleAdmin, RoleUser}

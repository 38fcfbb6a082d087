package identity

import (
	"github.com/google/uuid"
	"github.com/sepandsoft/admin-directory/internal/models"
)

// IsSuper reports whether the caller holds the unrestricted role tier.
func (id Identity) IsSuper() bool {
	return id.Role == models.RoleSuperAdmin
}

// CanAccess reports whether the caller may read, modify or delete the admin
// record with the given id. SUPER_ADMIN is exempt from ownership checks;
// every other caller only reaches their own record. The check is pure and
// runs before any storage access.
func (id Identity) CanAccess(target uuid.UUID) bool {
	return id.IsSuper() || id.ID == target
}

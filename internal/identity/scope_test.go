package identity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/sepandsoft/admin-directory/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestCanAccess(t *testing.T) {
	self := uuid.New()
	other := uuid.New()

	tests := []struct {
		name   string
		caller Identity
		target uuid.UUID
		want   bool
	}{
		{"super admin reaches any record", Identity{ID: self, Role: models.RoleSuperAdmin}, other, true},
		{"super admin reaches own record", Identity{ID: self, Role: models.RoleSuperAdmin}, self, true},
		{"general admin reaches own record", Identity{ID: self, Role: models.RoleGeneralAdmin}, self, true},
		{"general admin blocked from other record", Identity{ID: self, Role: models.RoleGeneralAdmin}, other, false},
		{"unknown role blocked from other record", Identity{ID: self, Role: "VIEWER"}, other, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.caller.CanAccess(tt.target))
		})
	}
}

func TestIsSuper(t *testing.T) {
	assert.True(t, Identity{Role: models.RoleSuperAdmin}.IsSuper())
	assert.False(t, Identity{Role: models.RoleGeneralAdmin}.IsSuper())
}

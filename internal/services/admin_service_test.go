package services

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/sepandsoft/admin-directory/internal/dto"
	"github.com/sepandsoft/admin-directory/internal/identity"
	"github.com/sepandsoft/admin-directory/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	// A second pooled connection would see its own empty in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Admin{}))
	return db
}

func superCaller() identity.Identity {
	return identity.Identity{ID: uuid.New(), Role: models.RoleSuperAdmin}
}

func generalCaller() identity.Identity {
	return identity.Identity{ID: uuid.New(), Role: models.RoleGeneralAdmin}
}

var reqSeq int

func newCreateRequest(role string) *dto.CreateAdminRequest {
	reqSeq++
	return &dto.CreateAdminRequest{
		FirstName:  "Ali",
		LastName:   "Rezaei",
		NationalID: fmt.Sprintf("00123456%02d", reqSeq),
		Gender:     "male",
		Birthday:   "1990-04-12",
		Phone:      9121234567,
		Address:    "Tehran",
		Username:   fmt.Sprintf("ali%d", reqSeq),
		Email:      fmt.Sprintf("ali%d@example.com", reqSeq),
		Role:       role,
		Status:     models.StatusActive,
		Password:   "correct-horse-battery",
	}
}

func countAdmins(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&models.Admin{}).Count(&count).Error)
	return count
}

func TestCreateHonorsRequestedRoleForSuperCaller(t *testing.T) {
	svc := NewAdminService(newTestDB(t))

	admin, err := svc.Create(superCaller(), newCreateRequest(models.RoleSuperAdmin))
	require.NoError(t, err)
	assert.Equal(t, models.RoleSuperAdmin, admin.Role)
}

func TestCreateForcesGeneralRoleForGeneralCaller(t *testing.T) {
	svc := NewAdminService(newTestDB(t))

	// The requested SUPER_ADMIN role must be ignored.
	admin, err := svc.Create(generalCaller(), newCreateRequest(models.RoleSuperAdmin))
	require.NoError(t, err)
	assert.Equal(t, models.RoleGeneralAdmin, admin.Role)
}

func TestCreateHashesPassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db)

	req := newCreateRequest(models.RoleGeneralAdmin)
	admin, err := svc.Create(superCaller(), req)
	require.NoError(t, err)

	var stored models.Admin
	require.NoError(t, db.First(&stored, "id = ?", admin.ID).Error)
	assert.NotEqual(t, req.Password, stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte(req.Password)))
}

func TestCreateDuplicateIsConflictAndAddsNoRow(t *testing.T) {
	fields := []struct {
		name  string
		apply func(*dto.CreateAdminRequest, *dto.CreateAdminRequest)
	}{
		{"username", func(dup, orig *dto.CreateAdminRequest) { dup.Username = orig.Username }},
		{"email", func(dup, orig *dto.CreateAdminRequest) { dup.Email = orig.Email }},
		{"national_id", func(dup, orig *dto.CreateAdminRequest) { dup.NationalID = orig.NationalID }},
	}

	for _, tc := range fields {
		t.Run(tc.name, func(t *testing.T) {
			db := newTestDB(t)
			svc := NewAdminService(db)

			orig := newCreateRequest(models.RoleGeneralAdmin)
			_, err := svc.Create(superCaller(), orig)
			require.NoError(t, err)

			dup := newCreateRequest(models.RoleGeneralAdmin)
			tc.apply(dup, orig)

			_, err = svc.Create(superCaller(), dup)
			require.ErrorIs(t, err, ErrDuplicateAdmin)
			assert.EqualValues(t, 1, countAdmins(t, db))
		})
	}
}

func TestUpdateDuplicateIsConflictAndChangesNothing(t *testing.T) {
	fields := []struct {
		name  string
		apply func(*dto.UpdateAdminRequest, *models.Admin)
	}{
		{"username", func(req *dto.UpdateAdminRequest, taken *models.Admin) { req.Username = &taken.Username }},
		{"email", func(req *dto.UpdateAdminRequest, taken *models.Admin) { req.Email = &taken.Email }},
		{"national_id", func(req *dto.UpdateAdminRequest, taken *models.Admin) { req.NationalID = &taken.NationalID }},
	}

	for _, tc := range fields {
		t.Run(tc.name, func(t *testing.T) {
			db := newTestDB(t)
			svc := NewAdminService(db)

			taken, err := svc.Create(superCaller(), newCreateRequest(models.RoleGeneralAdmin))
			require.NoError(t, err)
			target, err := svc.Create(superCaller(), newCreateRequest(models.RoleGeneralAdmin))
			require.NoError(t, err)

			req := &dto.UpdateAdminRequest{}
			tc.apply(req, taken)

			_, err = svc.Update(target.ID, req)
			require.ErrorIs(t, err, ErrDuplicateAdmin)

			// The stored record keeps its own values.
			var stored models.Admin
			require.NoError(t, db.First(&stored, "id = ?", target.ID).Error)
			assert.Equal(t, target.Username, stored.Username)
			assert.Equal(t, target.Email, stored.Email)
			assert.Equal(t, target.NationalID, stored.NationalID)
		})
	}
}

func TestGetByIDNotFound(t *testing.T) {
	svc := NewAdminService(newTestDB(t))

	_, err := svc.GetByID(uuid.New())
	require.ErrorIs(t, err, ErrAdminNotFound)
}

func TestUpdateWithEmptyRequestChangesNothing(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db)

	created, err := svc.Create(superCaller(), newCreateRequest(models.RoleGeneralAdmin))
	require.NoError(t, err)

	updated, err := svc.Update(created.ID, &dto.UpdateAdminRequest{})
	require.NoError(t, err)

	assert.Equal(t, created.Username, updated.Username)
	assert.Equal(t, created.Email, updated.Email)
	assert.Equal(t, created.NationalID, updated.NationalID)
	assert.Equal(t, created.Password, updated.Password)
}

func TestUpdateMergesOnlySuppliedFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db)

	created, err := svc.Create(superCaller(), newCreateRequest(models.RoleGeneralAdmin))
	require.NoError(t, err)

	address := "Shiraz"
	updated, err := svc.Update(created.ID, &dto.UpdateAdminRequest{Address: &address})
	require.NoError(t, err)

	assert.Equal(t, "Shiraz", updated.Address)
	assert.Equal(t, created.Username, updated.Username)
	assert.Equal(t, created.Email, updated.Email)
	assert.Equal(t, created.FirstName, updated.FirstName)
	assert.Equal(t, created.Status, updated.Status)
}

func TestUpdateRehashesPassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db)

	created, err := svc.Create(superCaller(), newCreateRequest(models.RoleGeneralAdmin))
	require.NoError(t, err)
	oldHash := created.Password

	newPassword := "another-secret-phrase"
	updated, err := svc.Update(created.ID, &dto.UpdateAdminRequest{Password: &newPassword})
	require.NoError(t, err)

	assert.NotEqual(t, newPassword, updated.Password)
	assert.NotEqual(t, oldHash, updated.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte(newPassword)))
}

func TestUpdateNotFound(t *testing.T) {
	svc := NewAdminService(newTestDB(t))

	username := "ghost"
	_, err := svc.Update(uuid.New(), &dto.UpdateAdminRequest{Username: &username})
	require.ErrorIs(t, err, ErrAdminNotFound)
}

func TestDeleteReturnsRecordAndStaysNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db)

	created, err := svc.Create(superCaller(), newCreateRequest(models.RoleGeneralAdmin))
	require.NoError(t, err)

	deleted, err := svc.Delete(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Username, deleted.Username)
	assert.EqualValues(t, 0, countAdmins(t, db))

	_, err = svc.Delete(created.ID)
	require.ErrorIs(t, err, ErrAdminNotFound)

	// Idempotent terminal state.
	_, err = svc.Delete(created.ID)
	require.ErrorIs(t, err, ErrAdminNotFound)
}

func TestListPagination(t *testing.T) {
	svc := NewAdminService(newTestDB(t))

	for i := 0; i < 3; i++ {
		_, err := svc.Create(superCaller(), newCreateRequest(models.RoleGeneralAdmin))
		require.NoError(t, err)
	}

	page, err := svc.List(1, 1)
	require.NoError(t, err)
	assert.Len(t, page, 1)

	all, err := svc.List(0, 100)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestBootstrapSeedsOnlyOnEmptyTable(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db)

	require.NoError(t, svc.Bootstrap("root", "first-password"))
	assert.EqualValues(t, 1, countAdmins(t, db))

	var seeded models.Admin
	require.NoError(t, db.First(&seeded, "username = ?", "root").Error)
	assert.Equal(t, models.RoleSuperAdmin, seeded.Role)

	// A populated table is left alone.
	require.NoError(t, svc.Bootstrap("root2", "second-password"))
	assert.EqualValues(t, 1, countAdmins(t, db))
}

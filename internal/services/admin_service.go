package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sepandsoft/admin-directory/internal/dto"
	"github.com/sepandsoft/admin-directory/internal/identity"
	"github.com/sepandsoft/admin-directory/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrAdminNotFound   = errors.New("admin not found")
	ErrDuplicateAdmin  = errors.New("username, email or national id already registered")
	ErrNoSearchFilters = errors.New("no search filters provided")
	ErrInvalidOperator = errors.New("invalid logical operator")
)

type AdminService struct {
	db *gorm.DB
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{db: db}
}

// List returns a page of admin records.
func (s *AdminService) List(offset, limit int) ([]models.Admin, error) {
	var admins []models.Admin
	if err := s.db.Offset(offset).Limit(limit).Find(&admins).Error; err != nil {
		return nil, fmt.Errorf("list admins: %w", err)
	}
	return admins, nil
}

func (s *AdminService) GetByID(id uuid.UUID) (*models.Admin, error) {
	var admin models.Admin
	if err := s.db.First(&admin, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, fmt.Errorf("get admin: %w", err)
	}
	return &admin, nil
}

// Create hashes the plaintext password and inserts the record in a single
// transaction. A caller below SUPER_ADMIN always produces a GENERAL_ADMIN
// record; the requested role is ignored in that case.
func (s *AdminService) Create(caller identity.Identity, req *dto.CreateAdminRequest) (*models.Admin, error) {
	role := req.Role
	if !caller.IsSuper() {
		role = models.RoleGeneralAdmin
	}

	birthday, err := req.ParseBirthday()
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	status := req.Status
	if status == "" {
		status = models.StatusActive
	}

	admin := models.Admin{
		ID:         uuid.New(),
		NamePrefix: req.NamePrefix,
		FirstName:  req.FirstName,
		MiddleName: req.MiddleName,
		LastName:   req.LastName,
		NameSuffix: req.NameSuffix,
		NationalID: req.NationalID,
		Gender:     req.Gender,
		Birthday:   birthday,
		Phone:      req.Phone,
		Address:    req.Address,
		Username:   req.Username,
		Email:      req.Email,
		Role:       role,
		Status:     status,
		Password:   string(hash),
	}

	if err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&admin).Error
	}); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateAdmin
		}
		return nil, fmt.Errorf("create admin: %w", err)
	}

	return &admin, nil
}

// Update merges the supplied fields onto the persisted record. Fields absent
// from the request are never touched. A supplied password is re-hashed before
// it reaches storage.
func (s *AdminService) Update(id uuid.UUID, req *dto.UpdateAdminRequest) (*models.Admin, error) {
	admin, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	updates, err := req.Changes()
	if err != nil {
		return nil, err
	}
	if len(updates) == 0 {
		return admin, nil
	}

	if password, ok := updates["password"].(string); ok {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		updates["password"] = string(hash)
	}

	if err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Model(admin).Updates(updates).Error
	}); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateAdmin
		}
		return nil, fmt.Errorf("update admin: %w", err)
	}

	return s.GetByID(id)
}

// Delete removes the record and returns its last known state as confirmation.
// Deleting an id that no longer resolves stays ErrAdminNotFound.
func (s *AdminService) Delete(id uuid.UUID) (*models.Admin, error) {
	admin, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Delete(admin).Error
	}); err != nil {
		return nil, fmt.Errorf("delete admin: %w", err)
	}

	return admin, nil
}

// Bootstrap seeds an initial SUPER_ADMIN when the table is empty, so a fresh
// deployment has a caller able to pass the role allow-list.
func (s *AdminService) Bootstrap(username, password string) error {
	if username == "" || password == "" {
		return nil
	}

	var count int64
	if err := s.db.Model(&models.Admin{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count admins: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	admin := models.Admin{
		ID:         uuid.New(),
		FirstName:  "System",
		LastName:   "Administrator",
		NationalID: "0000000000",
		Username:   username,
		Email:      username + "@localhost",
		Role:       models.RoleSuperAdmin,
		Status:     models.StatusActive,
		Password:   string(hash),
	}

	return s.db.Create(&admin).Error
}

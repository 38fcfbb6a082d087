package dto

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sepandsoft/admin-directory/internal/models"
	"gorm.io/datatypes"
)

// birthdayLayout is the wire format for the date-only birthday field.
const birthdayLayout = "2006-01-02"

var ErrInvalidBirthday = errors.New("birthday must be in YYYY-MM-DD format")

type CreateAdminRequest struct {
	NamePrefix *string `json:"name_prefix"`
	FirstName  string  `json:"first_name"`
	MiddleName *string `json:"middle_name"`
	LastName   string  `json:"last_name"`
	NameSuffix *string `json:"name_suffix"`
	NationalID string  `json:"national_id"`
	Gender     string  `json:"gender"`
	Birthday   string  `json:"birthday"`
	Phone      int64   `json:"phone"`
	Address    string  `json:"address"`
	Username   string  `json:"username"`
	Email      string  `json:"email"`
	Role       string  `json:"role"`
	Status     string  `json:"status"`
	Password   string  `json:"password"`
}

// ParseBirthday converts the wire date into the storable column value.
func (r *CreateAdminRequest) ParseBirthday() (datatypes.Date, error) {
	if r.Birthday == "" {
		return datatypes.Date{}, nil
	}
	t, err := time.Parse(birthdayLayout, r.Birthday)
	if err != nil {
		return datatypes.Date{}, ErrInvalidBirthday
	}
	return datatypes.Date(t), nil
}

// UpdateAdminRequest carries a sparse field set. Nil pointers mean "leave the
// stored value untouched"; only explicitly supplied fields are merged.
type UpdateAdminRequest struct {
	NamePrefix *string `json:"name_prefix"`
	FirstName  *string `json:"first_name"`
	MiddleName *string `json:"middle_name"`
	LastName   *string `json:"last_name"`
	NameSuffix *string `json:"name_suffix"`
	NationalID *string `json:"national_id"`
	Gender     *string `json:"gender"`
	Birthday   *string `json:"birthday"`
	Phone      *int64  `json:"phone"`
	Address    *string `json:"address"`
	Username   *string `json:"username"`
	Email      *string `json:"email"`
	Role       *string `json:"role"`
	Status     *string `json:"status"`
	Password   *string `json:"password"`
}

// Changes returns the column updates for the fields present in the request.
// The password value is passed through as plaintext; hashing happens in the
// service before the map reaches storage.
func (r *UpdateAdminRequest) Changes() (map[string]interface{}, error) {
	updates := make(map[string]interface{})
	if r.NamePrefix != nil {
		updates["name_prefix"] = *r.NamePrefix
	}
	if r.FirstName != nil {
		updates["first_name"] = *r.FirstName
	}
	if r.MiddleName != nil {
		updates["middle_name"] = *r.MiddleName
	}
	if r.LastName != nil {
		updates["last_name"] = *r.LastName
	}
	if r.NameSuffix != nil {
		updates["name_suffix"] = *r.NameSuffix
	}
	if r.NationalID != nil {
		updates["national_id"] = *r.NationalID
	}
	if r.Gender != nil {
		updates["gender"] = *r.Gender
	}
	if r.Birthday != nil {
		t, err := time.Parse(birthdayLayout, *r.Birthday)
		if err != nil {
			return nil, ErrInvalidBirthday
		}
		updates["birthday"] = datatypes.Date(t)
	}
	if r.Phone != nil {
		updates["phone"] = *r.Phone
	}
	if r.Address != nil {
		updates["address"] = *r.Address
	}
	if r.Username != nil {
		updates["username"] = *r.Username
	}
	if r.Email != nil {
		updates["email"] = *r.Email
	}
	if r.Role != nil {
		updates["role"] = *r.Role
	}
	if r.Status != nil {
		updates["status"] = *r.Status
	}
	if r.Password != nil {
		updates["password"] = *r.Password
	}
	return updates, nil
}

// SearchAdminsQuery holds the optional filter fields plus the mandatory
// logical operator combining them.
type SearchAdminsQuery struct {
	Username   string
	Email      string
	Role       string
	Status     string
	NationalID string
	Gender     string
	Phone      int64
	Operator   string
	Offset     int
	Limit      int
}

// AdminResponse is the public view of an admin record. It never carries the
// password hash.
type AdminResponse struct {
	ID         uuid.UUID `json:"id"`
	NamePrefix *string   `json:"name_prefix,omitempty"`
	FirstName  string    `json:"first_name"`
	MiddleName *string   `json:"middle_name,omitempty"`
	LastName   string    `json:"last_name"`
	NameSuffix *string   `json:"name_suffix,omitempty"`
	NationalID string    `json:"national_id"`
	Gender     string    `json:"gender"`
	Birthday   string    `json:"birthday"`
	Phone      int64     `json:"phone"`
	Address    string    `json:"address"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func NewAdminResponse(a *models.Admin) AdminResponse {
	return AdminResponse{
		ID:         a.ID,
		NamePrefix: a.NamePrefix,
		FirstName:  a.FirstName,
		MiddleName: a.MiddleName,
		LastName:   a.LastName,
		NameSuffix: a.NameSuffix,
		NationalID: a.NationalID,
		Gender:     a.Gender,
		Birthday:   time.Time(a.Birthday).Format(birthdayLayout),
		Phone:      a.Phone,
		Address:    a.Address,
		Username:   a.Username,
		Email:      a.Email,
		Role:       a.Role,
		Status:     a.Status,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

func NewAdminListResponse(admins []models.Admin) []AdminResponse {
	out := make([]AdminResponse, 0, len(admins))
	for i := range admins {
		out = append(out, NewAdminResponse(&admins[i]))
	}
	return out
}

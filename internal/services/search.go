package services

import (
	"fmt"
	"strings"

	"github.com/sepandsoft/admin-directory/internal/dto"
	"github.com/sepandsoft/admin-directory/internal/models"
	"gorm.io/gorm/clause"
)

// Logical operators accepted by Search.
const (
	OperatorAnd = "AND"
	OperatorOr  = "OR"
	OperatorNot = "NOT"
)

// Search builds one predicate per supplied filter field and folds them with
// the requested operator. NOT negates the conjunction of all supplied
// filters, matching records that satisfy none of them; it is whole-set
// negation, not per-field. Zero matches is reported as ErrAdminNotFound so
// callers can tell "no results" apart from a malformed query.
func (s *AdminService) Search(q *dto.SearchAdminsQuery) ([]models.Admin, error) {
	conds := buildConditions(q)
	if len(conds) == 0 {
		return nil, ErrNoSearchFilters
	}

	var combined clause.Expression
	switch strings.ToUpper(q.Operator) {
	case OperatorAnd:
		combined = clause.And(conds...)
	case OperatorOr:
		combined = clause.Or(conds...)
	case OperatorNot:
		// Built directly so the conjunction stays a single expression and
		// renders as NOT (c1 AND c2); clause.Not would unwrap it and negate
		// each condition on its own.
		combined = clause.NotConditions{Exprs: []clause.Expression{
			clause.AndConditions{Exprs: conds},
		}}
	default:
		return nil, ErrInvalidOperator
	}

	var admins []models.Admin
	err := s.db.
		Clauses(clause.Where{Exprs: []clause.Expression{combined}}).
		Offset(q.Offset).
		Limit(q.Limit).
		Find(&admins).Error
	if err != nil {
		return nil, fmt.Errorf("search admins: %w", err)
	}

	if len(admins) == 0 {
		return nil, ErrAdminNotFound
	}
	return admins, nil
}

func buildConditions(q *dto.SearchAdminsQuery) []clause.Expression {
	var conds []clause.Expression
	if q.Username != "" {
		// Case-insensitive substring match, portable across dialects.
		pattern := "%" + strings.ToLower(q.Username) + "%"
		conds = append(conds, clause.Expr{SQL: "LOWER(username) LIKE ?", Vars: []interface{}{pattern}})
	}
	if q.Email != "" {
		conds = append(conds, clause.Eq{Column: "email", Value: q.Email})
	}
	if q.Role != "" {
		conds = append(conds, clause.Eq{Column: "role", Value: q.Role})
	}
	if q.Status != "" {
		conds = append(conds, clause.Eq{Column: "status", Value: q.Status})
	}
	if q.NationalID != "" {
		conds = append(conds, clause.Eq{Column: "national_id", Value: q.NationalID})
	}
	if q.Gender != "" {
		conds = append(conds, clause.Eq{Column: "gender", Value: q.Gender})
	}
	if q.Phone != 0 {
		conds = append(conds, clause.Eq{Column: "phone", Value: q.Phone})
	}
	return conds
}

package store

import (
	"time"

	"cashtrack/models"
)

// CreateOutflowInput carries the caller-supplied fields for a new outflow.
type CreateOutflowInput struct {
	Amount   float64
	Date     *time.Time
	Category string
	Note     string
}

// UpdateOutflowInput carries a partial update; nil fields are left untouched.
type UpdateOutflowInput struct {
	Amount   *float64
	Date     *time.Time
	Category *string
	Note     *string
}

// OutflowFilter narrows a listing. Day matches the closed calendar-day
// window of the given date; Category matches exactly.
type OutflowFilter struct {
	Day      *time.Time
	Category string
}

// CreateOutflow validates and persists a new outflow for ownerID. Date
// defaults to now and the category to other.
func (s *Store) CreateOutflow(ownerID uint, in CreateOutflowInput) (*models.Outflow, error) {
	if err := validateAmount(in.Amount); err != nil {
		return nil, err
	}
	if in.Category == "" {
		in.Category = models.CategoryOther
	}
	if err := validateCategory(in.Category); err != nil {
		return nil, err
	}
	if err := validateNote(in.Note); err != nil {
		return nil, err
	}

	date := time.Now()
	if in.Date != nil {
		date = *in.Date
	}

	outflow := models.Outflow{
		UserID:   ownerID,
		Amount:   in.Amount,
		Date:     date,
		Category: in.Category,
		Note:     in.Note,
	}
	if err := s.db.Create(&outflow).Error; err != nil {
		return nil, err
	}
	return &outflow, nil
}

// OutflowByID returns the outflow if it exists, belongs to ownerID and is
// not soft-deleted; otherwise ErrNotFound.
func (s *Store) OutflowByID(ownerID, id uint) (*models.Outflow, error) {
	var outflow models.Outflow
	err := s.db.Where("id = ? AND user_id = ? AND is_deleted = ?", id, ownerID, false).
		First(&outflow).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return &outflow, nil
}

// UpdateOutflow applies the non-nil fields of in to the record,
// re-validating anything that changed.
func (s *Store) UpdateOutflow(ownerID, id uint, in UpdateOutflowInput) (*models.Outflow, error) {
	outflow, err := s.OutflowByID(ownerID, id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if in.Amount != nil {
		if err := validateAmount(*in.Amount); err != nil {
			return nil, err
		}
		updates["amount"] = *in.Amount
		outflow.Amount = *in.Amount
	}
	if in.Date != nil {
		updates["date"] = *in.Date
		outflow.Date = *in.Date
	}
	if in.Category != nil {
		if err := validateCategory(*in.Category); err != nil {
			return nil, err
		}
		updates["category"] = *in.Category
		outflow.Category = *in.Category
	}
	if in.Note != nil {
		if err := validateNote(*in.Note); err != nil {
			return nil, err
		}
		updates["note"] = *in.Note
		outflow.Note = *in.Note
	}
	if len(updates) == 0 {
		return outflow, nil
	}

	if err := s.db.Model(outflow).Updates(updates).Error; err != nil {
		return nil, err
	}
	return outflow, nil
}

// SoftDeleteOutflow marks the record deleted. A repeat delete surfaces as
// ErrNotFound because the lookup excludes deleted rows.
func (s *Store) SoftDeleteOutflow(ownerID, id uint) error {
	outflow, err := s.OutflowByID(ownerID, id)
	if err != nil {
		return err
	}
	return s.db.Model(outflow).Update("is_deleted", true).Error
}

// ListOutflows returns one page of the owner's live outflows, newest first,
// with the pre-pagination total.
func (s *Store) ListOutflows(ownerID uint, f OutflowFilter, page, limit int) ([]models.Outflow, Pagination, error) {
	if page <= 0 {
		page = DefaultPage
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	query := s.db.Model(&models.Outflow{}).
		Where("user_id = ? AND is_deleted = ?", ownerID, false)
	if f.Day != nil {
		start, end := DayWindow(*f.Day)
		query = query.Where("date >= ? AND date <= ?", start, end)
	}
	if f.Category != "" {
		query = query.Where("category = ?", f.Category)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, Pagination{}, err
	}

	offset := (page - 1) * limit
	if offset < 0 {
		// page*limit overflowed, so the page is past the end
		return []models.Outflow{}, paginationFor(total, page, limit), nil
	}

	var outflows []models.Outflow
	err := query.Order("date DESC").
		Offset(offset).
		Limit(limit).
		Find(&outflows).Error
	if err != nil {
		return nil, Pagination{}, err
	}
	return outflows, paginationFor(total, page, limit), nil
}

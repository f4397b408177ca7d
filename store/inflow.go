package store

import (
	"time"

	"cashtrack/models"
)

// CreateInflowInput carries the caller-supplied fields for a new inflow.
type CreateInflowInput struct {
	Amount         float64
	Date           *time.Time
	PaymentChannel string
	Note           string
}

// UpdateInflowInput carries a partial update; nil fields are left untouched.
type UpdateInflowInput struct {
	Amount         *float64
	Date           *time.Time
	PaymentChannel *string
	Note           *string
}

// InflowFilter narrows a listing. Day matches the closed calendar-day
// window of the given date; Channel matches exactly.
type InflowFilter struct {
	Day     *time.Time
	Channel string
}

// CreateInflow validates and persists a new inflow for ownerID. Date
// defaults to now and the payment channel to cash.
func (s *Store) CreateInflow(ownerID uint, in CreateInflowInput) (*models.Inflow, error) {
	if err := validateAmount(in.Amount); err != nil {
		return nil, err
	}
	if in.PaymentChannel == "" {
		in.PaymentChannel = models.ChannelCash
	}
	if err := validateChannel(in.PaymentChannel); err != nil {
		return nil, err
	}
	if err := validateNote(in.Note); err != nil {
		return nil, err
	}

	date := time.Now()
	if in.Date != nil {
		date = *in.Date
	}

	inflow := models.Inflow{
		UserID:         ownerID,
		Amount:         in.Amount,
		Date:           date,
		PaymentChannel: in.PaymentChannel,
		Note:           in.Note,
	}
	if err := s.db.Create(&inflow).Error; err != nil {
		return nil, err
	}
	return &inflow, nil
}

// InflowByID returns the inflow if it exists, belongs to ownerID and is not
// soft-deleted; otherwise ErrNotFound.
func (s *Store) InflowByID(ownerID, id uint) (*models.Inflow, error) {
	var inflow models.Inflow
	err := s.db.Where("id = ? AND user_id = ? AND is_deleted = ?", id, ownerID, false).
		First(&inflow).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return &inflow, nil
}

// UpdateInflow applies the non-nil fields of in to the record, re-validating
// anything that changed. Lookup follows the same ownership and soft-delete
// rule as InflowByID.
func (s *Store) UpdateInflow(ownerID, id uint, in UpdateInflowInput) (*models.Inflow, error) {
	inflow, err := s.InflowByID(ownerID, id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if in.Amount != nil {
		if err := validateAmount(*in.Amount); err != nil {
			return nil, err
		}
		updates["amount"] = *in.Amount
		inflow.Amount = *in.Amount
	}
	if in.Date != nil {
		updates["date"] = *in.Date
		inflow.Date = *in.Date
	}
	if in.PaymentChannel != nil {
		if err := validateChannel(*in.PaymentChannel); err != nil {
			return nil, err
		}
		updates["payment_channel"] = *in.PaymentChannel
		inflow.PaymentChannel = *in.PaymentChannel
	}
	if in.Note != nil {
		if err := validateNote(*in.Note); err != nil {
			return nil, err
		}
		updates["note"] = *in.Note
		inflow.Note = *in.Note
	}
	if len(updates) == 0 {
		return inflow, nil
	}

	if err := s.db.Model(inflow).Updates(updates).Error; err != nil {
		return nil, err
	}
	return inflow, nil
}

// SoftDeleteInflow marks the record deleted. Because the lookup excludes
// deleted rows, a repeat delete surfaces as ErrNotFound.
func (s *Store) SoftDeleteInflow(ownerID, id uint) error {
	inflow, err := s.InflowByID(ownerID, id)
	if err != nil {
		return err
	}
	return s.db.Model(inflow).Update("is_deleted", true).Error
}

// ListInflows returns one page of the owner's live inflows, newest first,
// with the pre-pagination total.
func (s *Store) ListInflows(ownerID uint, f InflowFilter, page, limit int) ([]models.Inflow, Pagination, error) {
	if page <= 0 {
		page = DefaultPage
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	query := s.db.Model(&models.Inflow{}).
		Where("user_id = ? AND is_deleted = ?", ownerID, false)
	if f.Day != nil {
		start, end := DayWindow(*f.Day)
		query = query.Where("date >= ? AND date <= ?", start, end)
	}
	if f.Channel != "" {
		query = query.Where("payment_channel = ?", f.Channel)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, Pagination{}, err
	}

	offset := (page - 1) * limit
	if offset < 0 {
		// page*limit overflowed, so the page is past the end
		return []models.Inflow{}, paginationFor(total, page, limit), nil
	}

	var inflows []models.Inflow
	err := query.Order("date DESC").
		Offset(offset).
		Limit(limit).
		Find(&inflows).Error
	if err != nil {
		return nil, Pagination{}, err
	}
	return inflows, paginationFor(total, page, limit), nil
}

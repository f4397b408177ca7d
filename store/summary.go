package store

import (
	"sort"
	"time"

	"cashtrack/models"
)

// Transaction kinds in the merged history.
const (
	KindInflow  = "inflow"
	KindOutflow = "outflow"
)

// Summary aggregates both record collections over a date window.
type Summary struct {
	TotalInflows      float64 `json:"totalInflows"`
	TotalOutflows     float64 `json:"totalOutflows"`
	NetBalance        float64 `json:"netBalance"`
	InflowCount       int64   `json:"inflowCount"`
	OutflowCount      int64   `json:"outflowCount"`
	TotalTransactions int64   `json:"totalTransactions"`
}

// Transaction is one entry of the merged inflow/outflow history. Exactly
// one of PaymentChannel and Category is set, depending on Type.
type Transaction struct {
	ID             uint      `json:"id"`
	Type           string    `json:"type"`
	Amount         float64   `json:"amount"`
	Date           time.Time `json:"date"`
	PaymentChannel string    `json:"paymentChannel,omitempty"`
	Category       string    `json:"category,omitempty"`
	Note           string    `json:"note,omitempty"`
}

type sumCount struct {
	Total float64
	Count int64
}

func (s *Store) sumInflows(ownerID uint, start, end time.Time) (sumCount, error) {
	var res sumCount
	err := s.db.Model(&models.Inflow{}).
		Select("COALESCE(SUM(amount), 0) AS total, COUNT(*) AS count").
		Where("user_id = ? AND is_deleted = ? AND date >= ? AND date <= ?", ownerID, false, start, end).
		Scan(&res).Error
	return res, err
}

func (s *Store) sumOutflows(ownerID uint, start, end time.Time) (sumCount, error) {
	var res sumCount
	err := s.db.Model(&models.Outflow{}).
		Select("COALESCE(SUM(amount), 0) AS total, COUNT(*) AS count").
		Where("user_id = ? AND is_deleted = ? AND date >= ? AND date <= ?", ownerID, false, start, end).
		Scan(&res).Error
	return res, err
}

func (s *Store) summarize(ownerID uint, start, end time.Time) (*Summary, error) {
	inflows, err := s.sumInflows(ownerID, start, end)
	if err != nil {
		return nil, err
	}
	outflows, err := s.sumOutflows(ownerID, start, end)
	if err != nil {
		return nil, err
	}
	return &Summary{
		TotalInflows:      inflows.Total,
		TotalOutflows:     outflows.Total,
		NetBalance:        inflows.Total - outflows.Total,
		InflowCount:       inflows.Count,
		OutflowCount:      outflows.Count,
		TotalTransactions: inflows.Count + outflows.Count,
	}, nil
}

// DailySummary aggregates the owner's live records over the closed
// calendar-day window of day. A window with no records yields all zeros.
func (s *Store) DailySummary(ownerID uint, day time.Time) (*Summary, error) {
	start, end := DayWindow(day)
	return s.summarize(ownerID, start, end)
}

// RangeSummary aggregates over [startDay 00:00:00, endDay 23:59:59.999].
// An inverted range matches nothing and yields zeros rather than an error.
func (s *Store) RangeSummary(ownerID uint, startDay, endDay time.Time) (*Summary, error) {
	start, _ := DayWindow(startDay)
	_, end := DayWindow(endDay)
	return s.summarize(ownerID, start, end)
}

// TransactionHistory merges the owner's live inflows and outflows into one
// sequence ordered by date descending and returns the requested page.
// The merge happens in memory after loading both collections in full, so
// cost grows with the owner's total record count; fine at current volumes,
// revisit if owners accumulate six-figure histories.
func (s *Store) TransactionHistory(ownerID uint, page, limit int) ([]Transaction, Pagination, error) {
	if page <= 0 {
		page = DefaultPage
	}
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	var inflows []models.Inflow
	err := s.db.Where("user_id = ? AND is_deleted = ?", ownerID, false).
		Order("date DESC").
		Find(&inflows).Error
	if err != nil {
		return nil, Pagination{}, err
	}

	var outflows []models.Outflow
	err = s.db.Where("user_id = ? AND is_deleted = ?", ownerID, false).
		Order("date DESC").
		Find(&outflows).Error
	if err != nil {
		return nil, Pagination{}, err
	}

	merged := mergeTransactions(inflows, outflows)
	total := int64(len(merged))
	return pageOf(merged, page, limit), paginationFor(total, page, limit), nil
}

// TransactionsInRange returns the owner's full merged history over
// [startDay 00:00:00, endDay 23:59:59.999], unpaginated. Used by exports.
func (s *Store) TransactionsInRange(ownerID uint, startDay, endDay time.Time) ([]Transaction, error) {
	start, _ := DayWindow(startDay)
	_, end := DayWindow(endDay)

	var inflows []models.Inflow
	err := s.db.Where("user_id = ? AND is_deleted = ? AND date >= ? AND date <= ?", ownerID, false, start, end).
		Order("date DESC").
		Find(&inflows).Error
	if err != nil {
		return nil, err
	}

	var outflows []models.Outflow
	err = s.db.Where("user_id = ? AND is_deleted = ? AND date >= ? AND date <= ?", ownerID, false, start, end).
		Order("date DESC").
		Find(&outflows).Error
	if err != nil {
		return nil, err
	}

	return mergeTransactions(inflows, outflows), nil
}

// mergeTransactions tags and combines both collections, sorted by date
// descending. The sort is stable, so records with equal dates keep the
// merge order: inflows first, each list already newest-first.
func mergeTransactions(inflows []models.Inflow, outflows []models.Outflow) []Transaction {
	merged := make([]Transaction, 0, len(inflows)+len(outflows))
	for _, in := range inflows {
		merged = append(merged, Transaction{
			ID:             in.ID,
			Type:           KindInflow,
			Amount:         in.Amount,
			Date:           in.Date,
			PaymentChannel: in.PaymentChannel,
			Note:           in.Note,
		})
	}
	for _, out := range outflows {
		merged = append(merged, Transaction{
			ID:       out.ID,
			Type:     KindOutflow,
			Amount:   out.Amount,
			Date:     out.Date,
			Category: out.Category,
			Note:     out.Note,
		})
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Date.After(merged[j].Date)
	})
	return merged
}

// pageOf slices one page out of the merged sequence. A page past the end
// yields an empty page, not an error. A negative skip means page*limit
// overflowed, which is equally past the end.
func pageOf(merged []Transaction, page, limit int) []Transaction {
	skip := (page - 1) * limit
	if skip < 0 || skip >= len(merged) {
		return []Transaction{}
	}
	end := skip + limit
	if end > len(merged) {
		end = len(merged)
	}
	return merged[skip:end]
}

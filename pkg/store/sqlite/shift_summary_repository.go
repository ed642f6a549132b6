package sqlite

import (
	"context"
	"fmt"

	"vdcdisplay/pkg/store/sqlite/model"
)

// ShiftSummaryRepository read-only queries over the shift_summaries table
type ShiftSummaryRepository struct {
	ds *Datastore
}

// NewShiftSummaryRepository creates a new shift summary repository
func NewShiftSummaryRepository(ds *Datastore) *ShiftSummaryRepository {
	return &ShiftSummaryRepository{ds: ds}
}

// LatestCarryover returns the carryover hours from the most recently created
// summary for the exact (date, shift) pair. The second return value is false
// when no summary exists; an absent record is not an error.
func (r *ShiftSummaryRepository) LatestCarryover(ctx context.Context, date, shift string) (*model.CarryoverRecord, bool, error) {
	var record model.CarryoverRecord
	result := r.ds.DB(ctx).Raw(`
		SELECT COALESCE(carryover_hours, 0) AS carryover_hours
		FROM shift_summaries
		WHERE shift_date = ?
		AND shift_type = ?
		ORDER BY created_at DESC
		LIMIT 1
	`, date, shift).Scan(&record)
	if result.Error != nil {
		return nil, false, fmt.Errorf("failed to query carryover: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, false, nil
	}
	return &record, true, nil
}

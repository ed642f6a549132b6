package sqlite

import (
	"context"
	"fmt"

	"vdcdisplay/pkg/store/sqlite/model"
)

// StageRepository read-only aggregate queries over the production stage
// catalog and its occupying vehicles
type StageRepository struct {
	ds *Datastore
}

// NewStageRepository creates a new stage repository
func NewStageRepository(ds *Datastore) *StageRepository {
	return &StageRepository{ds: ds}
}

// Aggregates returns one row per catalog stage ordered by stage_order,
// aggregating vehicles that arrived on the given date. A nil shift includes
// all shifts for that date. Stages with no matching vehicles still appear
// with zero counts via the left join.
func (r *StageRepository) Aggregates(ctx context.Context, date string, shift *string) ([]model.StageAggregateRow, error) {
	var rows []model.StageAggregateRow
	err := r.ds.DB(ctx).Raw(`
		SELECT
			ps.stage_name,
			ps.stage_order,
			COUNT(DISTINCT v.id) AS vehicle_count,
			COALESCE(SUM(
				CASE WHEN wo.status != 'complete'
				THEN wo.estimated_hours
				ELSE 0 END
			), 0) AS hours_remaining,
			COALESCE(SUM(
				CASE WHEN wo.status = 'complete'
				THEN wo.actual_hours
				ELSE 0 END
			), 0) AS hours_completed
		FROM production_stages ps
		LEFT JOIN vehicles v ON v.current_stage_id = ps.id
			AND DATE(v.arrival_time) = ?
			AND (? IS NULL OR v.shift_assigned = ?)
		LEFT JOIN work_orders wo ON wo.vehicle_id = v.id
		GROUP BY ps.id, ps.stage_name, ps.stage_order
		ORDER BY ps.stage_order
	`, date, shift, shift).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query stage aggregates: %w", err)
	}
	return rows, nil
}

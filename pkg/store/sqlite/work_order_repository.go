package sqlite

import (
	"context"
	"fmt"
)

// WorkOrderRepository read-only aggregate queries over the work_orders table
type WorkOrderRepository struct {
	ds *Datastore
}

// NewWorkOrderRepository creates a new work order repository
func NewWorkOrderRepository(ds *Datastore) *WorkOrderRepository {
	return &WorkOrderRepository{ds: ds}
}

// CompletedHours sums actual hours across complete work orders whose owning
// vehicle matches the shift and arrival date. No matching rows yields zero.
func (r *WorkOrderRepository) CompletedHours(ctx context.Context, shift, date string) (float64, error) {
	var row struct {
		CompletedHours float64
	}
	err := r.ds.DB(ctx).Raw(`
		SELECT COALESCE(SUM(wo.actual_hours), 0) AS completed_hours
		FROM work_orders wo
		JOIN vehicles v ON wo.vehicle_id = v.id
		WHERE v.shift_assigned = ?
		AND DATE(v.arrival_time) = ?
		AND wo.status = 'complete'
	`, shift, date).Scan(&row).Error
	if err != nil {
		return 0, fmt.Errorf("failed to query completed work hours: %w", err)
	}
	return row.CompletedHours, nil
}

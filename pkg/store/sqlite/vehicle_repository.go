package sqlite

import (
	"context"
	"fmt"

	"vdcdisplay/pkg/store/sqlite/model"
)

// VehicleRepository read-only aggregate queries over the vehicles table
type VehicleRepository struct {
	ds *Datastore
}

// NewVehicleRepository creates a new vehicle repository
func NewVehicleRepository(ds *Datastore) *VehicleRepository {
	return &VehicleRepository{ds: ds}
}

// StatsByShiftDate returns vehicle count, summed estimated labor hours and
// delivered count for vehicles assigned to the given shift whose arrival
// falls on the given calendar date. No matching vehicles yields all zeros.
func (r *VehicleRepository) StatsByShiftDate(ctx context.Context, shift, date string) (*model.VehicleStats, error) {
	var stats model.VehicleStats
	err := r.ds.DB(ctx).Raw(`
		SELECT
			COUNT(*) AS total_vehicles,
			COALESCE(SUM(estimated_labor_hours), 0) AS total_hours,
			COUNT(CASE WHEN status = 'delivered' THEN 1 END) AS completed_vehicles
		FROM vehicles
		WHERE shift_assigned = ?
		AND DATE(arrival_time) = ?
	`, shift, date).Scan(&stats).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query vehicle stats: %w", err)
	}
	return &stats, nil
}

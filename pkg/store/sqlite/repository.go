package sqlite

import "gorm.io/gorm"

// Repository aggregates all read-only repositories over the logistics store
type Repository struct {
	ds *Datastore

	Vehicle      *VehicleRepository
	WorkOrder    *WorkOrderRepository
	ShiftSummary *ShiftSummaryRepository
	Stage        *StageRepository
}

// NewRepository opens the store at path and wires all sub-repositories
func NewRepository(path string) (*Repository, error) {
	ds, err := NewDatastore(path)
	if err != nil {
		return nil, err
	}
	return newRepository(ds), nil
}

// NewRepositoryFromDB wires the repositories over an existing connection.
// Used by tests that seed an in-memory store.
func NewRepositoryFromDB(db *gorm.DB) *Repository {
	return newRepository(NewDatastoreFromDB(db))
}

func newRepository(ds *Datastore) *Repository {
	return &Repository{
		ds:           ds,
		Vehicle:      NewVehicleRepository(ds),
		WorkOrder:    NewWorkOrderRepository(ds),
		ShiftSummary: NewShiftSummaryRepository(ds),
		Stage:        NewStageRepository(ds),
	}
}

// Close closes the database connection
func (r *Repository) Close() error {
	return r.ds.Close()
}

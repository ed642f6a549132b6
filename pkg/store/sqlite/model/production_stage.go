package model

// ProductionStage SQLite model for the production_stages catalog. Stages are
// ordered by stage_order and a vehicle occupies at most one at a time.
type ProductionStage struct {
	ID         int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	StageName  string `gorm:"column:stage_name;type:varchar(64);not null" json:"stage_name"`
	StageOrder int    `gorm:"column:stage_order;not null;uniqueIndex:idx_stage_order_unique" json:"stage_order"`
}

// TableName specifies the table name for ProductionStage
func (ProductionStage) TableName() string {
	return "production_stages"
}

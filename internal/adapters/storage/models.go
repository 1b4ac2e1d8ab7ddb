package storage

import "time"

// LaunchModel is the GORM model for the launches table
type LaunchModel struct {
	CreatedAt   time.Time
	ID          string           `gorm:"primaryKey"`
	Jobs        []LaunchJobModel `gorm:"foreignKey:LaunchID;constraint:OnDelete:CASCADE"`
	LaunchedAt  time.Time        `gorm:"not null;index:idx_launched_at"`
	Mode        string           `gorm:"not null;check:mode IN ('sequential','concurrent')"`
	SessionName string           `gorm:"not null;index:idx_session_name"`
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (LaunchModel) TableName() string { return "launches" }

// LaunchJobModel is the GORM model for the jobs of a launch. Position
// preserves declaration order.
type LaunchJobModel struct {
	CreatedAt   time.Time
	DisplayName string `gorm:"not null;default:''"`
	ID          uint   `gorm:"primaryKey;autoIncrement"`
	Interpreter string `gorm:"default:''"`
	LaunchID    string `gorm:"not null;index:idx_launch_id"`
	Path        string `gorm:"not null"`
	Position    int    `gorm:"not null;default:0;index:idx_job_position"`
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (LaunchJobModel) TableName() string { return "launch_jobs" }

package model

import "time"

// JobModel mirrors the 'jobs' table. Rows are seeded out-of-band and the
// service only ever reads them.
type JobModel struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	Title      string    `gorm:"type:varchar(255);not null"`
	Company    string    `gorm:"type:varchar(255);not null"`
	Location   string    `gorm:"type:varchar(255)"`
	PostedDate time.Time `gorm:"type:date"`
}

// TableName explicitly sets the table name for GORM.
func (JobModel) TableName() string {
	return "jobs"
}

// AlumniModel mirrors the 'alumni' table.
type AlumniModel struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"`
	Name           string `gorm:"type:varchar(255);not null"`
	GraduationYear int
	Major          string `gorm:"type:varchar(100)"`
}

// TableName explicitly sets the table name for GORM.
func (AlumniModel) TableName() string {
	return "alumni"
}

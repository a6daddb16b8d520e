package entity

type Appointment struct {
	ID        int    `gorm:"primaryKey"`
	PatientID int    `gorm:"not null;index"` // References: patients(id), not enforced
	Date      int64  `gorm:"not null"`       // Epoch microseconds of the wall clock as given
	Reason    string `gorm:"not null"`
	CreatedAt int64  `gorm:"not null;autoCreateTime:milli"`
	UpdatedAt int64  `gorm:"not null;autoUpdateTime:milli"`
}

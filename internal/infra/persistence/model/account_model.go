package model

import "time"

// AccountModel mirrors the 'accounts' table.
type AccountModel struct {
	ID           string  `gorm:"type:varchar(36);primaryKey"`
	Email        string  `gorm:"type:varchar(255);uniqueIndex;not null"`
	DisplayName  string  `gorm:"type:varchar(100);not null"`
	PasswordHash []byte  `gorm:"not null"`
	PasswordSalt []byte  `gorm:"not null"`
	MainImageURL *string `gorm:"type:varchar(1024)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}

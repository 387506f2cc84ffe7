package model

import "time"

// MemberModel mirrors the 'members' table. ID equals accounts.id.
type MemberModel struct {
	ID           string  `gorm:"type:varchar(36);primaryKey"`
	DisplayName  string  `gorm:"type:varchar(100);not null"`
	Description  string  `gorm:"type:text"`
	City         string  `gorm:"type:varchar(100)"`
	Country      string  `gorm:"type:varchar(100)"`
	Gender       string  `gorm:"type:varchar(20)"`
	DateOfBirth  time.Time
	MainImageURL *string `gorm:"type:varchar(1024)"`
	Version      int64   `gorm:"not null;default:0"`
	CreatedAt    time.Time
	LastActive   time.Time    `gorm:"index"`
	Photos       []PhotoModel `gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (MemberModel) TableName() string {
	return "members"
}

// PhotoModel mirrors the 'photos' table.
type PhotoModel struct {
	ID                int64   `gorm:"primaryKey;autoIncrement"`
	URL               string  `gorm:"type:varchar(1024);not null"`
	ExternalStorageID *string `gorm:"type:varchar(512)"`
	MemberID          string  `gorm:"type:varchar(36);index;not null"`
	CreatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (PhotoModel) TableName() string {
	return "photos"
}

// All lists the models in migration order.
func All() []any {
	return []any{&AccountModel{}, &MemberModel{}, &PhotoModel{}}
}

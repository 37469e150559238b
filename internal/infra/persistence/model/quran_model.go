package model

import (
	"time"
)

// SurahModel is the GORM-specific struct for the 'surahs' table.
type SurahModel struct {
	ID             int    `gorm:"primary_key"`
	Name           string `gorm:"type:varchar(100);not null"`
	EnglishName    string `gorm:"type:varchar(100);not null"`
	NumberOfAyahs  int    `gorm:"not null"`
	RevelationType string `gorm:"type:varchar(20)"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Ayahs []AyahModel `gorm:"foreignKey:SurahID;references:ID"`
}

// TableName explicitly sets the table name for GORM.
func (SurahModel) TableName() string {
	return "surahs"
}

// AyahModel is the GORM-specific struct for the 'ayahs' table. One row per
// verse, keyed by the global ayah number and unique within its surah.
type AyahModel struct {
	ID              int    `gorm:"primary_key"`
	SurahID         int    `gorm:"not null;uniqueIndex:idx_ayah_surah_number"`
	NumberInSurah   int    `gorm:"not null;uniqueIndex:idx_ayah_surah_number"`
	Juz             int    `gorm:"not null;default:0"`
	Page            int    `gorm:"not null;default:0"`
	TextArabic      string `gorm:"type:text;not null"`
	TextLatin       string `gorm:"type:text"`
	TextTranslation string `gorm:"type:text"`
	CreatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (AyahModel) TableName() string {
	return "ayahs"
}

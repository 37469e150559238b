// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"mihrab/internal/domain/entity"

	"github.com/pkg/errors"
)

var (
	// ErrSurahNotFound is returned when a surah is not found.
	ErrSurahNotFound = errors.New("surah not found")
	// ErrAyahNotFound is returned when an ayah is not found.
	ErrAyahNotFound = errors.New("ayah not found")
)

// QuranRepository defines the interface for the local Quran text cache.
type QuranRepository interface {
	// CountSurahs returns the number of cached surahs.
	CountSurahs(ctx context.Context) (int64, error)

	// UpsertSurah inserts or updates a surah together with its ayahs.
	UpsertSurah(ctx context.Context, surah *entity.Surah) error

	// FindAllSurahs retrieves every surah ordered by number, without ayahs.
	FindAllSurahs(ctx context.Context) ([]*entity.Surah, error)

	// FindSurahByID retrieves one surah with its ayahs ordered by verse number.
	FindSurahByID(ctx context.Context, id int) (*entity.Surah, error)

	// FindAyah retrieves a single verse by surah and verse number.
	FindAyah(ctx context.Context, surahID, numberInSurah int) (*entity.Ayah, error)
}

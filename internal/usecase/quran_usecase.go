package usecase

import (
	"context"

	"mihrab/internal/domain/entity"
)

// QuranUsecase serves Quran text from the local cache.
type QuranUsecase interface {
	// EnsureCache seeds the local cache from the external source unless all
	// surahs are already present. Run once at startup.
	EnsureCache(ctx context.Context) error

	// ListSurahs retrieves all surahs without their ayahs.
	ListSurahs(ctx context.Context) ([]*entity.Surah, error)

	// GetSurah retrieves one surah with its ayahs.
	GetSurah(ctx context.Context, id int) (*entity.Surah, error)

	// GetAyah retrieves a single verse.
	GetAyah(ctx context.Context, surahID, numberInSurah int) (*entity.Ayah, error)
}

package service

import (
	"context"

	"mihrab/internal/domain/entity"
)

// Quran text editions fetched from the external source.
const (
	EditionArabic          = "quran-simple"
	EditionTransliteration = "en.transliteration"
	EditionTranslation     = "id.indonesian"
)

// QuranSource defines the interface for the external Quran text provider,
// used once to seed the local cache.
type QuranSource interface {
	// FetchSurah returns the surah metadata and ayah texts for one surah in
	// the given edition.
	FetchSurah(ctx context.Context, number int, edition string) (*entity.Surah, error)
}

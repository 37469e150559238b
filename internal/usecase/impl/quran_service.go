package impl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"mihrab/internal/domain/entity"
	domainerrors "mihrab/internal/domain/errors"
	"mihrab/internal/domain/repository"
	"mihrab/internal/domain/service"
	"mihrab/internal/usecase"
)

type quranService struct {
	logger    *slog.Logger
	quranRepo repository.QuranRepository
	source    service.QuranSource
}

// NewQuranService creates a new Quran text service instance.
func NewQuranService(
	logger *slog.Logger,
	quranRepo repository.QuranRepository,
	source service.QuranSource,
) usecase.QuranUsecase {
	return &quranService{
		logger:    logger,
		quranRepo: quranRepo,
		source:    source,
	}
}

// EnsureCache seeds the local Quran cache from the external source. A cache
// that already holds all surahs is left untouched, so restarts are cheap.
// Each surah is fetched in three editions (Arabic, transliteration,
// translation) and the texts are merged by verse position.
func (s *quranService) EnsureCache(ctx context.Context) error {
	count, err := s.quranRepo.CountSurahs(ctx)
	if err != nil {
		return fmt.Errorf("failed to count cached surahs: %w", err)
	}
	if count == entity.SurahCount {
		s.logger.Info("quran cache already initialized")

		return nil
	}

	s.logger.Info("initializing quran cache", slog.Int64("cached", count))

	for number := 1; number <= entity.SurahCount; number++ {
		surah, err := s.fetchSurah(ctx, number)
		if err != nil {
			return fmt.Errorf("failed to fetch surah %d: %w", number, err)
		}

		if err := s.quranRepo.UpsertSurah(ctx, surah); err != nil {
			return fmt.Errorf("failed to store surah %d: %w", number, err)
		}
	}

	s.logger.Info("quran cache initialized")

	return nil
}

func (s *quranService) fetchSurah(ctx context.Context, number int) (*entity.Surah, error) {
	arabic, err := s.source.FetchSurah(ctx, number, service.EditionArabic)
	if err != nil {
		return nil, err
	}

	transliteration, err := s.source.FetchSurah(ctx, number, service.EditionTransliteration)
	if err != nil {
		return nil, err
	}

	translation, err := s.source.FetchSurah(ctx, number, service.EditionTranslation)
	if err != nil {
		return nil, err
	}

	// The editions share verse positions; merge the alternate texts into the
	// Arabic base by index.
	for i := range arabic.Ayahs {
		if i < len(transliteration.Ayahs) {
			arabic.Ayahs[i].TextLatin = transliteration.Ayahs[i].TextArabic
		}
		if i < len(translation.Ayahs) {
			arabic.Ayahs[i].TextTranslation = translation.Ayahs[i].TextArabic
		}
	}

	return arabic, nil
}

// ListSurahs retrieves all surahs without their ayahs.
func (s *quranService) ListSurahs(ctx context.Context) ([]*entity.Surah, error) {
	surahs, err := s.quranRepo.FindAllSurahs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list surahs: %w", err)
	}

	return surahs, nil
}

// GetSurah retrieves one surah with its ayahs.
func (s *quranService) GetSurah(ctx context.Context, id int) (*entity.Surah, error) {
	surah, err := s.quranRepo.FindSurahByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSurahNotFound) {
			return nil, domainerrors.ErrSurahNotFound
		}

		return nil, fmt.Errorf("failed to find surah: %w", err)
	}

	return surah, nil
}

// GetAyah retrieves a single verse by surah and verse number.
func (s *quranService) GetAyah(ctx context.Context, surahID, numberInSurah int) (*entity.Ayah, error) {
	ayah, err := s.quranRepo.FindAyah(ctx, surahID, numberInSurah)
	if err != nil {
		if errors.Is(err, repository.ErrAyahNotFound) {
			return nil, domainerrors.ErrAyahNotFound
		}

		return nil, fmt.Errorf("failed to find ayah: %w", err)
	}

	return ayah, nil
}

// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"mihrab/internal/domain/entity"
	domainerrors "mihrab/internal/domain/errors"
	"mihrab/internal/domain/repository"
	"mihrab/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// quranRepository implements the repository.QuranRepository interface.
type quranRepository struct {
	db *gorm.DB
}

// NewQuranRepository is the constructor for quranRepository.
func NewQuranRepository(db *gorm.DB) repository.QuranRepository {
	return &quranRepository{
		db: db,
	}
}

// CountSurahs returns the number of cached surahs.
func (repo *quranRepository) CountSurahs(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.SurahModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count surahs")
	}

	return count, nil
}

// UpsertSurah inserts or updates a surah together with its ayahs inside one
// transaction, so a crashed cache warm-up never leaves a surah without its
// verses.
func (repo *quranRepository) UpsertSurah(ctx context.Context, surah *entity.Surah) error {
	surahM := fromSurahDomain(surah)

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Clauses(clause.OnConflict{UpdateAll: true}).
			Omit("Ayahs").
			Create(&surahM).Error; err != nil {
			return errors.Wrap(err, "failed to upsert surah")
		}

		if len(surahM.Ayahs) == 0 {
			return nil
		}

		if err := tx.
			Clauses(clause.OnConflict{UpdateAll: true}).
			Create(surahM.Ayahs).Error; err != nil {
			return errors.Wrap(err, "failed to upsert ayahs")
		}

		return nil
	})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert surah with ayahs")
	}

	return nil
}

// FindAllSurahs retrieves every surah ordered by number, without ayahs.
func (repo *quranRepository) FindAllSurahs(ctx context.Context) ([]*entity.Surah, error) {
	var surahModels []*model.SurahModel

	if err := repo.db.WithContext(ctx).
		Order("id ASC").
		Find(&surahModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find surahs")
	}

	surahs := make([]*entity.Surah, 0, len(surahModels))
	for _, surahM := range surahModels {
		surahs = append(surahs, toSurahDomain(surahM))
	}

	return surahs, nil
}

// FindSurahByID retrieves one surah with its ayahs ordered by verse number.
func (repo *quranRepository) FindSurahByID(ctx context.Context, id int) (*entity.Surah, error) {
	var surahM model.SurahModel

	if err := repo.db.WithContext(ctx).
		Preload("Ayahs", func(db *gorm.DB) *gorm.DB {
			return db.Order("number_in_surah ASC")
		}).
		Where("id = ?", id).
		First(&surahM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSurahNotFound
		}

		return nil, errors.Wrap(err, "failed to find surah by ID")
	}

	return toSurahDomain(&surahM), nil
}

// FindAyah retrieves a single verse by surah and verse number.
func (repo *quranRepository) FindAyah(ctx context.Context, surahID, numberInSurah int) (*entity.Ayah, error) {
	var ayahM model.AyahModel

	if err := repo.db.WithContext(ctx).
		Where("surah_id = ?", surahID).
		Where("number_in_surah = ?", numberInSurah).
		First(&ayahM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAyahNotFound
		}

		return nil, errors.Wrap(err, "failed to find ayah")
	}

	ayah := toAyahDomain(&ayahM)

	return &ayah, nil
}

// toSurahDomain maps a persistence model to a pure domain entity.
func toSurahDomain(data *model.SurahModel) *entity.Surah {
	ayahs := make([]entity.Ayah, 0, len(data.Ayahs))
	for i := range data.Ayahs {
		ayahs = append(ayahs, toAyahDomain(&data.Ayahs[i]))
	}
	if len(ayahs) == 0 {
		ayahs = nil
	}

	return &entity.Surah{
		ID:             data.ID,
		Name:           data.Name,
		EnglishName:    data.EnglishName,
		NumberOfAyahs:  data.NumberOfAyahs,
		RevelationType: data.RevelationType,
		Ayahs:          ayahs,
	}
}

func toAyahDomain(data *model.AyahModel) entity.Ayah {
	return entity.Ayah{
		ID:              data.ID,
		SurahID:         data.SurahID,
		NumberInSurah:   data.NumberInSurah,
		Juz:             data.Juz,
		Page:            data.Page,
		TextArabic:      data.TextArabic,
		TextLatin:       data.TextLatin,
		TextTranslation: data.TextTranslation,
	}
}

// fromSurahDomain maps a domain entity to a persistence model.
func fromSurahDomain(data *entity.Surah) *model.SurahModel {
	ayahs := make([]model.AyahModel, 0, len(data.Ayahs))
	for i := range data.Ayahs {
		ayah := data.Ayahs[i]
		ayahs = append(ayahs, model.AyahModel{
			ID:              ayah.ID,
			SurahID:         ayah.SurahID,
			NumberInSurah:   ayah.NumberInSurah,
			Juz:             ayah.Juz,
			Page:            ayah.Page,
			TextArabic:      ayah.TextArabic,
			TextLatin:       ayah.TextLatin,
			TextTranslation: ayah.TextTranslation,
		})
	}

	return &model.SurahModel{
		ID:             data.ID,
		Name:           data.Name,
		EnglishName:    data.EnglishName,
		NumberOfAyahs:  data.NumberOfAyahs,
		RevelationType: data.RevelationType,
		Ayahs:          ayahs,
	}
}

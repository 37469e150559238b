// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"mihrab/internal/domain/entity"
	domainerrors "mihrab/internal/domain/errors"
	"mihrab/internal/domain/repository"
	"mihrab/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Cache keys are calendar dates formatted with time.DateOnly.
const cacheDateLayout = time.DateOnly

// prayerCacheRepository implements the repository.PrayerCacheRepository interface.
type prayerCacheRepository struct {
	db *gorm.DB
}

// NewPrayerCacheRepository is the constructor for prayerCacheRepository.
func NewPrayerCacheRepository(db *gorm.DB) repository.PrayerCacheRepository {
	return &prayerCacheRepository{
		db: db,
	}
}

// FindByDate retrieves the snapshot for the given date.
func (repo *prayerCacheRepository) FindByDate(ctx context.Context, date time.Time) (*entity.PrayerTimes, error) {
	var cacheM model.PrayerCacheModel

	if err := repo.db.WithContext(ctx).
		Where("date = ?", date.Format(cacheDateLayout)).
		First(&cacheM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPrayerTimesNotFound
		}

		return nil, errors.Wrap(err, "failed to find prayer times by date")
	}

	return toPrayerTimesDomain(&cacheM, date.Location()), nil
}

// Create inserts a snapshot for a date. A concurrent insert for the same date
// wins silently; both writers fetched the same upstream data.
func (repo *prayerCacheRepository) Create(ctx context.Context, times *entity.PrayerTimes) error {
	cacheM := fromPrayerTimesDomain(times)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(cacheM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create prayer times snapshot")
	}

	return nil
}

// DeleteBefore removes snapshots dated before the cutoff.
func (repo *prayerCacheRepository) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("date < ?", cutoff.Format(cacheDateLayout)).
		Delete(&model.PrayerCacheModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete stale prayer times")
	}

	return result.RowsAffected, nil
}

// toPrayerTimesDomain maps a persistence model to a pure domain entity. The
// caller's location rebinds the date string to local midnight.
func toPrayerTimesDomain(data *model.PrayerCacheModel, loc *time.Location) *entity.PrayerTimes {
	date, _ := time.ParseInLocation(cacheDateLayout, data.Date, loc)

	return &entity.PrayerTimes{
		Date:    date,
		Fajr:    data.Fajr,
		Dhuhr:   data.Dhuhr,
		Asr:     data.Asr,
		Maghrib: data.Maghrib,
		Isha:    data.Isha,
	}
}

// fromPrayerTimesDomain maps a domain entity to a persistence model.
func fromPrayerTimesDomain(data *entity.PrayerTimes) *model.PrayerCacheModel {
	return &model.PrayerCacheModel{
		Date:    data.Date.Format(cacheDateLayout),
		Fajr:    data.Fajr,
		Dhuhr:   data.Dhuhr,
		Asr:     data.Asr,
		Maghrib: data.Maghrib,
		Isha:    data.Isha,
	}
}

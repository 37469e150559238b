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

// locationCacheRepository implements the repository.LocationCacheRepository interface.
type locationCacheRepository struct {
	db *gorm.DB
}

// NewLocationCacheRepository is the constructor for locationCacheRepository.
func NewLocationCacheRepository(db *gorm.DB) repository.LocationCacheRepository {
	return &locationCacheRepository{
		db: db,
	}
}

// Find retrieves the cached entry for the rounded coordinate pair.
func (repo *locationCacheRepository) Find(ctx context.Context, lat, lon float64) (*entity.Location, error) {
	var locationM model.LocationCacheModel

	if err := repo.db.WithContext(ctx).
		Where("latitude = ?", lat).
		Where("longitude = ?", lon).
		First(&locationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find cached location")
	}

	return toLocationDomain(&locationM), nil
}

// Create inserts a new cache entry. A concurrent insert for the same rounded
// pair wins silently.
func (repo *locationCacheRepository) Create(ctx context.Context, location *entity.Location) error {
	locationM := fromLocationDomain(location)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(locationM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create cached location")
	}

	return nil
}

// toLocationDomain maps a persistence model to a pure domain entity.
func toLocationDomain(data *model.LocationCacheModel) *entity.Location {
	return &entity.Location{
		Latitude:    data.Latitude,
		Longitude:   data.Longitude,
		Address:     data.Address,
		City:        data.City,
		State:       data.State,
		Country:     data.Country,
		CountryCode: data.CountryCode,
		PostalCode:  data.PostalCode,
		DisplayName: data.DisplayName,
		CreatedAt:   data.CreatedAt,
	}
}

// fromLocationDomain maps a domain entity to a persistence model.
func fromLocationDomain(data *entity.Location) *model.LocationCacheModel {
	return &model.LocationCacheModel{
		Latitude:    data.Latitude,
		Longitude:   data.Longitude,
		Address:     data.Address,
		City:        data.City,
		State:       data.State,
		Country:     data.Country,
		CountryCode: data.CountryCode,
		PostalCode:  data.PostalCode,
		DisplayName: data.DisplayName,
		CreatedAt:   data.CreatedAt,
	}
}

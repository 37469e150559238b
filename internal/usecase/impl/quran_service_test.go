package impl

import (
	"context"
	"fmt"
	"testing"

	"mihrab/internal/domain/entity"
	domainerrors "mihrab/internal/domain/errors"
	"mihrab/internal/domain/repository"
	"mihrab/internal/domain/service"
	mockRepo "mihrab/internal/mocks/repository"
	mockSvc "mihrab/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// quranServiceFixtures holds all test dependencies for quran service tests.
type quranServiceFixtures struct {
	service   *quranService
	quranRepo *mockRepo.MockQuranRepository
	source    *mockSvc.MockQuranSource
}

func createTestQuranService(t *testing.T) quranServiceFixtures {
	quranRepo := mockRepo.NewMockQuranRepository(t)
	source := mockSvc.NewMockQuranSource(t)

	svc := NewQuranService(testLogger(), quranRepo, source)

	concrete, ok := svc.(*quranService)
	require.True(t, ok)

	return quranServiceFixtures{
		service:   concrete,
		quranRepo: quranRepo,
		source:    source,
	}
}

func TestQuranService_EnsureCache_FullCacheSkipsFetch(t *testing.T) {
	fx := createTestQuranService(t)

	ctx := context.Background()

	fx.quranRepo.EXPECT().
		CountSurahs(ctx).
		Return(int64(entity.SurahCount), nil)

	err := fx.service.EnsureCache(ctx)
	require.NoError(t, err)
	fx.source.AssertNotCalled(t, "FetchSurah", mock.Anything, mock.Anything, mock.Anything)
}

func TestQuranService_EnsureCache_MergesEditionsByVersePosition(t *testing.T) {
	fx := createTestQuranService(t)

	ctx := context.Background()

	fx.quranRepo.EXPECT().
		CountSurahs(ctx).
		Return(int64(0), nil)

	fx.source.EXPECT().
		FetchSurah(ctx, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, number int, edition string) (*entity.Surah, error) {
			return &entity.Surah{
				ID: number,
				Ayahs: []entity.Ayah{
					{SurahID: number, NumberInSurah: 1, TextArabic: fmt.Sprintf("%s-%d", edition, number)},
				},
			}, nil
		})

	var upserted []*entity.Surah
	fx.quranRepo.EXPECT().
		UpsertSurah(ctx, mock.Anything).
		Run(func(_ context.Context, surah *entity.Surah) {
			upserted = append(upserted, surah)
		}).
		Return(nil)

	err := fx.service.EnsureCache(ctx)
	require.NoError(t, err)
	require.Len(t, upserted, entity.SurahCount)

	first := upserted[0]
	require.Len(t, first.Ayahs, 1)
	assert.Equal(t, service.EditionArabic+"-1", first.Ayahs[0].TextArabic)
	assert.Equal(t, service.EditionTransliteration+"-1", first.Ayahs[0].TextLatin)
	assert.Equal(t, service.EditionTranslation+"-1", first.Ayahs[0].TextTranslation)
}

func TestQuranService_EnsureCache_FetchFailureAborts(t *testing.T) {
	fx := createTestQuranService(t)

	ctx := context.Background()

	fx.quranRepo.EXPECT().
		CountSurahs(ctx).
		Return(int64(0), nil)

	fx.source.EXPECT().
		FetchSurah(ctx, 1, service.EditionArabic).
		Return(nil, errors.New("timeout"))

	err := fx.service.EnsureCache(ctx)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch surah 1")
	fx.quranRepo.AssertNotCalled(t, "UpsertSurah", mock.Anything, mock.Anything)
}

func TestQuranService_GetSurah_NotFound(t *testing.T) {
	fx := createTestQuranService(t)

	ctx := context.Background()

	fx.quranRepo.EXPECT().
		FindSurahByID(ctx, 115).
		Return(nil, repository.ErrSurahNotFound)

	surah, err := fx.service.GetSurah(ctx, 115)
	assert.Nil(t, surah)
	assert.ErrorIs(t, err, domainerrors.ErrSurahNotFound)
}

func TestQuranService_GetAyah(t *testing.T) {
	fx := createTestQuranService(t)

	ctx := context.Background()
	ayah := &entity.Ayah{ID: 262, SurahID: 2, NumberInSurah: 255}

	fx.quranRepo.EXPECT().
		FindAyah(ctx, 2, 255).
		Return(ayah, nil)

	got, err := fx.service.GetAyah(ctx, 2, 255)
	require.NoError(t, err)
	assert.Equal(t, ayah, got)
}

func TestQuranService_GetAyah_NotFound(t *testing.T) {
	fx := createTestQuranService(t)

	ctx := context.Background()

	fx.quranRepo.EXPECT().
		FindAyah(ctx, 2, 999).
		Return(nil, repository.ErrAyahNotFound)

	ayah, err := fx.service.GetAyah(ctx, 2, 999)
	assert.Nil(t, ayah)
	assert.ErrorIs(t, err, domainerrors.ErrAyahNotFound)
}

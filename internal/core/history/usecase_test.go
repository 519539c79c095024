package history

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	mocks "weatherdash.app/internal/mocks"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

var testNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newTestUseCase(t *testing.T) (*UseCase, *mocks.HistoryRepository, *mocks.Clock) {
	repo := mocks.NewHistoryRepository(t)
	config := mocks.NewConfigProvider(t)
	clock := mocks.NewClock(testNow)

	config.EXPECT().GetHistoryConfig().Return(ports.HistoryConfig{
		DedupWindow: 10 * time.Minute,
		ListLimit:   10,
	}).Maybe()

	uc, err := NewUseCase(UseCaseDependencies{
		Repository: repo,
		Config:     config,
		Clock:      clock,
		Logger:     mocks.NewLogger(t).AllowAll(),
	})
	require.NoError(t, err)
	return uc, repo, clock
}

func TestUseCase_RecordSearch_FirstSearchInserts(t *testing.T) {
	uc, repo, _ := newTestUseCase(t)
	payload := json.RawMessage(`{"name":"Tokyo"}`)

	repo.EXPECT().LatestForCity(mock.Anything, uint(1), "Tokyo").
		Return((*ports.HistoryData)(nil), errors.NewNotFoundError("no history"))
	repo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(item *ports.HistoryData) bool {
		return item.UserID == 1 &&
			item.CityName == "Tokyo" &&
			item.CountryCode == "JP" &&
			item.SearchedAt.Equal(testNow) &&
			string(item.WeatherData) == `{"name":"Tokyo"}`
	})).Return(nil).Once()

	err := uc.RecordSearch(context.Background(), 1, "Tokyo", "JP", payload)
	assert.NoError(t, err)
}

func TestUseCase_RecordSearch_Deduplication(t *testing.T) {
	tests := []struct {
		name       string
		lastSearch time.Time
		wantInsert bool
	}{
		{name: "WithinWindow", lastSearch: testNow.Add(-3 * time.Minute), wantInsert: false},
		{name: "JustInsideWindow", lastSearch: testNow.Add(-9*time.Minute - 59*time.Second), wantInsert: false},
		{name: "AtWindowBoundary", lastSearch: testNow.Add(-10 * time.Minute), wantInsert: true},
		{name: "PastWindow", lastSearch: testNow.Add(-11 * time.Minute), wantInsert: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, repo, _ := newTestUseCase(t)

			repo.EXPECT().LatestForCity(mock.Anything, uint(1), "Tokyo").
				Return(&ports.HistoryData{ID: 4, UserID: 1, CityName: "Tokyo", SearchedAt: tt.lastSearch}, nil)
			if tt.wantInsert {
				repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
			}

			err := uc.RecordSearch(context.Background(), 1, "Tokyo", "JP", nil)
			require.NoError(t, err)
			if !tt.wantInsert {
				repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestUseCase_RecordSearch_LookupFailurePropagates(t *testing.T) {
	uc, repo, _ := newTestUseCase(t)

	repo.EXPECT().LatestForCity(mock.Anything, uint(1), "Tokyo").
		Return((*ports.HistoryData)(nil), errors.NewDatabaseError("failed to query history", fmt.Errorf("connection reset")))

	err := uc.RecordSearch(context.Background(), 1, "Tokyo", "JP", nil)

	assert.True(t, errors.IsDatabaseError(err))
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUseCase_RecordSearch_ValidationError(t *testing.T) {
	uc, _, _ := newTestUseCase(t)

	assert.True(t, errors.IsValidationError(uc.RecordSearch(context.Background(), 0, "Tokyo", "JP", nil)))
	assert.True(t, errors.IsValidationError(uc.RecordSearch(context.Background(), 1, "  ", "JP", nil)))
}

func TestUseCase_ListHistory(t *testing.T) {
	uc, repo, _ := newTestUseCase(t)

	rows := []*ports.HistoryData{
		{ID: 3, UserID: 2, CityName: "Paris", CountryCode: "FR", SearchedAt: testNow},
		{ID: 1, UserID: 2, CityName: "Tokyo", CountryCode: "JP", SearchedAt: testNow.Add(-time.Hour)},
	}
	repo.EXPECT().ListRecent(mock.Anything, uint(2), 10).Return(rows, nil)

	items, err := uc.ListHistory(context.Background(), 2)

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Paris", items[0].CityName)
	assert.Equal(t, "Tokyo", items[1].CityName)
}

func TestUseCase_ListHistory_Empty(t *testing.T) {
	uc, repo, _ := newTestUseCase(t)

	repo.EXPECT().ListRecent(mock.Anything, uint(2), 10).Return([]*ports.HistoryData{}, nil)

	items, err := uc.ListHistory(context.Background(), 2)

	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestIsDuplicate(t *testing.T) {
	assert.False(t, IsDuplicate(nil, testNow, 10*time.Minute))
	assert.True(t, IsDuplicate(&ports.HistoryData{SearchedAt: testNow.Add(-time.Minute)}, testNow, 10*time.Minute))
	assert.False(t, IsDuplicate(&ports.HistoryData{SearchedAt: testNow.Add(-time.Hour)}, testNow, 10*time.Minute))
}

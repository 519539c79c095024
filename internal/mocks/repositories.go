package mocks

import (
	"context"
	"encoding/json"

	"github.com/stretchr/testify/mock"
	"weatherdash.app/internal/ports"
)

// FavoriteRepository is a mock type for the ports.FavoriteRepository type
type FavoriteRepository struct {
	mock.Mock
}

type FavoriteRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *FavoriteRepository) EXPECT() *FavoriteRepository_Expecter {
	return &FavoriteRepository_Expecter{mock: &_m.Mock}
}

func (_m *FavoriteRepository) Create(ctx context.Context, favorite *ports.FavoriteData) error {
	ret := _m.Called(ctx, favorite)
	return ret.Error(0)
}

func (_e *FavoriteRepository_Expecter) Create(ctx interface{}, favorite interface{}) *mock.Call {
	return _e.mock.On("Create", ctx, favorite)
}

func (_m *FavoriteRepository) ListByUser(ctx context.Context, userID uint) ([]*ports.FavoriteData, error) {
	ret := _m.Called(ctx, userID)

	var r0 []*ports.FavoriteData
	if v := ret.Get(0); v != nil {
		r0 = v.([]*ports.FavoriteData)
	}
	return r0, ret.Error(1)
}

func (_e *FavoriteRepository_Expecter) ListByUser(ctx interface{}, userID interface{}) *mock.Call {
	return _e.mock.On("ListByUser", ctx, userID)
}

func (_m *FavoriteRepository) DeleteForUser(ctx context.Context, id, userID uint) error {
	ret := _m.Called(ctx, id, userID)
	return ret.Error(0)
}

func (_e *FavoriteRepository_Expecter) DeleteForUser(ctx interface{}, id interface{}, userID interface{}) *mock.Call {
	return _e.mock.On("DeleteForUser", ctx, id, userID)
}

// NewFavoriteRepository creates a new instance of FavoriteRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewFavoriteRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *FavoriteRepository {
	m := &FavoriteRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// HistoryRepository is a mock type for the ports.HistoryRepository type
type HistoryRepository struct {
	mock.Mock
}

type HistoryRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *HistoryRepository) EXPECT() *HistoryRepository_Expecter {
	return &HistoryRepository_Expecter{mock: &_m.Mock}
}

func (_m *HistoryRepository) LatestForCity(ctx context.Context, userID uint, cityName string) (*ports.HistoryData, error) {
	ret := _m.Called(ctx, userID, cityName)

	var r0 *ports.HistoryData
	if v := ret.Get(0); v != nil {
		r0 = v.(*ports.HistoryData)
	}
	return r0, ret.Error(1)
}

func (_e *HistoryRepository_Expecter) LatestForCity(ctx interface{}, userID interface{}, cityName interface{}) *mock.Call {
	return _e.mock.On("LatestForCity", ctx, userID, cityName)
}

func (_m *HistoryRepository) Create(ctx context.Context, item *ports.HistoryData) error {
	ret := _m.Called(ctx, item)
	return ret.Error(0)
}

func (_e *HistoryRepository_Expecter) Create(ctx interface{}, item interface{}) *mock.Call {
	return _e.mock.On("Create", ctx, item)
}

func (_m *HistoryRepository) ListRecent(ctx context.Context, userID uint, limit int) ([]*ports.HistoryData, error) {
	ret := _m.Called(ctx, userID, limit)

	var r0 []*ports.HistoryData
	if v := ret.Get(0); v != nil {
		r0 = v.([]*ports.HistoryData)
	}
	return r0, ret.Error(1)
}

func (_e *HistoryRepository_Expecter) ListRecent(ctx interface{}, userID interface{}, limit interface{}) *mock.Call {
	return _e.mock.On("ListRecent", ctx, userID, limit)
}

// NewHistoryRepository creates a new instance of HistoryRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewHistoryRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *HistoryRepository {
	m := &HistoryRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// SearchRecorder is a mock type for the ports.SearchRecorder type
type SearchRecorder struct {
	mock.Mock
}

type SearchRecorder_Expecter struct {
	mock *mock.Mock
}

func (_m *SearchRecorder) EXPECT() *SearchRecorder_Expecter {
	return &SearchRecorder_Expecter{mock: &_m.Mock}
}

func (_m *SearchRecorder) RecordSearch(ctx context.Context, userID uint, cityName, countryCode string, payload json.RawMessage) error {
	ret := _m.Called(ctx, userID, cityName, countryCode, payload)
	return ret.Error(0)
}

func (_e *SearchRecorder_Expecter) RecordSearch(ctx interface{}, userID interface{}, cityName interface{}, countryCode interface{}, payload interface{}) *mock.Call {
	return _e.mock.On("RecordSearch", ctx, userID, cityName, countryCode, payload)
}

// NewSearchRecorder creates a new instance of SearchRecorder. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewSearchRecorder(t interface {
	mock.TestingT
	Cleanup(func())
}) *SearchRecorder {
	m := &SearchRecorder{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

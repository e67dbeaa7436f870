package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCityHandler_GetAllCities(t *testing.T) {
	app, mock := newTestApp(t)
	now := time.Now()

	mock.ExpectQuery("FROM city").
		WillReturnRows(sqlmock.NewRows([]string{"city_id", "name", "created_at", "updated_at"}).
			AddRow(1, "Tbilisi", now, now).
			AddRow(2, "Batumi", now, now))

	req := httptest.NewRequest(http.MethodGet, "/api/city/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	out := decodeResponse(t, resp)
	assert.True(t, out.Success)
	cities := out.Data.([]any)
	require.Len(t, cities, 2)
	assert.Equal(t, "Tbilisi", cities[0].(map[string]any)["name"])
}

func TestCityHandler_CreateCity(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectQuery("INSERT INTO city").
		WithArgs("Kutaisi", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"city_id"}).AddRow(3))

	req := httptest.NewRequest(http.MethodPost, "/api/city/", bytes.NewReader([]byte(`{"name": "Kutaisi"}`)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	out := decodeResponse(t, resp)
	assert.True(t, out.Success)
	assert.Equal(t, float64(3), out.Data.(map[string]any)["id"])
}

func TestCityHandler_CreateCity_Duplicate(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectQuery("INSERT INTO city").
		WillReturnError(&pq.Error{Code: "23505"})

	req := httptest.NewRequest(http.MethodPost, "/api/city/", bytes.NewReader([]byte(`{"name": "Tbilisi"}`)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCityHandler_DeleteCity_InUse(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectQuery("SELECT EXISTS").WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery("SELECT EXISTS").WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	req := httptest.NewRequest(http.MethodDelete, "/api/city/1", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	out := decodeResponse(t, resp)
	assert.Equal(t, "City cannot be deleted while persons reference it", out.Message)
}

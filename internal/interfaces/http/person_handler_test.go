package http

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IkkkaM/PersonManagement/internal/application"
	"github.com/IkkkaM/PersonManagement/internal/domain"
	"github.com/IkkkaM/PersonManagement/internal/localization"
)

func newTestApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	loc := localization.New()
	personService := application.NewPersonService(db, zerolog.Nop())
	cityService := application.NewCityService(db, zerolog.Nop())

	app := fiber.New()
	RegisterRoutes(app,
		NewPersonHandler(personService, nil, loc, 5, zerolog.Nop()),
		NewCityHandler(cityService, loc),
		NewReportHandler(personService, loc),
		nil,
	)
	return app, mock
}

func decodeResponse(t *testing.T, resp *http.Response) ApiResponse {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out ApiResponse
	require.NoError(t, json.Unmarshal(body, &out))
	return out
}

func expectPersonDetailRows(mock sqlmock.Sqlmock, id int) {
	now := time.Now()
	dob := time.Date(1990, 5, 10, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("INNER JOIN city").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{
			"person_id", "first_name", "last_name", "gender", "personal_number",
			"date_of_birth", "city_id", "image_path", "created_at", "updated_at", "name",
		}).AddRow(id, "Giorgi", "Beridze", 1, "01005034099", dob, 1, nil, now, now, "Tbilisi"))
	mock.ExpectQuery("FROM phone_number").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"phone_number_id", "type", "number", "person_id", "created_at", "updated_at"}).
			AddRow(1, int(domain.PhoneTypeMobile), "+995599123456", id, now, now))
	mock.ExpectQuery("FROM person_connection pc").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{
			"person_connection_id", "person_id", "connected_person_id", "connection_type",
			"created_at", "updated_at", "first_name", "last_name", "personal_number",
		}).AddRow(10, id, 2, int(domain.ConnectionColleague), now, now, "Ana", "Gelashvili", "22233344455"))
}

func TestPersonHandler_GetPerson(t *testing.T) {
	app, mock := newTestApp(t)
	expectPersonDetailRows(mock, 1)

	req := httptest.NewRequest(http.MethodGet, "/api/person/1", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	out := decodeResponse(t, resp)
	assert.True(t, out.Success)

	data := out.Data.(map[string]any)
	assert.Equal(t, "Giorgi", data["firstName"])
	assert.Equal(t, "Tbilisi", data["cityName"])
	phones := data["phoneNumbers"].([]any)
	require.Len(t, phones, 1)
	connections := data["connections"].([]any)
	require.Len(t, connections, 1)
	assert.Equal(t, "Colleague", connections[0].(map[string]any)["connectionType"])
}

func TestPersonHandler_GetPerson_BadID(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/person/abc", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPersonHandler_GetPerson_NotFound(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectQuery("INNER JOIN city").
		WithArgs(99).
		WillReturnError(sql.ErrNoRows)

	req := httptest.NewRequest(http.MethodGet, "/api/person/99", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	out := decodeResponse(t, resp)
	assert.False(t, out.Success)
	assert.Equal(t, "Person not found", out.Message)
}

func TestPersonHandler_GetPerson_NotFoundGeorgian(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectQuery("INNER JOIN city").
		WithArgs(99).
		WillReturnError(sql.ErrNoRows)

	req := httptest.NewRequest(http.MethodGet, "/api/person/99", nil)
	req.Header.Set("Accept-Language", "ka-GE,ka;q=0.9")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	out := decodeResponse(t, resp)
	assert.Equal(t, "პირი ვერ მოიძებნა", out.Message)
}

func TestPersonHandler_CreatePerson_ValidationErrors(t *testing.T) {
	app, _ := newTestApp(t)

	body, err := json.Marshal(map[string]any{
		"firstName":      "",
		"lastName":       "Beridze",
		"gender":         1,
		"personalNumber": "123",
		"dateOfBirth":    "1990-05-10T00:00:00Z",
		"cityId":         1,
		"phoneNumbers":   []any{},
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/person/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	out := decodeResponse(t, resp)
	assert.False(t, out.Success)
	assert.Equal(t, "Validation failed", out.Message)
	assert.Contains(t, out.Errors, "First name is required")
}

func TestPersonHandler_CreatePerson(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectQuery("SELECT EXISTS").WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery("SELECT EXISTS").WithArgs("01005034099", 0).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO person").
		WillReturnRows(sqlmock.NewRows([]string{"person_id"}).AddRow(1))
	mock.ExpectQuery("INSERT INTO phone_number").
		WillReturnRows(sqlmock.NewRows([]string{"phone_number_id"}).AddRow(1))
	mock.ExpectCommit()
	expectPersonDetailRows(mock, 1)

	body, err := json.Marshal(map[string]any{
		"firstName":      "Giorgi",
		"lastName":       "Beridze",
		"gender":         1,
		"personalNumber": "01005034099",
		"dateOfBirth":    "1990-05-10T00:00:00Z",
		"cityId":         1,
		"phoneNumbers":   []any{map[string]any{"type": 1, "number": "+995599123456"}},
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/person/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	out := decodeResponse(t, resp)
	assert.True(t, out.Success)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPersonHandler_AddConnection(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectQuery("SELECT EXISTS").WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery("SELECT EXISTS").WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery("SELECT EXISTS").WithArgs(1, 2).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO person_connection").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	body := []byte(`{"connectedPersonId": 2, "connectionType": 1}`)
	req := httptest.NewRequest(http.MethodPost, "/api/person/1/connections", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPersonHandler_AddConnection_AlreadyExists(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectQuery("SELECT EXISTS").WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery("SELECT EXISTS").WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery("SELECT EXISTS").WithArgs(1, 2).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	body := []byte(`{"connectedPersonId": 2, "connectionType": 1}`)
	req := httptest.NewRequest(http.MethodPost, "/api/person/1/connections", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	out := decodeResponse(t, resp)
	assert.Equal(t, "These persons are already connected", out.Message)
}

func TestPersonHandler_RemoveConnection_NotConnected(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectQuery("SELECT EXISTS").WithArgs(1, 2).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	req := httptest.NewRequest(http.MethodDelete, "/api/person/1/connections/2", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPersonHandler_QuickSearch(t *testing.T) {
	app, mock := newTestApp(t)
	now := time.Now()
	dob := time.Date(1990, 5, 10, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT COUNT").WithArgs("ber").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("INNER JOIN city").
		WithArgs("ber", 0, 10).
		WillReturnRows(sqlmock.NewRows([]string{
			"person_id", "first_name", "last_name", "gender", "personal_number",
			"date_of_birth", "city_id", "image_path", "created_at", "updated_at", "name",
		}).AddRow(1, "Giorgi", "Beridze", 1, "01005034099", dob, 1, nil, now, now, "Tbilisi"))

	req := httptest.NewRequest(http.MethodGet, "/api/person/search?searchTerm=ber", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	out := decodeResponse(t, resp)
	data := out.Data.(map[string]any)
	assert.Equal(t, float64(1), data["totalCount"])
	assert.Equal(t, float64(1), data["totalPages"])
	items := data["items"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, "Tbilisi", items[0].(map[string]any)["cityName"])
}

func TestPersonHandler_QuickSearch_MissingTerm(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/person/search", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	out := decodeResponse(t, resp)
	assert.Contains(t, out.Errors, "Search term is required")
}

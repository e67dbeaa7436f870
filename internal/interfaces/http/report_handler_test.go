package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IkkkaM/PersonManagement/internal/domain"
)

func TestReportHandler_GetConnectionReport(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectQuery("FROM person").
		WillReturnRows(sqlmock.NewRows([]string{"person_id", "first_name", "last_name"}).
			AddRow(1, "Giorgi", "Beridze").
			AddRow(2, "Nino", "Lomidze"))
	mock.ExpectQuery("FROM person_connection").
		WillReturnRows(sqlmock.NewRows([]string{"person_id", "connection_type", "count"}).
			AddRow(1, int(domain.ConnectionColleague), 2).
			AddRow(1, int(domain.ConnectionOther), 1))

	req := httptest.NewRequest(http.MethodGet, "/api/reports/person-connections", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	out := decodeResponse(t, resp)
	assert.True(t, out.Success)

	items := out.Data.([]any)
	require.Len(t, items, 2)

	first := items[0].(map[string]any)
	assert.Equal(t, "Giorgi", first["firstName"])
	assert.Equal(t, float64(3), first["totalConnections"])
	counts := first["connectionCounts"].(map[string]any)
	assert.Equal(t, float64(2), counts["Colleague"])
	assert.Equal(t, float64(1), counts["Other"])

	second := items[1].(map[string]any)
	assert.Equal(t, float64(0), second["totalConnections"])
	assert.Empty(t, second["connectionCounts"].(map[string]any))
}

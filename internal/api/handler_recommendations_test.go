package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"energy-dashboard-backend/internal/model"
)

func TestListRecommendations(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/recommendations", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var recs []model.Recommendation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &recs))
	// Seeded fleet: thermostat schedule, LED behavior, AC upgrade+schedule,
	// console upgrade.
	assert.Len(t, recs, 5)
	for _, rec := range recs {
		assert.False(t, rec.Applied)
	}
}

func TestApplyRecommendation(t *testing.T) {
	r, s := setupTestRouter(t)
	rec := s.Recommendations()[0]

	w := doJSON(t, r, http.MethodPost, "/api/recommendations/"+rec.ID+"/apply", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	// Applying twice must not toggle.
	w = doJSON(t, r, http.MethodPost, "/api/recommendations/"+rec.ID+"/apply", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	for _, got := range s.Recommendations() {
		if got.ID == rec.ID {
			assert.True(t, got.Applied)
			return
		}
	}
	t.Fatalf("recommendation %s disappeared", rec.ID)
}

func TestApplyRecommendation_UnknownIDNoOp(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/recommendations/ghost/apply", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRefreshRecommendations_Additive(t *testing.T) {
	r, s := setupTestRouter(t)
	before := len(s.Recommendations())

	w := doJSON(t, r, http.MethodPost, "/api/recommendations/refresh", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Generated int `json:"generated"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, before, resp.Generated)
	assert.Len(t, s.Recommendations(), before*2)
}

func TestSelectionLifecycle(t *testing.T) {
	r, s := setupTestRouter(t)
	d := s.Devices()[0]

	w := doJSON(t, r, http.MethodGet, "/api/selection", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"selected":null}`, w.Body.String())

	w = doJSON(t, r, http.MethodPut, "/api/selection", gin.H{"device_id": d.ID})
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/selection", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Selected *model.Device `json:"selected"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Selected)
	assert.Equal(t, d.ID, resp.Selected.ID)

	// Removing the selected device clears the selection.
	doJSON(t, r, http.MethodDelete, "/api/devices/"+d.ID, nil)
	w = doJSON(t, r, http.MethodGet, "/api/selection", nil)
	assert.JSONEq(t, `{"selected":null}`, w.Body.String())
}

func TestPutSelection_UnknownDevice(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := doJSON(t, r, http.MethodPut, "/api/selection", gin.H{"device_id": "ghost"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPutSelection_NullClears(t *testing.T) {
	r, s := setupTestRouter(t)
	require.NoError(t, s.SelectDevice(s.Devices()[0].ID))

	w := doJSON(t, r, http.MethodPut, "/api/selection", gin.H{"device_id": nil})
	require.Equal(t, http.StatusNoContent, w.Code)

	_, ok := s.SelectedDevice()
	assert.False(t, ok)
}

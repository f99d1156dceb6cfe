package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"rmadmin/handlers/mocks"
	"rmadmin/models"
	"rmadmin/services/dashboard"
)

func newTestBundle(t *testing.T) (*HandlerBundle, *mocks.MockDashboardService, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockDashboardService(ctrl)
	hb := NewHandlerBundle(svc, nil, nil)

	r := gin.New()
	r.GET("/api/reservas", hb.ListBookings)
	r.POST("/api/reservas", hb.CreateBooking)
	r.GET("/api/reservas/:id", hb.GetBooking)
	r.PATCH("/api/reservas/:id", hb.UpdateBooking)
	r.DELETE("/api/reservas/:id", hb.DeleteBooking)
	r.PATCH("/api/reservas/:id/estado", hb.TransitionBooking)
	r.GET("/api/stats", hb.GetStats)
	r.GET("/api/productos", hb.ListProducts)
	r.POST("/api/productos", hb.CreateProduct)
	r.GET("/api/productos/:id", hb.GetProduct)
	r.PATCH("/api/productos/:id", hb.UpdateProduct)
	r.DELETE("/api/productos/:id", hb.DeleteProduct)
	r.POST("/api/productos/:id/visibilidad", hb.ToggleProductVisibility)
	r.GET("/health", hb.Health)
	return hb, svc, r
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestListBookings(t *testing.T) {
	t.Run("current page", func(t *testing.T) {
		_, svc, r := newTestBundle(t)
		svc.EXPECT().CurrentView().Return(models.View{Page: models.Page{Number: 2, Size: 20, TotalPages: 3}})

		w := do(r, http.MethodGet, "/api/reservas", "")
		require.Equal(t, http.StatusOK, w.Code)

		var v models.View
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
		assert.Equal(t, 2, v.Page.Number)
	})

	t.Run("page change", func(t *testing.T) {
		_, svc, r := newTestBundle(t)
		svc.EXPECT().GoToPage(4).Return(models.View{Page: models.Page{Number: 3, TotalPages: 3}})

		w := do(r, http.MethodGet, "/api/reservas?page=4", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"page":3`)
	})

	t.Run("invalid page", func(t *testing.T) {
		_, _, r := newTestBundle(t)
		w := do(r, http.MethodGet, "/api/reservas?page=two", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetBooking(t *testing.T) {
	_, svc, r := newTestBundle(t)
	svc.EXPECT().FindBooking("b1").Return(models.Booking{ID: "b1", Name: "Ana", Status: models.StatusPending}, true)
	svc.EXPECT().FindBooking("nope").Return(models.Booking{}, false)

	w := do(r, http.MethodGet, "/api/reservas/b1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"estado":"pendiente"`)

	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/api/reservas/nope", "").Code)
}

func TestCreateBooking(t *testing.T) {
	t.Run("missing name", func(t *testing.T) {
		_, _, r := newTestBundle(t)
		w := do(r, http.MethodPost, "/api/reservas", `{"telefono":"123"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("created", func(t *testing.T) {
		_, svc, r := newTestBundle(t)
		svc.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, in models.NewBooking) (string, error) {
				assert.Equal(t, "Ana", in.Name)
				require.NotNil(t, in.Date)
				assert.True(t, in.Date.Equal(time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)))
				return "b9", nil
			})

		w := do(r, http.MethodPost, "/api/reservas", `{"nombre":"Ana","fechaHora":"2026-03-10T15:00:00Z","origen":"web"}`)
		require.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"id":"b9"}`, w.Body.String())
	})

	t.Run("store failure", func(t *testing.T) {
		_, svc, r := newTestBundle(t)
		svc.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return("", dashboard.ErrMutation)

		w := do(r, http.MethodPost, "/api/reservas", `{"nombre":"Ana"}`)
		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}

func TestUpdateAndDeleteBooking(t *testing.T) {
	_, svc, r := newTestBundle(t)
	svc.EXPECT().UpdateBooking(gomock.Any(), "b1", map[string]any{"servicio": "Corte"}).Return(nil)
	svc.EXPECT().UpdateBooking(gomock.Any(), "b1", map[string]any{"estado": "confirmado"}).Return(models.ErrInvalidBooking)
	svc.EXPECT().DeleteBooking(gomock.Any(), "b1").Return(nil)
	svc.EXPECT().DeleteBooking(gomock.Any(), "b2").Return(dashboard.ErrSessionClosed)

	assert.Equal(t, http.StatusAccepted, do(r, http.MethodPatch, "/api/reservas/b1", `{"servicio":"Corte"}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPatch, "/api/reservas/b1", `{"estado":"confirmado"}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPatch, "/api/reservas/b1", `[`).Code)
	assert.Equal(t, http.StatusAccepted, do(r, http.MethodDelete, "/api/reservas/b1", "").Code)
	assert.Equal(t, http.StatusServiceUnavailable, do(r, http.MethodDelete, "/api/reservas/b2", "").Code)
}

func TestTransitionBooking(t *testing.T) {
	t.Run("accepted", func(t *testing.T) {
		_, svc, r := newTestBundle(t)
		svc.EXPECT().RequestTransition(gomock.Any(), "b1", models.StatusConfirmed).Return(dashboard.Transition{
			ID: "b1", From: models.StatusPending, To: models.StatusConfirmed,
		}, nil)

		w := do(r, http.MethodPatch, "/api/reservas/b1/estado", `{"estado":"Confirmed"}`)
		require.Equal(t, http.StatusAccepted, w.Code)

		var tr dashboard.Transition
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tr))
		assert.Equal(t, models.StatusConfirmed, tr.To)
		assert.Equal(t, models.StatusPending, tr.From)
	})

	t.Run("unknown status", func(t *testing.T) {
		_, _, r := newTestBundle(t)
		w := do(r, http.MethodPatch, "/api/reservas/b1/estado", `{"estado":"archivado"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("error mapping", func(t *testing.T) {
		cases := []struct {
			err  error
			want int
		}{
			{dashboard.ErrTransitionNotAllowed, http.StatusConflict},
			{errors.Join(dashboard.ErrMutation, models.ErrRecordNotFound), http.StatusNotFound},
			{dashboard.ErrMutation, http.StatusBadGateway},
			{errors.New("boom"), http.StatusInternalServerError},
		}
		for _, tc := range cases {
			_, svc, r := newTestBundle(t)
			svc.EXPECT().RequestTransition(gomock.Any(), "b1", models.StatusCancelled).Return(dashboard.Transition{}, tc.err)
			w := do(r, http.MethodPatch, "/api/reservas/b1/estado", `{"estado":"cancelado"}`)
			assert.Equal(t, tc.want, w.Code, tc.err.Error())
		}
	})
}

func TestGetStats(t *testing.T) {
	_, svc, r := newTestBundle(t)
	svc.EXPECT().CurrentStats().Return(models.AggregateStats{Total: 3, Pending: 2}, true)
	svc.EXPECT().FreshStats().Return(models.AggregateStats{Total: 4, Pending: 1})

	w := do(r, http.MethodGet, "/api/stats", "")
	require.Equal(t, http.StatusOK, w.Code)
	var cached struct {
		Stats  models.AggregateStats `json:"stats"`
		Cached bool                  `json:"cached"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cached))
	assert.True(t, cached.Cached)
	assert.Equal(t, 2, cached.Stats.Pending)

	w = do(r, http.MethodGet, "/api/stats?fresh=true", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"cached":false`)
	assert.Contains(t, w.Body.String(), `"total":4`)
}

func TestHealth(t *testing.T) {
	_, svc, r := newTestBundle(t)
	svc.EXPECT().Ready().Return(true).Times(2)
	svc.EXPECT().Err().Return(nil)
	svc.EXPECT().Err().Return(dashboard.ErrSubscription)

	w := do(r, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)

	w = do(r, http.MethodGet, "/health", "")
	assert.Contains(t, w.Body.String(), `"status":"degraded"`)
}

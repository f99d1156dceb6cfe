package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"rmadmin/models"
)

func TestProducts(t *testing.T) {
	t.Run("list and get", func(t *testing.T) {
		_, svc, r := newTestBundle(t)
		svc.EXPECT().Products().Return(models.ProductList{Products: []models.Product{{ID: "p1", Name: "Shampoo", Visible: true}}})
		svc.EXPECT().FindProduct("p1").Return(models.Product{ID: "p1", Name: "Shampoo"}, true)
		svc.EXPECT().FindProduct("p2").Return(models.Product{}, false)

		w := do(r, http.MethodGet, "/api/productos", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"nombre":"Shampoo"`)

		assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/api/productos/p1", "").Code)
		assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/api/productos/p2", "").Code)
	})

	t.Run("create validates", func(t *testing.T) {
		_, svc, r := newTestBundle(t)
		svc.EXPECT().CreateProduct(gomock.Any(), gomock.Any()).Return("", models.ErrInvalidProduct)

		w := do(r, http.MethodPost, "/api/productos", `{"nombre":"Cera"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("create", func(t *testing.T) {
		_, svc, r := newTestBundle(t)
		svc.EXPECT().CreateProduct(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, in models.ProductInput) (string, error) {
				require.NotNil(t, in.Price)
				assert.Equal(t, 1200.0, *in.Price)
				return "p3", nil
			})

		w := do(r, http.MethodPost, "/api/productos", `{"nombre":"Cera","categoria":"cabello","precio":1200,"stock":3}`)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"id":"p3"}`, w.Body.String())
	})

	t.Run("update delete toggle", func(t *testing.T) {
		_, svc, r := newTestBundle(t)
		svc.EXPECT().UpdateProduct(gomock.Any(), "p1", gomock.Any()).Return(nil)
		svc.EXPECT().DeleteProduct(gomock.Any(), "p1").Return(nil)
		svc.EXPECT().ToggleProductVisibility(gomock.Any(), "p1").Return(false, nil)
		svc.EXPECT().ToggleProductVisibility(gomock.Any(), "zz").Return(false, models.ErrRecordNotFound)

		assert.Equal(t, http.StatusAccepted, do(r, http.MethodPatch, "/api/productos/p1", `{"nombre":"Cera"}`).Code)
		assert.Equal(t, http.StatusAccepted, do(r, http.MethodDelete, "/api/productos/p1", "").Code)

		w := do(r, http.MethodPost, "/api/productos/p1/visibilidad", "")
		require.Equal(t, http.StatusAccepted, w.Code)
		assert.JSONEq(t, `{"id":"p1","visible":false}`, w.Body.String())

		assert.Equal(t, http.StatusNotFound, do(r, http.MethodPost, "/api/productos/zz/visibilidad", "").Code)
	})
}

package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rmadmin/models"
)

type closeNotifyingRecorder struct {
	*httptest.ResponseRecorder
	closed chan bool
}

func (r *closeNotifyingRecorder) CloseNotify() <-chan bool { return r.closed }

func TestStreamHub_DropsForLaggingClients(t *testing.T) {
	hub := NewStreamHub(nil)
	events, unsubscribe := hub.subscribe()
	defer unsubscribe()

	for i := 0; i < clientBuffer+5; i++ {
		hub.Render(models.View{Version: uint64(i)})
	}
	assert.Len(t, events, clientBuffer)

	unsubscribe()
	unsubscribe()
	assert.Zero(t, hub.Clients())
}

func TestStream_SendsInitialStateAndRenders(t *testing.T) {
	hb, svc, _ := newTestBundle(t)
	svc.EXPECT().CurrentView().Return(models.View{Version: 1})
	svc.EXPECT().Products().Return(models.ProductList{Empty: true})

	r := gin.New()
	r.GET("/api/stream", hb.Stream)

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/api/stream", nil).WithContext(ctx)
	w := &closeNotifyingRecorder{ResponseRecorder: httptest.NewRecorder(), closed: make(chan bool, 1)}

	done := make(chan struct{})
	go func() {
		r.ServeHTTP(w, req)
		close(done)
	}()

	require.Eventually(t, func() bool { return hb.Hub.Clients() == 1 }, 2*time.Second, 5*time.Millisecond)
	hb.Hub.Render(models.View{Version: 2, Empty: true})
	hb.Hub.RenderProducts(models.ProductList{Version: 7})
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("stream handler did not return")
	}

	body := w.Body.String()
	assert.Equal(t, 2, strings.Count(body, "event:reservas"))
	assert.Equal(t, 2, strings.Count(body, "event:productos"))
	assert.Contains(t, body, `"version":2`)
	assert.Zero(t, hb.Hub.Clients())
}

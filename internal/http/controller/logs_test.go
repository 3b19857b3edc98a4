package controller

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"crud_api/internal/config"
	"crud_api/internal/domain"
	"crud_api/internal/http/dto"
	"crud_api/internal/model"
	"crud_api/internal/service"
	"crud_api/internal/sse"
	"crud_api/internal/store"
)

func TestPublishLog(t *testing.T) {
	t.Run("publish success", func(t *testing.T) {
		pub := &publisherMock{}
		pub.On("Publish", mock.Anything, mock.Anything, "log."+domain.LogLevelError).Return(nil).Once()
		router, _ := setupRouter(t, pub)

		rec := performJSONRequest(t, router, http.MethodPost, "/api/logs/publish", map[string]any{
			"level":    domain.LogLevelError,
			"message":  "payment failed",
			"metadata": map[string]any{"orderId": "o-1"},
		})

		require.Equal(t, http.StatusAccepted, rec.Code)
		require.JSONEq(t, `{"message":"queued"}`, rec.Body.String())
		pub.AssertExpectations(t)

		var payload dto.PublishLogRequest
		body := pub.Calls[0].Arguments.Get(1).([]byte)
		require.NoError(t, json.Unmarshal(body, &payload))
		require.Equal(t, "payment failed", payload.Message)
		require.Equal(t, "o-1", payload.Metadata["orderId"])
	})

	t.Run("missing fields", func(t *testing.T) {
		pub := &publisherMock{}
		router, _ := setupRouter(t, pub)

		rec := performJSONRequest(t, router, http.MethodPost, "/api/logs/publish", map[string]any{
			"level": domain.LogLevelInfo,
		})

		require.Equal(t, http.StatusBadRequest, rec.Code)
		pub.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("invalid level", func(t *testing.T) {
		pub := &publisherMock{}
		router, _ := setupRouter(t, pub)

		rec := performJSONRequest(t, router, http.MethodPost, "/api/logs/publish", map[string]any{
			"level":   "fatal",
			"message": "m",
		})

		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, "level must be one of: debug, info, warn, error", decode[dto.ErrorResponse](t, rec).Error)
		pub.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("publish error", func(t *testing.T) {
		pub := &publisherMock{}
		pub.On("Publish", mock.Anything, mock.Anything, "log."+domain.LogLevelInfo).Return(errors.New("publish failed")).Once()
		router, _ := setupRouter(t, pub)

		rec := performJSONRequest(t, router, http.MethodPost, "/api/logs/publish", map[string]any{
			"level":   domain.LogLevelInfo,
			"message": "m",
		})

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.JSONEq(t, `{"error":"failed to publish log"}`, rec.Body.String())
		pub.AssertExpectations(t)
	})
}

func TestRecentLogs(t *testing.T) {
	all := []model.Log{
		{Base: model.Base{ID: "1"}, Level: domain.LogLevelInfo},
		{Base: model.Base{ID: "2"}, Level: domain.LogLevelError},
		{Base: model.Base{ID: "3"}, Level: domain.LogLevelInfo},
		{Base: model.Base{ID: "4"}, Level: domain.LogLevelInfo},
	}

	ids := func(logs []model.Log) []string {
		var out []string
		for _, l := range logs {
			out = append(out, l.ID)
		}
		return out
	}

	require.Equal(t, []string{"3", "4"}, ids(recentLogs(all, domain.LogLevelInfo, 2)))
	require.Equal(t, []string{"2"}, ids(recentLogs(all, domain.LogLevelError, 5)))
	require.Equal(t, []string{"2", "3", "4"}, ids(recentLogs(all, sse.RoomAll, 3)))
	require.Empty(t, recentLogs(all, domain.LogLevelInfo, 0))
	require.Empty(t, recentLogs(all, domain.LogLevelDebug, 5))
}

func TestStreamLogs(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := &config.Config{HistoryLimit: 5, SSEHeartbeat: time.Minute}
	stores := store.NewMemoryStores(zap.NewNop())
	hub := sse.NewHub()
	go hub.Run(ctx)
	services := service.NewServices(stores, hub, zap.NewNop())
	handler := NewHandler(cfg, services, hub, zap.NewNop(), &publisherMock{})

	_, err := services.Logs.Create(ctx, model.Log{Level: domain.LogLevelError, Message: "history"})
	require.NoError(t, err)
	_, err = services.Logs.Create(ctx, model.Log{Level: domain.LogLevelInfo, Message: "other level"})
	require.NoError(t, err)

	router := gin.New()
	router.GET("/sse/logs/:level", handler.StreamLogs)
	server := httptest.NewServer(router)
	defer server.Close()

	t.Run("unknown level", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/sse/logs/fatal")
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("history then live", func(t *testing.T) {
		reqCtx, reqCancel := context.WithCancel(ctx)
		defer reqCancel()
		req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, server.URL+"/sse/logs/error", nil)
		require.NoError(t, err)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

		events := make(chan model.Log, 4)
		go readLogEvents(resp, events)

		select {
		case got := <-events:
			require.Equal(t, "history", got.Message)
		case <-time.After(2 * time.Second):
			t.Fatalf("timeout waiting for history event")
		}

		_, err = services.Logs.Create(ctx, model.Log{Level: domain.LogLevelError, Message: "live"})
		require.NoError(t, err)

		select {
		case got := <-events:
			require.Equal(t, "live", got.Message)
		case <-time.After(2 * time.Second):
			t.Fatalf("timeout waiting for live event")
		}
	})
}

func readLogEvents(resp *http.Response, out chan<- model.Log) {
	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "data: ") {
			continue
		}
		var entry model.Log
		if err := json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &entry); err == nil {
			out <- entry
		}
	}
}

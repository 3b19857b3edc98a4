package e2e

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"crud_api/internal/config"
	httpserver "crud_api/internal/http"
	"crud_api/internal/http/controller"
	"crud_api/internal/queue"
	"crud_api/internal/service"
	"crud_api/internal/sse"
	"crud_api/internal/store"
)

func ginTestMode() {
	gin.SetMode(gin.TestMode)
}

type noopPublisher struct{}

func (n *noopPublisher) Publish(context.Context, []byte, string) error {
	return nil
}

type testServer struct {
	*httptest.Server
	stores   *store.Stores
	services *service.Services
	hub      *sse.Hub
}

// startServer wires the full router over in-memory stores and starts the
// hub. Everything is torn down with the test.
func startServer(t *testing.T, cfg *config.Config, publisher queue.Publisher) *testServer {
	t.Helper()
	ginTestMode()

	logger := zap.NewNop()
	stores := store.NewMemoryStores(logger)
	hub := sse.NewHub()
	services := service.NewServices(stores, hub, logger)
	handler := controller.NewHandler(cfg, services, hub, logger, publisher)
	router := httpserver.NewRouter(cfg, handler, logger)

	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)

	server := httptest.NewServer(router)
	t.Cleanup(func() {
		server.Close()
		cancel()
	})
	return &testServer{Server: server, stores: stores, services: services, hub: hub}
}

func defaultConfig() *config.Config {
	return &config.Config{
		HTTPAddr:            ":0",
		APIPrefix:           "/api",
		SSEHeartbeat:        5 * time.Second,
		HistoryLimit:        0,
		RabbitPublishPrefix: "log",
		CORSAllowOrigins:    []string{"*"},
		OTELServiceName:     "crud-api-test",
	}
}

func doJSON(t *testing.T, method, url string, body any) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func readSSEData(body io.Reader, timeout time.Duration) (string, error) {
	reader := bufio.NewReader(body)
	type result struct {
		data string
		err  error
	}
	ch := make(chan result, 1)

	go func() {
		var dataLines []string
		for {
			line, err := reader.ReadString('\n')
			if err != nil {
				ch <- result{"", err}
				return
			}
			line = strings.TrimRight(line, "\r\n")
			if line == "" {
				if len(dataLines) > 0 {
					ch <- result{strings.Join(dataLines, "\n"), nil}
					return
				}
				continue
			}
			if strings.HasPrefix(line, ":") {
				continue
			}
			if strings.HasPrefix(line, "data:") {
				dataLines = append(dataLines, strings.TrimSpace(strings.TrimPrefix(line, "data:")))
			}
		}
	}()

	select {
	case res := <-ch:
		return res.data, res.err
	case <-time.After(timeout):
		return "", context.DeadlineExceeded
	}
}

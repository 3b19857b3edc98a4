package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"crud_api/internal/domain"
	"crud_api/internal/http/dto"
	"crud_api/internal/model"
	"crud_api/internal/sse"
)

// PublishLog queues a log entry for asynchronous ingestion.
func (h *Handler) PublishLog(c *gin.Context) {
	var req dto.PublishLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid json"})
		return
	}
	if req.Level == "" || req.Message == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "level and message are required"})
		return
	}
	if err := domain.CheckEnum("level", req.Level, domain.LogLevels); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	payload, err := json.Marshal(req)
	if err != nil {
		h.log.Error("publish payload marshal failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to publish log"})
		return
	}

	prefix := h.cfg.RabbitPublishPrefix
	if prefix == "" {
		prefix = "log"
	}
	routingKey := prefix + "." + req.Level
	if err := h.pub.Publish(c.Request.Context(), payload, routingKey); err != nil {
		h.log.Error("publish log failed",
			zap.String("level", req.Level),
			zap.String("routing_key", routingKey),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to publish log"})
		return
	}

	c.JSON(http.StatusAccepted, dto.StatusResponse{Message: "queued"})
}

// StreamLogs replays recent logs of a level and then follows new ones as
// server-sent events. The level "all" follows every level.
func (h *Handler) StreamLogs(c *gin.Context) {
	level := c.Param("level")
	if level != sse.RoomAll && !domain.IsValidLogLevel(level) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "unknown log level"})
		return
	}

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		h.log.Error("streaming unsupported", zap.String("level", level))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "streaming unsupported"})
		return
	}

	limit := h.cfg.HistoryLimit
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			limit = n
		}
	}

	client := &sse.Client{
		Room: level,
		Ch:   make(chan model.Log, 16),
	}
	h.hub.Register(client)
	defer h.hub.Unregister(client)

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Header().Set("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)

	history, err := h.services.Logs.List(c.Request.Context())
	if err != nil {
		h.log.Error("list log history failed", zap.String("level", level), zap.Error(err))
	} else {
		for _, entry := range recentLogs(history, level, limit) {
			if err := writeLog(c.Writer, entry); err != nil {
				h.log.Error("write history log failed", zap.String("level", level), zap.Error(err))
				return
			}
		}
	}
	flusher.Flush()

	heartbeat := time.NewTicker(h.cfg.SSEHeartbeat)
	defer heartbeat.Stop()

	for {
		select {
		case <-c.Request.Context().Done():
			return
		case <-heartbeat.C:
			if _, err := fmt.Fprint(c.Writer, ": ping\n\n"); err != nil {
				h.log.Error("heartbeat write failed", zap.String("level", level), zap.Error(err))
				return
			}
			flusher.Flush()
		case entry, ok := <-client.Ch:
			if !ok {
				return
			}
			if err := writeLog(c.Writer, entry); err != nil {
				h.log.Error("write log failed", zap.String("level", level), zap.Error(err))
				return
			}
			flusher.Flush()
		}
	}
}

// recentLogs returns the last limit entries matching level, oldest first.
func recentLogs(all []model.Log, level string, limit int) []model.Log {
	if limit <= 0 {
		return nil
	}
	var matched []model.Log
	for i := len(all) - 1; i >= 0 && len(matched) < limit; i-- {
		if level == sse.RoomAll || all[i].Level == level {
			matched = append(matched, all[i])
		}
	}
	for i, j := 0, len(matched)-1; i < j; i, j = i+1, j-1 {
		matched[i], matched[j] = matched[j], matched[i]
	}
	return matched
}

func writeLog(w http.ResponseWriter, entry model.Log) error {
	payload, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "id: %s\nevent: log\ndata: %s\n\n", entry.ID, payload)
	return err
}

package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr            string
	APIPrefix           string
	MySQLDSN            string
	RabbitMQURL         string
	RabbitExchange      string
	RabbitQueue         string
	RabbitRoutingKey    string
	RabbitConsumerTag   string
	RabbitPublishPrefix string
	SSEHeartbeat        time.Duration
	HistoryLimit        int
	CORSAllowOrigins    []string
	OTELServiceName     string
	OTLPEndpoint        string
	OTLPInsecure        bool
}

func New() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		HTTPAddr:            ":8080",
		APIPrefix:           "/api",
		SSEHeartbeat:        15 * time.Second,
		HistoryLimit:        20,
		RabbitExchange:      "logs",
		RabbitQueue:         "logs.ingest",
		RabbitRoutingKey:    "log.*",
		RabbitConsumerTag:   "log-ingest",
		RabbitPublishPrefix: "log",
		CORSAllowOrigins:    []string{"*"},
		OTELServiceName:     "crud-api",
		OTLPInsecure:        true,
	}

	if addr := os.Getenv("HTTP_ADDR"); addr != "" {
		cfg.HTTPAddr = addr
	} else if port := os.Getenv("PORT"); port != "" {
		cfg.HTTPAddr = ":" + port
	}

	if v, ok := os.LookupEnv("API_PREFIX"); ok {
		cfg.APIPrefix = normalizePrefix(v)
	}

	cfg.MySQLDSN = os.Getenv("MYSQL_DSN")
	cfg.RabbitMQURL = os.Getenv("RABBITMQ_URL")

	if v := os.Getenv("RABBITMQ_EXCHANGE"); v != "" {
		cfg.RabbitExchange = v
	}
	if v := os.Getenv("RABBITMQ_QUEUE"); v != "" {
		cfg.RabbitQueue = v
	}
	if v := os.Getenv("RABBITMQ_ROUTING_KEY"); v != "" {
		cfg.RabbitRoutingKey = v
	}
	if v := os.Getenv("RABBITMQ_CONSUMER_TAG"); v != "" {
		cfg.RabbitConsumerTag = v
	}
	if v := os.Getenv("RABBITMQ_PUBLISH_PREFIX"); v != "" {
		cfg.RabbitPublishPrefix = v
	}

	if v := os.Getenv("CORS_ALLOW_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		if len(origins) > 0 {
			cfg.CORSAllowOrigins = origins
		}
	}

	if v := os.Getenv("OTEL_SERVICE_NAME"); v != "" {
		cfg.OTELServiceName = v
	}
	if v := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); v != "" {
		cfg.OTLPEndpoint = v
	}
	if v := os.Getenv("OTEL_EXPORTER_OTLP_INSECURE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.OTLPInsecure = b
		}
	}

	if v := os.Getenv("SSE_HEARTBEAT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.SSEHeartbeat = time.Duration(n) * time.Second
		}
	}

	if v := os.Getenv("HISTORY_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.HistoryLimit = n
		}
	}

	return cfg
}

// normalizePrefix turns "api", "/api/" and "/api" into "/api". An empty
// value mounts the resources at the root.
func normalizePrefix(p string) string {
	p = strings.Trim(strings.TrimSpace(p), "/")
	if p == "" {
		return ""
	}
	return "/" + p
}

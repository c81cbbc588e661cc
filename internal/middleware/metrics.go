package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RedisErrors counts Redis command failures by command name.
var RedisErrors = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "newsroom_redis_errors_total",
		Help: "Total number of Redis command errors, labeled by command.",
	},
	[]string{"command"},
)

// UpvotesApplied counts successful comment upvote increments.
var UpvotesApplied = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "newsroom_comment_upvotes_total",
		Help: "Total number of comment upvotes applied.",
	},
)

// InitMetrics creates the Prometheus HTTP middleware for the given service.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

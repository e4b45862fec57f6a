package pkg

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "club_http_requests_total",
		Help: "HTTP requests by route, method and status.",
	}, []string{"route", "method", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "club_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "method"})

	// AuthOutcomes 钱包身份解析结果：ok / missing / invalid / not_found / error
	AuthOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "club_auth_resolutions_total",
		Help: "Wallet identity resolutions by outcome.",
	}, []string{"outcome"})

	RateLimited = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "club_rate_limited_total",
		Help: "Requests rejected by the rate limiter.",
	}, []string{"scope"})

	OutboxDelivered = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "club_outbox_delivered_total",
		Help: "Outbox events handed to the sender, by result.",
	}, []string{"result"})
)

// Package metrics exposes the Prometheus collectors for the API.
package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "counpaign"

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "route"},
	)

	ledgerEntries = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "entries_total",
			Help:      "Ledger transactions appended, by type and category.",
		},
		[]string{"type", "category"},
	)

	walletOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "wallet",
			Name:      "operations_total",
			Help:      "Wallet relation operations, by operation and result.",
		},
		[]string{"operation", "result"},
	)

	campaignWins = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "campaign",
			Name:      "wins_total",
			Help:      "Campaign rewards granted, by reward type.",
		},
		[]string{"reward_type"},
	)

	terminalPoints = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "terminal",
			Name:      "points_credited_total",
			Help:      "Points credited through terminal purchases.",
		},
	)
)

func init() {
	Registry.MustRegister(
		httpRequests,
		httpDuration,
		ledgerEntries,
		walletOperations,
		campaignWins,
		terminalPoints,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// Middleware records request count and latency per matched route.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Path() == "/metrics" {
			return c.Next()
		}

		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		route := c.Route().Path
		if route == "" || (route == "/" && c.Path() != "/") {
			route = "unmatched"
		}
		method := strings.ToUpper(c.Method())

		httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
		httpDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
		return err
	}
}

// Recorder is what services report domain events to.
type Recorder interface {
	LedgerEntry(txType, category string)
	WalletOperation(operation, result string)
	CampaignWin(rewardType string)
	TerminalPoints(points int)
}

// Prometheus records into the package collectors.
type Prometheus struct{}

func (Prometheus) LedgerEntry(txType, category string) {
	ledgerEntries.WithLabelValues(txType, category).Inc()
}

func (Prometheus) WalletOperation(operation, result string) {
	walletOperations.WithLabelValues(operation, result).Inc()
}

func (Prometheus) CampaignWin(rewardType string) {
	campaignWins.WithLabelValues(rewardType).Inc()
}

func (Prometheus) TerminalPoints(points int) {
	if points > 0 {
		terminalPoints.Add(float64(points))
	}
}

// Noop discards everything.
type Noop struct{}

func (Noop) LedgerEntry(string, string)     {}
func (Noop) WalletOperation(string, string) {}
func (Noop) CampaignWin(string)             {}
func (Noop) TerminalPoints(int)             {}

// Result labels an operation outcome for WalletOperation.
func Result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

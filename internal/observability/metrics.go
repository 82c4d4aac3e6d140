package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "app_ecopontos_request_duration_seconds",
			Help: "Duration of HTTP requests in seconds",
		},
		[]string{"path", "method", "status"},
	)

	// StoreOperations tracks reads and writes against the JSON collections
	StoreOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_ecopontos_store_operations_total",
			Help: "Number of store operations",
		},
		[]string{"store", "operation", "status"},
	)

	// OperationDuration tracks the duration of store and lookup operations
	OperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "app_ecopontos_operation_duration_seconds",
			Help:    "Duration of internal operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	// CEPLookups tracks postal code lookups by result
	CEPLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_ecopontos_cep_lookups_total",
			Help: "Number of CEP lookups",
		},
		[]string{"result"},
	)

	// CacheHits tracks cache hits/misses
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_ecopontos_cache_hits_total",
			Help: "Number of cache hits",
		},
		[]string{"cache", "result"},
	)

	// SessionTransitions tracks session lifecycle events
	SessionTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_ecopontos_session_transitions_total",
			Help: "Number of session state transitions",
		},
		[]string{"event", "status"},
	)

	// ActiveConnections tracks active connections
	ActiveConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_ecopontos_active_connections",
			Help: "Number of active connections",
		},
	)
)

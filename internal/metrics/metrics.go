package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "qamees"

// Metrics 应用指标集合
type Metrics struct {
	registry            *prometheus.Registry
	cartMutations       *prometheus.CounterVec
	cartPersistFailures *prometheus.CounterVec
	cartLoadFailures    prometheus.Counter
	cartSize            prometheus.Histogram
	checkouts           *prometheus.CounterVec
	httpRequests        *prometheus.CounterVec
	httpDuration        *prometheus.HistogramVec

	Cron *CronJobMetrics
}

// New 创建指标集合并注册到独立的 Registry
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: registry,
		cartMutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cart_mutations_total",
			Help:      "Cart mutations by operation.",
		}, []string{"op"}),
		cartPersistFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cart_persist_failures_total",
			Help:      "Cart persistence writes that failed.",
		}, []string{"op"}),
		cartLoadFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cart_load_failures_total",
			Help:      "Cart hydrations that fell back to an empty cart.",
		}),
		cartSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "cart_size_items",
			Help:      "Total item count of a cart after each change.",
			Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100},
		}),
		checkouts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checkouts_total",
			Help:      "Checkout attempts by result.",
		}, []string{"result"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
	registry.MustRegister(
		m.cartMutations,
		m.cartPersistFailures,
		m.cartLoadFailures,
		m.cartSize,
		m.checkouts,
		m.httpRequests,
		m.httpDuration,
	)
	m.Cron = NewCronJobMetrics(registry)
	return m
}

// Registry 返回指标注册表
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler 指标导出 HTTP 处理器
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// CartMutation 记录购物车变更
func (m *Metrics) CartMutation(op string) {
	if m == nil {
		return
	}
	m.cartMutations.WithLabelValues(normalizeLabel(op)).Inc()
}

// CartPersistFailed 记录购物车持久化失败
func (m *Metrics) CartPersistFailed(op string) {
	if m == nil {
		return
	}
	m.cartPersistFailures.WithLabelValues(normalizeLabel(op)).Inc()
}

// CartLoadFailed 记录购物车恢复失败
func (m *Metrics) CartLoadFailed() {
	if m == nil {
		return
	}
	m.cartLoadFailures.Inc()
}

// ObserveCartSize 记录变更后的购物车件数
func (m *Metrics) ObserveCartSize(totalItems int) {
	if m == nil {
		return
	}
	m.cartSize.Observe(float64(totalItems))
}

// CheckoutSucceeded 记录下单成功
func (m *Metrics) CheckoutSucceeded() {
	if m == nil {
		return
	}
	m.checkouts.WithLabelValues("success").Inc()
}

// CheckoutFailed 记录下单失败
func (m *Metrics) CheckoutFailed(reason string) {
	if m == nil {
		return
	}
	m.checkouts.WithLabelValues(normalizeLabel(reason)).Inc()
}

// ObserveHTTP 记录 HTTP 请求
func (m *Metrics) ObserveHTTP(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

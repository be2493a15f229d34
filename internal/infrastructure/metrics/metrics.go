package metrics

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics compteurs Prometheus de l'API.
type Metrics struct {
	RequestsTotal    *prometheus.CounterVec
	RateLimitedTotal prometheus.Counter
	TrackedKeys      prometheus.GaugeFunc
}

// New enregistre les collecteurs sur un registre dédié.
// trackedKeys expose le nombre de clés suivies par le limiteur de requêtes.
func New(trackedKeys func() float64) (*Metrics, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	m := &Metrics{
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "prixmat_http_requests_total",
			Help: "Requêtes HTTP traitées, par méthode et code de statut.",
		}, []string{"method", "status"}),
		RateLimitedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "prixmat_rate_limited_total",
			Help: "Requêtes rejetées par le limiteur (429).",
		}),
		TrackedKeys: factory.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "prixmat_rate_limiter_keys",
			Help: "Clés actuellement suivies par le limiteur.",
		}, trackedKeys),
	}
	return m, reg
}

// Server petit serveur HTTP dédié à l'exposition /metrics
// (séparé du serveur applicatif, comme la sonde de supervision).
type Server struct {
	srv *http.Server
}

// NewServer construit le serveur d'exposition.
func NewServer(addr string, reg *prometheus.Registry) *Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	return &Server{srv: &http.Server{Addr: addr, Handler: mux}}
}

// Start bloque sur ListenAndServe.
func (s *Server) Start() error {
	return s.srv.ListenAndServe()
}

// Shutdown arrête proprement le serveur.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

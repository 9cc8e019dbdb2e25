package metrics

//go:generate go run go.uber.org/mock/mockgen -source=./metrics.go -destination=./mocks/metrics_mock.go -package=mocks

import (
	"fieldserve/config"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	ResultSuccess = "success"
	ResultFailure = "failure"

	DocumentInvoice    = "invoice"
	DocumentCreditNote = "credit_note"
)

// Recorder collects lifecycle counters. Labels are kept low-cardinality.
type Recorder interface {
	Transition(operation, from, to string)
	TransitionFailed(operation, kind string)
	DocumentIssued(documentType string)
	AssignmentLockWait(seconds float64)
}

type recorderImpl struct {
	transitions       *prometheus.CounterVec
	transitionErrors  *prometheus.CounterVec
	documentsIssued   *prometheus.CounterVec
	assignmentLockLag prometheus.Observer
}

func New(cfg *config.Config) Recorder {
	return NewWithRegisterer(prometheus.DefaultRegisterer, cfg)
}

// NewWithRegisterer registers the collectors on registerer, which tests pass as a fresh registry.
func NewWithRegisterer(registerer prometheus.Registerer, cfg *config.Config) Recorder {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	serviceName := strings.TrimSpace(cfg.App.Name)
	if serviceName == "" {
		serviceName = "fieldserve"
	}

	environment := strings.TrimSpace(cfg.Server.Env)
	if environment == "" {
		environment = "unknown"
	}

	constLabels := prometheus.Labels{
		"service": serviceName,
		"env":     environment,
	}

	transitions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name:        "fieldserve_booking_transitions_total",
		Help:        "Committed booking status transitions.",
		ConstLabels: constLabels,
	}, []string{"operation", "from", "to"})
	transitionErrors := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name:        "fieldserve_booking_transition_errors_total",
		Help:        "Rejected booking transitions by failure kind.",
		ConstLabels: constLabels,
	}, []string{"operation", "kind"})
	documentsIssued := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name:        "fieldserve_billing_documents_issued_total",
		Help:        "Invoices and credit notes issued.",
		ConstLabels: constLabels,
	}, []string{"type"})
	assignmentLockLag := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:        "fieldserve_assignment_lock_wait_seconds",
		Help:        "Time spent waiting for the per-provider assignment lock.",
		Buckets:     []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		ConstLabels: constLabels,
	})

	registerer.MustRegister(transitions, transitionErrors, documentsIssued, assignmentLockLag)

	return &recorderImpl{
		transitions:       transitions,
		transitionErrors:  transitionErrors,
		documentsIssued:   documentsIssued,
		assignmentLockLag: assignmentLockLag,
	}
}

func (r *recorderImpl) Transition(operation, from, to string) {
	r.transitions.WithLabelValues(operation, from, to).Inc()
}

func (r *recorderImpl) TransitionFailed(operation, kind string) {
	r.transitionErrors.WithLabelValues(operation, kind).Inc()
}

func (r *recorderImpl) DocumentIssued(documentType string) {
	r.documentsIssued.WithLabelValues(documentType).Inc()
}

func (r *recorderImpl) AssignmentLockWait(seconds float64) {
	r.assignmentLockLag.Observe(seconds)
}

type noop struct{}

// NewNoop returns a Recorder that drops everything.
func NewNoop() Recorder {
	return noop{}
}

func (noop) Transition(_, _, _ string) {}

func (noop) TransitionFailed(_, _ string) {}

func (noop) DocumentIssued(_ string) {}

func (noop) AssignmentLockWait(_ float64) {}

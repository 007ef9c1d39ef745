package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	PCsAdded          prometheus.Counter
	EmailsDelivered   prometheus.Counter
	DeliveryFailures  *prometheus.CounterVec
	DuplicateRejected prometheus.Counter
}

func New() *Metrics {
	return &Metrics{
		PCsAdded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "pcdir_pcs_added_total",
			Help: "Total number of PC entries added to the directory",
		}),
		EmailsDelivered: promauto.NewCounter(prometheus.CounterOpts{
			Name: "pcdir_emails_delivered_total",
			Help: "Total number of emails delivered to a mailbox",
		}),
		DeliveryFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "pcdir_email_delivery_failures_total",
			Help: "Total number of failed email deliveries by reason",
		}, []string{"reason"}),
		DuplicateRejected: promauto.NewCounter(prometheus.CounterOpts{
			Name: "pcdir_duplicate_owner_rejections_total",
			Help: "Total number of adds rejected because the owner email belongs to a different person",
		}),
	}
}

func (m *Metrics) IncrementPCAdded() {
	m.PCsAdded.Inc()
}

func (m *Metrics) IncrementEmailDelivered() {
	m.EmailsDelivered.Inc()
}

func (m *Metrics) IncrementDeliveryFailure(reason string) {
	m.DeliveryFailures.WithLabelValues(reason).Inc()
}

func (m *Metrics) IncrementDuplicateRejected() {
	m.DuplicateRejected.Inc()
}

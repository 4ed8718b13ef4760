package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	messagesSent  *prometheus.CounterVec
	uploads       *prometheus.CounterVec
	uploadBytes   prometheus.Histogram
	conversations *prometheus.CounterVec
	activeViews   prometheus.Gauge
}

func New(reg prometheus.Registerer, service string) *Metrics {
	labels := prometheus.Labels{"service": service}
	m := &Metrics{
		messagesSent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "quickchat_messages_sent_total",
			Help:        "Messages appended to conversations by type.",
			ConstLabels: labels,
		}, []string{"type"}),
		uploads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "quickchat_uploads_total",
			Help:        "Attachment uploads by outcome.",
			ConstLabels: labels,
		}, []string{"outcome"}),
		uploadBytes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:        "quickchat_upload_bytes",
			Help:        "Size of uploaded attachments.",
			ConstLabels: labels,
			Buckets:     prometheus.ExponentialBuckets(1024, 4, 10),
		}),
		conversations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "quickchat_conversation_lookups_total",
			Help:        "Conversation lookups by result (created or reused).",
			ConstLabels: labels,
		}, []string{"result"}),
		activeViews: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "quickchat_active_views",
			Help:        "Live store subscriptions currently open.",
			ConstLabels: labels,
		}),
	}

	reg.MustRegister(m.messagesSent, m.uploads, m.uploadBytes, m.conversations, m.activeViews)

	return m
}

// The methods below accept a nil receiver so services can run without metrics.

func (m *Metrics) MessageSent(messageType string) {
	if m == nil {
		return
	}
	m.messagesSent.WithLabelValues(messageType).Inc()
}

func (m *Metrics) Upload(outcome string, size int64) {
	if m == nil {
		return
	}
	m.uploads.WithLabelValues(outcome).Inc()
	if outcome == "uploaded" {
		m.uploadBytes.Observe(float64(size))
	}
}

func (m *Metrics) ConversationLookup(created bool) {
	if m == nil {
		return
	}
	result := "reused"
	if created {
		result = "created"
	}
	m.conversations.WithLabelValues(result).Inc()
}

func (m *Metrics) ViewOpened() {
	if m == nil {
		return
	}
	m.activeViews.Inc()
}

func (m *Metrics) ViewClosed() {
	if m == nil {
		return
	}
	m.activeViews.Dec()
}

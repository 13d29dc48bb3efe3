// Package metrics mengekspos metrik Prometheus untuk keputusan presensi.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector menghitung hasil evaluasi Recorder.
type Collector struct {
	registry  *prometheus.Registry
	decisions *prometheus.CounterVec
	rejected  *prometheus.CounterVec
}

// NewCollector membuat Collector dengan registry sendiri (plus metrik proses
// dan Go runtime standar).
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()
	c := &Collector{
		registry: reg,
		decisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "absen_presensi_total",
			Help: "Jumlah presensi sukses per mode dan status.",
		}, []string{"mode", "status"}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "absen_presensi_rejected_total",
			Help: "Jumlah presensi ditolak per mode dan alasan.",
		}, []string{"mode", "reason"}),
	}
	reg.MustRegister(
		c.decisions,
		c.rejected,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return c
}

// RecordSuccess mencatat presensi yang diterima. status kosong (pulang)
// dinormalisasi jadi "pulang".
func (c *Collector) RecordSuccess(mode, status string) {
	if c == nil {
		return
	}
	if status == "" {
		status = "pulang"
	}
	c.decisions.WithLabelValues(mode, status).Inc()
}

// RecordRejection mencatat presensi yang ditolak beserta alasan kebijakannya.
func (c *Collector) RecordRejection(mode, reason string) {
	if c == nil {
		return
	}
	c.rejected.WithLabelValues(mode, reason).Inc()
}

// Handler mengembalikan http.Handler untuk endpoint /metrics.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

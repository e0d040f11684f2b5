// Package metrics collects and exposes Prometheus counters.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector counts the operations that matter for this service.
type Collector struct {
	registry      *prometheus.Registry
	uploadSuccess prometheus.Counter
	uploadFail    prometheus.Counter
	deleteLocal   prometheus.Counter
	deleteRemote  prometheus.Counter
	loginSuccess  *prometheus.CounterVec
	loginFail     prometheus.Counter
}

func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		uploadSuccess: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "videos_upload_success_total",
			Help: "Successful video uploads.",
		}),
		uploadFail: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "videos_upload_fail_total",
			Help: "Uploads rejected by the media host.",
		}),
		deleteLocal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "videos_delete_total",
			Help: "Video records deleted.",
		}),
		deleteRemote: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "videos_delete_remote_fail_total",
			Help: "Deletes where the media host asset could not be removed.",
		}),
		loginSuccess: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "logins_total",
			Help: "Successful logins by method.",
		}, []string{"method"}),
		loginFail: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "logins_fail_total",
			Help: "Rejected login attempts.",
		}),
	}

	c.registry.MustRegister(
		c.uploadSuccess,
		c.uploadFail,
		c.deleteLocal,
		c.deleteRemote,
		c.loginSuccess,
		c.loginFail,
	)

	return c
}

func (c *Collector) RecordUploadSuccess()    { c.uploadSuccess.Inc() }
func (c *Collector) RecordUploadFail()       { c.uploadFail.Inc() }
func (c *Collector) RecordDelete()           { c.deleteLocal.Inc() }
func (c *Collector) RecordDeleteRemoteFail() { c.deleteRemote.Inc() }
func (c *Collector) RecordLoginFail()        { c.loginFail.Inc() }

func (c *Collector) RecordLogin(method string) {
	c.loginSuccess.WithLabelValues(method).Inc()
}

// Handler serves the /metrics endpoint for this collector's registry.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

package main

import (
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	registry     *prometheus.Registry
	filesChecked prometheus.Counter
	filesSkipped *prometheus.CounterVec
	linksChecked prometheus.Counter
	defects      *prometheus.CounterVec
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		filesChecked: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "linkcheck_files_checked_total",
			Help: "Number of pages whose links were checked.",
		}),
		filesSkipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "linkcheck_files_skipped_total",
			Help: "Number of files not checked, by reason.",
		}, []string{"reason"}),
		linksChecked: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "linkcheck_links_checked_total",
			Help: "Number of local links resolved.",
		}),
		defects: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "linkcheck_defects_total",
			Help: "Number of reported defects, by kind.",
		}, []string{"kind"}),
	}

	m.registry.MustRegister(m.filesChecked, m.filesSkipped, m.linksChecked, m.defects)

	return m
}

func (m *metrics) WriteTextfile(filename string) error {
	return prometheus.WriteToTextfile(filename, m.registry)
}

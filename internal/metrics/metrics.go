// Package metrics exposes registrar run outcomes through the
// node-exporter textfile collector. A single-shot tool has no endpoint to
// scrape, so the snapshot is written to a .prom file instead.
package metrics

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/fusionsystems/reviewcron/internal/constants"
)

const namespace = "reviewcron"

type InstallMetrics struct {
	registry       *prometheus.Registry
	lastInstall    prometheus.Gauge
	entriesRemoved prometheus.Gauge
	installSuccess prometheus.Gauge
}

func InitInstallMetrics() *InstallMetrics {
	reg := prometheus.NewRegistry()

	m := &InstallMetrics{
		registry: reg,
		lastInstall: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "last_install_timestamp_seconds",
				Help:      "Unix time of the last successful registrar run",
			},
		),
		entriesRemoved: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "entries_removed",
				Help:      "Managed crontab entries removed by the last run",
			},
		),
		installSuccess: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "install_success",
				Help:      "1 when the last registrar run succeeded",
			},
		),
	}

	reg.MustRegister(
		m.lastInstall,
		m.entriesRemoved,
		m.installSuccess,
	)

	return m
}

func (m *InstallMetrics) RecordRun(at time.Time, removed int, success bool) {
	m.lastInstall.Set(float64(at.Unix()))
	m.entriesRemoved.Set(float64(removed))
	if success {
		m.installSuccess.Set(1)
	} else {
		m.installSuccess.Set(0)
	}
}

// WriteTextfile writes the snapshot into dir for the textfile collector
// and returns the file path. prometheus.WriteToTextfile stages through a
// temp file, so the collector never sees a partial write.
func (m *InstallMetrics) WriteTextfile(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create textfile directory: %w", err)
	}

	path := filepath.Join(dir, constants.TextfileName)
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return "", fmt.Errorf("failed to write metrics textfile: %w", err)
	}

	return path, nil
}

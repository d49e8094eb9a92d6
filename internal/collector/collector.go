// Package collector translates NUT variable snapshots into Prometheus
// gauge metrics, one snapshot per scrape.
package collector

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/gridwatch/nut-exporter/internal/catalog"
	"github.com/gridwatch/nut-exporter/internal/nut"
)

// Snapshot keys handled outside the generic catalog path.
const (
	varManufacturer  = "device.mfr"
	varModel         = "device.model"
	varSerial        = "device.serial"
	varStatus        = "ups.status"
	varBeeperStatus  = "ups.beeper.status"
	varChargerStatus = "battery.charger.status"
)

var (
	deviceInfoDesc = prometheus.NewDesc(
		"nut_device_info",
		"information about the UPS",
		[]string{"manufacturer", "model", "serial"}, nil,
	)
	upsStatusDesc = prometheus.NewDesc(
		"nut_ups_status",
		"UPS status",
		[]string{"status"}, nil,
	)
	beeperStatusDesc = prometheus.NewDesc(
		"nut_ups_beeper_status",
		"UPS beeper status",
		[]string{"status"}, nil,
	)
	chargerStatusDesc = prometheus.NewDesc(
		"nut_battery_charger_status",
		"Status of the battery charger",
		[]string{"status"}, nil,
	)
	scrapeErrDesc = prometheus.NewDesc(
		"nut_scrape_error",
		"Error fetching the UPS state from the NUT daemon",
		nil, nil,
	)
)

// Collector fetches one UPS snapshot per scrape and republishes it as
// gauge metrics. It holds no mutable state between scrapes, so concurrent
// collections are independent.
type Collector struct {
	source nut.VarSource
	ups    string
	logger *zap.Logger
}

// New creates a Collector reading the named UPS from source.
func New(source nut.VarSource, ups string, logger *zap.Logger) *Collector {
	return &Collector{
		source: source,
		ups:    ups,
		logger: logger,
	}
}

// Describe intentionally sends nothing: the emitted metric set depends on
// which variables the device reports, so the collector is unchecked.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {}

// Collect fetches a snapshot and streams the derived metrics. On any
// failure no samples are emitted at all and the scrape is reported as
// failed to the exposition handler.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	metrics, err := c.collect()
	if err != nil {
		c.logger.Error("scrape failed", zap.String("ups", c.ups), zap.Error(err))
		ch <- prometheus.NewInvalidMetric(scrapeErrDesc, err)
		return
	}
	for _, m := range metrics {
		ch <- m
	}
}

// collect builds the complete metric set for one snapshot. The slice is
// only returned once every record has been constructed, so a failure
// partway through never leaks a partial scrape.
func (c *Collector) collect() ([]prometheus.Metric, error) {
	snap, err := c.source.Vars(c.ups)
	if err != nil {
		return nil, fmt.Errorf("fetch variables: %w", err)
	}

	mfr, err := requireVar(snap, varManufacturer)
	if err != nil {
		return nil, err
	}
	model, err := requireVar(snap, varModel)
	if err != nil {
		return nil, err
	}
	serial, err := requireVar(snap, varSerial)
	if err != nil {
		return nil, err
	}
	status, err := requireVar(snap, varStatus)
	if err != nil {
		return nil, err
	}

	metrics := make([]prometheus.Metric, 0, len(snap)+2)

	// Some APC firmware pads the serial number with whitespace.
	metrics = append(metrics, prometheus.MustNewConstMetric(
		deviceInfoDesc, prometheus.GaugeValue, 1, mfr, model, strings.TrimSpace(serial)))
	metrics = append(metrics, prometheus.MustNewConstMetric(
		upsStatusDesc, prometheus.GaugeValue, 1, status))

	if v, ok := snap[varBeeperStatus]; ok {
		metrics = append(metrics, prometheus.MustNewConstMetric(
			beeperStatusDesc, prometheus.GaugeValue, 1, v))
	}
	if v, ok := snap[varChargerStatus]; ok {
		metrics = append(metrics, prometheus.MustNewConstMetric(
			chargerStatusDesc, prometheus.GaugeValue, 1, v))
	}

	for key, raw := range snap {
		entry, ok := catalog.Lookup(key)
		if !ok {
			continue
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("variable %s: non-numeric value %q", key, raw)
		}
		desc := prometheus.NewDesc(catalog.MetricName(key, entry), entry.Help, nil, nil)
		metrics = append(metrics, prometheus.MustNewConstMetric(desc, prometheus.GaugeValue, value))
	}

	return metrics, nil
}

func requireVar(snap nut.Snapshot, key string) (string, error) {
	v, ok := snap[key]
	if !ok {
		return "", fmt.Errorf("required variable %s missing from snapshot", key)
	}
	return v, nil
}

package dreamkeep

import "github.com/prometheus/client_golang/prometheus"

// EncoderCollector exposes the encoder's write counters to prometheus.
type EncoderCollector struct {
	enc *Encoder

	keysWritten      *prometheus.Desc
	fullRewrites     *prometheus.Desc
	fieldUpdates     *prometheus.Desc
	baselineRewrites *prometheus.Desc
	writeFailures    *prometheus.Desc
}

func NewEncoderCollector(enc *Encoder) *EncoderCollector {
	return &EncoderCollector{
		enc: enc,

		keysWritten: prometheus.NewDesc(
			"dreamkeep_encoder_keys_written_total",
			"Total number of keys successfully written to the store",
			nil, nil,
		),
		fullRewrites: prometheus.NewDesc(
			"dreamkeep_encoder_full_rewrites_total",
			"Total number of full snapshot rewrites (inserts and removals)",
			nil, nil,
		),
		fieldUpdates: prometheus.NewDesc(
			"dreamkeep_encoder_field_updates_total",
			"Total number of field-level update diffs encoded",
			nil, nil,
		),
		baselineRewrites: prometheus.NewDesc(
			"dreamkeep_encoder_baseline_rewrites_total",
			"Total number of one-time bootstrap baseline rewrites",
			nil, nil,
		),
		writeFailures: prometheus.NewDesc(
			"dreamkeep_encoder_write_failures_total",
			"Total number of store writes that returned an error",
			nil, nil,
		),
	}
}

func (c *EncoderCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.keysWritten
	ch <- c.fullRewrites
	ch <- c.fieldUpdates
	ch <- c.baselineRewrites
	ch <- c.writeFailures
}

func (c *EncoderCollector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(
		c.keysWritten, prometheus.CounterValue, float64(c.enc.keysWritten.Load()))
	ch <- prometheus.MustNewConstMetric(
		c.fullRewrites, prometheus.CounterValue, float64(c.enc.fullRewrites.Load()))
	ch <- prometheus.MustNewConstMetric(
		c.fieldUpdates, prometheus.CounterValue, float64(c.enc.fieldUpdates.Load()))
	ch <- prometheus.MustNewConstMetric(
		c.baselineRewrites, prometheus.CounterValue, float64(c.enc.baselineRewrites.Load()))
	ch <- prometheus.MustNewConstMetric(
		c.writeFailures, prometheus.CounterValue, float64(c.enc.writeFailures.Load()))
}

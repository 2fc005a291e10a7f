package metric

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/yndnr/stripelist-go/pkg/stripelist"
)

// StatsSource is anything that reports list layout, typically a
// *stripelist.List.
type StatsSource interface {
	Stats() stripelist.Stats
}

// Collector exports the current layout of a list on every scrape.
type Collector struct {
	source StatsSource

	capacity *prometheus.Desc
	length   *prometheus.Desc
	stripes  *prometheus.Desc
	growths  *prometheus.Desc
	growing  *prometheus.Desc
}

// NewCollector creates a collector reading from source. name is attached as
// the "list" const label so several lists can share a registry.
func NewCollector(name string, source StatsSource) *Collector {
	labels := prometheus.Labels{"list": name}
	desc := func(metric, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, "", metric), help, nil, labels)
	}

	return &Collector{
		source:   source,
		capacity: desc("capacity", "Addressable slots."),
		length:   desc("len", "Appended elements."),
		stripes:  desc("stripes", "Lock stripes."),
		growths:  desc("growths_total", "Capacity doublings."),
		growing:  desc("growing", "1 while a growth holds every stripe."),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.capacity
	ch <- c.length
	ch <- c.stripes
	ch <- c.growths
	ch <- c.growing
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	st := c.source.Stats()

	growing := 0.0
	if st.Growing {
		growing = 1
	}

	ch <- prometheus.MustNewConstMetric(c.capacity, prometheus.GaugeValue, float64(st.Capacity))
	ch <- prometheus.MustNewConstMetric(c.length, prometheus.GaugeValue, float64(st.Len))
	ch <- prometheus.MustNewConstMetric(c.stripes, prometheus.GaugeValue, float64(st.Stripes))
	ch <- prometheus.MustNewConstMetric(c.growths, prometheus.CounterValue, float64(st.Growths))
	ch <- prometheus.MustNewConstMetric(c.growing, prometheus.GaugeValue, growing)
}

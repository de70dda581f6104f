package metrics

import "github.com/prometheus/client_golang/prometheus"

// StoreStats is the view of the store the collector reads on every scrape.
type StoreStats interface {
	Len() int
	SubscriberCount() int
}

// StoreCollector reports store size and active subscriptions.
type StoreCollector struct {
	stats       StoreStats
	records     *prometheus.Desc
	subscribers *prometheus.Desc
}

// NewStoreCollector returns a collector over stats. Register it with
// prometheus.MustRegister or a custom registry.
func NewStoreCollector(stats StoreStats) *StoreCollector {
	return &StoreCollector{
		stats: stats,
		records: prometheus.NewDesc(
			"pokeql_store_records",
			"Number of records in the store",
			nil, nil,
		),
		subscribers: prometheus.NewDesc(
			"pokeql_store_subscribers",
			"Number of active change subscriptions",
			nil, nil,
		),
	}
}

func (c *StoreCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.records
	ch <- c.subscribers
}

func (c *StoreCollector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(c.records, prometheus.GaugeValue, float64(c.stats.Len()))
	ch <- prometheus.MustNewConstMetric(c.subscribers, prometheus.GaugeValue, float64(c.stats.SubscriberCount()))
}

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	QueriesTotal         *prometheus.CounterVec
	AdsServedTotal       *prometheus.CounterVec
	AdsNoFillTotal       *prometheus.CounterVec
	FavoriteTogglesTotal *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		QueriesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "catalog_queries_total",
			Help: "Catalog queries served, by collection.",
		}, []string{"collection"}),
		AdsServedTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "catalog_ads_served_total",
			Help: "Ad campaigns served, by zone.",
		}, []string{"zone"}),
		AdsNoFillTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "catalog_ads_no_fill_total",
			Help: "Ad requests with no active campaign in the zone, by zone.",
		}, []string{"zone"}),
		FavoriteTogglesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "catalog_favorite_toggles_total",
			Help: "Favorite toggle operations, by entity kind.",
		}, []string{"kind"}),
	}
}

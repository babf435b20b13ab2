// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type prometheusMetrics struct {
	pooledInstances      prometheus.GaugeVec
	activeInstances      prometheus.GaugeVec
	synthesizedInstances prometheus.CounterVec
	rejectedReleases     prometheus.CounterVec
}

func setupPrometheusMetrics(registry *prometheus.Registry) prometheusMetrics {
	factory := promauto.With(registry)

	pooledInstances := factory.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "ab_objectpool_pooled_instances",
			Help: "Number of inactive instances waiting in the pool queue",
		}, []string{"tag"})

	activeInstances := factory.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "ab_objectpool_active_instances",
			Help: "Number of instances currently checked out of the pool",
		}, []string{"tag"})

	synthesizedInstances := factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ab_objectpool_synthesized_instances_total",
			Help: "Instances created because the pool queue was empty on acquire",
		}, []string{"tag"})

	rejectedReleases := factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ab_objectpool_rejected_releases_total",
			Help: "Release calls refused by the pool",
		}, []string{"tag", "reason"})

	return prometheusMetrics{
		pooledInstances:      *pooledInstances,
		activeInstances:      *activeInstances,
		synthesizedInstances: *synthesizedInstances,
		rejectedReleases:     *rejectedReleases,
	}
}

func (metrics prometheusMetrics) SetPooledInstances(tag string, count int) {
	metrics.pooledInstances.With(prometheus.Labels{"tag": tag}).Set(float64(count))
}

func (metrics prometheusMetrics) SetActiveInstances(tag string, count int) {
	metrics.activeInstances.With(prometheus.Labels{"tag": tag}).Set(float64(count))
}

func (metrics prometheusMetrics) AddSynthesizedInstance(tag string) {
	metrics.synthesizedInstances.With(prometheus.Labels{"tag": tag}).Inc()
}

func (metrics prometheusMetrics) AddRejectedRelease(tag string, reason string) {
	metrics.rejectedReleases.With(prometheus.Labels{"tag": tag, "reason": reason}).Inc()
}

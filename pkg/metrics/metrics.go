// Package metrics holds histogram layouts shared by the Prometheus collectors.
package metrics

// DefaultBuckets are latency buckets in seconds.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// SizeBuckets are payload size buckets in bytes, 64B to 1MiB.
var SizeBuckets = []float64{64, 256, 1024, 4096, 16384, 65536, 262144, 1048576} //nolint: gochecknoglobals

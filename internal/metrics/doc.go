// SPDX-License-Identifier: EPL-2.0

// Package metrics collects Prometheus metrics for audpost runs. The command
// is a batch job, so metrics are written to a file for the node exporter
// textfile collector instead of being served over HTTP.
package metrics

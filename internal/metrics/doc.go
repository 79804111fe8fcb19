// Package metrics records multiplication statistics in a Prometheus
// registry and reads runtime memory figures for the details panel.
//
// The registry is private to each Recorder so tests and repeated runs never
// collide on the global default registry. Results are exported with
// WriteTextfile in the node_exporter textfile format.
package metrics

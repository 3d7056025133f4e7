// Package benchmark holds benchmarks for teelog and comparisons with
// zap, zerolog, logrus and log/slog writing plain text lines to a
// discarding writer. It is a separate module so those libraries stay
// out of teelog's own dependency graph.
package benchmark

// Package metrics provides scene observers that summarize the bodies of a
// world once per tick. Every type here satisfies [sim.Metric].
package metrics

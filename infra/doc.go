// Package infra contains technical adapters around the planner: the
// zerolog logger, the MQTT publisher and the metrics sinks search events
// are recorded to. These packages depend on the core packages, never the
// other way around.
package infra

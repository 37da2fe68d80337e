// Package setup turns a planning problem expressed with external ids into
// the dense-id configuration consumed by package schedule.
package setup

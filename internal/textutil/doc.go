// Package textutil provides small text helpers for rendering stored
// identifiers and enum values as display labels.
package textutil

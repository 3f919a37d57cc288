// Package analysis runs the staged material analysis pipeline. The content
// inspection itself is a placeholder: the stages are timed simulations and
// the result is fabricated from a seeded random source, pending a real
// document analyzer.
package analysis

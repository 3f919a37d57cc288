// Package subjects manages the subject catalog students file materials under.
//
// Records live in a single keyed collection (see internal/storage) and carry
// insertion order. A fresh install sees a default catalog of four subjects;
// the defaults stay in memory until the first explicit create, at which point
// the whole catalog (defaults included) is persisted.
package subjects

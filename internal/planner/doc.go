// Package planner turns the material library into a day-by-day study plan.
// Planning is deterministic: the same library state always yields the same
// plan.
package planner

// Command studify is the command line interface for the Studify study
// material manager: subject catalog maintenance, material uploads, simulated
// analysis, and study plan generation.
package main

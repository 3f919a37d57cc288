// Package materials manages the uploaded study material catalog: upload
// validation, size-based metadata estimation, and the staged upload pipeline
// that reports progress to callers.
package materials

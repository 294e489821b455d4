// Package pipeline turns a requested mode into one or more output pipelines
// and runs them in order.
//
// Each pipeline owns a single directory named <output>_<mode>. Pipelines are
// independent: a failure is recorded in the Report and the next pipeline
// still runs. The step count is validated once, before any pipeline touches
// the filesystem.
package pipeline

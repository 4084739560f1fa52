// Package types provides shared types used across the perflint codebase.
// This package is at the bottom of the dependency graph and should not import
// any other internal packages to avoid circular dependencies.
package types

// Verdict classifies a measured size against its ideal threshold.
type Verdict string

// Size verdict constants.
const (
	VerdictGood             Verdict = "good"
	VerdictWarning          Verdict = "warning"
	VerdictNeedsImprovement Verdict = "needs-improvement"
)

// Recommendation category constants.
const (
	CategoryStylesheet = "stylesheet"
	CategoryScript     = "script"
	CategoryAsset      = "asset"
)

// Recommendation priority constants.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Priorities lists the priority levels in presentation order.
var Priorities = []string{PriorityHigh, PriorityMedium, PriorityLow}

// Recommendation is a single typed improvement suggestion produced by the
// recommendation engine. Immutable once created.
type Recommendation struct {
	Category string `json:"category"`
	Priority string `json:"priority"`
	Message  string `json:"message"`
}

package entities

// Classification thresholds used across the derivation engines.
//
// They are named here (instead of inlined in engine bodies) so boundary values
// can be exercised precisely in tests and tuned without touching engine logic.
const (
	// MoneyEpsilon absorbs floating rounding from user input when comparing
	// currency amounts (0.01 currency units).
	MoneyEpsilon = 0.01

	// DelaySlackPoints is how many percentage points a stage may run behind
	// the planned progress curve before it is flagged as delayed.
	DelaySlackPoints = 10.0

	// EVMTolerancePct is the cost-variance band (percent of budget) treated
	// as on-track by the earned-value classification.
	EVMTolerancePct = 10.0

	// DefaultReleaseMinPriority is the default priority threshold above which
	// a pending item counts into liberado_pagamento. Priority ranges 0..5.
	DefaultReleaseMinPriority = 4
)

package domain

// WorkloadLevel classifies an officer's active case count. It is derived, never stored.
type WorkloadLevel string

const (
	WorkloadLow        WorkloadLevel = "low"
	WorkloadMedium     WorkloadLevel = "medium"
	WorkloadHigh       WorkloadLevel = "high"
	WorkloadOverloaded WorkloadLevel = "overloaded"
)

// Workload thresholds: the lowest active case count of each level.
const (
	WorkloadMediumFrom     = 5
	WorkloadHighFrom       = 10
	WorkloadOverloadedFrom = 15
)

func (l WorkloadLevel) String() string { return string(l) }

func (l WorkloadLevel) IsValid() bool {
	switch l {
	case WorkloadLow, WorkloadMedium, WorkloadHigh, WorkloadOverloaded:
		return true
	}
	return false
}

// Rank orders levels from least to most loaded. Unknown levels rank last.
func (l WorkloadLevel) Rank() int {
	switch l {
	case WorkloadLow:
		return 0
	case WorkloadMedium:
		return 1
	case WorkloadHigh:
		return 2
	case WorkloadOverloaded:
		return 3
	}
	return 4
}

// ScoreWorkload maps an active case count to its workload level.
// Negative counts are treated as zero.
func ScoreWorkload(activeCases int) WorkloadLevel {
	switch {
	case activeCases >= WorkloadOverloadedFrom:
		return WorkloadOverloaded
	case activeCases >= WorkloadHighFrom:
		return WorkloadHigh
	case activeCases >= WorkloadMediumFrom:
		return WorkloadMedium
	default:
		return WorkloadLow
	}
}

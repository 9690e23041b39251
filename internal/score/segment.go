package score

import (
	"github.com/samber/lo"

	"github.com/theopenlane/mailmeter/internal/types"
)

// defaultValidThreshold is the score at or above which an address is
// considered deliverable. Observed deployments run this at 50 or 70.
const defaultValidThreshold = 50

// Thresholds holds the segmentation boundaries. Dead is always score zero;
// only the valid lower bound varies between deployments.
type Thresholds struct {
	// Valid is the minimum score for the valid segment
	Valid int `json:"valid"`
}

// DefaultThresholds returns the standard segmentation boundaries
func DefaultThresholds() Thresholds {
	return Thresholds{Valid: defaultValidThreshold}
}

// Segments is a partition of a batch by score. The three groups are
// disjoint and together cover every record.
type Segments struct {
	// Valid holds records with score >= the valid threshold
	Valid types.Batch `json:"valid"`
	// Risky holds records with a positive score below the valid threshold
	Risky types.Batch `json:"risky"`
	// Dead holds records with score zero
	Dead types.Batch `json:"dead"`
}

// Counts summarizes a partition for logging and telemetry
type Counts struct {
	Total int `json:"total"`
	Valid int `json:"valid"`
	Risky int `json:"risky"`
	Dead  int `json:"dead"`
}

// Partition splits a batch into valid, risky, and dead segments. The input
// is not modified; segment order follows batch order.
func Partition(batch types.Batch, th Thresholds) Segments {
	return Segments{
		Valid: lo.Filter(batch, func(r types.AuditRecord, _ int) bool {
			return r.Score >= th.Valid
		}),
		Risky: lo.Filter(batch, func(r types.AuditRecord, _ int) bool {
			return r.Score > 0 && r.Score < th.Valid
		}),
		Dead: lo.Filter(batch, func(r types.AuditRecord, _ int) bool {
			return r.Score == 0
		}),
	}
}

// Counts returns the segment sizes
func (s Segments) Counts() Counts {
	return Counts{
		Total: len(s.Valid) + len(s.Risky) + len(s.Dead),
		Valid: len(s.Valid),
		Risky: len(s.Risky),
		Dead:  len(s.Dead),
	}
}

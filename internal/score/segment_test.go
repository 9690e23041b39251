package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theopenlane/mailmeter/internal/types"
)

func batchWithScores(scores ...int) types.Batch {
	batch := make(types.Batch, len(scores))
	for i, s := range scores {
		batch[i] = types.AuditRecord{Email: "addr@example.com", Score: s}
	}

	return batch
}

func TestPartition(t *testing.T) {
	batch := batchWithScores(0, 10, 50, 100, 49, 0, 51)

	segments := Partition(batch, DefaultThresholds())

	assert.Len(t, segments.Valid, 3)  // 50, 100, 51
	assert.Len(t, segments.Risky, 2)  // 10, 49
	assert.Len(t, segments.Dead, 2)   // 0, 0
}

func TestPartition_DisjointAndExhaustive(t *testing.T) {
	batch := batchWithScores(0, 1, 25, 49, 50, 51, 70, 99, 100)

	segments := Partition(batch, DefaultThresholds())
	counts := segments.Counts()

	require.Equal(t, len(batch), counts.Total, "partition must cover every record")

	for _, r := range segments.Valid {
		assert.GreaterOrEqual(t, r.Score, 50)
	}
	for _, r := range segments.Risky {
		assert.Greater(t, r.Score, 0)
		assert.Less(t, r.Score, 50)
	}
	for _, r := range segments.Dead {
		assert.Zero(t, r.Score)
	}
}

func TestPartition_CustomThreshold(t *testing.T) {
	batch := batchWithScores(50, 69, 70, 90)

	segments := Partition(batch, Thresholds{Valid: 70})

	assert.Len(t, segments.Valid, 2)
	assert.Len(t, segments.Risky, 2)
	assert.Empty(t, segments.Dead)
}

func TestPartition_Empty(t *testing.T) {
	segments := Partition(nil, DefaultThresholds())

	assert.Zero(t, segments.Counts().Total)
}

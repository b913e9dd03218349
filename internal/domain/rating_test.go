package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRating_MeanOfDistinctRaters(t *testing.T) {
	r := NewRating("biceps-anatomy", "biceps")

	values := []int{5, 3, 4, 1, 2}
	sum := 0
	for i, v := range values {
		r.Rate(string(rune('a'+i)), v)
		sum += v
	}

	assert.Equal(t, len(values), r.Count)
	assert.InDelta(t, float64(sum)/float64(len(values)), r.Average, 1e-9)
}

func TestRating_CorrectionMatchesDirectRating(t *testing.T) {
	// Rating a then correcting to b must equal having rated b from the
	// start, with the count unchanged.
	corrected := NewRating("item", "group")
	corrected.Rate("alice", 5)
	corrected.Rate("bob", 3)
	corrected.Rate("alice", 1)

	direct := NewRating("item", "group")
	direct.Rate("alice", 1)
	direct.Rate("bob", 3)

	assert.Equal(t, direct.Count, corrected.Count)
	assert.InDelta(t, direct.Average, corrected.Average, 1e-9)
}

func TestRating_VoteOf(t *testing.T) {
	r := NewRating("item", "group")
	r.Rate("alice", 4)

	vote := r.VoteOf("alice")
	require.NotNil(t, vote)
	assert.Equal(t, 4, *vote)
	assert.Nil(t, r.VoteOf("bob"))
}

func TestRating_SummaryFor(t *testing.T) {
	r := NewRating("item", "group")
	r.Rate("alice", 4)
	r.Rate("bob", 2)

	summary := r.SummaryFor("alice")
	assert.Equal(t, 3.0, summary.Average)
	assert.Equal(t, 2, summary.Count)
	require.NotNil(t, summary.UserRating)
	assert.Equal(t, 4, *summary.UserRating)

	assert.Nil(t, r.SummaryFor("carol").UserRating)
}

package plane

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCircularIndex(t *testing.T) {
	n := 3
	expectedIndexes := []int{0, 1, 2, 0, 1, 2, 0, 1, 2}
	for i := -3; i < 6; i++ {
		actualIndex := CircularIndex(i, n)
		expectedIndex := expectedIndexes[0]
		expectedIndexes = expectedIndexes[1:]
		assert.Equal(t, expectedIndex, actualIndex)
	}
}

func TestPointSet(t *testing.T) {
	set := NewPointSet(Pt(0, 0), Pt(1, 1), Pt(0, 0))
	assert.Len(t, set, 2)
	assert.True(t, set.Contains(Pt(1, 1)))
	assert.False(t, set.Contains(Pt(1, 0)))

	assert.True(t, set.Equals(NewPointSet(Pt(1, 1), Pt(0, 0))))
	assert.False(t, set.Equals(NewPointSet(Pt(1, 1))))
	assert.False(t, set.Equals(NewPointSet(Pt(1, 1), Pt(2, 2))))
}

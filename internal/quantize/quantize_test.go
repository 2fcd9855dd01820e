package quantize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPackHandcraftedMeanFixture pins the documented 16-dim centroid
// {-0.11, -0.40, 0.56, -0.40, 0.50, -0.60, 0.70, -0.57, 0.73, -1.00, 1.10,
// -1.20, 1.30, -1.40, 1.50, -1.60} to its exact packed bytes.
func TestPackHandcraftedMeanFixture(t *testing.T) {
	mean := []float32{
		-0.11, -0.40, 0.56, -0.40, 0.50, -0.60, 0.70, -0.57,
		0.73, -1.00, 1.10, -1.20, 1.30, -1.40, 1.50, -1.60,
	}

	packed, err := Pack(mean)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x54, 0x55}, packed)
}

func TestAverageTruncatesToDim(t *testing.T) {
	flat := []float32{1, 2, 3, 4, 5, 6}
	avg, err := Average(flat, 1, 3, 2)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2}, avg)
}

func TestAverageRejectsDimLargerThanEmbeddingDim(t *testing.T) {
	_, err := Average([]float32{1, 2}, 1, 2, 4)
	assert.Error(t, err)
}

func TestPackRejectsNonMultipleOfEight(t *testing.T) {
	_, err := Pack(make([]float32, 5))
	assert.Error(t, err)
}

func TestPackZeroIsNotSet(t *testing.T) {
	packed, err := Pack([]float32{0, 1, 0, 0, 0, 0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, byte(0x02), packed[0], "bit 1 set, zero is not strictly greater than zero")
}

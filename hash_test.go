package identicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSum_Deterministic(t *testing.T) {
	assert := assert.New(t)

	inputs := []string{"", "blake", "john doe", "jane@example.com", "日本語"}
	for _, input := range inputs {
		assert.Equal(Sum(input), Sum(input))
	}
}

func TestSum_KnownDigest(t *testing.T) {
	expected := Digest{
		58, 164, 158, 198, 191, 201, 16, 100,
		127, 161, 197, 160, 19, 228, 142, 239,
	}
	assert.Equal(t, expected, Sum("blake"))
}

func TestSum_DistinctInputs(t *testing.T) {
	assert.NotEqual(t, Sum("blake"), Sum("drake"))
}

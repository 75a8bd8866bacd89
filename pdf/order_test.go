package pdf

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePageOrder(t *testing.T) {
	tests := []struct {
		name       string
		order      []int
		totalPages int
		shouldErr  bool
	}{
		{
			name:       "valid permutation",
			order:      []int{1, 2, 3},
			totalPages: 3,
		},
		{
			name:       "reversed permutation",
			order:      []int{3, 2, 1},
			totalPages: 3,
		},
		{
			name:       "missing page",
			order:      []int{1, 2},
			totalPages: 3,
			shouldErr:  true,
		},
		{
			name:       "duplicate page",
			order:      []int{1, 1, 2},
			totalPages: 3,
			shouldErr:  true,
		},
		{
			name:       "page out of range",
			order:      []int{1, 2, 4},
			totalPages: 3,
			shouldErr:  true,
		},
		{
			name:       "empty order",
			order:      nil,
			totalPages: 3,
			shouldErr:  true,
		},
		{
			name:       "zero page",
			order:      []int{0, 1, 2},
			totalPages: 3,
			shouldErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePageOrder(tt.order, tt.totalPages)
			if tt.shouldErr {
				requireValidationErr(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestOrderGenerators(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3, 4, 5}, IdentityPageOrder(5))
	assert.Equal(t, []int{5, 4, 3, 2, 1}, ReversedPageOrder(5))

	shuffled := ShuffledPageOrder(20)
	require.Len(t, shuffled, 20)
	require.NoError(t, ValidatePageOrder(shuffled, 20))

	sorted := append([]int(nil), shuffled...)
	sort.Ints(sorted)
	assert.Equal(t, IdentityPageOrder(20), sorted)
}

func TestIsReorderNecessary(t *testing.T) {
	assert.False(t, IsReorderNecessary([]int{1, 2, 3}))
	assert.True(t, IsReorderNecessary([]int{3, 2, 1}))
	assert.True(t, IsReorderNecessary([]int{2, 1, 3}))
	assert.False(t, IsReorderNecessary(nil))
}

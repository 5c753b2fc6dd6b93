package hours_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"counter/internal/hours"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		want    float64
		wantErr bool
	}{
		{input: "2:30", want: 2.5},
		{input: "8:00", want: 8},
		{input: "0:45", want: 0.75},
		{input: "1:20", want: 1.33},
		{input: "2.5", want: 2.5},
		{input: "8", want: 8},
		{input: "0", want: 0},
		{input: "2:60", wantErr: true},
		{input: "2:-5", wantErr: true},
		{input: "-1:30", wantErr: true},
		{input: ":30", wantErr: true},
		{input: "abc", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := hours.Parse(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, hours.ErrInvalidHours)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Negative plain decimals parse; the range check belongs to callers,
// not the parser.
func TestParseNegativeDecimal(t *testing.T) {
	got, err := hours.Parse("-1")
	require.NoError(t, err)
	assert.Equal(t, -1.0, got)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 1.33, hours.Round2(4.0/3))
	assert.Equal(t, 2.5, hours.Round2(2.5))
	assert.Equal(t, 0.13, hours.Round2(0.125))   // half rounds away from zero
	assert.Equal(t, -0.13, hours.Round2(-0.125)) // in both directions
	assert.Equal(t, 92.0, hours.Round2(400*23.0/100))
}

package period

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMonth(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Month
		wantErr bool
	}{
		{name: "valid", input: "2025-03", want: Month{Year: 2025, Month: time.March}},
		{name: "valid december", input: "2024-12", want: Month{Year: 2024, Month: time.December}},
		{name: "month 13", input: "2025-13", wantErr: true},
		{name: "month 00", input: "2025-00", wantErr: true},
		{name: "single digit month", input: "2025-1", wantErr: true},
		{name: "garbage", input: "march 2025", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "full date", input: "2025-03-01", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMonth(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewRange(t *testing.T) {
	start, err := ParseMonth("2025-03")
	require.NoError(t, err)
	end, err := ParseMonth("2025-10")
	require.NoError(t, err)

	r, err := NewRange(start, end)
	require.NoError(t, err)

	assert.Equal(t, 1, r.From.Day())
	assert.Equal(t, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), r.From)
	assert.Equal(t, time.Date(2025, time.October, 31, 0, 0, 0, 0, time.UTC), r.To)
}

func TestNewRange_FebruaryEnd(t *testing.T) {
	start, _ := ParseMonth("2025-01")

	end, _ := ParseMonth("2025-02")
	r, err := NewRange(start, end)
	require.NoError(t, err)
	assert.Equal(t, 28, r.To.Day())

	leapEnd, _ := ParseMonth("2024-02")
	leapStart, _ := ParseMonth("2024-01")
	r, err = NewRange(leapStart, leapEnd)
	require.NoError(t, err)
	assert.Equal(t, 29, r.To.Day())
}

func TestNewRange_SingleMonth(t *testing.T) {
	m, _ := ParseMonth("2025-06")
	r, err := NewRange(m, m)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), r.From)
	assert.Equal(t, time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC), r.To)
}

func TestNewRange_Reversed(t *testing.T) {
	start, _ := ParseMonth("2025-10")
	end, _ := ParseMonth("2025-03")
	_, err := NewRange(start, end)
	require.Error(t, err)
}

func TestLastYear(t *testing.T) {
	start, _ := ParseMonth("2025-03")
	end, _ := ParseMonth("2025-10")
	r, err := NewRange(start, end)
	require.NoError(t, err)

	ly := r.LastYear()
	assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), ly.From)
	assert.Equal(t, time.Date(2024, time.October, 31, 0, 0, 0, 0, time.UTC), ly.To)
}

func TestLastYear_LeapFebruary(t *testing.T) {
	// 2024-02 ends on the 29th; the prior-year range must end on Feb 28.
	start, _ := ParseMonth("2024-01")
	end, _ := ParseMonth("2024-02")
	r, err := NewRange(start, end)
	require.NoError(t, err)
	require.Equal(t, 29, r.To.Day())

	ly := r.LastYear()
	assert.Equal(t, time.Date(2023, time.February, 28, 0, 0, 0, 0, time.UTC), ly.To)
}

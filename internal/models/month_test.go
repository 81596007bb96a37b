package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMonthWindow(t *testing.T) {
	testCases := []struct {
		month         string
		expectedStart string
		expectedEnd   string
		description   string
	}{
		{"2025-01", "2025-01-01", "2025-02-01", "31-day month"},
		{"2025-04", "2025-04-01", "2025-05-01", "30-day month"},
		{"2025-02", "2025-02-01", "2025-03-01", "February"},
		{"2024-02", "2024-02-01", "2024-03-01", "leap-year February"},
		{"2025-12", "2025-12-01", "2026-01-01", "December rolls into next year"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			window, err := NewMonthWindow(tc.month)
			require.NoError(t, err)
			assert.Equal(t, tc.expectedStart, window.Start)
			assert.Equal(t, tc.expectedEnd, window.End)
		})
	}
}

func TestNewMonthWindow_Invalid(t *testing.T) {
	for _, month := range []string{"", "2025", "2025-13", "2025-00", "01-2025", "2025-1", "garbage"} {
		_, err := NewMonthWindow(month)
		assert.ErrorIs(t, err, ErrInvalidMonth, "month %q should be rejected", month)
	}
}

func TestMonthWindow_Contains(t *testing.T) {
	window, err := NewMonthWindow("2025-02")
	require.NoError(t, err)

	assert.True(t, window.Contains("2025-02-01"))
	assert.True(t, window.Contains("2025-02-28"))
	assert.False(t, window.Contains("2025-01-31"))
	assert.False(t, window.Contains("2025-03-01"))
}

func TestMonthWindow_ContainsDay30And31(t *testing.T) {
	// The upper bound is the first of the next month, so day 30 of a 30-day
	// month is inside the window while a string like "2025-04-31" is not.
	window, err := NewMonthWindow("2025-04")
	require.NoError(t, err)

	assert.True(t, window.Contains("2025-04-30"))
	assert.False(t, window.Contains("2025-05-01"))
}

func TestMonthWindow_FirstDay(t *testing.T) {
	window, err := NewMonthWindow("2025-07")
	require.NoError(t, err)
	assert.Equal(t, "2025-07-01", window.FirstDay())
}

func TestIsValidMonth(t *testing.T) {
	assert.True(t, IsValidMonth("2025-06"))
	assert.False(t, IsValidMonth("2025-06-01"))
	assert.False(t, IsValidMonth("2025/06"))
}

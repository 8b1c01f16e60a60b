package models

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseFrequency(t *testing.T) {
	cases := map[string]Frequency{
		"daily":        Daily,
		"QUOTIDIEN":    Daily,
		"hebdomadaire": Weekly,
		" Mensuel ":    Monthly,
		"ANNUEL":       Yearly,
		"yearly":       Yearly,
	}
	for in, want := range cases {
		got, err := ParseFrequency(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseFrequency("BIMENSUEL")
	assert.ErrorIs(t, err, ErrInvalidFrequency)
}

func TestNextAfter_SkipsMissedPeriods(t *testing.T) {
	r := RecurringPayment{Frequency: Weekly, NextExecutionDate: day(2026, 1, 1)}
	assert.Equal(t, day(2026, 1, 22), r.NextAfter(day(2026, 1, 20)))

	r = RecurringPayment{Frequency: Monthly, NextExecutionDate: day(2026, 3, 10)}
	assert.Equal(t, day(2026, 4, 10), r.NextAfter(day(2026, 3, 10)))
}

func TestFailed_SuspendsAfterThree(t *testing.T) {
	now := time.Now()
	r := RecurringPayment{Status: StatusActive, NextExecutionDate: day(2026, 1, 1)}

	r.Failed(now, errors.New("card blocked"))
	r.Failed(now, errors.New("card blocked"))
	assert.Equal(t, StatusActive, r.Status)

	r.Failed(now, errors.New("card blocked"))
	assert.Equal(t, StatusSuspended, r.Status)
	assert.Equal(t, day(2026, 1, 1), r.NextExecutionDate)
	assert.Equal(t, "card blocked", r.LastError)
}

func TestSucceeded_ResetsFailures(t *testing.T) {
	now := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	r := RecurringPayment{Frequency: Daily, FailureCount: 2, LastError: "x", NextExecutionDate: day(2026, 1, 5)}

	r.Succeeded(now, Date(now))

	assert.Zero(t, r.FailureCount)
	assert.Empty(t, r.LastError)
	assert.Equal(t, day(2026, 1, 6), r.NextExecutionDate)
	assert.Equal(t, now, *r.LastExecutedAt)
}

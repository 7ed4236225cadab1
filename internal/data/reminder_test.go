package data

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReminder(t *testing.T) {
	got, err := ParseReminder("2024-03-01 09:30")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2024, 3, 1, 9, 30, 0, 0, time.Local), *got)
	assert.Equal(t, "2024-03-01 09:30", FormatReminder(got))
}

func TestParseReminderBlank(t *testing.T) {
	for _, in := range []string{"", "   ", "\t"} {
		got, err := ParseReminder(in)
		assert.NoError(t, err)
		assert.Nil(t, got)
	}
}

func TestParseReminderInvalid(t *testing.T) {
	for _, in := range []string{"not-a-date", "2024-03-01", "2024-13-01 09:30", "01/03/2024 09:30", "2024-03-01 9:30:00"} {
		got, err := ParseReminder(in)
		assert.ErrorIs(t, err, ErrInvalidDateFormat, "input %q", in)
		assert.Nil(t, got)
	}
}

func TestFormatReminderNil(t *testing.T) {
	assert.Equal(t, "", FormatReminder(nil))
}

//go:build unit

package reservation_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"table-booking/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, minute int) time.Time {
	return time.Date(2030, 6, 15, hour, minute, 0, 0, time.UTC)
}

func mustInterval(t *testing.T, start time.Time, d time.Duration) reservation.Interval {
	t.Helper()
	iv, err := reservation.NewInterval(start, d)
	require.NoError(t, err)
	return iv
}

func TestInterval_Overlaps(t *testing.T) {
	existing := mustInterval(t, at(19, 0), 90*time.Minute)

	tests := []struct {
		name  string
		start time.Time
		dur   time.Duration
		want  bool
	}{
		{"identical", at(19, 0), 90 * time.Minute, true},
		{"starts inside", at(20, 0), time.Hour, true},
		{"ends inside", at(18, 0), 90 * time.Minute, true},
		{"contains", at(18, 0), 4 * time.Hour, true},
		{"touches end", at(20, 30), time.Hour, false},
		{"touches start", at(18, 0), time.Hour, false},
		{"well after", at(22, 0), time.Hour, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requested := mustInterval(t, tt.start, tt.dur)
			assert.Equal(t, tt.want, requested.Overlaps(existing))
			assert.Equal(t, tt.want, existing.Overlaps(requested))
		})
	}
}

func TestNewInterval_RejectsNonPositive(t *testing.T) {
	_, err := reservation.NewInterval(at(19, 0), 0)
	assert.ErrorIs(t, err, reservation.ErrInvalidInterval)
}

func TestNormalizeTime(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "19:00", want: "19:00:00"},
		{in: "07:30:15", want: "07:30:15"},
		{in: " 09:05 ", want: "09:05:00"},
		{in: "24:00", wantErr: true},
		{in: "9:00", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := reservation.NormalizeTime(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, reservation.ErrInvalidTime)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewConfirmationCode(t *testing.T) {
	code, err := reservation.NewConfirmationCode("  res-abc123 ")
	require.NoError(t, err)
	assert.Equal(t, "RES-ABC123", code.String())

	for _, bad := range []string{"", "AB", "-ABCD", "RES_1234", strings.Repeat("A", 33)} {
		_, err := reservation.NewConfirmationCode(bad)
		assert.ErrorIs(t, err, reservation.ErrInvalidCode, bad)
	}
}

func TestCodeSource_Fallback(t *testing.T) {
	src := reservation.NewCodeSourceFrom(bytes.NewReader([]byte{0, 1, 2, 3, 4, 5, 6, 30}))

	code, err := src.Fallback()
	require.NoError(t, err)
	assert.Equal(t, "RES-2345678Z", code.String())

	_, err = reservation.NewCodeSourceFrom(bytes.NewReader(nil)).Fallback()
	assert.Error(t, err)
}

func TestCodeSource_FallbackSkipsBiasedBytes(t *testing.T) {
	// 248..255 would favour the first eight characters, so they are dropped
	stream := []byte{
		255, 248, 0, 1, 2, 3, 4, 5,
		6, 247, 9, 9, 9, 9, 9, 9,
	}
	src := reservation.NewCodeSourceFrom(bytes.NewReader(stream))

	code, err := src.Fallback()
	require.NoError(t, err)
	assert.Equal(t, "RES-2345678Z", code.String())
}

func TestCodeSource_FallbackStopsWhenRandomnessRunsOut(t *testing.T) {
	src := reservation.NewCodeSourceFrom(bytes.NewReader([]byte{250, 250, 250, 250, 250, 250, 250, 250}))

	_, err := src.Fallback()
	assert.Error(t, err)
}

func TestCodeSource_FallbackAlphabet(t *testing.T) {
	code, err := reservation.NewCodeSource().Fallback()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(code.String(), reservation.FallbackCodePrefix))
	assert.Len(t, code.String(), len(reservation.FallbackCodePrefix)+8)
	assert.False(t, strings.ContainsAny(code.String()[len(reservation.FallbackCodePrefix):], "01OIL"))
}

func TestConflicts(t *testing.T) {
	slot := reservation.NewSlot(at(0, 0), 19*time.Hour)
	requested, err := slot.Interval(90 * time.Minute)
	require.NoError(t, err)

	booked := func(hour, minute, dur int, status reservation.Status) reservation.Booked {
		return reservation.Booked{
			Slot:            reservation.NewSlot(at(0, 0), time.Duration(hour)*time.Hour+time.Duration(minute)*time.Minute),
			DurationMinutes: dur,
			Status:          status,
		}
	}

	tests := []struct {
		name     string
		existing []reservation.Booked
		want     bool
	}{
		{"empty table", nil, false},
		{"overlapping confirmed", []reservation.Booked{booked(18, 0, 90, reservation.StatusConfirmed)}, true},
		{"overlapping seated", []reservation.Booked{booked(20, 0, 60, reservation.StatusSeated)}, true},
		{"cancelled is ignored", []reservation.Booked{booked(19, 0, 90, reservation.StatusCancelled)}, false},
		{"no-show is ignored", []reservation.Booked{booked(19, 0, 90, reservation.StatusNoShow)}, false},
		{"completed is ignored", []reservation.Booked{booked(19, 0, 90, reservation.StatusCompleted)}, false},
		{"back to back", []reservation.Booked{booked(17, 30, 90, reservation.StatusConfirmed), booked(20, 30, 90, reservation.StatusConfirmed)}, false},
		{"unusable duration skipped", []reservation.Booked{booked(19, 0, 0, reservation.StatusConfirmed)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, reservation.Conflicts(requested, tt.existing))
		})
	}
}

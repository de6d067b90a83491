//go:build unit

package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Date  string `json:"date" validate:"required,bookingdate"`
	Time  string `json:"time" validate:"required,clocktime"`
	Phone string `json:"customerPhone" validate:"required,phone"`
	Extra struct {
		Notes string `json:"notes" validate:"max=5"`
	} `json:"specialRequests"`
}

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	require.NoError(t, RegisterOn(v))
	return v
}

func TestValidators(t *testing.T) {
	v := newValidator(t)

	tests := []struct {
		name       string
		in         sample
		wantFields []string
	}{
		{
			name: "valid input",
			in:   sample{Date: "2025-06-01", Time: "18:00", Phone: "+1 (555) 123-4567"},
		},
		{
			name: "time with seconds",
			in:   sample{Date: "2025-06-01", Time: "18:00:00", Phone: "5551234567"},
		},
		{
			name:       "bad date",
			in:         sample{Date: "06/01/2025", Time: "18:00", Phone: "5551234567"},
			wantFields: []string{"date"},
		},
		{
			name:       "bad time",
			in:         sample{Date: "2025-06-01", Time: "25:00", Phone: "5551234567"},
			wantFields: []string{"time"},
		},
		{
			name:       "phone too short",
			in:         sample{Date: "2025-06-01", Time: "18:00", Phone: "12345"},
			wantFields: []string{"customerPhone"},
		},
		{
			name:       "phone with letters",
			in:         sample{Date: "2025-06-01", Time: "18:00", Phone: "555-CALL-NOW"},
			wantFields: []string{"customerPhone"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.in)
			if len(tt.wantFields) == 0 {
				assert.NoError(t, err)
				return
			}
			fields := FieldErrors(err)
			for _, f := range tt.wantFields {
				assert.Contains(t, fields, f)
			}
		})
	}
}

func TestFieldErrors_NestedPath(t *testing.T) {
	v := newValidator(t)
	in := sample{Date: "2025-06-01", Time: "18:00", Phone: "5551234567"}
	in.Extra.Notes = "far too long"

	fields := FieldErrors(v.Struct(in))

	assert.Equal(t, map[string]string{"specialRequests.notes": "Maximum is 5"}, fields)
}

func TestFieldErrors_NotValidationError(t *testing.T) {
	assert.Nil(t, FieldErrors(assert.AnError))
}

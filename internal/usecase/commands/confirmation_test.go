//go:build unit

package commands_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"table-booking/internal/domain/reservation"
	"table-booking/internal/pkg/errs"
	"table-booking/internal/usecase/commands"
	commandsmock "table-booking/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestConfirmationIssuer_Issue(t *testing.T) {
	fixed := []byte{0, 1, 2, 3, 4, 5, 6, 30}

	tests := []struct {
		name      string
		generated string
		genErr    error
		want      reservation.ConfirmationCode
	}{
		{name: "generator code is used", generated: "res-7k3m9qpx", want: "RES-7K3M9QPX"},
		{name: "generator error", genErr: errs.New("function does not exist"), want: "RES-2345678Z"},
		{name: "empty code", generated: "", want: "RES-2345678Z"},
		{name: "blank code", generated: "   ", want: "RES-2345678Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			gen := commandsmock.NewMockCodeGenerator(ctrl)
			gen.EXPECT().Generate(gomock.Any()).Return(tt.generated, tt.genErr)

			issuer := commands.NewConfirmationIssuer(gen, reservation.NewCodeSourceFrom(bytes.NewReader(fixed)))
			code, err := issuer.Issue(context.Background())

			require.NoError(t, err)
			assert.Equal(t, tt.want, code)
		})
	}
}

func TestConfirmationIssuer_GeneratorGetsDeadline(t *testing.T) {
	ctrl := gomock.NewController(t)
	gen := commandsmock.NewMockCodeGenerator(ctrl)
	gen.EXPECT().Generate(gomock.Any()).DoAndReturn(func(ctx context.Context) (string, error) {
		_, ok := ctx.Deadline()
		assert.True(t, ok)
		return "RES-DEAD0001", nil
	})

	code, err := commands.NewConfirmationIssuer(gen, reservation.NewCodeSource()).Issue(context.Background())

	require.NoError(t, err)
	assert.Equal(t, reservation.ConfirmationCode("RES-DEAD0001"), code)
}

func TestConfirmationIssuer_FallbackExhausted(t *testing.T) {
	issuer := commands.NewConfirmationIssuer(nil, reservation.NewCodeSourceFrom(strings.NewReader("")))

	_, err := issuer.Issue(context.Background())

	assert.Error(t, err)
}

func TestConfirmationIssuer_FallbackCodesAreDistinct(t *testing.T) {
	ctrl := gomock.NewController(t)
	gen := commandsmock.NewMockCodeGenerator(ctrl)
	gen.EXPECT().Generate(gomock.Any()).Return("", errs.New("unavailable")).AnyTimes()
	issuer := commands.NewConfirmationIssuer(gen, reservation.NewCodeSource())

	seen := make(map[reservation.ConfirmationCode]struct{}, 500)
	for range 500 {
		code, err := issuer.Issue(context.Background())
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(code.String(), reservation.FallbackCodePrefix))
		_, dup := seen[code]
		require.False(t, dup, "duplicate code %s", code)
		seen[code] = struct{}{}
	}
}

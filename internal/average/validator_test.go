package average

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateInput_Errors(t *testing.T) {
	cases := []struct {
		name  string
		weeks int
		from  string
		to    string
		want  error
	}{
		{name: "negative window", weeks: -5, from: "USD", to: "CAD", want: ErrWindowNotPositive},
		{name: "zero window", weeks: 0, from: "USD", to: "CAD", want: ErrWindowNotPositive},
		{name: "same codes", weeks: 10, from: "USD", to: "USD", want: ErrSameCodes},
		{name: "same codes different case", weeks: 10, from: "usd", to: "USD", want: ErrSameCodes},
		{name: "short code", weeks: 10, from: "US", to: "CAD", want: ErrCodeLength},
		{name: "long code", weeks: 10, from: "USD", to: "CADX", want: ErrCodeLength},
		{name: "empty codes", weeks: 10, from: "", to: "CAD", want: ErrCodeLength},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateInput(tc.weeks, tc.from, tc.to)
			require.ErrorIs(t, err, tc.want)

			var invalid *InvalidInputError
			require.ErrorAs(t, err, &invalid)
			require.Equal(t, tc.weeks, invalid.Weeks)
			require.Equal(t, tc.from, invalid.From)
		})
	}
}

func TestValidateInput_Success(t *testing.T) {
	require.NoError(t, ValidateInput(10, "USD", "CAD"))
	require.NoError(t, ValidateInput(1, "cad", "aud"))
}

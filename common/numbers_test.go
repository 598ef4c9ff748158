package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name    string
		in      interface{}
		want    *float64
		wantErr bool
	}{
		{name: "nil", in: nil, want: nil},
		{name: "float", in: 12.5, want: Ptr(12.5)},
		{name: "int64", in: int64(3), want: Ptr(3)},
		{name: "numeric string", in: " 100 ", want: Ptr(100)},
		{name: "blank string", in: "", want: nil},
		{name: "garbage string", in: "abc", wantErr: true},
		{name: "unsupported type", in: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseNumber(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrNotANumber)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNumberIsLenient(t *testing.T) {
	assert.Nil(t, Number("n/a"))
	assert.Equal(t, Ptr(4), Number("4"))
}

func TestFixed2(t *testing.T) {
	assert.Equal(t, "25.00", Fixed2(100.0/4))
	assert.Equal(t, "0.33", Fixed2(1.0/3))
	assert.Equal(t, "2.68", Fixed2(2.675+0.001))
}

func TestTruthy(t *testing.T) {
	assert.False(t, Truthy(nil))
	assert.False(t, Truthy(Ptr(0)))
	assert.True(t, Truthy(Ptr(-1)))
}

package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_DeviceName(t *testing.T) {
	testCases := []struct {
		name     string
		index    int
		expected string
		wantErr  bool
		err      error
	}{
		{
			name:     "first data slot",
			index:    0,
			expected: "/dev/xvdb",
		},
		{
			name:     "eighth data slot",
			index:    7,
			expected: "/dev/xvdi",
		},
		{
			name:     "last data slot",
			index:    24,
			expected: "/dev/xvdz",
		},
		{
			name:    "past last letter",
			index:   25,
			wantErr: true,
			err:     ErrSlotIndexOutOfRange,
		},
		{
			name:    "negative index",
			index:   -1,
			wantErr: true,
			err:     ErrSlotIndexOutOfRange,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := DeviceName(tc.index)
			if tc.wantErr {
				assert.ErrorIs(t, err, tc.err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, actual)
			}
		})
	}
}

func Test_GiBToBytes(t *testing.T) {
	testCases := []struct {
		name     string
		gib      int64
		expected int64
		wantErr  bool
	}{
		{name: "one", gib: 1, expected: 1073741824},
		{name: "one TiB", gib: 1024, expected: 1099511627776},
		{name: "largest ebs volume", gib: 65536, expected: 70368744177664},
		{name: "largest representable", gib: math.MaxInt64 / (1 << 30), expected: (math.MaxInt64 / (1 << 30)) << 30},
		{name: "overflow", gib: 1 << 33, wantErr: true},
		{name: "negative", gib: -1, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := GiBToBytes(tc.gib)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrSizeOutOfRange)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, actual)
		})
	}
}

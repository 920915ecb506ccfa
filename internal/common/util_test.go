package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWipeByteArray_ZerosBuffer(t *testing.T) {
	buf := []byte("hunter2")
	WipeByteArray(buf)
	for i, b := range buf {
		require.Zerof(t, b, "byte %d not wiped", i)
	}
}

func TestWipeByteArray_NilSafe(t *testing.T) {
	WipeByteArray(nil)
}

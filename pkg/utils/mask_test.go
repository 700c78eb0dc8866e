package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMaskToken(t *testing.T) {
	require.Equal(t, "", MaskToken(""))
	require.Equal(t, "••••••••", MaskToken("short"))
	require.Equal(t, "••••••••", MaskToken("12345678"))
	require.Equal(t, "AQXK••••••••OyA1", MaskToken("AQXKjH1XAFR4oOULUbaTMdOyA1"))
}

package textutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeName(t *testing.T) {
	table := []struct {
		input    string
		expected string
	}{
		{input: "Abu Dhabi Grand Prix", expected: "abudhabigrandprix"},
		{input: "  São Paulo\tGrand Prix\n", expected: "saopaulograndprix"},
		{input: "abu dhabi", expected: "abudhabi"},
		{input: "", expected: ""},
	}
	for _, row := range table {
		require.Equal(t, row.expected, NormalizeName(row.input))
	}
}

func TestFoldAccents(t *testing.T) {
	require.Equal(t, "Sao Paulo", FoldAccents("São Paulo"))
	require.Equal(t, "Nurburgring", FoldAccents("Nürburgring"))
}

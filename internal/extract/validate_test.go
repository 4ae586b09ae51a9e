package extract

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

const header = "POS,1,2,3,4,5,6,7,8,9,10,11,12,13,14,15,16,17,18,19,20"

func TestValidateCSV(t *testing.T) {
	chart := strings.Join([]string{
		header,
		"GRID,33,44,77,11,16,55,4,3,10,22,31,14,18,99,7,63,47,6,5,9",
		"LAP 1,33,44,77,11,16,55,4,3,10,22,31,14,18,99,7,63,47,6,5,9",
		"LAP 2,44,33,77,11,16,55,4,3,10,22,31,14,18,99,7,63,47,6,,",
	}, "\n")

	issues, err := ValidateCSV(strings.NewReader(chart))
	require.NoError(t, err)
	require.Empty(t, issues)
}

func TestValidateCSVReportsDefects(t *testing.T) {
	chart := strings.Join([]string{
		"POS,1,2,3,4,5,6,7,8,9,10,11,12,13,14,15,16,17,18,19,X",
		"GRID,33,44,77,11,16,55,4,3,10,22,31,14,18,99,7,63,47,6,5,9",
		"LAP 2,33,44,77,11,16,55,4,3,10,22,31,14,18,99,7,63,47,6,5,9",
		"LAP 3,33,33,abc,11,16,55,4,3,10,22,31,14,18,99,7,63,47,6,5",
	}, "\n")

	issues, err := ValidateCSV(strings.NewReader(chart))
	require.NoError(t, err)

	expected := []Issue{
		{Line: 1, Message: `header column 21: expected "20", got "X"`},
		{Line: 3, Message: `expected row "LAP 1", got "LAP 2"`},
		{Line: 4, Message: "expected 21 fields, got 20"},
		{Line: 4, Message: `expected row "LAP 2", got "LAP 3"`},
		{Line: 4, Message: "position 2: car 33 appears twice"},
		{Line: 4, Message: `position 3: "abc" is not a car number`},
	}
	if diff := cmp.Diff(expected, issues); diff != "" {
		t.Errorf("issues (-want +got):\n%s", diff)
	}
}

func TestValidateCSVEmpty(t *testing.T) {
	issues, err := ValidateCSV(strings.NewReader(""))
	require.NoError(t, err)
	require.Equal(t, []Issue{{Line: 1, Message: "empty chart"}}, issues)

	issues, err = ValidateCSV(strings.NewReader(header))
	require.NoError(t, err)
	require.Equal(t, []Issue{{Line: 1, Message: "no rows after the header"}}, issues)
}

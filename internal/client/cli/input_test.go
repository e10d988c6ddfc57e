package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reader(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer

	got, err := GetSimpleText(reader("  Ruby  \n"), "Name", &out)
	require.NoError(t, err)
	assert.Equal(t, "Ruby", got)
	assert.Contains(t, out.String(), "Name\n> ")
}

func TestGetSimpleText_PartialLineAtEOF(t *testing.T) {
	var out bytes.Buffer

	got, err := GetSimpleText(reader("no newline"), "Name", &out)
	require.NoError(t, err)
	assert.Equal(t, "no newline", got)
}

func TestGetMultiline(t *testing.T) {
	var out bytes.Buffer

	got, err := GetMultiline(reader("line one\nline two\n\n"), "Notes", &out)
	require.NoError(t, err)
	assert.Equal(t, "line one\nline two", got)
}

func TestGetFloat(t *testing.T) {
	var out bytes.Buffer

	got, err := GetFloat(reader("2.35\n"), "Weight", &out)
	require.NoError(t, err)
	assert.InDelta(t, 2.35, got, 0.001)

	got, err = GetFloat(reader("\n"), "Weight", &out)
	require.NoError(t, err)
	assert.Zero(t, got)

	_, err = GetFloat(reader("heavy\n"), "Weight", &out)
	assert.Error(t, err)
}

func TestGetTags(t *testing.T) {
	var out bytes.Buffer

	got, err := GetTags(reader("burma, antique, ,blue\n"), "Tags", &out)
	require.NoError(t, err)
	assert.Equal(t, []string{"burma", "antique", "blue"}, got)

	got, err = GetTags(reader("\n"), "Tags", &out)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestGetConfirmation(t *testing.T) {
	var out bytes.Buffer

	for input, want := range map[string]bool{
		"y\n": true, "yes\n": true, "Y\n": true,
		"n\n": false, "\n": false, "maybe\n": false,
	} {
		got, err := GetConfirmation(reader(input), "Sure?", &out)
		require.NoError(t, err)
		assert.Equal(t, want, got, input)
	}
}

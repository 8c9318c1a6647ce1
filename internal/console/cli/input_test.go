package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("  hello world  \n"))

	v, err := GetSimpleText(r, "Enter something", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello world", v)
	assert.Contains(t, out.String(), "Enter something")
}

func TestGetSimpleText_PartialLineAtEOF(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("no newline"))

	v, err := GetSimpleText(r, "Prompt", &out)
	require.NoError(t, err)
	assert.Equal(t, "no newline", v)
}

func TestGetTextDefault(t *testing.T) {
	var out bytes.Buffer

	r := bufio.NewReader(strings.NewReader("\n"))
	v, err := GetTextDefault(r, "Name", "Dr. Sarah Johnson", &out)
	require.NoError(t, err)
	assert.Equal(t, "Dr. Sarah Johnson", v)
	assert.Contains(t, out.String(), "[Dr. Sarah Johnson]")

	r = bufio.NewReader(strings.NewReader("Dr. Michael Chen\n"))
	v, err = GetTextDefault(r, "Name", "Dr. Sarah Johnson", &out)
	require.NoError(t, err)
	assert.Equal(t, "Dr. Michael Chen", v)
}

func TestGetMultiline(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("line one\nline two\n\nignored\n"))

	v, err := GetMultiline(r, "Message", &out)
	require.NoError(t, err)
	assert.Equal(t, "line one\nline two", v)
}

func TestGetPassword_UsesTerminalReader(t *testing.T) {
	orig := readPassword
	readPassword = func(fd int) ([]byte, error) { return []byte("s3cret"), nil }
	t.Cleanup(func() { readPassword = orig })

	var out bytes.Buffer
	pw, err := GetPassword(&out)
	require.NoError(t, err)
	assert.Equal(t, []byte("s3cret"), pw)
	assert.Contains(t, out.String(), "Enter password")
}

func TestParseID(t *testing.T) {
	id, err := parseID(" 42 ")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	_, err = parseID("abc")
	assert.Error(t, err)
}

func TestSplitCommand(t *testing.T) {
	cmd, arg := splitCommand("search John Smith")
	assert.Equal(t, "search", cmd)
	assert.Equal(t, "John Smith", arg)

	cmd, arg = splitCommand("next")
	assert.Equal(t, "next", cmd)
	assert.Equal(t, "", arg)
}

package cli

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func newReader(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	s, err := GetSimpleText(newReader("  hello world \n"), "Name", &out)
	require.NoError(t, err)
	require.Equal(t, "hello world", s)
	require.Contains(t, out.String(), "Name")
}

func TestGetSimpleTextPartialLineAtEOF(t *testing.T) {
	var out bytes.Buffer
	s, err := GetSimpleText(newReader("no-newline"), "Name", &out)
	require.NoError(t, err)
	require.Equal(t, "no-newline", s)
}

func TestGetSimpleTextEOF(t *testing.T) {
	var out bytes.Buffer
	_, err := GetSimpleText(newReader(""), "Name", &out)
	require.ErrorIs(t, err, io.EOF)
}

func TestGetOptionalText(t *testing.T) {
	var out bytes.Buffer

	v, err := GetOptionalText(newReader("value\n"), "Field", &out)
	require.NoError(t, err)
	require.NotNil(t, v)
	require.Equal(t, "value", *v)

	v, err = GetOptionalText(newReader("\n"), "Field", &out)
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestGetInt(t *testing.T) {
	var out bytes.Buffer

	n, err := GetInt(newReader("42\n"), "Count", &out)
	require.NoError(t, err)
	require.Equal(t, int64(42), n)

	_, err = GetInt(newReader("forty-two\n"), "Count", &out)
	require.Error(t, err)
}

func TestGetFloat(t *testing.T) {
	var out bytes.Buffer
	f, err := GetFloat(newReader("1.5\n"), "Multiplier", &out)
	require.NoError(t, err)
	require.Equal(t, 1.5, f)
}

func TestGetIDList(t *testing.T) {
	var out bytes.Buffer

	ids, err := GetIDList(newReader("1, 4,7\n"), "Labels", &out)
	require.NoError(t, err)
	require.Equal(t, []int64{1, 4, 7}, ids)

	ids, err = GetIDList(newReader("\n"), "Labels", &out)
	require.NoError(t, err)
	require.NotNil(t, ids)
	require.Empty(t, ids)

	_, err = GetIDList(newReader("1,x\n"), "Labels", &out)
	require.Error(t, err)
}

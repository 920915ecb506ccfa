package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetSimpleText_TrimsLine(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("  ada@example.com  \n"))
	var out bytes.Buffer

	got, err := GetSimpleText(r, "Email", &out)
	require.NoError(t, err)
	require.Equal(t, "ada@example.com", got)
	require.Contains(t, out.String(), "Email")
}

func TestGetSimpleText_EOFWithPartialLine(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("no-newline"))
	var out bytes.Buffer

	got, err := GetSimpleText(r, "Email", &out)
	require.NoError(t, err)
	require.Equal(t, "no-newline", got)
}

func TestGetList_SplitsAndTrims(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("Go, Python , ,UI/UX Design\n"))
	var out bytes.Buffer

	got, err := GetList(r, "Skills", &out)
	require.NoError(t, err)
	require.Equal(t, []string{"Go", "Python", "UI/UX Design"}, got)
}

func TestGetList_EmptyInputYieldsNil(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("\n"))
	var out bytes.Buffer

	got, err := GetList(r, "Skills", &out)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestGetPassword_UsesTerminalReader(t *testing.T) {
	orig := readPassword
	readPassword = func(fd int) ([]byte, error) { return []byte("s3cret"), nil }
	t.Cleanup(func() { readPassword = orig })

	var out bytes.Buffer
	pw, err := GetPassword(&out, "Password")
	require.NoError(t, err)
	require.Equal(t, []byte("s3cret"), pw)
	require.Contains(t, out.String(), "Password: ")
}

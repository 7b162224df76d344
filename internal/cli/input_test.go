package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("hello world\n"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
	assert.Equal(t, "Name?\n> ", out.String())
}

func TestGetSimpleTextEOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "lastline", got)

	_, err = GetSimpleText(rdr(""), "Name?", &out)
	assert.Error(t, err)
}

func TestGetWithDefault(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty keeps current", "\n", "current"},
		{"dash clears", "-\n", ""},
		{"new value", "  fresh \n", "fresh"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := GetWithDefault(rdr(tc.input), "Title", "current", &out)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Contains(t, out.String(), "Title [current]")
		})
	}
}

func withTerminal(t *testing.T, terminal bool, read func(int) ([]byte, error)) {
	t.Helper()
	oldIs, oldRead := isTerminal, readPassword
	t.Cleanup(func() { isTerminal, readPassword = oldIs, oldRead })
	isTerminal = func(int) bool { return terminal }
	if read != nil {
		readPassword = read
	}
}

func TestGetPassword_Terminal(t *testing.T) {
	withTerminal(t, true, func(int) ([]byte, error) { return []byte("s3cret"), nil })

	var out bytes.Buffer
	pw, err := GetPassword(rdr(""), "Enter password", &out)
	require.NoError(t, err)
	assert.Equal(t, []byte("s3cret"), pw)
	assert.Equal(t, "Enter password: \n", out.String())
}

func TestGetPassword_TerminalError(t *testing.T) {
	withTerminal(t, true, func(int) ([]byte, error) { return nil, errors.New("boom") })

	var out bytes.Buffer
	_, err := GetPassword(rdr(""), "Enter password", &out)
	assert.Error(t, err)
}

func TestGetPassword_PipedInput(t *testing.T) {
	withTerminal(t, false, func(int) ([]byte, error) {
		t.Fatal("terminal read on piped input")
		return nil, nil
	})

	var out bytes.Buffer
	pw, err := GetPassword(rdr("piped\n"), "Enter password", &out)
	require.NoError(t, err)
	assert.Equal(t, []byte("piped"), pw)
}

func TestConfirm(t *testing.T) {
	for input, want := range map[string]bool{
		"y\n": true, "YES\n": true, "n\n": false, "\n": false, "maybe\n": false,
	} {
		var out bytes.Buffer
		got, err := Confirm(rdr(input), "Delete?", &out)
		require.NoError(t, err)
		assert.Equal(t, want, got, "input %q", input)
	}
}

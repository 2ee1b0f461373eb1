package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("Food Bank HQ\n"), "Name?", &out)
	if err != nil || got != "Food Bank HQ" {
		t.Fatalf("got %q, err=%v", got, err)
	}
}

func TestGetSimpleTextEOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Name?", &out)
	if err != nil || got != "lastline" {
		t.Fatalf("got %q, err=%v", got, err)
	}
}

func TestGetSecret_Error(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()
	readPassword = func(int) ([]byte, error) {
		return nil, errors.New("boom")
	}
	var out bytes.Buffer
	_, err := GetSecret("Token", &out)
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestGetFloat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantOK  bool
		wantErr bool
	}{
		{name: "number", input: "10.82\n", want: 10.82, wantOK: true},
		{name: "negative", input: "-33.5\n", want: -33.5, wantOK: true},
		{name: "empty line is skip", input: "\n", wantOK: false},
		{name: "junk", input: "abc\n", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, ok, err := GetFloat(rdr(tt.input), "Lat", &out)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantOK, ok)
			if ok {
				require.Equal(t, tt.want, got)
			}
		})
	}
}

func TestGetDate(t *testing.T) {
	var out bytes.Buffer

	got, err := GetDate(rdr("2026-09-01\n"), "Start", &out)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), *got)

	got, err = GetDate(rdr("\n"), "Start", &out)
	require.NoError(t, err)
	require.Nil(t, got)

	_, err = GetDate(rdr("01/09/2026\n"), "Start", &out)
	require.Error(t, err)
}

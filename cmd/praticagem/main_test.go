package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/marcusvs/praticagem"
	main "github.com/marcusvs/praticagem/cmd/praticagem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTable = `<html><body><table>
<tr><th>Data</th><th>Horário</th><th>Manobra</th><th>Berço</th><th>Navio</th><th>Situação</th></tr>
<tr><td>23/02/2026</td><td>08:00</td><td>Atracação</td><td>201</td><td>MSC MARINA</td><td>Confirmado</td></tr>
</table></body></html>`

func TestRun_NoArgs(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	m := main.NewMain()
	err := m.Run(context.Background(), nil, stdout, stderr)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
}

func TestRun_Help(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	m := main.NewMain()
	err := m.Run(context.Background(), []string{"--help"}, stdout, stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "serve")
	assert.Contains(t, stdout.String(), "fetch")
}

func TestRun_UnknownCommand(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	m := main.NewMain()
	err := m.Run(context.Background(), []string{"bogus"}, stdout, stderr)

	require.Error(t, err)
}

func TestCmdFetch(t *testing.T) {
	t.Parallel()

	t.Run("prints scraped movements as JSON", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte(sampleTable))
		}))
		defer server.Close()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		m := main.NewMain()
		err := m.Run(context.Background(), []string{"fetch", "--url", server.URL, "--rps", "0"}, stdout, stderr)
		require.NoError(t, err)

		var movements []praticagem.Movement
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &movements))
		require.Len(t, movements, 1)
		assert.Equal(t, praticagem.Movement{
			Date:     "23/02/2026",
			Time:     "08:00",
			Maneuver: "Atracação",
			Berth:    "201",
			Vessel:   "MSC MARINA",
			Status:   "Confirmado",
		}, movements[0])
	})

	t.Run("surfaces transient failures with the attempt count", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		m := main.NewMain()
		err := m.Run(context.Background(), []string{
			"fetch",
			"--url", server.URL,
			"--rps", "0",
			"--max-attempts", "2",
			"--backoff", "1ms",
		}, stdout, stderr)

		require.Error(t, err)
		assert.Equal(t, praticagem.EUNAVAILABLE, praticagem.ErrorCode(err))
		assert.Contains(t, praticagem.ErrorMessage(err), "all 2 attempts failed")
	})

	t.Run("surfaces structural failures from the extractor", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html><body><p>em manutenção</p></body></html>"))
		}))
		defer server.Close()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		m := main.NewMain()
		err := m.Run(context.Background(), []string{"fetch", "--url", server.URL, "--rps", "0"}, stdout, stderr)

		require.Error(t, err)
		assert.Equal(t, praticagem.ESTRUCTURE, praticagem.ErrorCode(err))
	})
}

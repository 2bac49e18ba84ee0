package main

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ghfile/gh"
	"ghfile/helpers"
)

const blobURL = "https://github.com/octocat/Hello-World/blob/master/README.md"

type captured struct {
	Path string
	Ref  string
	Auth string
}

func apiServer(t *testing.T, status int, body string) (*httptest.Server, *captured) {
	t.Helper()
	seen := &captured{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen.Path = r.URL.Path
		seen.Ref = r.URL.Query().Get("ref")
		seen.Auth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, seen
}

func configFor(t *testing.T, baseURL string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ghfile.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api_base_url: "+baseURL+"\n"), 0o600))
	return path
}

func runCLI(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	helpers.SetColorEnabled(false)
	var stdout, stderr bytes.Buffer
	cmd := newCommand(strings.NewReader(stdin), &stdout, &stderr)
	err := cmd.Run(context.Background(), append([]string{"ghfile"}, args...))
	return stdout.String(), stderr.String(), err
}

func TestRunWithFlags(t *testing.T) {
	srv, seen := apiServer(t, http.StatusOK, `{"name":"README.md","content":"..."}`)

	stdout, stderr, err := runCLI(t, "", "-c", configFor(t, srv.URL), "-u", blobURL, "-t", "ghp_abc")
	require.NoError(t, err)

	assert.Equal(t, "{\n  \"content\": \"...\",\n  \"name\": \"README.md\"\n}\n", stdout)
	assert.NotContains(t, stderr, "Enter")
	assert.Equal(t, "/repos/octocat/Hello-World/contents/README.md", seen.Path)
	assert.Equal(t, "master", seen.Ref)
	assert.Equal(t, "token ghp_abc", seen.Auth)
}

func TestRunInteractive(t *testing.T) {
	srv, seen := apiServer(t, http.StatusOK, `{"name":"README.md"}`)

	stdout, stderr, err := runCLI(t, blobURL+"\nghp_from_stdin\n", "--config", configFor(t, srv.URL), "--compact")
	require.NoError(t, err)

	assert.Equal(t, "{\"name\":\"README.md\"}\n", stdout)
	assert.Contains(t, stderr, urlPrompt)
	assert.Contains(t, stderr, tokenPrompt)
	assert.Equal(t, "token ghp_from_stdin", seen.Auth)
}

func TestRunPromptsOnlyForMissingValues(t *testing.T) {
	srv, seen := apiServer(t, http.StatusOK, `{}`)

	_, stderr, err := runCLI(t, "ghp_typed\n", "-c", configFor(t, srv.URL), "--url", blobURL)
	require.NoError(t, err)

	assert.NotContains(t, stderr, urlPrompt)
	assert.Contains(t, stderr, tokenPrompt)
	assert.Equal(t, "token ghp_typed", seen.Auth)
}

func TestRunMalformedURL(t *testing.T) {
	stdout, _, err := runCLI(t, "", "-u", "https://example.com/nope", "-t", "x")
	require.Error(t, err)
	assert.True(t, errors.Is(err, helpers.ErrMalformedURL))
	assert.Empty(t, stdout)
}

func TestRunNotFound(t *testing.T) {
	srv, _ := apiServer(t, http.StatusNotFound, `{"message":"Not Found"}`)

	stdout, _, err := runCLI(t, "", "-c", configFor(t, srv.URL), "-u", blobURL, "-t", "x")
	require.Error(t, err)

	var reqErr *gh.RequestFailedError
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, http.StatusNotFound, reqErr.StatusCode)
	assert.Empty(t, stdout)
}

func TestRunInvalidJSON(t *testing.T) {
	srv, _ := apiServer(t, http.StatusOK, "not json")

	_, _, err := runCLI(t, "", "-c", configFor(t, srv.URL), "-u", blobURL, "-t", "x")
	require.Error(t, err)

	var decErr *gh.DecodeError
	assert.True(t, errors.As(err, &decErr))
}

func TestRunDebugLogsToStderr(t *testing.T) {
	srv, _ := apiServer(t, http.StatusOK, `{}`)

	stdout, stderr, err := runCLI(t, "", "-c", configFor(t, srv.URL), "--log-level", "debug", "-u", blobURL, "-t", "ghp_secret")
	require.NoError(t, err)

	assert.Equal(t, "{}\n", stdout)
	assert.Contains(t, stderr, "fetching contents")
	assert.NotContains(t, stderr, "ghp_secret")
}

func TestRunBadConfig(t *testing.T) {
	_, _, err := runCLI(t, "", "-c", filepath.Join(t.TempDir(), "missing.yaml"), "-u", blobURL, "-t", "x")
	assert.Error(t, err)

	_, _, err = runCLI(t, "", "--log-level", "loud", "-u", blobURL, "-t", "x")
	assert.Error(t, err)
}

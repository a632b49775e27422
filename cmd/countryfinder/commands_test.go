package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/muurk/countryfinder/internal/config"
	"github.com/muurk/countryfinder/internal/directory"
)

const testResponse = `{"error":false,"msg":"countries and capitals retrieved","data":[{"name":"France","capital":"Paris"},{"name":"Germany","capital":"Berlin"},{"name":"Finland","capital":"Helsinki"}]}`

func newDirectoryServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

// resetFlags restores every flag to its default, since the command tree is
// package state shared by all tests.
func resetFlags(cmds ...*cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	for _, c := range cmds {
		c.PersistentFlags().VisitAll(reset)
		c.Flags().VisitAll(reset)
	}
}

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	resetFlags(rootCmd, listCmd, configCmd, configShowCmd, configInitCmd, configPathCmd)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err = rootCmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func missingConfig(t *testing.T) string {
	return filepath.Join(t.TempDir(), "config.yaml")
}

func TestList_Compact(t *testing.T) {
	server := newDirectoryServer(t, http.StatusOK, testResponse)

	stdout, _, err := execute(t, "list", "--config", missingConfig(t), "--endpoint", server.URL, "--format", "compact")
	if err != nil {
		t.Fatalf("list error = %v", err)
	}
	if stdout != "France\nGermany\nFinland\n" {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestList_Query(t *testing.T) {
	server := newDirectoryServer(t, http.StatusOK, testResponse)

	stdout, _, err := execute(t, "list", "--config", missingConfig(t), "--endpoint", server.URL, "--format", "compact", "--query", "F")
	if err != nil {
		t.Fatalf("list error = %v", err)
	}
	if stdout != "France\nFinland\n" {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestList_JSON(t *testing.T) {
	server := newDirectoryServer(t, http.StatusOK, testResponse)

	stdout, _, err := execute(t, "list", "--config", missingConfig(t), "--endpoint", server.URL, "--format", "json", "-q", "land")
	if err != nil {
		t.Fatalf("list error = %v", err)
	}

	var got []directory.Country
	if err := json.Unmarshal([]byte(stdout), &got); err != nil {
		t.Fatalf("stdout is not JSON: %v\n%s", err, stdout)
	}
	if diff := cmp.Diff([]string{"Finland"}, directory.Names(got)); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}
	if got[0].ID == "" {
		t.Error("records should carry an id")
	}
}

func TestList_Detailed(t *testing.T) {
	server := newDirectoryServer(t, http.StatusOK, testResponse)

	stdout, _, err := execute(t, "list", "--config", missingConfig(t), "--endpoint", server.URL)
	if err != nil {
		t.Fatalf("list error = %v", err)
	}
	for _, want := range []string{"3 countries", "France", "Paris", "Helsinki"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout missing %q:\n%s", want, stdout)
		}
	}
}

func TestList_NoMatch(t *testing.T) {
	server := newDirectoryServer(t, http.StatusOK, testResponse)

	stdout, stderr, err := execute(t, "list", "--config", missingConfig(t), "--endpoint", server.URL, "--format", "compact", "--query", "xyz")
	if err != nil {
		t.Fatalf("list error = %v", err)
	}
	if stdout != "" {
		t.Errorf("stdout = %q, want nothing", stdout)
	}
	if !strings.Contains(stderr, `No country matches "xyz"`) {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestList_FetchFailure(t *testing.T) {
	server := newDirectoryServer(t, http.StatusInternalServerError, "boom")

	_, stderr, err := execute(t, "list", "--config", missingConfig(t), "--endpoint", server.URL)
	if !errors.Is(err, errReported) {
		t.Fatalf("error = %v, want errReported", err)
	}
	if !strings.Contains(stderr, directory.UserMessage) {
		t.Errorf("stderr = %q, want the fetch error message", stderr)
	}
}

func TestList_BadFormat(t *testing.T) {
	_, _, err := execute(t, "list", "--config", missingConfig(t), "--format", "xml")
	if err == nil || !strings.Contains(err.Error(), "unknown format") {
		t.Errorf("error = %v, want unknown format", err)
	}
}

func TestLoadSettings_FlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	file := config.NewSettings()
	file.Endpoint = "http://file.example/countries"
	file.LogLevel = "warn"
	if err := file.SaveFile(path); err != nil {
		t.Fatalf("SaveFile() error = %v", err)
	}

	stdout, _, err := execute(t, "config", "show", "--config", path, "--endpoint", "http://flag.example/countries", "--timeout", "7s")
	if err != nil {
		t.Fatalf("config show error = %v", err)
	}

	for _, want := range []string{"endpoint: http://flag.example/countries", "http_timeout: 7s", "log_level: warn"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("config show missing %q:\n%s", want, stdout)
		}
	}
}

func TestLoadSettings_InvalidFlag(t *testing.T) {
	_, _, err := execute(t, "config", "show", "--config", missingConfig(t), "--endpoint", "not-a-url")
	if err == nil || !config.IsValidationError(err) {
		t.Errorf("error = %v, want a validation error", err)
	}
}

func TestConfigInit(t *testing.T) {
	path := missingConfig(t)

	stdout, _, err := execute(t, "config", "init", "--config", path, "--log-level", "debug")
	if err != nil {
		t.Fatalf("config init error = %v", err)
	}
	if !strings.Contains(stdout, path) {
		t.Errorf("stdout = %q, want path", stdout)
	}

	loaded, err := config.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if loaded.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", loaded.LogLevel)
	}

	if _, _, err := execute(t, "config", "init", "--config", path); err == nil {
		t.Error("second init without --force should fail")
	}
	if _, _, err := execute(t, "config", "init", "--config", path, "--force"); err != nil {
		t.Errorf("init --force error = %v", err)
	}
}

func TestConfigPath(t *testing.T) {
	path := missingConfig(t)

	stdout, _, err := execute(t, "config", "path", "--config", path)
	if err != nil {
		t.Fatalf("config path error = %v", err)
	}
	if strings.TrimSpace(stdout) != path {
		t.Errorf("stdout = %q, want %q", stdout, path)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("config path must not create the file")
	}
}

func TestVersion(t *testing.T) {
	stdout, _, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version error = %v", err)
	}
	if !strings.HasPrefix(stdout, "countryfinder ") {
		t.Errorf("stdout = %q", stdout)
	}
}

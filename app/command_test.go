package app

import (
	"bytes"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"apod-wallpaper/config"
)

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"ENV", "NASA_API_KEY", "APOD_BASE_URL", "SAVE_DIRECTORY", "UPDATED_SAVE_DIRECTORY",
		"FONT_PATH", "FONT_SIZE", "MAX_WORDS_PER_LINE", "TEXT_ALPHA", "HTTP_TIMEOUT",
	} {
		t.Setenv(key, "")
	}
}

func TestRootCommand_Flags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{"version flag", []string{"--version"}, false},
		{"help flag", []string{"--help"}, false},
		{"unexpected argument", []string{"extra"}, true},
		{"unknown flag", []string{"--bogus"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			cmd := NewRootCommand(&out, Options{})
			cmd.SetArgs(tt.args)
			cmd.SetErr(&bytes.Buffer{})

			err := cmd.Execute()
			if (err != nil) != tt.wantErr {
				t.Errorf("Execute() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRootCommand_MissingConfigFailsBeforeNetwork(t *testing.T) {
	clearConfigEnv(t)
	server := newAPODServer(t, http.StatusOK)
	t.Setenv("APOD_BASE_URL", server.URL)
	t.Setenv("NASA_API_KEY", "DEMO_KEY")

	cmd := NewRootCommand(&bytes.Buffer{}, Options{HTTPClient: server.Client()})
	cmd.SetArgs([]string{"--env-file", filepath.Join(t.TempDir(), "absent.env"), "--no-wallpaper"})

	err := cmd.Execute()
	if !errors.Is(err, config.ErrConfigMissing) {
		t.Fatalf("Execute() error = %v, want ErrConfigMissing", err)
	}
	if hits := atomic.LoadInt32(&server.imageHits); hits != 0 {
		t.Errorf("image requested %d times with missing configuration", hits)
	}
}

func TestRootCommand_RunsFromEnvFile(t *testing.T) {
	clearConfigEnv(t)
	server := newAPODServer(t, http.StatusOK)
	dir := t.TempDir()

	fontPath := filepath.Join(dir, "goregular.ttf")
	if err := os.WriteFile(fontPath, goregular.TTF, 0644); err != nil {
		t.Fatal(err)
	}
	updatedDir := filepath.Join(dir, "updated")
	envFile := filepath.Join(dir, "test.env")
	env := strings.Join([]string{
		"NASA_API_KEY=DEMO_KEY",
		"APOD_BASE_URL=" + server.URL,
		"SAVE_DIRECTORY=" + filepath.Join(dir, "raw"),
		"UPDATED_SAVE_DIRECTORY=" + updatedDir,
		"FONT_PATH=" + fontPath,
	}, "\n")
	if err := os.WriteFile(envFile, []byte(env), 0644); err != nil {
		t.Fatal(err)
	}

	wp := &fakeWallpaper{}
	var out bytes.Buffer
	cmd := NewRootCommand(&out, Options{HTTPClient: server.Client(), Wallpaper: wp})
	cmd.SetArgs([]string{"--env-file", envFile, "--no-wallpaper"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "raw", "nebula.jpg")); err != nil {
		t.Errorf("downloaded image missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(updatedDir, "updated_nebula.jpg.png")); err != nil {
		t.Errorf("published image missing: %v", err)
	}
	if len(wp.paths) != 0 {
		t.Errorf("wallpaper set despite --no-wallpaper: %v", wp.paths)
	}
}

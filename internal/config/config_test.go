package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "animals.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func testFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("addr", "", "")
	fs.String("log-level", "", "")
	fs.String("log-format", "", "")
	fs.String("storage-driver", "", "")
	fs.String("dsn", "", "")
	fs.Bool("migrate", true, "")
	return fs
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.HTTP.WriteTimeout)
	assert.Equal(t, DriverMemory, cfg.Storage.Driver)
	assert.True(t, cfg.Storage.Migrate)
	assert.Equal(t, 16, cfg.Notify.Buffer)
	assert.Equal(t, 50, cfg.Notify.History)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_Precedence_FileEnvFlags(t *testing.T) {
	path := writeFile(t, `
http:
  addr: ":9000"
  read_timeout: 2s
log:
  level: debug
storage:
  driver: sqlite
  dsn: file.db
notify:
  buffer: 4
`)

	t.Setenv("ANIMALS_STORAGE_DSN", "env.db")
	t.Setenv("ANIMALS_NOTIFY_HISTORY", "7")
	t.Setenv("ANIMALS_LOG_LEVEL", "warn")

	fs := testFlags()
	require.NoError(t, fs.Parse([]string{"--log-level=error"}))

	cfg, err := Load(path, fs)
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.HTTP.Addr)            // archivo
	assert.Equal(t, 2*time.Second, cfg.HTTP.ReadTimeout) // archivo
	assert.Equal(t, DriverSQLite, cfg.Storage.Driver)  // archivo
	assert.Equal(t, "env.db", cfg.Storage.DSN)         // env > archivo
	assert.Equal(t, 4, cfg.Notify.Buffer)              // archivo
	assert.Equal(t, 7, cfg.Notify.History)             // env
	assert.Equal(t, "error", cfg.Log.Level)            // flag > env
}

func TestLoad_UnchangedFlagsDoNotOverride(t *testing.T) {
	t.Setenv("ANIMALS_HTTP_ADDR", ":7000")

	fs := testFlags()
	require.NoError(t, fs.Parse(nil))

	cfg, err := Load("", fs)
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.HTTP.Addr)
	assert.True(t, cfg.Storage.Migrate)
}

func TestLoad_PortCompat(t *testing.T) {
	t.Setenv("PORT", "3000")

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, ":3000", cfg.HTTP.Addr)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "memory without dsn", cfg: Config{HTTP: HTTP{Addr: ":1"}, Storage: Storage{Driver: "memory"}}},
		{name: "empty driver defaults to memory", cfg: Config{HTTP: HTTP{Addr: ":1"}}},
		{name: "postgres needs dsn", cfg: Config{HTTP: HTTP{Addr: ":1"}, Storage: Storage{Driver: "postgres"}}, wantErr: true},
		{name: "sqlite with dsn", cfg: Config{HTTP: HTTP{Addr: ":1"}, Storage: Storage{Driver: "SQLite", DSN: ":memory:"}}},
		{name: "unknown driver", cfg: Config{HTTP: HTTP{Addr: ":1"}, Storage: Storage{Driver: "mongo"}}, wantErr: true},
		{name: "missing addr", cfg: Config{}, wantErr: true},
		{name: "webhook url ok", cfg: Config{HTTP: HTTP{Addr: ":1"}, Notify: Notify{WebhookURL: " https://hooks.example.com/a "}}},
		{name: "webhook url relative", cfg: Config{HTTP: HTTP{Addr: ":1"}, Notify: Notify{WebhookURL: "/hooks"}}, wantErr: true},
		{name: "webhook url bad scheme", cfg: Config{HTTP: HTTP{Addr: ":1"}, Notify: Notify{WebhookURL: "ftp://x/y"}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "http.read_timeout", envKey("ANIMALS_HTTP_READ_TIMEOUT"))
	assert.Equal(t, "storage.dsn", envKey("ANIMALS_STORAGE_DSN"))
	assert.Equal(t, "notify.webhook_url", envKey("ANIMALS_NOTIFY_WEBHOOK_URL"))
}

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigFromEnv(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(*testing.T)
		wantError bool
		validate  func(*testing.T, *Config)
	}{
		{
			name:  "all defaults",
			setup: func(t *testing.T) {},
			validate: func(t *testing.T, c *Config) {
				if c.Env != EnvDev {
					t.Errorf("Env = %q, want %q", c.Env, EnvDev)
				}
				if c.BaseURL != "http://localhost:8080" {
					t.Errorf("BaseURL = %q, want %q", c.BaseURL, "http://localhost:8080")
				}
				if c.Server.Port != 8080 {
					t.Errorf("Server.Port = %d, want 8080", c.Server.Port)
				}
				if c.Server.Host != "0.0.0.0" {
					t.Errorf("Server.Host = %q, want 0.0.0.0", c.Server.Host)
				}
				if c.Storage.Path != "/data/budgetbites.db" {
					t.Errorf("Storage.Path = %q, want /data/budgetbites.db", c.Storage.Path)
				}
				if c.Storage.QuotaBytes != 0 {
					t.Errorf("Storage.QuotaBytes = %d, want 0", c.Storage.QuotaBytes)
				}
				if c.ImageCache.MaxSizeBytes != 0 {
					t.Errorf("ImageCache.MaxSizeBytes = %d, want 0", c.ImageCache.MaxSizeBytes)
				}
				if c.Connectivity.IntervalSeconds != 0 {
					t.Errorf("Connectivity.IntervalSeconds = %d, want 0", c.Connectivity.IntervalSeconds)
				}
			},
		},
		{
			name: "custom environment values",
			setup: func(t *testing.T) {
				t.Setenv("ENV", "PROD")
				t.Setenv("PORT", "9090")
				t.Setenv("HOST", "127.0.0.1")
				t.Setenv("BASE_URL", "https://budgetbites.example.com")
				t.Setenv("STORAGE_PATH", "/tmp/test.db")
				t.Setenv("STORAGE_QUOTA_BYTES", "1048576")
				t.Setenv("IMAGE_CACHE_MAX_SIZE_BYTES", "5242880")
				t.Setenv("CONNECTIVITY_PROBE_URL", "https://probe.example.com/json")
				t.Setenv("CONNECTIVITY_INTERVAL_SECONDS", "60")
			},
			validate: func(t *testing.T, c *Config) {
				if c.Env != EnvProd {
					t.Errorf("Env = %q, want %q", c.Env, EnvProd)
				}
				if c.Server.Port != 9090 {
					t.Errorf("Server.Port = %d, want 9090", c.Server.Port)
				}
				if c.Server.Host != "127.0.0.1" {
					t.Errorf("Server.Host = %q, want 127.0.0.1", c.Server.Host)
				}
				if c.BaseURL != "https://budgetbites.example.com" {
					t.Errorf("BaseURL = %q, want the custom origin", c.BaseURL)
				}
				if c.Storage.Path != "/tmp/test.db" {
					t.Errorf("Storage.Path = %q, want /tmp/test.db", c.Storage.Path)
				}
				if c.Storage.QuotaBytes != 1048576 {
					t.Errorf("Storage.QuotaBytes = %d, want 1048576", c.Storage.QuotaBytes)
				}
				if c.ImageCache.MaxSizeBytes != 5242880 {
					t.Errorf("ImageCache.MaxSizeBytes = %d, want 5242880", c.ImageCache.MaxSizeBytes)
				}
				if c.Connectivity.ProbeURL != "https://probe.example.com/json" {
					t.Errorf("Connectivity.ProbeURL = %q, want the custom url", c.Connectivity.ProbeURL)
				}
				if c.Connectivity.IntervalSeconds != 60 {
					t.Errorf("Connectivity.IntervalSeconds = %d, want 60", c.Connectivity.IntervalSeconds)
				}
			},
		},
		{
			name: "invalid port",
			setup: func(t *testing.T) {
				t.Setenv("PORT", "not-a-port")
			},
			wantError: true,
		},
		{
			name: "invalid env value",
			setup: func(t *testing.T) {
				t.Setenv("ENV", "STAGING")
			},
			wantError: true,
		},
		{
			name: "invalid probe url",
			setup: func(t *testing.T) {
				t.Setenv("CONNECTIVITY_PROBE_URL", "::not a url::")
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Point at a nonexistent file so the env path is exercised.
			t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "absent.yaml"))
			tt.setup(t)

			conf, err := LoadConfig()
			if tt.wantError {
				if err == nil {
					t.Fatal("LoadConfig() = nil error, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadConfig() error = %v", err)
			}
			tt.validate(t, conf)
		})
	}
}

func TestLoadConfig_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `env: PROD
base_url: https://budgetbites.example.com
server:
  port: 9000
  host: 127.0.0.1
storage:
  path: /var/lib/budgetbites/data.db
  quota_bytes: 2097152
image_cache:
  max_size_bytes: 1048576
connectivity:
  probe_url: https://probe.example.com/json
  interval_seconds: 45
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	t.Setenv("CONFIG_PATH", path)

	conf, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if conf.Env != EnvProd {
		t.Errorf("Env = %q, want %q", conf.Env, EnvProd)
	}
	if conf.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", conf.Server.Port)
	}
	if conf.Storage.Path != "/var/lib/budgetbites/data.db" {
		t.Errorf("Storage.Path = %q, want the configured path", conf.Storage.Path)
	}
	if conf.Storage.QuotaBytes != 2097152 {
		t.Errorf("Storage.QuotaBytes = %d, want 2097152", conf.Storage.QuotaBytes)
	}
	if conf.ImageCache.MaxSizeBytes != 1048576 {
		t.Errorf("ImageCache.MaxSizeBytes = %d, want 1048576", conf.ImageCache.MaxSizeBytes)
	}
	if conf.Connectivity.IntervalSeconds != 45 {
		t.Errorf("Connectivity.IntervalSeconds = %d, want 45", conf.Connectivity.IntervalSeconds)
	}
}

func TestLoadConfig_FileDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("storage:\n  path: /tmp/x.db\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	t.Setenv("CONFIG_PATH", path)

	conf, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if conf.Env != EnvDev {
		t.Errorf("Env = %q, want default %q", conf.Env, EnvDev)
	}
	if conf.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want default 8080", conf.Server.Port)
	}
	if conf.Storage.Path != "/tmp/x.db" {
		t.Errorf("Storage.Path = %q, want /tmp/x.db", conf.Storage.Path)
	}
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("{{{not yaml"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	t.Setenv("CONFIG_PATH", path)

	if _, err := LoadConfig(); err == nil {
		t.Fatal("LoadConfig() = nil error, want parse error")
	}
}

package config

import (
	"slices"
	"testing"
	"time"
)

func TestRequireEnv(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		value     string
		wantPanic bool
	}{
		{name: "variable set", key: "CLUB_TEST_VAR", value: "test_value"},
		{name: "variable not set", key: "CLUB_TEST_VAR_MISSING", wantPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Setenv(tt.key, tt.value)
			}

			if tt.wantPanic {
				defer func() {
					if r := recover(); r == nil {
						t.Errorf("requireEnv() should have panicked")
					}
				}()
			}

			result := requireEnv(tt.key)
			if !tt.wantPanic && result != tt.value {
				t.Errorf("requireEnv() = %v, want %v", result, tt.value)
			}
		})
	}
}

func TestGetenvInt(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		value    string
		def      int
		expected int
	}{
		{name: "valid integer", key: "CLUB_TEST_INT", value: "42", def: 1, expected: 42},
		{name: "invalid integer uses default", key: "CLUB_TEST_INT_INVALID", value: "nope", def: 7, expected: 7},
		{name: "missing variable uses default", key: "CLUB_TEST_INT_MISSING", def: 3, expected: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Setenv(tt.key, tt.value)
			}
			if got := getenvInt(tt.key, tt.def); got != tt.expected {
				t.Errorf("getenvInt() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestMustDuration(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		value    string
		def      time.Duration
		expected time.Duration
	}{
		{name: "valid duration", key: "CLUB_TEST_DURATION", value: "5s", def: time.Second, expected: 5 * time.Second},
		{name: "invalid duration uses default", key: "CLUB_TEST_DURATION_INVALID", value: "invalid", def: 10 * time.Second, expected: 10 * time.Second},
		{name: "missing variable uses default", key: "CLUB_TEST_DURATION_MISSING", def: 15 * time.Second, expected: 15 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Setenv(tt.key, tt.value)
			}
			if got := mustDuration(tt.key, tt.def); got != tt.expected {
				t.Errorf("mustDuration() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestMustBool(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		value    string
		def      bool
		expected bool
	}{
		{name: "true value", key: "CLUB_TEST_BOOL", value: "true", expected: true},
		{name: "false value", key: "CLUB_TEST_BOOL_FALSE", value: "false", def: true, expected: false},
		{name: "invalid value uses default", key: "CLUB_TEST_BOOL_INVALID", value: "invalid", def: true, expected: true},
		{name: "missing variable uses default", key: "CLUB_TEST_BOOL_MISSING", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Setenv(tt.key, tt.value)
			}
			if got := mustBool(tt.key, tt.def); got != tt.expected {
				t.Errorf("mustBool() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestParseAllowedIPs(t *testing.T) {
	got := parseAllowedIPs(` 10.0.0.0/8, "192.168.1.4" ,,'127.0.0.1' `)
	want := []string{"10.0.0.0/8", "192.168.1.4", "127.0.0.1"}
	if len(got) != len(want) {
		t.Fatalf("parseAllowedIPs() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("parseAllowedIPs()[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	if parseAllowedIPs("") != nil {
		t.Errorf("parseAllowedIPs(\"\") should be nil")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CLUB_STORE_BACKEND", "")
	t.Setenv("CLUB_LOG_LEVEL", "")
	t.Setenv("CLUB_TRUST_PROXY", "")
	t.Setenv("CLUB_ADMIN_PASSWORD", "")
	t.Setenv("CLUB_ADMIN_TOKEN", "")

	cfg := Load()
	if cfg.StoreBackend != BackendMemory {
		t.Errorf("StoreBackend = %q, want %q", cfg.StoreBackend, BackendMemory)
	}
	if cfg.APILatency != 0 {
		t.Errorf("APILatency = %v, want 0", cfg.APILatency)
	}
	if cfg.AdminEmail != "admin@klub.com" || cfg.AdminPassword != "password" {
		t.Errorf("unexpected default credentials %q / %q", cfg.AdminEmail, cfg.AdminPassword)
	}
	if cfg.TrustProxy {
		t.Errorf("TrustProxy should default to false, X-Forwarded-For is client controlled without a proxy")
	}
}

func TestInsecureDefaults(t *testing.T) {
	tests := []struct {
		name     string
		password string
		token    string
		expected []string
	}{
		{name: "both default", password: DefaultAdminPassword, token: DefaultAdminToken,
			expected: []string{"CLUB_ADMIN_PASSWORD", "CLUB_ADMIN_TOKEN"}},
		{name: "token default", password: "s3cret", token: DefaultAdminToken,
			expected: []string{"CLUB_ADMIN_TOKEN"}},
		{name: "both set", password: "s3cret", token: "0f1e2d3c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{AdminPassword: tt.password, AdminToken: tt.token}
			if got := cfg.InsecureDefaults(); !slices.Equal(got, tt.expected) {
				t.Errorf("InsecureDefaults() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestLoadRedisBackend(t *testing.T) {
	t.Run("requires address", func(t *testing.T) {
		t.Setenv("CLUB_STORE_BACKEND", "redis")
		t.Setenv("CLUB_REDIS_ADDR", "")
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("Load() should have panicked without CLUB_REDIS_ADDR")
			}
		}()
		Load()
	})

	t.Run("requires password when flagged", func(t *testing.T) {
		t.Setenv("CLUB_STORE_BACKEND", "redis")
		t.Setenv("CLUB_REDIS_ADDR", "localhost:6379")
		t.Setenv("CLUB_REDIS_PASSWORD_REQUIRED", "true")
		t.Setenv("CLUB_REDIS_PASSWORD", "")
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("Load() should have panicked without CLUB_REDIS_PASSWORD")
			}
		}()
		Load()
	})

	t.Run("valid", func(t *testing.T) {
		t.Setenv("CLUB_STORE_BACKEND", "REDIS")
		t.Setenv("CLUB_REDIS_ADDR", "localhost:6379")
		t.Setenv("CLUB_REDIS_PASSWORD_REQUIRED", "false")
		cfg := Load()
		if cfg.StoreBackend != BackendRedis || cfg.RedisAddr != "localhost:6379" {
			t.Errorf("unexpected redis config: %q %q", cfg.StoreBackend, cfg.RedisAddr)
		}
	})
}

func TestLoadUnknownBackend(t *testing.T) {
	t.Setenv("CLUB_STORE_BACKEND", "etcd")
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("Load() should have panicked on unknown backend")
		}
	}()
	Load()
}

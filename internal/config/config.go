package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Public placeholder admin credentials. Fine for local use, never for a
// reachable deployment.
const (
	DefaultAdminPassword = "password"
	DefaultAdminToken    = "fake-jwt-token"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s
	RequestTimeout  time.Duration // per-request timeout applied by the router

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	// Record store
	StoreBackend    string        // "memory" | "redis"
	MemoryQuota     int           // max bytes held by the memory backend (0 = unlimited)
	SeedFile        string        // optional YAML file overriding the built-in seed data
	SeedInterval    time.Duration // how often missing collections are re-seeded
	APILatency      time.Duration // artificial delay applied before every domain operation
	KeyPrefix       string        // prefix prepended to every collection key in redis
	AdminEmail      string
	AdminPassword   string
	AdminToken      string // bearer token returned by login and required on admin routes
	SiteURL         string // public base URL used in the RSS feed
	SiteTitle       string
	PostsDBPath     string // sqlite file backing the posts store
	UploadDir       string // local bucket directory
	UploadPublicURL string // base URL returned for uploaded objects
	MaxUploadBytes  int64

	// Redis
	RedisAddr             string        // ex: "localhost:6379"
	RedisUser             string        // optional
	RedisPassword         string        // optional
	RedisPasswordRequired bool          // true => require password, false => allow empty password
	RedisDB               int           // Redis DB number
	RedisDT               time.Duration // Redis dial timeout (ex: 5s)
	RedisRT               time.Duration // Redis read timeout (ex: 3s)
	RedisWT               time.Duration // Redis write timeout (ex: 3s)
	RedisMaxWait          time.Duration // max wait between retries (ex: 10s)
	RedisPingTimeout      time.Duration // timeout for each ping attempt (ex: 5s)
	RedisPoolSize         int           // Redis connection pool size
	RedisConnectTimeout   time.Duration // Total time to retry connecting (ex: 30s)
	RedisRetryInterval    time.Duration // Initial wait between retries (ex: 2s, grows exponentially)
	RedisWarnThreshold    int           // warn after this many attempts

	// Access restrictions
	AllowedCIDRS []string // optional, restrict infra endpoints to specific IPs/CIDRs
	TrustProxy   bool     // true => trust X-Forwarded-For; only enable behind a proxy that overwrites it (e.g. cloudflared)
	LoginBurst   int      // login/upload rate limit burst per IP
	LoginPerMin  int      // login/upload refill per IP per minute
}

func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenPort:      getenv("CLUB_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("CLUB_SHUTDOWN_TIMEOUT", 5*time.Second),
		RequestTimeout:  mustDuration("CLUB_REQUEST_TIMEOUT", 10*time.Second),

		// Logging
		LogLevel:  getenv("CLUB_LOG_LEVEL", "info"),
		PrettyLog: mustBool("CLUB_PRETTY_LOG", true),

		// Record store
		StoreBackend:    strings.ToLower(getenv("CLUB_STORE_BACKEND", BackendMemory)),
		MemoryQuota:     getenvInt("CLUB_MEMORY_QUOTA", 5*1024*1024),
		SeedFile:        getenv("CLUB_SEED_FILE", ""),
		SeedInterval:    mustDuration("CLUB_SEED_INTERVAL", time.Hour),
		APILatency:      mustDuration("CLUB_API_LATENCY", 0),
		KeyPrefix:       getenv("CLUB_KEY_PREFIX", ""),
		AdminEmail:      getenv("CLUB_ADMIN_EMAIL", "admin@klub.com"),
		AdminPassword:   getenv("CLUB_ADMIN_PASSWORD", DefaultAdminPassword),
		AdminToken:      getenv("CLUB_ADMIN_TOKEN", DefaultAdminToken),
		SiteURL:         getenv("CLUB_SITE_URL", "http://localhost:8080"),
		SiteTitle:       getenv("CLUB_SITE_TITLE", "ANLOC.ID"),
		PostsDBPath:     getenv("CLUB_POSTS_DB", "./data/posts.db"),
		UploadDir:       getenv("CLUB_UPLOAD_DIR", "./data/uploads"),
		UploadPublicURL: getenv("CLUB_UPLOAD_PUBLIC_URL", "/uploads"),
		MaxUploadBytes:  int64(getenvInt("CLUB_MAX_UPLOAD_BYTES", 10*1024*1024)),

		// Redis settings
		RedisAddr:             getenv("CLUB_REDIS_ADDR", ""),
		RedisUser:             getenv("CLUB_REDIS_USERNAME", "default"),
		RedisPasswordRequired: mustBool("CLUB_REDIS_PASSWORD_REQUIRED", false),
		RedisPassword:         getenv("CLUB_REDIS_PASSWORD", ""),
		RedisDB:               getenvInt("CLUB_REDIS_DB", 0),
		RedisDT:               mustDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:               mustDuration("REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:               mustDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisMaxWait:          mustDuration("REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:      mustDuration("REDIS_PING_TIMEOUT", 5*time.Second),
		RedisPoolSize:         getenvInt("REDIS_POOL_SIZE", 10),
		RedisConnectTimeout:   mustDuration("REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:    mustDuration("REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisWarnThreshold:    getenvInt("REDIS_WARN_THRESHOLD", 3),

		// Access restrictions
		AllowedCIDRS: parseAllowedIPs(getenv("CLUB_ALLOWED_CIDRS", "")),
		TrustProxy:   mustBool("CLUB_TRUST_PROXY", false),
		LoginBurst:   getenvInt("CLUB_LOGIN_BURST", 10),
		LoginPerMin:  getenvInt("CLUB_LOGIN_PER_MIN", 5),
	}

	switch cfg.StoreBackend {
	case BackendMemory:
	case BackendRedis:
		cfg.RedisAddr = requireEnv("CLUB_REDIS_ADDR")
		// Validate Redis password configuration
		if cfg.RedisPasswordRequired && cfg.RedisPassword == "" {
			panic("❌ FATAL: CLUB_REDIS_PASSWORD is required when CLUB_REDIS_PASSWORD_REQUIRED=true")
		}
	default:
		panic(fmt.Sprintf("❌ FATAL: Unknown CLUB_STORE_BACKEND %q (expected %q or %q)",
			cfg.StoreBackend, BackendMemory, BackendRedis))
	}

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		cfgCopy := *cfg
		cfgCopy.RedisPassword = "***REDACTED***"
		cfgCopy.AdminPassword = "***REDACTED***"
		cfgCopy.AdminToken = "***REDACTED***"
		if cfg.RedisUser != "" {
			cfgCopy.RedisUser = "***REDACTED***"
		}
		log.Printf("[DEBUG] cfg: %+v\n", cfgCopy)
	}

	return cfg
}

// InsecureDefaults names the admin settings still at their public defaults.
func (c *Config) InsecureDefaults() []string {
	var names []string
	if c.AdminPassword == DefaultAdminPassword {
		names = append(names, "CLUB_ADMIN_PASSWORD")
	}
	if c.AdminToken == DefaultAdminToken {
		names = append(names, "CLUB_ADMIN_TOKEN")
	}
	return names
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func requireEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		panic(fmt.Sprintf("❌ FATAL: Required environment variable %s is not set", key))
	}
	return v
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func parseAllowedIPs(allowed string) []string {
	if allowed == "" {
		return nil
	}
	ips := make([]string, 0, 4)
	for _, ip := range splitAndTrim(allowed) {
		if ip != "" {
			ips = append(ips, ip)
		}
	}
	return ips
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		// Remove surrounding quotes if present
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}

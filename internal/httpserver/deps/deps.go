package deps

import (
	"time"

	"github.com/MrSnakeDoc/klub/internal/logger"
	"github.com/MrSnakeDoc/klub/internal/portal"
	"github.com/MrSnakeDoc/klub/internal/posts"
	"github.com/MrSnakeDoc/klub/internal/store"
	"github.com/MrSnakeDoc/klub/internal/upload"
)

type Deps struct {
	Logger       logger.Logger
	StartTime    time.Time
	Version      string
	Commit       string
	BuildDate    string
	GoVersion    string
	TimeNow      func() time.Time // for testing, defaults to time.Now
	AllowedCIDRS []string         // IPs allowed to access healthz/readyz/infra endpoints
	TrustProxy   bool             // true if running behind a trusted reverse proxy (e.g., cloudflared)
	LoginBurst   int              // rate limit burst for login and upload
	LoginPerMin  int              // rate limit refill per IP per minute for login and upload

	Portal       *portal.Service  // entity operations over the record store
	Backend      store.Backend    // record store substrate, pinged by readyz/infra
	StoreBackend string           // "memory" | "redis", reported by infra
	Posts        *posts.Store     // sqlite posts store
	Uploader     *upload.Uploader // multipart upload handling
	Bucket       upload.Bucket    // served under /uploads when non-nil
	SiteURL      string           // public base URL for feed links
	SiteTitle    string

	ReloadTrigger chan struct{} // Channel to trigger a manual re-seed of missing collections
}

// Now returns the configured clock, falling back to time.Now.
func (d Deps) Now() time.Time {
	if d.TimeNow != nil {
		return d.TimeNow()
	}
	return time.Now()
}

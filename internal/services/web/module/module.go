// Package module defines the feature contract used by web composition.
package module

import (
	"log"
	"net/http"
	"time"

	"github.com/louisbranch/tablekit/internal/platform/assets/catalog"
	"github.com/louisbranch/tablekit/internal/platform/assets/imagecdn"
	"github.com/louisbranch/tablekit/internal/schedule"
	"github.com/louisbranch/tablekit/internal/services/web/chatroom"
	"github.com/louisbranch/tablekit/internal/services/web/storage"
)

// Dependencies carries shared collaborators into module mounts.
type Dependencies struct {
	Sessions storage.SessionStore
	Chat     *chatroom.Rooms
	// Clock is read once per request; Location is the default zone for day
	// labels when the request does not pick one.
	Clock    schedule.Clock
	Location *time.Location
	CDN      imagecdn.CDN
	Covers   catalog.Manifest
	Logger   *log.Logger
}

// Now reads the clock in the default location.
func (d Dependencies) Now() schedule.Instant {
	return schedule.NowIn(d.Clock, d.Location)
}

// Log returns the configured logger or the process default.
func (d Dependencies) Log() *log.Logger {
	if d.Logger == nil {
		return log.Default()
	}
	return d.Logger
}

// Mount describes a module route mount.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module declares the minimum contract required by web composition.
type Module interface {
	ID() string
	Mount(Dependencies) (Mount, error)
}

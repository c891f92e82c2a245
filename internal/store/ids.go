package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// shortSuffix returns an 8-character random fragment. Millisecond timestamps
// alone are not unique when two entities are created in the same tick.
func shortSuffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

func newChildID(now time.Time) string {
	return fmt.Sprintf("child_%d_%s", now.UnixMilli(), shortSuffix())
}

func newWaitingID(now time.Time) string {
	return fmt.Sprintf("wait_%d_%s", now.UnixMilli(), shortSuffix())
}

// newBookingID returns a short human-presentable code, e.g. "BK3F9A01CD".
func newBookingID() string {
	return "BK" + strings.ToUpper(shortSuffix())
}

package lighting

import (
	"fmt"
	"math"
	"time"

	"chosenoffset.com/groundshadow/internal/core/shadows"
)

// throttle remembers when and from where shadows were last computed
type throttle struct {
	lastUpdate time.Time
	lastCamera string
}

// due reports whether a recompute is needed. Either enough time has passed
// or the camera moved into a different bucket.
func (t *throttle) due(now time.Time, cameraKey string, interval time.Duration) bool {
	if t.lastUpdate.IsZero() {
		return true
	}
	return now.Sub(t.lastUpdate) >= interval || cameraKey != t.lastCamera
}

func (t *throttle) mark(now time.Time, cameraKey string) {
	t.lastUpdate = now
	t.lastCamera = cameraKey
}

func (t *throttle) reset() {
	t.lastUpdate = time.Time{}
	t.lastCamera = ""
}

// cameraKey quantizes the camera so sub-bucket jitter does not count as movement
func cameraKey(camera shadows.CameraInfo, bucket float64) string {
	q := func(v float64) int64 {
		return int64(math.Round(v / bucket))
	}
	return fmt.Sprintf("%d,%d,%d,%d", q(camera.X), q(camera.Y), q(camera.Width), q(camera.Height))
}

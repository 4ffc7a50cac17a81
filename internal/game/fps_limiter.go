package game

import (
	"time"

	"spritedemo/internal/config"
)

// idleFPS caps the loop while the window is minimized.
const idleFPS = 30

// FPSLimiter provides high-precision frame rate limiting
type FPSLimiter struct {
	next time.Time
	now  func() time.Time
	wait func(time.Duration)
}

// NewFPSLimiter creates a new FPS limiter
func NewFPSLimiter() *FPSLimiter {
	return &FPSLimiter{now: time.Now, wait: time.Sleep}
}

// Wait blocks until the next frame should start based on the configured cap.
// Uses a hybrid sleep/spin approach for better precision on high caps.
func (f *FPSLimiter) Wait(idle bool) {
	effectiveLimit := config.GetFPSLimit()
	if idle && (effectiveLimit <= 0 || effectiveLimit > idleFPS) {
		effectiveLimit = idleFPS
	}

	if effectiveLimit <= 0 {
		f.next = time.Time{}
		return
	}

	target := time.Second / time.Duration(effectiveLimit)

	if f.next.IsZero() {
		f.next = f.now().Add(target)
	} else {
		f.next = f.next.Add(target)
	}

	for {
		remaining := f.next.Sub(f.now())
		if remaining <= 0 {
			break
		}
		if remaining > 200*time.Microsecond {
			f.wait(remaining - 200*time.Microsecond)
		}
		// busy-wait for the final few microseconds
		if f.next.Sub(f.now()) <= 0 {
			break
		}
	}

	// If we're significantly late (e.g., hitch), resync to avoid drift
	if late := f.now().Sub(f.next); late > target {
		f.next = f.now().Add(target)
	}
}

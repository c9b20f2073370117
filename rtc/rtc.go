// Package rtc converts between host time and the Vita real-time clock.
// Vita ticks count microseconds since 0001-01-01 00:00:00 UTC.
package rtc

import "time"

// ClocksPerSec is the Vita RTC resolution in ticks per second.
const ClocksPerSec = 1_000_000

// rtcOffset is the number of RTC ticks between 0001-01-01 and the Unix
// epoch (62135596800 seconds).
const rtcOffset = 62135596800 * uint64(ClocksPerSec)

// BaseTicks returns the tick value corresponding to the moment of the call.
// The kernel records this once at boot; guest-visible time is derived from
// it plus elapsed host time, so a slow host clock adjustment mid-session
// does not jump the guest clock backward.
func BaseTicks() uint64 {
	return rtcOffset + uint64(time.Now().UnixMicro())
}

// TicksSince returns the guest tick value for a session that recorded base
// at boot and has since run for elapsed host time.
func TicksSince(base uint64, elapsed time.Duration) uint64 {
	return base + uint64(elapsed.Microseconds())
}

// Time converts a guest tick value to host time.
func Time(ticks uint64) time.Time {
	return time.UnixMicro(int64(ticks - rtcOffset))
}

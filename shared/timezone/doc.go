// Package timezone provides the application clock.
//
// Usage:
//
//	now := timezone.Now()                   // current time in the app timezone
//	appTime := timezone.ToAppTime(someTime) // convert any time to the app timezone
//	formatted := timezone.Format(t, time.RFC3339Nano)
//
// The location is read from APP_TIMEZONE on first use and must be a standard
// IANA name such as "UTC", "Asia/Jakarta" or "Europe/London". Unknown names
// fall back to UTC.
package timezone

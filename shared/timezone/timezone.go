package timezone

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"todoapi/config"
)

var (
	appLocation *time.Location
	loadOnce    sync.Once
)

// Load resolves name into a location, falling back to UTC.
func Load(name string) *time.Location {
	if name == "" {
		return time.UTC
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", name).
			Msg("Failed to load timezone, falling back to UTC")

		return time.UTC
	}

	return loc
}

// GetLocation returns the application timezone location.
func GetLocation() *time.Location {
	loadOnce.Do(func() {
		appLocation = Load(config.Get().App.Timezone)

		log.Debug().Str("location", appLocation.String()).Msg("Application timezone initialized")
	})

	return appLocation
}

// Now returns the current time in the application timezone.
func Now() time.Time {
	return time.Now().In(GetLocation())
}

// ToAppTime converts a time to the application timezone.
func ToAppTime(t time.Time) time.Time {
	return t.In(GetLocation())
}

// Format formats a time in the application timezone.
func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}

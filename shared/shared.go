package shared

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"todoapi/shared/constant"
)

// ConvertStringToInt returns nil for an empty string.
func ConvertStringToInt(value string) (*int, error) {
	if value == "" {
		return nil, nil //nolint:nilnil
	}

	intValue, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		log.Debug().Err(err).Str("value", value).Msg("failed to convert string to int")

		return nil, err //nolint:wrapcheck
	}

	return &intValue, nil
}

func BuildCacheKey(prefix string, parts ...string) string {
	return strings.Join(append([]string{prefix}, parts...), constant.CacheKeySeparator)
}

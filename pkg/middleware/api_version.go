package middleware

import (
	"github.com/labstack/echo/v4"
)

// APIVersion describes the served API version and, when a version is on the
// way out, its deprecation timeline.
type APIVersion struct {
	Version           string
	DeprecationDate   string // empty if not deprecated
	SunsetDate        string // empty if not deprecated
	LatestVersion     string
	DeprecationNotice string
}

// CurrentAPIVersion holds the current API version info.
var CurrentAPIVersion = APIVersion{
	Version:       "1.0.0",
	LatestVersion: "1.0.0",
}

// VersionPayload is the body of the version endpoint.
type VersionPayload struct {
	Version           string `json:"version"`
	LatestVersion     string `json:"latest_version"`
	Deprecated        bool   `json:"deprecated,omitempty"`
	DeprecationDate   string `json:"deprecation_date,omitempty"`
	SunsetDate        string `json:"sunset_date,omitempty"`
	DeprecationNotice string `json:"deprecation_notice,omitempty"`
}

// APIVersionMiddleware adds API version headers to all responses.
func APIVersionMiddleware(version APIVersion) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set("X-API-Version", version.Version)
			c.Response().Header().Set("X-API-Latest-Version", version.LatestVersion)

			if version.DeprecationDate != "" {
				c.Response().Header().Set("X-API-Deprecation-Date", version.DeprecationDate)
				c.Response().Header().Set("Deprecation", "true")

				if version.SunsetDate != "" {
					c.Response().Header().Set("X-API-Sunset-Date", version.SunsetDate)
					c.Response().Header().Set("Sunset", version.SunsetDate)
				}

				if version.DeprecationNotice != "" {
					c.Response().Header().Set("X-API-Deprecation-Notice", version.DeprecationNotice)
				}
			}

			return next(c)
		}
	}
}

// VersionInfo returns the version endpoint payload.
func VersionInfo(version APIVersion) VersionPayload {
	return VersionPayload{
		Version:           version.Version,
		LatestVersion:     version.LatestVersion,
		Deprecated:        version.DeprecationDate != "",
		DeprecationDate:   version.DeprecationDate,
		SunsetDate:        version.SunsetDate,
		DeprecationNotice: version.DeprecationNotice,
	}
}

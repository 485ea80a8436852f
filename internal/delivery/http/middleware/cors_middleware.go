package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

const defaultCorsMaxAge = 600

var (
	// The quest API only reads and posts JSON; nothing is updated in place.
	corsMethods = []string{fiber.MethodGet, fiber.MethodPost, fiber.MethodOptions}

	corsAllowHeaders = []string{
		fiber.HeaderOrigin,
		fiber.HeaderContentType,
		fiber.HeaderAccept,
		fiber.HeaderContentLength,
		fiber.HeaderAcceptEncoding,
		fiber.HeaderXRequestID,
	}

	corsExposeHeaders = []string{
		fiber.HeaderContentLength,
		fiber.HeaderContentType,
		fiber.HeaderXRequestID,
	}
)

// CorsMiddleware lets the quest UI call the API from the origins listed in
// api.cors.origins. Credentials are only allowed for an explicit origin list.
func (m *Middleware) CorsMiddleware() fiber.Handler {
	origins := m.corsOrigins()
	wildcard := len(origins) == 1 && origins[0] == "*"

	maxAge := defaultCorsMaxAge
	credentials := false
	if m != nil && m.Config != nil {
		if m.Config.IsSet("api.cors.max_age") {
			maxAge = m.Config.GetInt("api.cors.max_age")
		}
		credentials = m.Config.GetBool("api.cors.allow_credentials")
	}

	if credentials && wildcard {
		if m.Log != nil {
			m.Log.Warn("api.cors.allow_credentials ignored for wildcard origin")
		}
		credentials = false
	}

	return cors.New(cors.Config{
		AllowOrigins:     strings.Join(origins, ","),
		AllowMethods:     strings.Join(corsMethods, ","),
		AllowHeaders:     strings.Join(corsAllowHeaders, ","),
		ExposeHeaders:    strings.Join(corsExposeHeaders, ","),
		AllowCredentials: credentials,
		MaxAge:           maxAge,
	})
}

// corsOrigins accepts either a YAML list or a comma separated string.
func (m *Middleware) corsOrigins() []string {
	if m == nil || m.Config == nil {
		return []string{"*"}
	}

	var origins []string
	for _, entry := range m.Config.GetStringSlice("api.cors.origins") {
		for _, origin := range strings.Split(entry, ",") {
			origin = strings.TrimRight(strings.TrimSpace(origin), "/")
			if origin == "*" {
				return []string{"*"}
			}
			if origin != "" {
				origins = append(origins, origin)
			}
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

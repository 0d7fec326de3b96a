package middleware

import (
	"net/http"

	"hive/config"

	"github.com/labstack/echo/v4"
	"github.com/rs/cors"
)

// CORS builds the cross origin policy of the API from config.
func CORS(cfg *config.CORSConfig) echo.MiddlewareFunc {
	options := cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, echo.HeaderXRequestID},
		ExposedHeaders: []string{echo.HeaderXRequestID},
	}
	if cfg != nil {
		if len(cfg.AllowedOrigins) > 0 {
			options.AllowedOrigins = cfg.AllowedOrigins
		}
		options.AllowCredentials = cfg.AllowCredentials
		options.MaxAge = cfg.MaxAge
	}

	return echo.WrapMiddleware(cors.New(options).Handler)
}

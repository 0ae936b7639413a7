package transport

import (
	"encoding/json"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap/zapcore"
)

const censored = "$censored"

var censoredFields = []string{"password"}

// RequestLogger writes one zap line per request.
func (s *HTTPServer) RequestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		HandleError:  true,
		LogURI:       true,
		LogStatus:    true,
		LogError:     true,
		LogLatency:   true,
		LogMethod:    true,
		LogRequestID: true,

		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []interface{}{
				"request_id", v.RequestID,
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
			}
			if user, err := GetUserFromContext(c); err == nil {
				fields = append(fields, "user_id", user.ID)
			}

			switch {
			case v.Status >= 500:
				s.logger.Errorw("API", append(fields, "error", v.Error)...)
			case v.Status >= 400:
				s.logger.Warnw("API", fields...)
			default:
				s.logger.Infow("API", fields...)
			}
			return nil
		},
	})
}

// BodyLogger dumps request bodies at debug level with secrets censored.
func (s *HTTPServer) BodyLogger() echo.MiddlewareFunc {
	return middleware.BodyDumpWithConfig(middleware.BodyDumpConfig{
		Skipper: func(c echo.Context) bool {
			return !s.logger.Desugar().Core().Enabled(zapcore.DebugLevel)
		},
		Handler: func(c echo.Context, reqBody, resBody []byte) {
			if len(reqBody) == 0 {
				return
			}
			s.logger.Debugw("request body",
				"method", c.Request().Method,
				"path", c.Path(),
				"body", string(censorBody(reqBody)),
			)
		},
	})
}

func censorBody(body []byte) []byte {
	m := make(map[string]interface{})
	if err := json.Unmarshal(body, &m); err != nil {
		return []byte(censored)
	}

	for _, field := range censoredFields {
		if _, ok := m[field]; ok {
			m[field] = censored
		}
	}

	out, err := json.Marshal(m)
	if err != nil {
		return []byte(censored)
	}
	return out
}

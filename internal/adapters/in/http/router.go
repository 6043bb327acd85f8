package http

import (
	"fmt"
	"net/http"
	"time"

	_ "shiplabel/internal/generated/docs"
	"shiplabel/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// RouterConfig holds the settings NewRouter needs beyond the handlers.
type RouterConfig struct {
	RequestTimeout time.Duration
	LogLevel       zapcore.Level
}

// NewRouter builds the echo instance serving the label API, the health check
// and the API documentation.
func NewRouter(server *Server, cfg RouterConfig, logger *zap.Logger) (*echo.Echo, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	doc, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}
	validator, err := RequestValidator(doc)
	if err != nil {
		return nil, fmt.Errorf("request validator: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(gommonLevel(cfg.LogLevel))

	e.Use(middleware.Recover())
	e.Use(RequestLogger(logger))
	if cfg.RequestTimeout > 0 {
		e.Use(RequestTimeout(cfg.RequestTimeout))
	}
	e.Use(validator)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlers(e, server)

	return e, nil
}

func gommonLevel(level zapcore.Level) log.Lvl {
	switch {
	case level <= zapcore.DebugLevel:
		return log.DEBUG
	case level == zapcore.InfoLevel:
		return log.INFO
	case level == zapcore.WarnLevel:
		return log.WARN
	default:
		return log.ERROR
	}
}

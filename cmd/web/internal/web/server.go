package web

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"thirdcoast.systems/tubescan/cmd/web/handlers/advice"
	"thirdcoast.systems/tubescan/cmd/web/handlers/analyze"
	"thirdcoast.systems/tubescan/internal/config"
	"thirdcoast.systems/tubescan/internal/db"
	"thirdcoast.systems/tubescan/internal/openrouter"
	"thirdcoast.systems/tubescan/internal/youtube"
)

type Webserver struct {
	*echo.Echo
	dbc  *db.DatabaseConnection
	conf *config.Config
	yt   *youtube.Client
	llm  *openrouter.Client
}

func NewWebserver(ctx context.Context, dbc *db.DatabaseConnection, conf *config.Config) (*Webserver, error) {
	e := echo.New()

	yt, err := youtube.NewClient(ctx, conf.YouTubeAPIKey)
	if err != nil {
		return nil, err
	}

	webserver := &Webserver{
		Echo: e,
		dbc:  dbc,
		conf: conf,
		yt:   yt,
		llm:  openrouter.NewClient(""),
	}

	webserver.registerRoutes()

	if err := webserver.setupMiddleware(); err != nil {
		return nil, err
	}

	return webserver, nil
}

func (s *Webserver) setupMiddleware() error {
	s.HideBanner = true
	s.HidePort = true
	s.Use(middleware.BodyLimit("2M"))
	s.Use(middleware.Recover())
	s.Use(middleware.RequestID())
	s.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
	}))
	s.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogMethod:    true,
		LogStatus:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  false,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"remote_ip", v.RemoteIP,
				"request_id", v.RequestID,
			}
			if v.Error != nil {
				fields = append(fields, "error", v.Error)
			}
			slog.Info("request", fields...)
			return nil
		},
	}))

	return nil
}

func (s *Webserver) registerRoutes() {
	apiGroup := s.Group("/api")
	apiGroup.POST("/analyze", analyze.HandleAnalyze(s.dbc, s.yt))
	apiGroup.GET("/history", analyze.HandleHistory(s.dbc))
	apiGroup.GET("/history/:id", analyze.HandleHistoryDetail(s.dbc))

	apiGroup.POST("/seo-advice", advice.HandleSEOAdvice(s.llm, s.conf))
	apiGroup.POST("/caption-advice", advice.HandleCaptionAdvice(s.llm, s.conf))
	apiGroup.POST("/parody", advice.HandleParody(s.llm, s.conf))

	// Health check
	s.GET("/healthz", func(c echo.Context) error {
		return c.String(200, "ok")
	})
}

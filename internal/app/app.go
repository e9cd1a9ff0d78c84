// internal/app/app.go
package app

import (
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"knewkarma/internal/client"
	"knewkarma/internal/config"
	"knewkarma/internal/karma"
	"knewkarma/internal/parser"
	"knewkarma/internal/router"
)

type App struct {
	Config  *config.Config
	Echo    *echo.Echo
	Service karma.Service
	Client  *client.RedditClient
	Parser  parser.ParserInterface
}

func Initialize() (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return InitializeWithConfig(cfg)
}

func InitializeWithConfig(cfg *config.Config) (*App, error) {
	redditClient, err := client.NewRedditClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create Reddit client: %w", err)
	}

	redditParser := parser.NewRedditParser()
	service := karma.NewService(redditClient, redditParser,
		karma.WithPageDelay(cfg.PageDelayMin, cfg.PageDelayMax))

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	router.NewRouter(e, service)

	return &App{
		Config:  cfg,
		Echo:    e,
		Service: service,
		Client:  redditClient,
		Parser:  redditParser,
	}, nil
}

func (a *App) Start() error {
	port := a.Config.ServerPort
	if port == "" {
		port = "8080"
	}
	return a.Echo.Start(":" + port)
}

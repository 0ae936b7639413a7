package main

import (
	"go.uber.org/fx"

	"github.com/Rogue-Bear-Innovations/bookmarker-api/internal/auth"
	"github.com/Rogue-Bear-Innovations/bookmarker-api/internal/config"
	"github.com/Rogue-Bear-Innovations/bookmarker-api/internal/db"
	"github.com/Rogue-Bear-Innovations/bookmarker-api/internal/health"
	"github.com/Rogue-Bear-Innovations/bookmarker-api/internal/logger"
	"github.com/Rogue-Bear-Innovations/bookmarker-api/internal/service"
	"github.com/Rogue-Bear-Innovations/bookmarker-api/internal/transport"
)

func main() {
	fx.New(
		config.Module,
		logger.Module,
		db.Module,
		auth.Module,
		service.Module,
		transport.Module,
		health.Module,
	).Run()
}

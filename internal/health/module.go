package health

import (
	"go.uber.org/fx"

	"github.com/Rogue-Bear-Innovations/bookmarker-api/internal/db"
)

var (
	Module = fx.Options(
		fx.Provide(
			NewGRPCServer,
			func(c *db.Client) Pinger { return c },
		),
		fx.Invoke(func(*Server) {}),
	)
)

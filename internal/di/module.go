package di

import (
	"go.uber.org/fx"

	"github.com/inkpress/printshop/internal/adapter/blob"
	"github.com/inkpress/printshop/internal/app"
	"github.com/inkpress/printshop/internal/config"
	"github.com/inkpress/printshop/internal/logger"
	"github.com/inkpress/printshop/internal/server/http/handlers"
	"github.com/inkpress/printshop/internal/server/http/router"
	"github.com/inkpress/printshop/internal/storage/postgres"
	"github.com/inkpress/printshop/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		postgres.Module,
		blob.Module,
		usecase.Module,
		fx.Provide(func(f *app.PrintShopFacade) handlers.PrintShopFacade { return f }),
		fx.Provide(func(s *postgres.Storage) handlers.Pinger { return s }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}

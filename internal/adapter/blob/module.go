package blob

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/inkpress/printshop/internal/config"
)

// Module exposes the blob uploader implementation to the fx graph.
var Module = fx.Provide(newUploader)

type uploaderParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newUploader(p uploaderParams) (Uploader, error) {
	if p.Config.BlobStoreAddress == "" || p.Config.BlobStoreToken == "" {
		p.Logger.Warn("blob store not configured, file uploads disabled")
		return Disabled{}, nil
	}
	return NewHTTPUploader(p.Config.BlobStoreAddress, p.Config.BlobStoreToken, p.Logger)
}

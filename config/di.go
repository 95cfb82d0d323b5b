package config

import (
	"log/slog"

	"go.uber.org/fx"

	filefetcher "github.com/0xalexb/skifta/config/fetcher/file"
	jsonparser "github.com/0xalexb/skifta/config/parser/json"
	"github.com/0xalexb/skifta/logging"
	"github.com/0xalexb/skifta/workspace"
)

// NewModule creates an Fx module that loads the release configuration of the
// workspace rooted at root. It provides the discovered *workspace.Workspace
// and the *Resolved configuration; validation warnings go to the container's
// *slog.Logger.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(root string) fx.Option {
	return fx.Module("release-config",
		fx.Provide(
			fx.Annotate(
				jsonparser.NewParser,
				fx.As(new(Parser)),
			),
		),
		fx.Provide(
			fx.Annotate(
				filefetcher.NewFetcher(root),
				fx.As(new(DataFetcher)),
			),
		),
		fx.Provide(func() (*workspace.Workspace, error) {
			return workspace.Find(root)
		}),
		fx.Provide(func(fetcher DataFetcher, parser Parser, ws *workspace.Workspace, logger *slog.Logger) (*Resolved, error) {
			return Load(fetcher, parser, ws, WithWarner(logging.NewWarner(logger)))
		}),
	)
}

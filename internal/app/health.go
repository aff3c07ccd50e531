package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/shandysiswandi/otpgate/internal/pkg/goerror"
	"github.com/shandysiswandi/otpgate/internal/pkg/router"
)

type healthResponse struct {
	Database string `json:"database"`
	Redis    string `json:"redis"`
}

func (healthResponse) Message() string {
	return "service is healthy"
}

// health reports whether the backing stores answer a ping.
func (a *App) health(r *router.Request) (any, error) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := a.dbConn.Ping(ctx); err != nil {
		slog.ErrorContext(ctx, "health check database failed", "error", err)
		return nil, goerror.NewBusiness("database unavailable", goerror.CodeUnavailable)
	}

	if err := a.cacheConn.Ping(ctx).Err(); err != nil {
		slog.ErrorContext(ctx, "health check redis failed", "error", err)
		return nil, goerror.NewBusiness("redis unavailable", goerror.CodeUnavailable)
	}

	return healthResponse{Database: "ok", Redis: "ok"}, nil
}

package commands

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/ankitdixit23/The-Pub-Scheduler-Uchicago/internal/config"
	"github.com/ankitdixit23/The-Pub-Scheduler-Uchicago/pkg/clients/sheetsclient"
	"github.com/ankitdixit23/The-Pub-Scheduler-Uchicago/pkg/db"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg *config.Config

	// SheetsClient is nil when the postgres backend is configured.
	SheetsClient *sheetsclient.Client

	Database db.Database
	Logger   *zap.Logger
	Ctx      context.Context
}

// OpContext derives a per-operation context capped at the configured store
// timeout.
func (a *AppContext) OpContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(a.Ctx, time.Duration(a.Cfg.StoreTimeoutSeconds)*time.Second)
}

package services

import (
	"github.com/ankitdixit23/The-Pub-Scheduler-Uchicago/internal/config"
)

// Authorize checks the coordinator's shared secret. Plain equality against
// one shared secret: no per-manager accounts, no sessions, no rate limiting.
func Authorize(cfg *config.Config, secret string) error {
	if secret != cfg.AdminSecret {
		return ErrUnauthorized
	}
	return nil
}

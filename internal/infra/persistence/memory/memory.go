package memory

import (
	"log/slog"
	"time"

	"lawyerup/config"
	"lawyerup/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In

	Config *config.Config
	Hasher service.PasswordHasher
	Logger *slog.Logger
}

// New creates the process store, loading the demo data when store.seed is set.
func New(params Params) (*Store, error) {
	store := NewStore()
	if !params.Config.Store.Seed {
		params.Logger.Info("In-memory store started empty")

		return store, nil
	}

	// One hash shared by every demo account keeps startup fast at high bcrypt costs.
	hash, err := params.Hasher.Hash(SeedPassword)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash seed password")
	}

	store.Seed(hash, time.Now())
	params.Logger.Info("In-memory store seeded with demo data")

	return store, nil
}

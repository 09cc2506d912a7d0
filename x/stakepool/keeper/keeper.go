package keeper

import (
	"github.com/paw-chain/stakepool/pkg/logger"
	"github.com/paw-chain/stakepool/x/stakepool/types"
)

// Keeper owns a single pool and performs all state transitions against it.
// Every operation validates its inputs, computes the full result against the
// current state, and only then commits, so a failed call leaves the pool
// untouched. The Keeper assumes exclusive access for the duration of each
// call; callers that share a Keeper across goroutines must serialize access
// themselves.
type Keeper struct {
	pool   *types.Pool
	logger *logger.Logger
}

// NewKeeper constructs a keeper around a freshly validated pool.
func NewKeeper(params types.Params, log *logger.Logger) (*Keeper, error) {
	pool, err := types.NewPool(params)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.NewLogger(types.ModuleName)
	}
	return &Keeper{
		pool:   pool,
		logger: log,
	}, nil
}

// Pool returns the pool owned by this keeper.
func (k *Keeper) Pool() *types.Pool {
	return k.pool
}

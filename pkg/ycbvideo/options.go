package ycbvideo

import (
	"math/rand/v2"

	"github.com/bft-labs/ycbvideo/pkg/dataset"
)

// Option configures optional behavior of a Loader.
type Option func(*options)

type options struct {
	logger      Logger
	policy      Policy
	rand        *rand.Rand
	inventory   Inventory
	frameLoader FrameLoader
}

func defaultOptions() options {
	return options{policy: dataset.DefaultPolicy()}
}

// WithLogger sets a custom logger for structured logging.
// If not provided, a no-op logger is used (no output).
func WithLogger(logger Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithPolicy sets the completeness policy of the default inventory and
// frame loader. It has no effect on implementations injected with
// WithInventory or WithFrameLoader.
func WithPolicy(policy Policy) Option {
	return func(o *options) {
		o.policy = policy
	}
}

// WithRand sets the random source used to shuffle frame sets.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		o.rand = r
	}
}

// WithSeed makes shuffling reproducible: loaders created with the same seed
// shuffle the same selection into the same order.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.rand = rand.New(rand.NewPCG(seed, seed))
	}
}

// WithInventory replaces the filesystem inventory.
func WithInventory(inventory Inventory) Option {
	return func(o *options) {
		o.inventory = inventory
	}
}

// WithFrameLoader replaces the filesystem frame loader.
func WithFrameLoader(loader FrameLoader) Option {
	return func(o *options) {
		o.frameLoader = loader
	}
}

package loom

// Config holds process-global configuration for the storage layer.
var Config config = config{growthStrategy: DefaultGrowthStrategy}

type config struct {
	strict         bool
	growthStrategy GrowthStrategy
}

// SetStrict toggles the extra invariant checks table.go runs after
// every structural mutation (row/column length agreement,
// migration-precondition coverage). Off by default; enable it in tests
// and during development, leave it off in a release build where the
// checks would just add per-mutation overhead without catching anything
// new.
func (c *config) SetStrict(strict bool) {
	c.strict = strict
}

// Strict reports whether strict invariant checking is enabled.
func (c *config) Strict() bool {
	return c.strict
}

// SetGrowthStrategy configures how columns grow their backing slices.
// Each World reads the strategy once, in NewWorld, and uses it for
// every column it creates; worlds that already exist keep the strategy
// they were built with.
func (c *config) SetGrowthStrategy(gs GrowthStrategy) {
	if gs == nil {
		gs = DefaultGrowthStrategy
	}
	c.growthStrategy = gs
}

// GrowthStrategy returns the currently configured growth strategy.
func (c *config) GrowthStrategy() GrowthStrategy {
	return c.growthStrategy
}

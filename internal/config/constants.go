package config

// DefaultMaxFeeBps caps round creator fees at 25% unless overridden.
// A cap below the fee denominator guarantees a nonzero distributable pool
// whenever anything was staked.
const DefaultMaxFeeBps = 2500

package configs

// Campaign tunes the lifecycle rules.
type Campaign struct {
	// LockReviewed makes Approved and Rejected terminal.
	LockReviewed bool `env:"LOCK_REVIEWED" envDefault:"false"`
}

// Catalog points at a YAML targeting catalog. Empty selects the built-in
// one.
type Catalog struct {
	Path string `env:"PATH"`
}

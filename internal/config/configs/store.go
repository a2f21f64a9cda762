package configs

const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

// Store selects where campaigns live. The in-memory store keeps campaigns
// for the lifetime of the process.
type Store struct {
	Driver string `env:"DRIVER" envDefault:"memory"`
	// SeedDemo creates a few demo campaigns on startup.
	SeedDemo bool `env:"SEED_DEMO" envDefault:"false"`
}

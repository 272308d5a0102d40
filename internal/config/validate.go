package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Corpus.validate(); err != nil {
		return fmt.Errorf("corpus: %w", err)
	}

	return nil
}

func (c *CorpusConfig) validate() error {
	if c.ImportBatchSize <= 0 {
		return fmt.Errorf("import_batch_size must be > 0 (got %d)", c.ImportBatchSize)
	}
	if c.ImportWorkers <= 0 {
		return fmt.Errorf("import_workers must be > 0 (got %d)", c.ImportWorkers)
	}
	if c.ExportMaxRows <= 0 {
		return fmt.Errorf("export_max_rows must be > 0 (got %d)", c.ExportMaxRows)
	}
	return nil
}

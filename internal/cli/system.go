package cli

import (
	"errors"
	"fmt"
	"os"
)

type InitCmd struct {
	Force bool `help:"Delete the existing store file before initializing."`
}

func (c *InitCmd) Run(ctx *Context) error {
	path := ctx.Store.GetConfigPath()
	if c.Force {
		if _, err := os.Stat(path); err == nil {
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing store: %w", err)
			}
			if err := os.Remove(path); err != nil {
				return fmt.Errorf("failed to delete existing store: %w", err)
			}
			ctx.printf("Deleted existing store at: %s\n", path)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing store: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	ctx.printf("Initialized tracker storage at: %s\n", path)
	return nil
}

// Migrator is implemented by stores backed by a versioned SQL schema
type Migrator interface {
	Migrate(logFn func(string)) (int, error)
}

type MigrateCmd struct{}

func (c *MigrateCmd) Run(ctx *Context) error {
	m, ok := ctx.Store.(Migrator)
	if !ok {
		return errors.New("this store does not use schema migrations")
	}
	applied, err := m.Migrate(func(msg string) { ctx.println(msg) })
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	if applied == 0 {
		ctx.println("Schema is up to date.")
		return nil
	}
	ctx.printf("Applied %d migration(s).\n", applied)
	return nil
}

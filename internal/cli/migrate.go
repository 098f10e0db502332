package cli

import (
	"fmt"

	"github.com/julianstephens/ritual/internal/migration"
	"github.com/julianstephens/ritual/internal/storage"
	"github.com/julianstephens/ritual/migrations"
)

type MigrateCmd struct{}

func (cmd *MigrateCmd) Run(ctx *Context) error {
	sqliteStore, ok := ctx.Store.(*storage.SQLiteStore)
	if !ok {
		fmt.Println("JSON storage has no schema migrations.")
		return nil
	}

	if err := ctx.Store.Load(); err != nil {
		return err
	}

	migrationFS, err := migrations.SQLite()
	if err != nil {
		return fmt.Errorf("failed to load embedded migrations: %w", err)
	}

	runner := migration.NewRunner(sqliteStore.DB(), migrationFS)
	_, err = runner.ApplyMigrations(func(msg string) {
		fmt.Println(msg)
	})
	return err
}

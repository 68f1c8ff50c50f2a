package testhelpers

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// ApplyMigrations накатывает *.up.sql из dir по порядку имён.
func ApplyMigrations(db *sql.DB, dir string) error {
	files, err := filepath.Glob(filepath.Join(dir, "*.up.sql"))
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no migrations in %s", dir)
	}
	sort.Strings(files)

	for _, file := range files {
		if err := execFile(db, file); err != nil {
			return fmt.Errorf("apply migration %s: %w", filepath.Base(file), err)
		}
	}
	return nil
}

// LoadFixtures загружает fixture-файлы одной транзакцией: blood_inventory
// ссылается на blood_banks, поэтому порядок файлов важен.
func LoadFixtures(db *sql.DB, dir string, files ...string) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin fixtures tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	for _, file := range files {
		content, err := os.ReadFile(filepath.Join(dir, file))
		if err != nil {
			return fmt.Errorf("read fixture %s: %w", file, err)
		}
		if _, err := tx.Exec(string(content)); err != nil {
			return fmt.Errorf("load fixture %s: %w", file, err)
		}
	}

	return tx.Commit()
}

func execFile(db *sql.DB, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	_, err = db.Exec(string(content))
	return err
}

package zombiezen

import (
	"context"
	"embed"
	"fmt"
	"path"
	"runtime"

	"zombiezen.com/go/sqlite/sqlitex"
)

// resultSchema is the script creating the result tables.
const resultSchema = "results.sql"

//go:embed sql/*.sql
var sqlFiles embed.FS

// Open opens (or creates) the result database at dbPath and ensures the
// result tables exist. The pool uses the sqlitex defaults: read-write,
// create, WAL.
func Open(dbPath string) (*sqlitex.Pool, error) {
	pool, err := sqlitex.NewPool(fmt.Sprintf("file:%s", dbPath), sqlitex.PoolOptions{
		PoolSize: runtime.NumCPU(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open result database %s: %w", dbPath, err)
	}

	if err := createSchema(pool, resultSchema); err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}

// createSchema executes an embedded SQL script from sql/.
func createSchema(pool *sqlitex.Pool, name string) error {
	scriptPath := path.Join("sql", name)
	script, err := sqlFiles.ReadFile(scriptPath)
	if err != nil {
		return fmt.Errorf("failed to read embedded sql file %s: %w", scriptPath, err)
	}

	conn, err := pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer pool.Put(conn)

	if err := sqlitex.ExecuteScript(conn, string(script), nil); err != nil {
		return fmt.Errorf("failed to execute script %s: %w", name, err)
	}

	return nil
}

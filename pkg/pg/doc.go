// Package pg bootstraps PostgreSQL access with pgx/v5 and goose/v3.
//
// Config is populated from PG_* environment variables. Connect opens a
// *pgxpool.Pool and pings it, retrying on failure. Migrate runs goose
// migrations from an fs.FS against the same pool. Healthcheck adapts a pool
// to a func(context.Context) error for health endpoints, and the Is* helpers
// classify driver errors without string matching.
//
//	var cfg pg.Config
//	if err := config.Load(&cfg); err != nil { ... }
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil { ... }
//	defer pool.Close()
//	if err := pg.Migrate(ctx, pool, account.Migrations, "migrations", cfg, log); err != nil { ... }
package pg

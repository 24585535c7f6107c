// Package postgres installs SQL functions that convert between Postgres
// uuid values and the uuid25 text form, so queries can filter and join on
// uuid25 strings without round-tripping through the application.
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/lib/pq"
	"github.com/paraglidehq/uuid25"
)

// Logger receives progress messages from Migrate.
// Implementations must be safe for concurrent use.
type Logger interface {
	Infof(format string, args ...any)
}

// NopLogger discards all log output.
var NopLogger Logger = nopLogger{}

type nopLogger struct{}

func (nopLogger) Infof(string, ...any) {}

// Config holds where the uuid25 functions are installed.
type Config struct {
	// Schema receives the functions. It is created if missing.
	Schema string
	// Logger reports migration steps. Nil means NopLogger.
	Logger Logger
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Schema: "public",
	}
}

func (c Config) logger() Logger {
	if c.Logger == nil {
		return NopLogger
	}
	return c.Logger
}

var ErrConfigMismatch = errors.New("uuid25: database config does not match application config")

// Migrate runs the idempotent uuid25 migration with the given configuration.
// If the database already has the functions in a different schema, returns
// ErrConfigMismatch.
func Migrate(ctx context.Context, db *sql.DB, cfg Config) error {
	if cfg.Schema == "" {
		return errors.New("uuid25: empty schema")
	}
	log := cfg.logger()

	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS _uuid25_config (
			id int PRIMARY KEY DEFAULT 1 CHECK (id = 1),
			schema_name text NOT NULL
		)
	`)
	if err != nil {
		return errors.Wrap(err, "uuid25: create config table")
	}

	var schema string
	err = db.QueryRowContext(ctx, `SELECT schema_name FROM _uuid25_config`).Scan(&schema)
	switch {
	case err == nil:
		if schema != cfg.Schema {
			return errors.Wrapf(ErrConfigMismatch, "db has schema=%q, app has schema=%q", schema, cfg.Schema)
		}
		log.Infof("uuid25: config found, schema=%q", schema)
	case errors.Is(err, sql.ErrNoRows):
		_, err = db.ExecContext(ctx, `INSERT INTO _uuid25_config (schema_name) VALUES ($1)`, cfg.Schema)
		if err != nil {
			return errors.Wrap(err, "uuid25: insert config")
		}
		log.Infof("uuid25: recorded config, schema=%q", cfg.Schema)
	default:
		return errors.Wrap(err, "uuid25: read config")
	}

	_, err = db.ExecContext(ctx, generateSQL(cfg))
	if err != nil {
		return errors.Wrap(err, "uuid25: run migrations")
	}
	log.Infof("uuid25: functions installed in schema %q", cfg.Schema)

	return nil
}

// GetConfig reads the uuid25 configuration from the database.
func GetConfig(ctx context.Context, db *sql.DB) (Config, error) {
	var cfg Config
	err := db.QueryRowContext(ctx, `SELECT schema_name FROM _uuid25_config`).Scan(&cfg.Schema)
	if err != nil {
		return cfg, err
	}
	return cfg, nil
}

func generateSQL(cfg Config) string {
	schema := pq.QuoteIdentifier(cfg.Schema)

	return fmt.Sprintf(`
CREATE SCHEMA IF NOT EXISTS %[1]s;

-- Constants
CREATE OR REPLACE FUNCTION %[1]s.nil_uuid25() RETURNS text LANGUAGE sql IMMUTABLE AS $$ SELECT '%[4]s'::text; $$;
CREATE OR REPLACE FUNCTION %[1]s.max_uuid25() RETURNS text LANGUAGE sql IMMUTABLE AS $$ SELECT '%[2]s'::text; $$;

-- uuid -> 25-digit base36
CREATE OR REPLACE FUNCTION %[1]s.uuid_to_uuid25(id uuid)
  RETURNS text
  LANGUAGE plpgsql
  IMMUTABLE PARALLEL SAFE STRICT LEAKPROOF
  AS $$
DECLARE
  alphabet char(36) := '%[3]s';
  h text := replace(id::text, '-', '');
  n numeric := 0;
  result text := '';
BEGIN
  FOR i IN 1..32 LOOP
    n := n * 16 + (position(substring(h FROM i FOR 1) IN '0123456789abcdef') - 1);
  END LOOP;
  FOR i IN 1..25 LOOP
    result := substring(alphabet FROM (mod(n, 36))::int + 1 FOR 1) || result;
    n := div(n, 36);
  END LOOP;
  RETURN result;
END;
$$;

-- 25-digit base36 -> uuid
CREATE OR REPLACE FUNCTION %[1]s.uuid25_to_uuid(encoded_id text)
  RETURNS uuid
  LANGUAGE plpgsql
  IMMUTABLE PARALLEL SAFE STRICT LEAKPROOF
  AS $$
DECLARE
  alphabet char(36) := '%[3]s';
  hexdigits char(16) := '0123456789abcdef';
  s text := lower(encoded_id);
  n numeric := 0;
  p int;
  h text := '';
BEGIN
  IF char_length(s) <> 25 THEN
    RAISE EXCEPTION 'invalid uuid25: %%', encoded_id;
  END IF;
  FOR i IN 1..25 LOOP
    p := position(substring(s FROM i FOR 1) IN alphabet);
    IF p = 0 THEN
      RAISE EXCEPTION 'invalid uuid25: %%', encoded_id;
    END IF;
    n := n * 36 + (p - 1);
  END LOOP;
  IF n > 340282366920938463463374607431768211455 THEN
    RAISE EXCEPTION 'invalid uuid25: %%', encoded_id;
  END IF;
  FOR i IN 1..32 LOOP
    h := substring(hexdigits FROM (mod(n, 16))::int + 1 FOR 1) || h;
    n := div(n, 16);
  END LOOP;
  RETURN h::uuid;
END;
$$;
`,
		schema,              // target schema
		uuid25.Max.String(), // max_uuid25()
		base36Alphabet,      // alphabet in both conversions
		uuid25.Nil.String(), // nil_uuid25()
	)
}

const base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

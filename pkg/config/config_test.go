package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	base := func() *Config {
		return &Config{
			ReadingsDir:   DefaultReadingsDir,
			Backend:       BackendSupabase,
			Table:         DefaultTable,
			MongoDatabase: DefaultMongoDatabase,
		}
	}

	tests := []struct {
		name     string
		mutate   func(c *Config)
		errParts []string
	}{
		{
			name: "supabase with credentials",
			mutate: func(c *Config) {
				c.SupabaseURL = "https://abc.supabase.co"
				c.SupabaseServiceKey = "service-key"
			},
		},
		{
			name:     "supabase without credentials",
			mutate:   func(c *Config) {},
			errParts: []string{"SUPABASE_URL is required for the supabase backend", "SUPABASE_SERVICE_KEY is required for the supabase backend"},
		},
		{
			name: "supabase missing key only",
			mutate: func(c *Config) {
				c.SupabaseURL = "https://abc.supabase.co"
			},
			errParts: []string{"SUPABASE_SERVICE_KEY is required"},
		},
		{
			name: "postgres with DATABASE_URL",
			mutate: func(c *Config) {
				c.Backend = BackendPostgres
				c.DatabaseURL = "postgres://u:p@localhost:5432/readings"
			},
		},
		{
			name: "postgres with supabase password",
			mutate: func(c *Config) {
				c.Backend = BackendPostgres
				c.SupabaseURL = "https://abc.supabase.co"
				c.SupabaseDBPassword = "pw"
			},
		},
		{
			name: "postgres without connection details",
			mutate: func(c *Config) {
				c.Backend = BackendPostgres
				c.SupabaseURL = "https://abc.supabase.co"
			},
			errParts: []string{"DATABASE_URL is required for the postgres backend"},
		},
		{
			name: "mongo with URI",
			mutate: func(c *Config) {
				c.Backend = BackendMongo
				c.MongoURI = "mongodb://localhost:27017"
			},
		},
		{
			name: "mongo without URI",
			mutate: func(c *Config) {
				c.Backend = BackendMongo
			},
			errParts: []string{"MONGO_URI is required for the mongo backend"},
		},
		{
			name: "unknown backend",
			mutate: func(c *Config) {
				c.Backend = "sqlite"
			},
			errParts: []string{"STORE_BACKEND must be one of"},
		},
		{
			name: "empty readings dir and table",
			mutate: func(c *Config) {
				c.SupabaseURL = "https://abc.supabase.co"
				c.SupabaseServiceKey = "service-key"
				c.ReadingsDir = ""
				c.Table = ""
			},
			errParts: []string{"READINGS_DIR is required", "STORE_TABLE is required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)

			err := cfg.Validate()
			if len(tt.errParts) == 0 {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			for _, part := range tt.errParts {
				assert.Contains(t, err.Error(), part)
			}
		})
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	for _, key := range []string{"READINGS_DIR", "CATALOG_FILE", "STORE_BACKEND", "STORE_TABLE", "SUPABASE_URL", "SUPABASE_SERVICE_KEY", "SUPABASE_DB_PASSWORD", "DATABASE_URL", "MONGO_URI", "MONGO_DATABASE", "DEBUG"} {
		t.Setenv(key, "")
	}

	cfg := FromEnv()

	assert.Equal(t, DefaultReadingsDir, cfg.ReadingsDir)
	assert.Equal(t, BackendSupabase, cfg.Backend)
	assert.Equal(t, DefaultTable, cfg.Table)
	assert.Equal(t, DefaultMongoDatabase, cfg.MongoDatabase)
	assert.Empty(t, cfg.SupabaseURL)
	assert.Empty(t, cfg.SupabaseServiceKey)
	assert.False(t, cfg.Debug)

	assert.Error(t, cfg.Validate(), "no credential defaults should be applied")
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("READINGS_DIR", "/srv/readings")
	t.Setenv("STORE_BACKEND", "Mongo")
	t.Setenv("STORE_TABLE", "reading_content_v2")
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("MONGO_DATABASE", "course")
	t.Setenv("DEBUG", "true")

	cfg := FromEnv()

	assert.Equal(t, "/srv/readings", cfg.ReadingsDir)
	assert.Equal(t, BackendMongo, cfg.Backend)
	assert.Equal(t, "reading_content_v2", cfg.Table)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "course", cfg.MongoDatabase)
	assert.True(t, cfg.Debug)
	assert.NoError(t, cfg.Validate())
}

func writeEnvFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

// unsetenv removes key for the duration of the test. godotenv never
// overrides a variable that is present, even when it is empty.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestLoadFrom_MissingFileIsIgnored(t *testing.T) {
	t.Setenv("READINGS_DIR", "/srv/readings")

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), ".env"))

	require.NoError(t, err)
	assert.Equal(t, "/srv/readings", cfg.ReadingsDir)
}

func TestLoadFrom_MalformedFile(t *testing.T) {
	path := writeEnvFile(t, "SUPABASE_SERVICE_KEY=\"unterminated\n")

	cfg, err := LoadFrom(path)

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "load "+path)
}

func TestLoadFrom_FileSetsVariables(t *testing.T) {
	unsetenv(t, "READINGS_DIR")
	unsetenv(t, "STORE_TABLE")
	t.Setenv("STORE_BACKEND", "postgres")

	path := writeEnvFile(t, "READINGS_DIR=/from/dotenv\nSTORE_TABLE=reading_content_v2\nSTORE_BACKEND=mongo\n")

	cfg, err := LoadFrom(path)

	require.NoError(t, err)
	assert.Equal(t, "/from/dotenv", cfg.ReadingsDir)
	assert.Equal(t, "reading_content_v2", cfg.Table)
	assert.Equal(t, BackendPostgres, cfg.Backend, "environment wins over the file")
}

func TestLoadFrom_DirectoryIsAnError(t *testing.T) {
	_, err := LoadFrom(t.TempDir())
	assert.Error(t, err)
}

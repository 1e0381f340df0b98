package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Store backends.
const (
	BackendSupabase = "supabase"
	BackendPostgres = "postgres"
	BackendMongo    = "mongo"
)

const (
	DefaultReadingsDir   = "readings"
	DefaultTable         = "reading_content"
	DefaultMongoDatabase = "readings"
)

// Config holds everything the indexer needs from the environment.
// There are no credential defaults: a missing credential is a configuration error.
type Config struct {
	ReadingsDir string `validate:"required"`
	CatalogFile string
	Backend     string `validate:"oneof=supabase postgres mongo"`
	Table       string `validate:"required"`

	SupabaseURL        string `validate:"required_if=Backend supabase"`
	SupabaseServiceKey string `validate:"required_if=Backend supabase"`
	SupabaseDBPassword string
	DatabaseURL        string

	MongoURI      string `validate:"required_if=Backend mongo"`
	MongoDatabase string `validate:"required_if=Backend mongo"`

	Debug bool
}

// envNames maps Config fields to the variables they are read from.
var envNames = map[string]string{
	"ReadingsDir":        "READINGS_DIR",
	"CatalogFile":        "CATALOG_FILE",
	"Backend":            "STORE_BACKEND",
	"Table":              "STORE_TABLE",
	"SupabaseURL":        "SUPABASE_URL",
	"SupabaseServiceKey": "SUPABASE_SERVICE_KEY",
	"SupabaseDBPassword": "SUPABASE_DB_PASSWORD",
	"DatabaseURL":        "DATABASE_URL",
	"MongoURI":           "MONGO_URI",
	"MongoDatabase":      "MONGO_DATABASE",
}

// EnvFile is the dotenv file Load reads from the working directory.
const EnvFile = ".env"

// Load reads EnvFile, if present, and then builds the config from the process
// environment. Variables already set in the environment take precedence over
// the file.
func Load() (*Config, error) {
	return LoadFrom(EnvFile)
}

// LoadFrom is Load with an explicit dotenv path. A missing file is not an
// error; an unreadable or malformed one is.
func LoadFrom(envFile string) (*Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", envFile, err)
	}
	return FromEnv(), nil
}

// FromEnv builds the config from the process environment only.
func FromEnv() *Config {
	return &Config{
		ReadingsDir:        getenv("READINGS_DIR", DefaultReadingsDir),
		CatalogFile:        os.Getenv("CATALOG_FILE"),
		Backend:            strings.ToLower(getenv("STORE_BACKEND", BackendSupabase)),
		Table:              getenv("STORE_TABLE", DefaultTable),
		SupabaseURL:        os.Getenv("SUPABASE_URL"),
		SupabaseServiceKey: os.Getenv("SUPABASE_SERVICE_KEY"),
		SupabaseDBPassword: os.Getenv("SUPABASE_DB_PASSWORD"),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		MongoURI:           os.Getenv("MONGO_URI"),
		MongoDatabase:      getenv("MONGO_DATABASE", DefaultMongoDatabase),
		Debug:              os.Getenv("DEBUG") == "1" || strings.EqualFold(os.Getenv("DEBUG"), "true"),
	}
}

// Validate reports every missing or invalid setting, naming the environment
// variable to set.
func (c *Config) Validate() error {
	var problems []string

	if err := validator.New().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("validate config: %w", err)
		}
		for _, fe := range verrs {
			problems = append(problems, describe(fe))
		}
	}

	if c.Backend == BackendPostgres && c.DatabaseURL == "" {
		if c.SupabaseURL == "" || c.SupabaseDBPassword == "" {
			problems = append(problems, "DATABASE_URL is required for the postgres backend (or SUPABASE_URL and SUPABASE_DB_PASSWORD)")
		}
	}

	if len(problems) == 0 {
		return nil
	}
	sort.Strings(problems)
	return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
}

func describe(fe validator.FieldError) string {
	name := envNames[fe.Field()]
	if name == "" {
		name = fe.Field()
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", name)
	case "required_if":
		return fmt.Sprintf("%s is required for the %s backend", name, fe.Param()[strings.LastIndex(fe.Param(), " ")+1:])
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", name, fe.Param(), fe.Value())
	default:
		return fmt.Sprintf("%s failed %s validation", name, fe.Tag())
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

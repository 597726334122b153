package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Origens de dados suportadas
const (
	DataSourceFile      = "file"
	DataSourcePostgres  = "postgres"
	DataSourceSynthetic = "synthetic"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	Data           Data           `mapstructure:",squash"`
	Geo            Geo            `mapstructure:",squash"`
	Synthetic      Synthetic      `mapstructure:",squash"`
	PipelineReport PipelineReport `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// Data define de onde vêm os documentos brutos
type Data struct {
	Source string `mapstructure:"data_source"`
	Dir    string `mapstructure:"data_dir"`
}

type Geo struct {
	URL     string        `mapstructure:"geojson_url"`
	Timeout time.Duration `mapstructure:"geojson_timeout"`
}

// Synthetic configura os dados gerados quando não há origem real
type Synthetic struct {
	Seed      int64  `mapstructure:"synthetic_seed"`
	StartDate string `mapstructure:"synthetic_start_date"`
	Days      int    `mapstructure:"synthetic_days"`
}

type PipelineReport struct {
	CronSchedule string `mapstructure:"pipeline_report_cron"`
	Enabled      bool   `mapstructure:"pipeline_report_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:8501")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/dashboard?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("DATA_SOURCE", DataSourceFile)
	viper.SetDefault("DATA_DIR", "data")

	viper.SetDefault("GEOJSON_URL", "https://raw.githubusercontent.com/codeforamerica/click_that_hood/master/public/data/brazil-states.geojson")
	viper.SetDefault("GEOJSON_TIMEOUT", "10s")

	// Defaults dos dados sintéticos
	viper.SetDefault("SYNTHETIC_SEED", 42)
	viper.SetDefault("SYNTHETIC_START_DATE", "2023-01-01")
	viper.SetDefault("SYNTHETIC_DAYS", 30)

	viper.SetDefault("PIPELINE_REPORT_CRON", "0 * * * *") // A cada hora
	viper.SetDefault("PIPELINE_REPORT_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Validate normaliza e valida a origem de dados
func (c *Config) Validate() error {
	c.Data.Source = strings.ToLower(strings.TrimSpace(c.Data.Source))
	if c.Data.Source == "" {
		c.Data.Source = DataSourceSynthetic
	}

	switch c.Data.Source {
	case DataSourceFile, DataSourcePostgres, DataSourceSynthetic:
	default:
		return fmt.Errorf("config: data_source inválido: %s", c.Data.Source)
	}

	if c.Data.Source == DataSourceSynthetic {
		if _, err := time.Parse(time.DateOnly, c.Synthetic.StartDate); err != nil {
			return fmt.Errorf("config: synthetic_start_date inválido: %w", err)
		}
		if c.Synthetic.Days < 0 {
			return fmt.Errorf("config: synthetic_days não pode ser negativo")
		}
	}

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}

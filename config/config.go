package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config é a configuração completa do gerador de prognósticos.
type Config struct {
	Pipeline PipelineConfig `yaml:"pipeline"`
	Fixtures FixturesConfig `yaml:"fixtures"`
	Report   ReportConfig   `yaml:"report"`
	Storage  StorageConfig  `yaml:"storage"`
	Log      LogConfig      `yaml:"log"`
}

// PipelineConfig controla o comportamento do pipeline de análise.
type PipelineConfig struct {
	// Workers da derivação paralela; <= 0 dimensiona pelo número de CPUs.
	Workers int `yaml:"workers"`
}

// FixturesConfig aponta para a fonte de jogos.
type FixturesConfig struct {
	Path string `yaml:"path"` // arquivo JSON exportado pela coleta
}

// ReportConfig controla o formato de saída.
type ReportConfig struct {
	Formato string `yaml:"formato"` // quadro | whatsapp
}

// StorageConfig controla a auditoria de rodadas.
type StorageConfig struct {
	// DSN do histórico: rota de arquivo SQLite, ou "postgres://..." para
	// banco compartilhado. Vazio desliga a auditoria.
	DSN string `yaml:"dsn"`
}

// LogConfig controla formato e nível de logging.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug | info | warn | error
	Format string `yaml:"format"` // text | json
}

// Load carrega a configuração do arquivo YAML e do .env, se existir.
// Variáveis de ambiente sobrescrevem o YAML nas chaves correspondentes.
func Load(path string) (*Config, error) {
	// Carrega .env se existir (silencia erro se não houver arquivo)
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config.Load: read %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config.Load: parse YAML: %w", err)
	}

	applyEnvOverrides(&cfg)
	setDefaults(&cfg)

	return &cfg, nil
}

// applyEnvOverrides sobrescreve valores com variáveis de ambiente presentes.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv("STORAGE_DSN"); v != "" {
		cfg.Storage.DSN = v
	}
	if v := os.Getenv("FIXTURES_PATH"); v != "" {
		cfg.Fixtures.Path = v
	}
	if v := os.Getenv("PIPELINE_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Pipeline.Workers = n
		}
	}
}

// setDefaults garante valores utilizáveis para as chaves obrigatórias.
func setDefaults(cfg *Config) {
	if cfg.Fixtures.Path == "" {
		cfg.Fixtures.Path = "fixtures.json"
	}
	if cfg.Report.Formato == "" {
		cfg.Report.Formato = "quadro"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
}

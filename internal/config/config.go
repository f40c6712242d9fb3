package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App               App               `mapstructure:",squash"`
	Server            Server            `mapstructure:",squash"`
	Upload            Upload            `mapstructure:",squash"`
	Report            Report            `mapstructure:",squash"`
	AutomaticAnalysis AutomaticAnalysis `mapstructure:",squash"`
	Seed              Seed              `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type Upload struct {
	ProcessingDelay time.Duration `mapstructure:"upload_processing_delay"`
	MaxFileSizeMB   int64         `mapstructure:"upload_max_file_size_mb"`
	EnforceLimits   bool          `mapstructure:"upload_enforce_limits"`
}

// MaxFileSizeBytes converte o limite configurado para bytes
func (u Upload) MaxFileSizeBytes() int64 {
	return u.MaxFileSizeMB * 1024 * 1024
}

type Report struct {
	TopChannels int `mapstructure:"report_top_channels"`
}

type AutomaticAnalysis struct {
	CronSchedule string `mapstructure:"automatic_analysis_cron"`
	Enabled      bool   `mapstructure:"automatic_analysis_enabled"`
}

type Seed struct {
	File string `mapstructure:"seed_file"` // vazio usa os dados embutidos
}

// DefaultProcessingDelay é o atraso simulado de processamento das importações
const DefaultProcessingDelay = 3 * time.Second

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", "8000")
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("UPLOAD_PROCESSING_DELAY", "3s") // Mesmo atraso simulado do painel
	viper.SetDefault("UPLOAD_MAX_FILE_SIZE_MB", 10)   // Limite nominal por arquivo
	viper.SetDefault("UPLOAD_ENFORCE_LIMITS", false)  // O limite é só orientação por padrão

	viper.SetDefault("REPORT_TOP_CHANNELS", 2)

	viper.SetDefault("AUTOMATIC_ANALYSIS_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("AUTOMATIC_ANALYSIS_ENABLED", false)

	viper.SetDefault("SEED_FILE", "")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

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

	if config.Report.TopChannels <= 0 {
		config.Report.TopChannels = 2
	}

	// o agendador não aceita intervalo zero
	if config.Upload.ProcessingDelay <= 0 {
		logrus.Warnf("UPLOAD_PROCESSING_DELAY inválido (%s), usando %s", config.Upload.ProcessingDelay, DefaultProcessingDelay)
		config.Upload.ProcessingDelay = DefaultProcessingDelay
	}

	return config, nil
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}

package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	JWT struct {
		// Секреты access и refresh токенов независимы друг от друга
		AccessSecret  string `yaml:"access_secret"`
		RefreshSecret string `yaml:"refresh_secret"`
		AccessTTLMin  int    `yaml:"access_ttl_minutes"`
		RefreshTTLHrs int    `yaml:"refresh_ttl_hours"`
	} `yaml:"jwt"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		ResetBaseURL string `yaml:"reset_base_url"`
	} `yaml:"email"`

	Storage struct {
		BasePath string `yaml:"base_path"` // Куда складывать загруженные документы
		BaseURL  string `yaml:"base_url"`  // Публичный префикс URL
	} `yaml:"storage"`

	Admin struct {
		// Первый администратор, создается при старте, если его нет
		FirstAdminEmail    string `yaml:"first_admin_email"`
		FirstAdminPassword string `yaml:"first_admin_password"`
	} `yaml:"admin"`

	RateLimit struct {
		// Запросов в минуту с одного IP на чувствительные маршруты
		RequestsPerMinute int `yaml:"requests_per_minute"`
		Burst             int `yaml:"burst"`
	} `yaml:"rate_limit"`
}

var AppConfig *Config

// LoadConfig загружает конфигурацию: config.yaml, затем переменные
// окружения поверх. Отсутствие секретов токенов или строки подключения
// к БД - фатальная ошибка конфигурации, сервер не стартует.
func LoadConfig() {
	var cfg Config

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	if f, err := os.Open(configPath); err == nil {
		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			f.Close()
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}
		f.Close()
	}

	// Переменные окружения имеют приоритет над файлом
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Database.DSN = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.JWT.AccessSecret = v
	}
	if v := os.Getenv("JWT_REFRESH_SECRET"); v != "" {
		cfg.JWT.RefreshSecret = v
	}
	if v := os.Getenv("SERVER_ENV"); v != "" {
		cfg.Server.Env = v
	}
	if v := os.Getenv("SERVER_PORT"); v != "" {
		cfg.Server.Port, _ = strconv.Atoi(v)
	}
	if v := os.Getenv("FIRST_ADMIN_EMAIL"); v != "" {
		cfg.Admin.FirstAdminEmail = v
	}
	if v := os.Getenv("FIRST_ADMIN_PASSWORD"); v != "" {
		cfg.Admin.FirstAdminPassword = v
	}

	applyDefaults(&cfg)
	validate(&cfg)

	AppConfig = &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8000
	}
	if cfg.Server.Env == "" {
		cfg.Server.Env = "development"
	}
	if cfg.JWT.AccessTTLMin == 0 {
		cfg.JWT.AccessTTLMin = 15 // 15 минут
	}
	if cfg.JWT.RefreshTTLHrs == 0 {
		cfg.JWT.RefreshTTLHrs = 7 * 24 // 7 дней
	}
	if cfg.Storage.BasePath == "" {
		cfg.Storage.BasePath = "./uploads"
	}
	if cfg.Storage.BaseURL == "" {
		cfg.Storage.BaseURL = "/api/v1/files"
	}
	if cfg.RateLimit.RequestsPerMinute == 0 {
		cfg.RateLimit.RequestsPerMinute = 5
	}
	if cfg.RateLimit.Burst == 0 {
		cfg.RateLimit.Burst = 5
	}
}

func validate(cfg *Config) {
	if cfg.Database.DSN == "" {
		log.Fatal("DATABASE_URL is missing")
	}
	if cfg.JWT.AccessSecret == "" {
		log.Fatal("JWT_SECRET is missing")
	}
	if cfg.JWT.RefreshSecret == "" {
		log.Fatal("JWT_REFRESH_SECRET is missing")
	}
}

// AccessTTL - срок жизни access-токена
func (c *Config) AccessTTL() time.Duration {
	return time.Duration(c.JWT.AccessTTLMin) * time.Minute
}

// RefreshTTL - срок жизни refresh-токена
func (c *Config) RefreshTTL() time.Duration {
	return time.Duration(c.JWT.RefreshTTLHrs) * time.Hour
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}

package config

import (
	"fmt"
	"os"
	"time"

	"github.com/DanRulev/sentrack.git/pkg/validator"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig       `mapstructure:"app" validate:"required"`
	BotToken  string          `mapstructure:"bot_token" validate:"required"`
	DB        DBConfig        `mapstructure:"db" validate:"required"`
	Local     LocalConfig     `mapstructure:"local" validate:"required"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
	Env       string          `mapstructure:"env" validate:"oneof=development production staging"`
}

type AppConfig struct {
	Timeout time.Duration `mapstructure:"timeout" validate:"min=1"`
}

type DBConfig struct {
	Conn DBConn `mapstructure:"conn"`
	Cfg  DBCfg  `mapstructure:"cfg"`
}

type DBConn struct {
	Host     string `mapstructure:"host" validate:"required"`
	Port     string `mapstructure:"port" validate:"required"`
	User     string `mapstructure:"user" validate:"required"`
	Password string `mapstructure:"password" validate:"required"`
	Name     string `mapstructure:"name" validate:"required"`
	SSL      string `mapstructure:"ssl" validate:"oneof=disable require verify-full"`
}

type DBCfg struct {
	MaxOpenConns    int           `mapstructure:"max_open_conns" validate:"min=1,max=1000"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" validate:"min=0,max=100"`
	ConnMaxLifeTime time.Duration `mapstructure:"conn_max_life_time" validate:"min=0"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time" validate:"min=0"`
}

// LocalConfig points at the SQLite file that mirrors each user's campaign.
type LocalConfig struct {
	Path      string `mapstructure:"path" validate:"required"`
	Namespace string `mapstructure:"namespace" validate:"required"`
}

type SchedulerConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	ReminderTime string `mapstructure:"reminder_time" validate:"omitempty,datetime=15:04"`
}

func Init() (*Config, error) {
	// A missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	v := viper.New()

	v.AutomaticEnv()

	configName := os.Getenv("CONFIG_NAME")
	if configName == "" {
		configName = "default"
	}

	v.AddConfigPath("configs")
	v.SetConfigName(configName)

	v.SetDefault("local.path", "data/local.db")
	v.SetDefault("local.namespace", "nativeEnglishApp:v1")
	v.SetDefault("scheduler.reminder_time", "21:00")

	bindings := map[string]string{
		"bot_token":        "BOT_TOKEN",
		"db.conn.host":     "DB_HOST",
		"db.conn.port":     "DB_PORT",
		"db.conn.user":     "DB_USER",
		"db.conn.password": "DB_PASSWORD",
		"db.conn.name":     "DB_NAME",
		"db.conn.ssl":      "DB_SSL",
		"local.path":       "LOCAL_DB_PATH",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Config{}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.ValidateStruct(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

package config

import (
	"errors"
	"fmt"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"io/fs"
	"log"
	"os"
	"sync"
	"time"
)

const defaultDatabase = "schooldekho"

type Config struct {
	Env   string `yaml:"env" env:"ENV" env-default:"local"`
	Mongo struct {
		URL      string        `yaml:"url" env:"MONGO_URL" env-default:"mongodb://localhost:27017/schooldekho"`
		Database string        `yaml:"database" env:"MONGO_DATABASE" env-default:""`
		Timeout  time.Duration `yaml:"timeout" env:"MONGO_TIMEOUT" env-default:"10s"`
	} `yaml:"mongo"`
	Listen struct {
		BindIP  string        `yaml:"bind_ip" env:"BIND_IP" env-default:"0.0.0.0"`
		Port    string        `yaml:"port" env:"PORT" env-default:"8001"`
		Timeout time.Duration `yaml:"timeout" env:"REQUEST_TIMEOUT" env-default:"30s"`
	} `yaml:"listen"`
	Cors struct {
		AllowedOrigins []string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-separator:"," env-default:"*"`
	} `yaml:"cors"`
}

// DatabaseName returns the configured database or the default. The path of
// the connection string only selects the auth database.
func (c *Config) DatabaseName() string {
	if c.Mongo.Database != "" {
		return c.Mongo.Database
	}
	return defaultDatabase
}

var instance *Config
var once sync.Once

func MustLoad(path string) *Config {
	once.Do(func() {
		var err error
		instance, err = Load(path)
		if err != nil {
			log.Fatal(err)
		}
	})
	return instance
}

// Load reads an optional .env file, then the yaml config at path. A missing
// config file is not an error: the environment alone is used.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	conf := &Config{}
	var err error
	if _, statErr := os.Stat(path); path != "" && statErr == nil {
		err = cleanenv.ReadConfig(path, conf)
	} else {
		err = cleanenv.ReadEnv(conf)
	}
	if err != nil {
		desc, _ := cleanenv.GetDescription(conf, nil)
		return nil, fmt.Errorf("%s; %s", err, desc)
	}
	return conf, nil
}

package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// Cfg 是启动时加载的全局配置
var Cfg *Config

// Config 对应 config.yaml 的结构
type Config struct {
	Server       ServerConfig       `mapstructure:"server"`
	Database     DatabaseConfig     `mapstructure:"database"`
	Redis        RedisConfig        `mapstructure:"redis"`
	Notification NotificationConfig `mapstructure:"notification"`
	Log          LogConfig          `mapstructure:"log"`
}

// ServerConfig 定义了HTTP服务器相关的配置
type ServerConfig struct {
	Mode    string     `mapstructure:"mode"`
	Address string     `mapstructure:"address"`
	Cors    CorsConfig `mapstructure:"cors"`
}

// CorsConfig 定义了CORS相关的配置
type CorsConfig struct {
	AllowedOrigins []string `mapstructure:"allowedOrigins"`
}

// DatabaseConfig 选择GORM驱动及其DSN
type DatabaseConfig struct {
	Driver   string `mapstructure:"driver"`
	DSN      string `mapstructure:"dsn"`
	LogLevel string `mapstructure:"logLevel"`
}

// RedisConfig 定义了Redis的配置
type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// NotificationConfig 选择中奖通知的投递通道
type NotificationConfig struct {
	Driver    string      `mapstructure:"driver"`
	QueueSize int         `mapstructure:"queueSize"`
	Redis     RedisQueue  `mapstructure:"redis"`
	Kafka     KafkaConfig `mapstructure:"kafka"`
}

// RedisQueue 是作为通知出箱的Redis列表
type RedisQueue struct {
	ListKey string `mapstructure:"listKey"`
}

// KafkaConfig 定义了Kafka通知主题
type KafkaConfig struct {
	Brokers []string `mapstructure:"brokers"`
	Topic   string   `mapstructure:"topic"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

const (
	DriverSqlite   = "sqlite"
	DriverPostgres = "postgres"

	NotifierLog   = "log"
	NotifierRedis = "redis"
	NotifierKafka = "kafka"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.cors.allowedOrigins", []string{"http://localhost:3000"})

	v.SetDefault("database.driver", DriverSqlite)
	v.SetDefault("database.dsn", "instantwin.db")
	v.SetDefault("database.logLevel", "silent")

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.address", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("notification.driver", NotifierLog)
	v.SetDefault("notification.queueSize", 1024)
	v.SetDefault("notification.redis.listKey", "notifications:winners")
	v.SetDefault("notification.kafka.brokers", []string{"localhost:9092"})
	v.SetDefault("notification.kafka.topic", "winner-notifications")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
}

// LoadConfig 查找、加载并解析配置文件。
// 配置文件是可选的：找不到时使用默认值和环境变量。
// path 非空时直接读取该文件。
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	// 例如 INSTANTWIN_DATABASE_DSN 覆盖 database.dsn
	v.SetEnvPrefix("instantwin")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	Cfg = &cfg
	return Cfg, nil
}

func (c *Config) validate() error {
	switch c.Database.Driver {
	case DriverSqlite, DriverPostgres:
	default:
		return errors.New("config: database.driver must be sqlite or postgres, got " + c.Database.Driver)
	}
	switch c.Notification.Driver {
	case NotifierLog, NotifierKafka:
	case NotifierRedis:
		if !c.Redis.Enabled {
			return errors.New("config: notification.driver redis requires redis.enabled")
		}
	default:
		return errors.New("config: unknown notification.driver " + c.Notification.Driver)
	}
	if c.Notification.QueueSize <= 0 {
		return errors.New("config: notification.queueSize must be positive")
	}
	return nil
}

package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"aristobox/internal/database"

	"go.uber.org/zap"
)

type Config struct {
	HTTPAddr string
	DB       DB
	Location *time.Location

	Kafka  Kafka
	Redis  Redis
	Export Export
}

type DB struct {
	database.Config
}

type Kafka struct {
	Brokers []string
	Topic   string
}

func (k Kafka) Enabled() bool { return len(k.Brokers) > 0 }

type Redis struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

func (r Redis) Enabled() bool { return r.Addr != "" }

type Export struct {
	Dir          string
	Interval     time.Duration // 0 отключает плановую выгрузку
	MarkExported bool
}

func Load(log *zap.Logger) *Config {
	driver := getEnvDefault("DB_DRIVER", database.DriverSQLite)

	db := database.Config{
		Driver: driver,
		Path:   getEnvDefault("DB_PATH", "aristobox.db"),
		Debug:  getEnvBool("DB_DEBUG", false, log),
	}
	// сетевые базы требуют полный набор параметров
	if driver != database.DriverSQLite {
		db.Host = getEnv("DB_HOST", log)
		db.Port = getEnv("DB_PORT", log)
		db.User = getEnv("DB_USER", log)
		db.Password = getEnv("DB_PASSWORD", log)
		db.Name = getEnv("DB_NAME", log)
		db.SSLMode = getEnvDefault("DB_SSLMODE", "disable")
	}

	return &Config{
		HTTPAddr: getEnvDefault("HTTP_ADDR", ":8080"),
		DB:       DB{Config: db},
		Location: getLocation("TIMEZONE", log),
		Kafka: Kafka{
			Brokers: splitAndTrim(os.Getenv("KAFKA_BROKERS")),
			Topic:   getEnvDefault("KAFKA_TOPIC_ORDERS", "aristobox.orders"),
		},
		Redis: Redis{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getEnvInt("REDIS_DB", 0, log),
			TTL:      getEnvDuration("CATALOG_CACHE_TTL", 10*time.Minute, log),
		},
		Export: Export{
			Dir:          getEnvDefault("EXPORT_DIR", "exports"),
			Interval:     getEnvDuration("EXPORT_INTERVAL", 0, log),
			MarkExported: getEnvBool("EXPORT_MARK_EXPORTED", false, log),
		},
	}
}

func getEnv(key string, log *zap.Logger) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	log.Error("Обязательная переменная окружения не установлена", zap.String("key", key))
	panic("missing required environment variable: " + key)
}

func getEnvDefault(key, def string) string {
	if val, exists := os.LookupEnv(key); exists && val != "" {
		return val
	}
	return def
}

func getEnvInt(key string, def int, log *zap.Logger) int {
	valStr, exists := os.LookupEnv(key)
	if !exists || valStr == "" {
		return def
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Error("Ошибка преобразования переменной окружения в int", zap.String("key", key), zap.Error(err))
		panic("invalid int value for environment variable: " + key)
	}
	return val
}

func getEnvBool(key string, def bool, log *zap.Logger) bool {
	valStr, exists := os.LookupEnv(key)
	if !exists || valStr == "" {
		return def
	}
	val, err := strconv.ParseBool(valStr)
	if err != nil {
		log.Error("Ошибка преобразования переменной окружения в bool", zap.String("key", key), zap.Error(err))
		panic("invalid bool value for environment variable: " + key)
	}
	return val
}

func getEnvDuration(key string, def time.Duration, log *zap.Logger) time.Duration {
	valStr, exists := os.LookupEnv(key)
	if !exists || valStr == "" {
		return def
	}
	val, err := time.ParseDuration(valStr)
	if err != nil {
		log.Error("Ошибка преобразования переменной окружения в duration", zap.String("key", key), zap.Error(err))
		panic("invalid duration value for environment variable: " + key)
	}
	return val
}

func getLocation(key string, log *zap.Logger) *time.Location {
	name := getEnvDefault(key, "Local")
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error("Неизвестная временная зона", zap.String("key", key), zap.String("value", name), zap.Error(err))
		panic("invalid time zone in environment variable: " + key)
	}
	return loc
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	parts := []string{}
	for _, p := range strings.Split(s, ",") {
		pt := strings.TrimSpace(p)
		if pt != "" {
			parts = append(parts, pt)
		}
	}
	return parts
}

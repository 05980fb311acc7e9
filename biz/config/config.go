package config

import (
	"os"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment variables overriding the yaml file,
// e.g. SMARTPARKING_MYSQL_PASSWORD.
const EnvPrefix = "SMARTPARKING"

func Init(filepath string) {
	content, err := os.ReadFile(filepath)
	if err != nil {
		panic(err)
	}

	var conf ServiceConf
	if err := yaml.Unmarshal(content, &conf); err != nil {
		panic(err)
	}

	// .env is optional, missing file is not an error
	_ = godotenv.Load()
	if err := envconfig.Process(EnvPrefix, &conf); err != nil {
		panic(err)
	}

	globalConfig = conf
	hlog.Debugf("config debug: server=%+v mysql.driver=%s redis=%s:%d",
		globalConfig.Server, globalConfig.MySQL.Driver, globalConfig.Redis.IP, globalConfig.Redis.Port)
}

func GetServerConf() ServerConf {
	return globalConfig.Server
}

func GetMySQLConf() MySQLConf {
	return globalConfig.MySQL
}

func GetRedisConf() RedisConf {
	return globalConfig.Redis
}

func GetPasswordConf() PasswordConf {
	return globalConfig.Password
}

func GetJWTConfig() JWTConf {
	return globalConfig.JWT
}

func GetCORSConf() CORSConf {
	return globalConfig.CORS
}

func GetSessionConf() SessionConf {
	return globalConfig.Session
}

func GetRateLimitConf() []RateLimitConf {
	return globalConfig.RateLimit
}

func GetLoggerConf() LoggerConf {
	return globalConfig.Logger
}

func GetLoginProtectionConf() LoginProtectionConf {
	return globalConfig.LoginProtection
}

var globalConfig ServiceConf

type ServiceConf struct {
	Server          ServerConf          `yaml:"server"`
	MySQL           MySQLConf           `yaml:"mysql"`
	Redis           RedisConf           `yaml:"redis"`
	Password        PasswordConf        `yaml:"password"`
	JWT             JWTConf             `yaml:"jwt"`
	CORS            CORSConf            `yaml:"cors"`
	Session         SessionConf         `yaml:"session"`
	RateLimit       []RateLimitConf     `yaml:"rate_limit" ignored:"true"`
	Logger          LoggerConf          `yaml:"logger"`
	LoginProtection LoginProtectionConf `yaml:"login_protection" envconfig:"LOGIN_PROTECTION"`
}

type ServerConf struct {
	Addr            string `yaml:"addr"`
	ExitWaitSeconds int    `yaml:"exit_wait_seconds" envconfig:"EXIT_WAIT_SECONDS"`
}

type MySQLConf struct {
	// Driver is "mysql" (default) or "sqlite" for local development.
	Driver   string `yaml:"driver"`
	DSN      string `yaml:"dsn"`
	DBName   string `yaml:"db_name" envconfig:"DB_NAME"`
	IP       string `yaml:"ip"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`

	MaxOpenConns       int `yaml:"max_open_conns" envconfig:"MAX_OPEN_CONNS"`
	MaxIdleConns       int `yaml:"max_idle_conns" envconfig:"MAX_IDLE_CONNS"`
	ConnMaxLifetimeSec int `yaml:"conn_max_lifetime_sec" envconfig:"CONN_MAX_LIFETIME_SEC"`
}

type RedisConf struct {
	IP       string `yaml:"ip"`
	Port     int    `yaml:"port"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type PasswordConf struct {
	// Algorithm is "bcrypt" (default) or "argon2id".
	Algorithm  string `yaml:"algorithm"`
	BcryptCost int    `yaml:"bcrypt_cost" envconfig:"BCRYPT_COST"`

	ArgonMemoryKB    int `yaml:"argon_memory_kb" envconfig:"ARGON_MEMORY_KB"`
	ArgonTime        int `yaml:"argon_time" envconfig:"ARGON_TIME"`
	ArgonParallelism int `yaml:"argon_parallelism" envconfig:"ARGON_PARALLELISM"`
	ArgonSaltLen     int `yaml:"argon_salt_len" envconfig:"ARGON_SALT_LEN"`
	ArgonKeyLen      int `yaml:"argon_key_len" envconfig:"ARGON_KEY_LEN"`
}

type JWTConf struct {
	Issuer string `yaml:"issuer"`

	AccessTokenSecret string `yaml:"access_token_secret" envconfig:"ACCESS_TOKEN_SECRET"`
	AccessExpiration  int    `yaml:"access_expiration" envconfig:"ACCESS_EXPIRATION"`
}

type CORSConf struct {
	AllowOrigins     []string `yaml:"allow_origins" envconfig:"ALLOW_ORIGINS"`
	AllowMethods     []string `yaml:"allow_methods" envconfig:"ALLOW_METHODS"`
	AllowHeaders     []string `yaml:"allow_headers" envconfig:"ALLOW_HEADERS"`
	AllowCredentials bool     `yaml:"allow_credentials" envconfig:"ALLOW_CREDENTIALS"`
	MaxAge           int      `yaml:"max_age" envconfig:"MAX_AGE"`
}

type SessionConf struct {
	StorePrefix string `yaml:"store_prefix" envconfig:"STORE_PREFIX"`
	Name        string `yaml:"name"`
	Path        string `yaml:"path"`
	Domain      string `yaml:"domain"`
	MaxAge      int    `yaml:"max_age" envconfig:"MAX_AGE"`
	Secure      bool   `yaml:"secure"`
	HTTPOnly    bool   `yaml:"http_only" envconfig:"HTTP_ONLY"`
	SameSite    string `yaml:"same_site" envconfig:"SAME_SITE"`
}

type RateLimitConf struct {
	// Path is the route pattern, e.g. "/api/usuarios/:id".
	Path          string `yaml:"path"`
	WindowSeconds int    `yaml:"window_seconds"`
	Limit         int64  `yaml:"limit"`
	HasSession    bool   `yaml:"has_session"`
}

type LoggerConf struct {
	Level      string `yaml:"level"`
	Dir        string `yaml:"dir"`
	FileName   string `yaml:"file_name" envconfig:"FILE_NAME"`
	MaxSize    int    `yaml:"max_size" envconfig:"MAX_SIZE"`
	MaxBackups int    `yaml:"max_backups" envconfig:"MAX_BACKUPS"`
	MaxAge     int    `yaml:"max_age" envconfig:"MAX_AGE"`
}

type LoginProtectionConf struct {
	WindowSeconds     int `yaml:"window_seconds" envconfig:"WINDOW_SECONDS"`
	Limit             int `yaml:"limit"`
	BlockMinDuration  int `yaml:"block_min_duration" envconfig:"BLOCK_MIN_DURATION"`
	BlockHourDuration int `yaml:"block_hour_duration" envconfig:"BLOCK_HOUR_DURATION"`
	LevelDuration     int `yaml:"level_duration" envconfig:"LEVEL_DURATION"`
}

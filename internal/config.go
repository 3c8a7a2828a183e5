package internal

import (
	"cmp"
	"encoding/json"
	"flag"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	defHost           = "0.0.0.0"
	defPort           = 8080
	defDebug          = false
	defSessionSecret  = "changeMeSessionSecret"
	defSessionTTL     = OneDay
	defLocale         = "en"
	defSecureProtocol = false
)

type Config struct {
	Host           string        `json:"host"`
	Port           int           `json:"port"`
	Debug          bool          `json:"debug"`
	SessionSecret  string        `json:"session_secret"`
	SessionTTL     time.Duration `json:"-"`
	DefaultLocale  string        `json:"default_locale"`
	SecureProtocol bool          `json:"secure_protocol"`
	CertCert       string        `json:"cert_cert"`
	KeyCert        string        `json:"key_cert"`
}

// fileConfig - формат файла: session_ttl задаётся строкой вида "30m", "24h".
type fileConfig struct {
	Config
	SessionTTL string `json:"session_ttl"`
}

type Flags struct {
	ConfigPath     string
	Host           string
	Port           int
	Debug          bool
	SessionSecret  string
	SessionTTL     time.Duration
	DefaultLocale  string
	SecureProtocol bool
	CertCert       string
	KeyCert        string
}

// Дефолты не указывал, так как заданы отдельно.
func parseFlags() Flags {
	var flags Flags

	flag.StringVar(&flags.ConfigPath, "c", "", "Path to config file")
	flag.StringVar(&flags.Host, "host", "", "Server host")
	flag.IntVar(&flags.Port, "port", 0, "Server port")
	flag.BoolVar(&flags.Debug, "debug", false, "Debug mode")
	flag.StringVar(&flags.SessionSecret, "session-secret", "", "Secret for session cookie signing")
	flag.DurationVar(&flags.SessionTTL, "session-ttl", 0, "Session lifetime")
	flag.StringVar(&flags.DefaultLocale, "locale", "", "Default locale (en, fr, de)")
	flag.BoolVar(&flags.SecureProtocol, "s", false, "Use HTTPS")
	flag.StringVar(&flags.CertCert, "cert", "", "Path to Cert file")
	flag.StringVar(&flags.KeyCert, "key-cert", "", "Path to Cert Key file")

	flag.Parse()

	return flags
}

func configFromFlags(flags *Flags) Config {
	return Config{
		Host:           flags.Host,
		Port:           flags.Port,
		Debug:          flags.Debug,
		SessionSecret:  flags.SessionSecret,
		SessionTTL:     flags.SessionTTL,
		DefaultLocale:  flags.DefaultLocale,
		SecureProtocol: flags.SecureProtocol,
		CertCert:       flags.CertCert,
		KeyCert:        flags.KeyCert,
	}
}

func configFromEnv() Config {
	cfg := Config{}

	cfg.Host = os.Getenv("HOST")
	cfg.Port, _ = strconv.Atoi(os.Getenv("PORT"))
	cfg.Debug, _ = strconv.ParseBool(os.Getenv("DEBUG"))
	cfg.SessionSecret = os.Getenv("SESSION_SECRET")
	cfg.SessionTTL, _ = time.ParseDuration(os.Getenv("SESSION_TTL"))
	cfg.DefaultLocale = os.Getenv("DEFAULT_LOCALE")
	cfg.SecureProtocol, _ = strconv.ParseBool(os.Getenv("SECURE_PROTOCOL"))
	cfg.CertCert = os.Getenv("CERT_FILE")
	cfg.KeyCert = os.Getenv("KEY_FILE")

	return cfg
}

func configFromFile(path string) Config {
	cfg := Config{}

	if path == "" {
		log.Info().Msg("Config file path is empty")
		return cfg
	}

	data, err := os.ReadFile(path)

	if err != nil {
		log.Info().Err(err).Msg("Config file read failed")
		return cfg
	}

	var fileCfg fileConfig
	err = json.Unmarshal(data, &fileCfg)
	if err != nil {
		log.Info().Err(err).Msg("Config file unmarshal failed")
		return cfg
	}

	cfg = fileCfg.Config
	if fileCfg.SessionTTL != "" {
		cfg.SessionTTL, err = time.ParseDuration(fileCfg.SessionTTL)
		if err != nil {
			log.Warn().Err(err).Str("session_ttl", fileCfg.SessionTTL).Msg("Config file session_ttl ignored")
			cfg.SessionTTL = 0
		}
	}

	return cfg
}

func defaultConfig() Config {
	return Config{
		Host:           defHost,
		Port:           defPort,
		Debug:          defDebug,
		SessionSecret:  defSessionSecret,
		SessionTTL:     defSessionTTL,
		DefaultLocale:  defLocale,
		SecureProtocol: defSecureProtocol,
	}
}

// ReadConfig - чтение конфига приложения: флаги > env > файл > дефолты.
func ReadConfig() Config {
	flags := parseFlags()

	return mergeConfigs(
		configFromFlags(&flags),
		configFromEnv(),
		configFromFile(flags.ConfigPath),
		defaultConfig(),
	)
}

// mergeConfigs берёт для каждого поля первое ненулевое значение по порядку источников.
// Нулевое значение (false, 0) из более приоритетного источника не перекрывает остальные.
func mergeConfigs(sources ...Config) Config {
	config := Config{}
	for _, src := range sources {
		config.Host = cmp.Or(config.Host, src.Host)
		config.Port = cmp.Or(config.Port, src.Port)
		config.Debug = cmp.Or(config.Debug, src.Debug)
		config.SessionSecret = cmp.Or(config.SessionSecret, src.SessionSecret)
		config.SessionTTL = cmp.Or(config.SessionTTL, src.SessionTTL)
		config.DefaultLocale = cmp.Or(config.DefaultLocale, src.DefaultLocale)
		config.SecureProtocol = cmp.Or(config.SecureProtocol, src.SecureProtocol)
		config.CertCert = cmp.Or(config.CertCert, src.CertCert)
		config.KeyCert = cmp.Or(config.KeyCert, src.KeyCert)
	}

	if config.CertCert == "" || config.KeyCert == "" {
		config.SecureProtocol = false
	}

	return config
}

// DefaultSessionSecret - секрет не задан ни флагом, ни env, ни в файле.
func (c Config) DefaultSessionSecret() bool {
	return c.SessionSecret == defSessionSecret
}

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/rohitsharma/rohitai/backend/internal/analysis/intent"
)

// Config 聚合整个服务的配置项。
type Config struct {
	Server ServerConfig
	Chat   ChatConfig
	Log    LogConfig
}

// ServerConfig 描述 HTTP 服务配置。
type ServerConfig struct {
	Port           string   `env:"PORT" envDefault:"8080"`
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`

	// Addr 由 Port 推导而来。
	Addr string
}

// ChatConfig 描述会话与意图匹配配置。
type ChatConfig struct {
	ThinkingDelay time.Duration `env:"CHAT_THINKING_DELAY" envDefault:"350ms"`
	Greeting      string        `env:"CHAT_GREETING"`
	GreetingOn    bool          `env:"CHAT_GREETING_ENABLED" envDefault:"true"`
	MaxSessions   int           `env:"CHAT_MAX_SESSIONS" envDefault:"1000"`
	RulesFile     string        `env:"CHAT_RULES_FILE"`
	WatchRules    bool          `env:"CHAT_WATCH_RULES" envDefault:"true"`
}

// LogConfig 描述日志配置。
type LogConfig struct {
	Level       string `env:"LOG_LEVEL" envDefault:"info"`
	Development bool   `env:"LOG_DEVELOPMENT" envDefault:"false"`
}

// Load 从环境变量加载配置。
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	addr, err := listenAddr(cfg.Server.Port)
	if err != nil {
		return nil, err
	}
	cfg.Server.Addr = addr

	if cfg.Chat.ThinkingDelay < 0 {
		return nil, fmt.Errorf("invalid CHAT_THINKING_DELAY value: %s", cfg.Chat.ThinkingDelay)
	}
	if cfg.Chat.MaxSessions < 0 {
		return nil, fmt.Errorf("invalid CHAT_MAX_SESSIONS value: %d", cfg.Chat.MaxSessions)
	}
	cfg.Chat.RulesFile = strings.TrimSpace(cfg.Chat.RulesFile)

	switch {
	case !cfg.Chat.GreetingOn:
		cfg.Chat.Greeting = ""
	case strings.TrimSpace(cfg.Chat.Greeting) == "":
		cfg.Chat.Greeting = intent.DefaultGreeting
	}

	origins := cfg.Server.AllowedOrigins[:0]
	for _, origin := range cfg.Server.AllowedOrigins {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	cfg.Server.AllowedOrigins = origins

	return &cfg, nil
}

// listenAddr 解析服务器监听地址。
func listenAddr(port string) (string, error) {
	port = strings.TrimSpace(port)
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, " ") {
		return "", fmt.Errorf("invalid PORT value: %q", port)
	}

	if strings.Contains(port, ":") {
		// 允许用户直接传入 ":8080" 或 "127.0.0.1:8080"。
		return port, nil
	}

	return ":" + port, nil
}

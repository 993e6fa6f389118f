package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// 环境变量覆盖项
const (
	HostEnvVar = "WORMHOLE_HOST" // 覆盖监听地址
	PortEnvVar = "WORMHOLE_PORT" // 覆盖监听端口
)

// Config 服务端配置
type Config struct {
	Server ServerConfig `yaml:"server"`
	Redis  RedisConfig  `yaml:"redis"`
	Room   RoomConfig   `yaml:"room"`
}

// ServerConfig HTTP 服务器配置
type ServerConfig struct {
	Host    string `yaml:"host"`
	Port    int    `yaml:"port"`
	LogFile string `yaml:"log_file"` // 为空时输出到标准错误
}

// RedisConfig Redis 镜像配置
type RedisConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// RoomConfig 房间生命周期配置
type RoomConfig struct {
	IdleTimeout    int `yaml:"idle_timeout"`    // 空闲删除超时（秒）
	MaxIDAttempts  int `yaml:"max_id_attempts"` // ID 分配最大重抽次数
	DeletionBuffer int `yaml:"deletion_buffer"` // 删除请求通道缓冲大小
}

// IdleTimeoutDuration 返回空闲删除超时时长
func (c *RoomConfig) IdleTimeoutDuration() time.Duration {
	return time.Duration(c.IdleTimeout) * time.Second
}

// Load 加载配置文件并应用环境变量覆盖
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default 返回默认配置（含环境变量覆盖）
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	// 默认配置下环境变量格式错误只能忽略，Load 路径会报错
	_ = cfg.applyEnv()
	return cfg
}

// applyDefaults 填充零值字段
func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = "127.0.0.1"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Redis.Addr == "" {
		c.Redis.Addr = "localhost:6379"
	}
	if c.Room.IdleTimeout == 0 {
		c.Room.IdleTimeout = 30
	}
	if c.Room.MaxIDAttempts == 0 {
		c.Room.MaxIDAttempts = 5
	}
	if c.Room.DeletionBuffer == 0 {
		c.Room.DeletionBuffer = 100
	}
}

// applyEnv 应用环境变量覆盖，优先于配置文件
func (c *Config) applyEnv() error {
	if host := os.Getenv(HostEnvVar); host != "" {
		c.Server.Host = host
	}
	if port := os.Getenv(PortEnvVar); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil || p <= 0 || p > 65535 {
			return fmt.Errorf("环境变量 %s 包含无效端口 %q", PortEnvVar, port)
		}
		c.Server.Port = p
	}
	return nil
}

// Package config 负责加载和管理应用程序的配置。
package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// 全局配置变量，存储从配置文件加载的所有设置。
var Conf Config

// Config 是整个应用程序的配置结构体，与 config.yaml 文件结构对应。
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Log        LogConfig        `mapstructure:"log"`
	LLM        LLMConfig        `mapstructure:"llm"`
	Curriculum CurriculumConfig `mapstructure:"curriculum"`
}

// ServerConfig 存储服务器相关的配置。
type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

// DatabaseConfig 存储所有数据库连接的配置。
type DatabaseConfig struct {
	MySQL MySQLConfig `mapstructure:"mysql"`
	Redis RedisConfig `mapstructure:"redis"`
}

// MySQLConfig 存储 MySQL 数据库的配置。
type MySQLConfig struct {
	DSN string `mapstructure:"dsn"`
}

// RedisConfig 存储 Redis 的配置。
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// LogConfig 存储日志相关的配置。
type LogConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

// LLMConfig 存储大语言模型相关的配置。
// APIKey 可由环境变量 GROQ_API_KEY 覆盖；两者都为空时服务拒绝启动。
type LLMConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
	Model   string `mapstructure:"model"`
}

// CurriculumConfig 存储课程生成历史相关的配置。
type CurriculumConfig struct {
	HistoryLimit    int `mapstructure:"history_limit"`
	HistoryTTLHours int `mapstructure:"history_ttl_hours"`
}

// Init 初始化配置加载，从指定的路径读取 YAML 文件并解析到 Conf 变量中。
func Init(configPath string) {
	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")

	if err := viper.ReadInConfig(); err != nil {
		panic(fmt.Errorf("读取配置文件失败: %w", err))
	}

	if err := viper.Unmarshal(&Conf); err != nil {
		panic(fmt.Errorf("无法将配置解析到结构体中: %w", err))
	}

	// 环境变量中的密钥优先于配置文件
	if key := os.Getenv("GROQ_API_KEY"); key != "" {
		Conf.LLM.APIKey = key
	}

	// 历史记录参数缺省值
	if Conf.Curriculum.HistoryLimit <= 0 {
		Conf.Curriculum.HistoryLimit = 20
	}
	if Conf.Curriculum.HistoryTTLHours <= 0 {
		Conf.Curriculum.HistoryTTLHours = 7 * 24
	}
}

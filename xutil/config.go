package xutil

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Config 宿主配置. toml格式, 缺省值可用
type Config struct {
	Log    LogConfig    `toml:"log"`
	Metric MetricConfig `toml:"metric"`
	Window WindowConfig `toml:"window"`
}

type LogConfig struct {
	Dir        string `toml:"dir"`
	Name       string `toml:"name"`
	Level      int    `toml:"level"`
	Console    bool   `toml:"console"`
	MaxSize    int    `toml:"max_size"`    // 单文件上限(MB)
	MaxAge     int    `toml:"max_age"`     // 保留天数
	MaxBackups int    `toml:"max_backups"` // 备份个数
	ZapFile    string `toml:"zap_file"`    // 结构化日志文件. 空则不开
}

type MetricConfig struct {
	Enable bool   `toml:"enable"`
	Listen string `toml:"listen"` // http监听地址, 如 0.0.0.0:13000
	Alias  string `toml:"alias"`  // 上报label
}

type WindowConfig struct {
	// 极值估计的默认窗口长度(毫秒). RTT类采样的推荐起点
	DefaultLengthMsec int `toml:"default_length_msec"`
}

func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Dir:     "./logs",
			Level:   2,
			Console: true,
		},
		Metric: MetricConfig{
			Enable: true,
			Listen: "0.0.0.0:13000",
		},
		Window: WindowConfig{
			DefaultLengthMsec: 1000,
		},
	}
}

// LoadConfig 读toml配置. 文件不存在返回默认配置
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, errors.Wrapf(err, "decode config %s", path)
	}
	return cfg, nil
}

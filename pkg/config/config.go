package config

import (
	"os"
	"sync"

	"github.com/gin-gonic/gin"
	"k8s.io/klog/v2"
	"sigs.k8s.io/yaml"
)

type Config struct {
	// The address the API server binds to.
	ServerAddr string `json:"serverAddr"`

	Auth struct {
		AccessTokenSecret      string `json:"accessTokenSecret"`
		RefreshTokenSecret     string `json:"refreshTokenSecret"`
		AccessTokenExpiryHour  int    `json:"accessTokenExpiryHour"`
		RefreshTokenExpiryHour int    `json:"refreshTokenExpiryHour"`
	} `json:"auth"`

	Postgres struct {
		Host     string `json:"host"`
		Port     string `json:"port"`
		DBName   string `json:"dbname"`
		User     string `json:"user"`
		Password string `json:"password"`
		SSLMode  string `json:"sslmode"`
		TimeZone string `json:"TimeZone"`
	} `json:"postgres"`

	Import struct {
		// Directory used for temporary upload files. Defaults to os.TempDir.
		UploadDir string `json:"uploadDir"`
	} `json:"import"`
}

var (
	once   sync.Once
	config *Config
)

func GetConfig() *Config {
	once.Do(func() {
		config = initConfig()
	})
	return config
}

func IsDebugMode() bool {
	return gin.Mode() == gin.DebugMode
}

// initConfig reads the configuration file. In debug mode the path can be
// overridden with GLOTLINE_DEBUG_CONFIG_PATH, otherwise the file is expected
// at the mounted /etc/config path.
func initConfig() *Config {
	config := &Config{}
	var configPath string
	if IsDebugMode() {
		if os.Getenv("GLOTLINE_DEBUG_CONFIG_PATH") != "" {
			configPath = os.Getenv("GLOTLINE_DEBUG_CONFIG_PATH")
		} else {
			configPath = "./etc/debug-config.yaml"
		}
	} else {
		configPath = "/etc/config/config.yaml"
	}
	klog.Info("config path: ", configPath)

	if err := readConfig(configPath, config); err != nil {
		klog.Error("init config", err)
		panic(err)
	}
	if config.Auth.AccessTokenExpiryHour == 0 {
		config.Auth.AccessTokenExpiryHour = 1
	}
	if config.Auth.RefreshTokenExpiryHour == 0 {
		config.Auth.RefreshTokenExpiryHour = 168
	}
	if config.Import.UploadDir == "" {
		config.Import.UploadDir = os.TempDir()
	}
	return config
}

func readConfig(filePath string, config *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, config)
}

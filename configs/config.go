package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type LogConfig struct {
	Level    string `mapstructure:"level"`
	Prettify bool   `mapstructure:"prettify"`
}

type RPCConfig struct {
	URL     string `mapstructure:"url"`
	Timeout int    `mapstructure:"timeout"`
}

type APIConfig struct {
	Host string `mapstructure:"host"`
}

type Config struct {
	RPC RPCConfig `mapstructure:"rpc"`
	API APIConfig `mapstructure:"api"`
	Log LogConfig `mapstructure:"log"`
}

var Cfg Config

func LoadConfig(cfgFile string) error {
	viper.SetDefault("rpc.url", "https://ethereum.publicnode.com")
	viper.SetDefault("rpc.timeout", 10)
	viper.SetDefault("api.host", ":3000")

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("error reading config file, %s", err)
		}
	} else {
		viper.SetConfigName("config")
		viper.AddConfigPath("./configs")

		// config file is optional, env vars and defaults cover everything
		if err := viper.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return fmt.Errorf("error reading config file, %s", err)
			}
		}
	}

	// sets e.g. RPC_URL to rpc.url
	replacer := strings.NewReplacer(".", "_")
	viper.SetEnvKeyReplacer(replacer)

	viper.AutomaticEnv()

	err := viper.Unmarshal(&Cfg)
	if err != nil {
		return fmt.Errorf("error unmarshalling config: %v", err)
	}

	return nil
}

package app

import (
	"fmt"
	"strings"

	"github.com/saradorri/pokerbankroll/internal/config"
	"github.com/spf13/viper"
)

func (a *application) setupViper(path string) error {
	c, err := LoadConfig(path)
	if err != nil {
		return err
	}
	a.config = c

	fmt.Println("[x] Config loaded successfully")
	return nil
}

// LoadConfig reads config/config.<env>.yml from path; BANKROLL_* variables override it
func LoadConfig(path string) (*config.Config, error) {
	env := config.GetEnvironment()

	v := viper.New()
	v.SetConfigName(fmt.Sprintf("config.%s", env))
	v.SetConfigType("yml")
	v.AddConfigPath(path)

	v.AutomaticEnv()
	v.SetEnvPrefix("BANKROLL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("server.port", "8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.request_timeout", "30s")
	v.SetDefault("jwt.expiry", "24h")
	v.SetDefault("log.level", "info")
	v.SetDefault("bankroll.default_balance", "100.00")
	v.SetDefault("bankroll.negative_balance", "allow")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("could not read config file: %w", err)
	}

	var c config.Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}
	return &c, nil
}

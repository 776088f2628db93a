package providers

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/baileyYOKE/subway-deal-dash-sub000/internal/structures"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	filename := filepath.Base(flags.ConfigPath)
	viper.AddConfigPath(filepath.Dir(flags.ConfigPath))
	viper.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	viper.SetConfigType("yaml")

	viper.BindEnv("logger.level", "ROSTER_LOG_LEVEL")
	viper.BindEnv("redis.addr", "ROSTER_REDIS_ADDR")
	viper.BindEnv("redis.password", "ROSTER_REDIS_PASSWORD")
	viper.BindEnv("sync.flushInterval", "ROSTER_FLUSH_INTERVAL")
	viper.BindEnv("sync.pollInterval", "ROSTER_POLL_INTERVAL")
	viper.BindEnv("media.signingSecret", "ROSTER_MEDIA_SECRET")
	viper.BindEnv("cache.enabled", "ROSTER_CACHE_ENABLED")
	viper.BindEnv("cache.size", "ROSTER_CACHE_SIZE")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = viper.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	if conf.History.Cap <= 0 {
		conf.History.Cap = 50
	}

	conf.AppName = "CampaignRosterSync"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}

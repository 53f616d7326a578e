package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// config carries the resolved settings for one command run. Precedence:
// explicit flags, then SHELF_* environment variables, then the config
// file, then flag defaults.
type config struct {
	Data    string
	Backend string
	Codec   string
	Verbose bool
}

var vp = viper.New()

func initConfig() {
	vp.SetEnvPrefix("SHELF")
	vp.AutomaticEnv()

	if cfgFile := os.Getenv("SHELF_CONFIG"); cfgFile != "" {
		vp.SetConfigFile(cfgFile)
	} else {
		vp.SetConfigName("shelf")
		vp.SetConfigType("yaml")
		vp.AddConfigPath(".")
		vp.AddConfigPath("$HOME/.config/shelf")
	}
	// A missing config file is fine; flags and env cover everything.
	_ = vp.ReadInConfig()

	flags := rootCmd.PersistentFlags()
	_ = vp.BindPFlag("data", flags.Lookup("data"))
	_ = vp.BindPFlag("backend", flags.Lookup("backend"))
	_ = vp.BindPFlag("codec", flags.Lookup("codec"))
	_ = vp.BindPFlag("verbose", flags.Lookup("verbose"))
}

func loadConfig() config {
	return config{
		Data:    vp.GetString("data"),
		Backend: vp.GetString("backend"),
		Codec:   vp.GetString("codec"),
		Verbose: vp.GetBool("verbose"),
	}
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".shelf"
	}
	return filepath.Join(home, ".shelf")
}

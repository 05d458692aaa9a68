package spacesim

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

var (
	cfgLoaded = false
	config    = _simconfig{}
)

// _simconfig is a "hidden" struct, just use `simConfig`
type _simconfig struct {
	timeScale   float64 // artistic speed-up decoupling simulated years from real seconds
	sampleCount int     // points per orbit path
	frameRate   int     // frames per second of the update loop
	listenAddr  string  // address of the transform stream server
	outputDir   string  // where orbit paths are exported
}

// defaults used when no configuration directory is set.
func defaultConfig() _simconfig {
	return _simconfig{timeScale: 300, sampleCount: 50001, frameRate: 60, listenAddr: ":8779", outputDir: "."}
}

// simConfig returns the simulation configuration. It is loaded once, from
// $SIM_CONFIG/conf.toml when the environment variable is set and from the
// defaults otherwise.
func simConfig() _simconfig {
	if cfgLoaded {
		return config
	}
	confPath := os.Getenv("SIM_CONFIG")
	if confPath == "" {
		config = defaultConfig()
		cfgLoaded = true
		return config
	}
	viper.SetConfigName("conf")
	viper.AddConfigPath(confPath)
	if err := viper.ReadInConfig(); err != nil {
		panic(fmt.Errorf("%s/conf.toml not found", confPath))
	}
	viper.SetDefault("simulation.time_scale", 300)
	viper.SetDefault("simulation.sample_count", 50001)
	viper.SetDefault("simulation.frame_rate", 60)
	viper.SetDefault("stream.listen_addr", ":8779")
	viper.SetDefault("general.output_path", ".")

	config = _simconfig{
		timeScale:   viper.GetFloat64("simulation.time_scale"),
		sampleCount: viper.GetInt("simulation.sample_count"),
		frameRate:   viper.GetInt("simulation.frame_rate"),
		listenAddr:  viper.GetString("stream.listen_addr"),
		outputDir:   viper.GetString("general.output_path"),
	}
	if config.timeScale <= 0 {
		panic("simulation.time_scale must be positive")
	}
	if config.sampleCount <= 1 {
		panic("simulation.sample_count must be greater than 1")
	}
	cfgLoaded = true
	return config
}

// TimeScale returns the configured artistic speed-up factor.
func TimeScale() float64 {
	return simConfig().timeScale
}

// SampleCount returns the configured number of points per orbit path.
func SampleCount() int {
	return simConfig().sampleCount
}

// FrameRate returns the configured update-loop frequency in frames per second.
func FrameRate() int {
	return simConfig().frameRate
}

// ListenAddr returns the configured address of the transform stream server.
func ListenAddr() string {
	return simConfig().listenAddr
}

package main

import (
	"flag"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"ebiten-ski/config"
	"ebiten-ski/data"
	"ebiten-ski/gamelog"
)

var (
	configFile string
	logLevel   string
	seed       int64
)

func parseArgs() {
	flag.StringVar(&configFile, "config", config.DefaultConfigFile(), "simulation config file")
	flag.StringVar(&logLevel, "log-level", "", "override the configured log level")
	flag.Int64Var(&seed, "seed", 0, "random seed, 0 picks one from the clock")
	flag.Parse()
}

func loadConfig() *config.SimConfig {
	if _, err := os.Stat(configFile); err != nil {
		gamelog.Infof("config file %s not found, using defaults", configFile)
		return config.Default()
	}
	cfg, err := config.Load(configFile)
	if err != nil {
		gamelog.Fatalf("read config %s failed: %+v", configFile, err)
	}
	return cfg
}

func main() {
	parseArgs()

	cfg := loadConfig()
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	gamelog.SetSource(cfg.Log.Source)
	gamelog.SetLevel(gamelog.ParseLevel(cfg.Log.Level))
	defer gamelog.Sync()

	templates, err := data.LoadDefaultTemplates()
	if err != nil {
		gamelog.Fatalf("load templates failed: %+v", err)
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	gamelog.Infof("starting with seed %d, cycle %dms", seed, cfg.Loop.CycleMillis)

	game := NewGame(cfg, templates, seed)

	windowWidth, windowHeight := config.GetWindowSize()
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("Ski Downhill")
	ebiten.SetTPS(1000 / cfg.Loop.CycleMillis)
	if err := ebiten.RunGame(game); err != nil {
		gamelog.Fatalf("game stopped: %+v", err)
	}
}

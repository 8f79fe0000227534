package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	logger "github.com/d2r2/go-logger"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/aliher1911/uln2003/cli"
	"github.com/aliher1911/uln2003/config"
)

// Populated by ldflags
var version string

func main() {
	configPath := flag.String("config", "uln2003.toml", "Path to config file")
	steps := flag.Int("steps", 0, "Steps to take, negative reverses direction")
	dir := flag.String("dir", "", "Override direction (cw or ccw)")
	serve := flag.Bool("serve", false, "Serve HTTP jog API until interrupted")
	addr := flag.String("addr", "127.0.0.1:8035", "HTTP listen address")
	verbose := flag.Bool("v", false, "Verbose logging")
	versionFlag := flag.Bool("version", false, "Print version")
	flag.Parse()

	if *versionFlag {
		fmt.Println("uln2003 version:", version)
		return
	}

	InitializeLogger()
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	logger.ChangePackageLogLevel("i2c", logger.InfoLevel)

	cfg, err := config.LoadFile(*configPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", *configPath).Msg("Config initialization failed")
	}
	if *dir != "" {
		cfg.Direction = *dir
		if err := cfg.Validate(); err != nil {
			log.Fatal().Err(err).Msg("Invalid direction")
		}
	}

	m, closeFn, err := cli.Open(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Stepper initialization failed")
	}
	defer closeFn()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	if *serve {
		if err := cli.Service(m, *addr, cfg.Delay.Duration, sigs); err != nil {
			log.Err(err).Msg("Server closed with error")
		}
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		<-sigs
		cancel()
	}()
	if err := cli.Jog(ctx, m, *steps, cfg.Delay.Duration); err != nil {
		log.Err(err).Msg("Jog failed")
	}
}

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aleister1102/pagewatch/internal/config"
)

func main() {
	fmt.Println("pagewatch starting...")

	baseDir, err := config.GetBaseDir()
	if err != nil {
		log.Fatalf("[FATAL] Main: Could not determine base directory: %v", err)
	}

	configPath := config.GetConfigPath(baseDir)
	gCfg, err := config.LoadGlobalConfig(configPath)
	if err != nil {
		log.Fatalf("[FATAL] Main: Could not load config using path '%s': %v", configPath, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, gCfg, configPath, baseDir, time.Now()); err != nil {
		stop()
		log.Fatalf("[FATAL] Main: %v", err)
	}
}

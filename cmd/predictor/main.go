package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"PricePredictor/internal/config"
	"PricePredictor/internal/exporter"
	"PricePredictor/internal/recorder"
	"PricePredictor/internal/runner"
	"PricePredictor/internal/sampler"
	"PricePredictor/internal/scheduler"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.SetOutput(os.Stdout)
	log.Println("[INFO] PricePredictor starting...")

	// Flags
	n := flag.Int("n", 0, "max number of files to process per exchange")
	input := flag.String("input", "", "path to the input files")
	output := flag.String("output", "", "path to the output files")
	cronSpec := flag.String("cron", "", "optional cron expression for repeated runs")
	cfgFlag := flag.String("config", "", "path to the config file")
	flag.Parse()

	// Load config, flags take precedence
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	if *cfgFlag != "" {
		cfgPath = *cfgFlag
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if *n != 0 {
		cfg.Batch.MaxFiles = *n
	}
	if *input != "" {
		cfg.Batch.InputDir = *input
	}
	if *output != "" {
		cfg.Batch.OutputDir = *output
	}
	if *cronSpec != "" {
		cfg.Schedule.Cron = *cronSpec
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Init pipeline
	run := runner.New(
		cfg.Batch.InputDir,
		cfg.Batch.MaxFiles,
		sampler.New(sampler.ClockSeeder),
		exporter.NewWriter(cfg.Batch.OutputDir),
		rec,
	)
	sched := scheduler.NewScheduler(run)

	// One-shot mode
	if cfg.Schedule.Cron == "" {
		sched.RunNow()
		log.Println("[INFO] PricePredictor finished")
		return
	}

	// Scheduled mode
	if err := sched.Register(cfg.Schedule.Cron); err != nil {
		log.Fatalf("[FATAL] register cron task: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing batch now")
		sched.RunNow()
	}

	log.Println("[INFO] PricePredictor is running. Press Ctrl+C to stop.")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	log.Println("[INFO] PricePredictor stopped")
}

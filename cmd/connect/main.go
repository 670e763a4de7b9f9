package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/ardanlabs/connect4/cmd/connect/board"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// config holds the program settings. Defaults come from the environment
// and flags override them.
type config struct {
	debug       bool
	sound       bool
	logFile     string
	logLevel    string
	snapshotDir string
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {

	// -------------------------------------------------------------------------
	// Load configuration

	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	// -------------------------------------------------------------------------
	// Construct the logger. The terminal belongs to the board so logs can
	// only go to a file.

	logger := zerolog.Nop()

	if cfg.debug {
		f, err := os.OpenFile(cfg.logFile, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0666)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()

		logger = zerolog.New(f).With().Timestamp().Logger()
	}

	if lvl, err := zerolog.ParseLevel(cfg.logLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	logger.Info().
		Bool("sound", cfg.sound).
		Str("snapshots", cfg.snapshotDir).
		Msg("starting connect")

	// -------------------------------------------------------------------------
	// Create the board and initialize the display

	bcfg := board.Config{
		Log:         logger,
		SnapshotDir: cfg.snapshotDir,
		Sound:       cfg.sound,
		Animate:     true,
	}

	b, err := board.New(bcfg)
	if err != nil {
		return fmt.Errorf("new board: %w", err)
	}
	defer b.Shutdown()

	// -------------------------------------------------------------------------
	// Start handling board input

	<-b.Run()

	logger.Info().Msg("shutdown")

	return nil
}

// =============================================================================

func loadConfig(args []string) (config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := config{
		debug:       envBool("CONNECT_DEBUG", false),
		sound:       envBool("CONNECT_SOUND", false),
		logFile:     envString("CONNECT_LOG_FILE", "connect.log"),
		logLevel:    envString("LOG_LEVEL", "info"),
		snapshotDir: envString("CONNECT_SNAPSHOT_DIR", "snapshots"),
	}

	fs := flag.NewFlagSet("connect", flag.ContinueOnError)
	fs.BoolVar(&cfg.debug, "debug", cfg.debug, "write logs to the log file")
	fs.BoolVar(&cfg.sound, "sound", cfg.sound, "announce results using text to speech")
	fs.StringVar(&cfg.logFile, "log", cfg.logFile, "path of the log file")
	fs.StringVar(&cfg.logLevel, "level", cfg.logLevel, "log level")
	fs.StringVar(&cfg.snapshotDir, "snapshots", cfg.snapshotDir, "directory for PNG snapshots")

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	return cfg, nil
}

func envString(key string, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}

	return def
}

func envBool(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def
	}

	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}

	return b
}

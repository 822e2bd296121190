package config

import (
	"flag"
	"fmt"
	"time"
)

// parseFlags parses configuration flags from args.
//
// Flags:
//
//	-d database DSN (SQLite file path)
//	-log-file JSON log file path
//	-log-level log level (debug, info, warn, error)
//	-max-attempts master password attempts per sign-in
//	-no-clipboard disable copying secrets to the clipboard
//	-clipboard-ttl how long a copied secret stays in the clipboard
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("go-pass-vault", flag.ContinueOnError)

	var (
		databaseDSN      string
		logFilePath      string
		logLevel         string
		maxAttempts      int
		disableClipboard bool
		clipboardTTL     time.Duration
		jsonConfigPath   string
	)

	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&logFilePath, "log-file", "", "Log file path")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.IntVar(&maxAttempts, "max-attempts", 0, "Master password attempts per sign-in")
	fs.BoolVar(&disableClipboard, "no-clipboard", false, "Disable clipboard copy")
	fs.DurationVar(&clipboardTTL, "clipboard-ttl", 0, "Clipboard wipe delay (e.g., 30s)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			MaxSignInAttempts: maxAttempts,
			DisableClipboard:  disableClipboard,
			ClipboardTTL:      clipboardTTL,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Log: Log{
			FilePath: logFilePath,
			Level:    logLevel,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

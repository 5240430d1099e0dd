package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/nickyhof/GamesDB/conn"
	"github.com/nickyhof/GamesDB/demo"
	"github.com/nickyhof/GamesDB/format"
)

const (
	ErrorColor   = "\033[31m" // Red
	SuccessColor = "\033[32m" // Green
	ResetColor   = "\033[0m"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run handles the program logic, separated from main for testability. It
// returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("gamesdb", flag.ContinueOnError)
	flags.SetOutput(stderr)

	dbPath := flags.String("db", "", "Database file path or http(s)://, s3://, file:// URL (default: the program's own path)")
	program := flags.String("program", demo.ClassroomProgram, "Demonstration program to run: classroom or starter")
	s3Region := flags.String("s3Region", "", "AWS region for s3:// databases")
	s3Endpoint := flags.String("s3Endpoint", "", "Custom S3-compatible endpoint")
	s3AccessKey := flags.String("s3AccessKey", "", "S3 access key (default credential chain if empty)")
	s3SecretKey := flags.String("s3SecretKey", "", "S3 secret key")
	cacheDir := flags.String("cacheDir", "", "Directory remote databases are copied into")
	showVersion := flags.Bool("version", false, "Show version and exit")

	if err := flags.Parse(args); err != nil {
		return 2
	}

	if *showVersion {
		fmt.Fprintf(stdout, "GamesDB v%s (%s driver %s)\n", Version, conn.DriverType(), conn.DriverPackage())
		return 0
	}

	logger := log.New(stderr, "", log.LstdFlags)
	runner := demo.NewRunner(demo.Config{
		Location: *dbPath,
		Remote: conn.RemoteConfig{
			AccessKey: *s3AccessKey,
			SecretKey: *s3SecretKey,
			Region:    *s3Region,
			Endpoint:  *s3Endpoint,
			CacheDir:  *cacheDir,
		},
		Out:     stdout,
		Logger:  logger,
		Manager: conn.NewManager(conn.WithLogger(logger)),
	})

	start := time.Now()
	if err := runner.Run(context.Background(), *program); err != nil {
		fmt.Fprintf(stderr, "%s✗ Error: %v%s\n", ErrorColor, err, ResetColor)
		if errors.Is(err, demo.ErrUnknownProgram) {
			return 2
		}
		return 1
	}

	fmt.Fprintf(stdout, "%s✓ Finished in %s%s\n", SuccessColor, format.Duration(time.Since(start)), ResetColor)
	return 0
}

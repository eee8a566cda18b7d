package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/ironsheep/cgats-tools/internal/config"
	"github.com/ironsheep/cgats-tools/internal/logging"
	"github.com/ironsheep/cgats-tools/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

// run parses args, configures logging and serves until stdin closes.
// It returns the process exit code.
func run(args []string, stdout io.Writer) int {
	fs := flag.NewFlagSet("cgats-mcp", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	configPath := fs.String("config", "", "Path to a YAML config file (default: $"+config.EnvConfigPath+")")
	showVersion := fs.Bool("version", false, "Print version information")
	fs.BoolVar(showVersion, "v", false, "Print version information")
	showHelp := fs.Bool("help", false, "Print this help message")
	fs.BoolVar(showHelp, "h", false, "Print this help message")

	// Bare subcommand spellings are accepted too.
	if len(args) > 0 {
		switch args[0] {
		case "version":
			args = []string{"--version"}
		case "help":
			args = []string{"--help"}
		}
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	switch {
	case *showVersion:
		printVersion(stdout)
		return 0
	case *showHelp:
		printHelp(stdout)
		return 0
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cgats-mcp: %v\n", err)
		return 1
	}
	if err := logging.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		fmt.Fprintf(os.Stderr, "cgats-mcp: %v\n", err)
		return 1
	}

	log := logging.New("main")
	log.WithFields(logrus.Fields{
		"version": Version,
		"built":   BuildTime,
		"commit":  GitCommit,
		"method":  cfg.Method().String(),
	}).Debug("CGATS MCP Server starting")

	srv := server.New(cfg, Version)
	if err := srv.Run(); err != nil {
		log.WithError(err).Error("server error")
		return 1
	}
	return 0
}

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "cgats-mcp %s\n", Version)
	fmt.Fprintf(w, "  Build time: %s\n", BuildTime)
	fmt.Fprintf(w, "  Git commit: %s\n", GitCommit)
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, "cgats-mcp - MCP server for CGATS color measurement files")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage: cgats-mcp [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "  --config PATH    Read settings from a YAML file")
	fmt.Fprintln(w, "  --version, -v    Print version information")
	fmt.Fprintln(w, "  --help, -h       Print this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment variables:")
	fmt.Fprintf(w, "  %s=PATH         Config file when --config is not given\n", config.EnvConfigPath)
	fmt.Fprintf(w, "  %s=debug     Override log.level\n", config.EnvLogLevel)
	fmt.Fprintf(w, "  %s=DE2000    Override deltae.method\n", config.EnvMethod)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "This server communicates via MCP protocol over stdin/stdout.")
	fmt.Fprintln(w, "Configure it in your MCP client (e.g., Claude Desktop).")
}

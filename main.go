package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"sllist/config"
	"sllist/store"
)

var configPath = flag.String("config", "", "read settings from TOML `file`")
var dbPath = flag.String("db", "", "run log database `file`")
var mode = flag.String("mode", "", "load | bench | runs")
var n = flag.Int("n", 0, "elements per bench trial")
var trials = flag.Int("trials", 0, "bench trials")
var front = flag.Bool("front", false, "load words with AddFirst instead of AddLast")
var jobs = flag.Int("j", 0, "files loaded concurrently")
var verbose = flag.Bool("v", false, "debug logging")
var cpuprofile = flag.String("cpuprofile", "", "write cpu profile to 'file'")
var memprofile = flag.String("memprofile", "", "write mem profile to 'file'")

func main() {
	flag.Parse()
	if err := run(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := settings()
	if err != nil {
		return err
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return errors.Wrap(err, "log level")
	}
	if *verbose {
		level = log.DebugLevel
	}
	log.SetLevel(level)

	// PROFILING SNIPPET
	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			return errors.Wrap(err, "could not *create* CPU profile")
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return errors.Wrap(err, "could not *start* CPU profile")
		}
		defer pprof.StopCPUProfile()
	}
	defer writeMemProfile()
	// PROFILING SNIPPET

	st, err := store.Open(cfg.DB)
	if err != nil {
		return err
	}
	defer st.Close()

	switch cfg.Mode {
	case "load":
		if flag.NArg() == 0 {
			return errors.New("load: no input files")
		}
		_, err = runLoad(cfg, st, flag.Args())
	case "bench":
		_, err = runBench(cfg, st)
	case "runs":
		err = printRuns(st, os.Stdout)
	}
	return err
}

// settings reads the config file and applies the flags that were set on the command line.
func settings() (config.Config, error) {
	cfg, err := config.Load(*configPath)
	if err != nil {
		return cfg, err
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "db":
			cfg.DB = *dbPath
		case "mode":
			cfg.Mode = *mode
		case "n":
			cfg.N = *n
		case "trials":
			cfg.Trials = *trials
		case "front":
			cfg.Front = *front
		case "j":
			cfg.Jobs = *jobs
		}
	})
	return cfg, cfg.Validate()
}

func writeMemProfile() {
	if *memprofile == "" {
		return
	}
	f, err := os.Create(*memprofile)
	if err != nil {
		log.Error("could not *create* MEM profile: ", err)
		return
	}
	defer f.Close()
	runtime.GC()
	if err := pprof.WriteHeapProfile(f); err != nil {
		log.Error("could not *start*  MEM profile: ", err)
	}
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "usage: sllist [flags] [-mode load] FILE...\n       sllist [flags] -mode bench|runs\n")
	flag.PrintDefaults()
}

func init() {
	flag.Usage = usage
}

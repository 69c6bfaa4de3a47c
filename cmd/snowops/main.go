// Command snowops solves one puzzle day from an input file and prints the
// answers to both parts.
//
//	snowops [-config snowops.yaml] [-v] <day> <input-file>
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/snowops/cycle"
	"github.com/katalvlaran/snowops/pulse"
	"github.com/katalvlaran/snowops/puzzles"
)

var (
	log = logrus.New()

	configPath string
	verbose    bool
)

func init() {
	const usage = "config file path (YAML)"
	flag.StringVar(&configPath, "config", "", usage)
	flag.StringVar(&configPath, "c", "", usage+" (shorthand)")
	flag.BoolVar(&verbose, "v", false, "debug logging")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <day> <input-file>\n", os.Args[0])
		flag.PrintDefaults()
		days := make([]string, 0)
		for _, d := range puzzles.Days() {
			days = append(days, strconv.Itoa(d))
		}
		fmt.Fprintf(flag.CommandLine.Output(), "days: %s\n", strings.Join(days, ", "))
	}
}

func loadConfig() puzzles.Config {
	if configPath == "" {
		return puzzles.DefaultConfig()
	}
	cfg, err := puzzles.LoadConfig(configPath)
	if err != nil {
		log.Fatal("unable to load config: ", err)
	}
	return cfg
}

func main() {
	flag.Parse()
	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}

	cfg := loadConfig()
	if err := cfg.ConfigureLogging(verbose, log, cycle.Log, pulse.Log); err != nil {
		log.Fatal(err)
	}

	dayNum, err := strconv.Atoi(flag.Arg(0))
	if err != nil {
		log.Fatalf("invalid day %q: %v", flag.Arg(0), err)
	}
	day, err := puzzles.Lookup(dayNum)
	if err != nil {
		log.Fatal(err)
	}
	raw, err := os.ReadFile(flag.Arg(1))
	if err != nil {
		log.Fatal("unable to read input: ", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	log.WithFields(logrus.Fields{
		"day":   day.Number,
		"title": day.Title,
		"input": flag.Arg(1),
	}).Debug("solving")

	part1, part2, err := puzzles.SolveBoth(ctx, day, string(raw), cfg)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(part1)
	fmt.Println(part2)
}

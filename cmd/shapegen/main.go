package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"

	"github.com/htm-community/shapes"
	"github.com/htm-community/shapes/encoders"
)

var (
	version = "--- set from makefile ---"

	help        = flag.Bool("help", false, "show help message")
	showVersion = flag.Bool("version", false, "show command version")
	verbose     = flag.Bool("v", false, "debug logging")
	configPath  = flag.String("config", "", "YAML generator config, defaults when empty")
	recPath     = flag.String("recording", "", "DVS recording whose header sets the grid resolution")
	outPath     = flag.String("out", "-", "CSV output file, - for stdout")
	showFields  = flag.Bool("show", false, "print the receptive field of the centre neuron of each layer to stderr")
)

func main() {
	flag.Parse()

	if *help {
		flag.Usage()
		return
	}

	if *showVersion {
		fmt.Println(version)
		return
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, logger); err != nil {
		logger.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {

	// ----------------------------------------------------------------------------
	// Configuration

	cfg := shapes.NewConfig()
	if *configPath != "" {
		var err error
		if cfg, err = shapes.LoadConfig(*configPath); err != nil {
			return err
		}
	}

	if *recPath != "" {
		rec, err := encoders.LoadRecordingHeader(*recPath)
		if err != nil {
			return err
		}
		if _, err := rec.Encoder(); err != nil {
			return err
		}
		logger.Info("recording loaded",
			"path", *recPath,
			"resolution", rec.Resolution,
			"sim_time_ms", rec.SimTime)
		cfg.Resolution = rec.Resolution
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	// ----------------------------------------------------------------------------
	// Generation

	kernel := cfg.Kernel()
	logger.Debug("kernel", "taps", kernel.String(), "mass", kernel.Mass())

	params := cfg.ProjectionParams()
	params.Logger = logger
	proj := shapes.NewProjection(shapes.NewGenerator(kernel), params)

	layers, err := proj.Build(ctx)
	if err != nil {
		return err
	}

	if *showFields {
		centre := shapes.NeuronId(cfg.Resolution/2, cfg.Resolution/2, cfg.Resolution)
		for _, layer := range params.Layers() {
			rf := shapes.NewReceptiveField(layers[layer], centre, cfg.Resolution)
			fmt.Fprintf(os.Stderr, "%v\n%v\n", layer, rf.ToString())
		}
	}

	// ----------------------------------------------------------------------------
	// Output

	if *outPath == "-" {
		return writeCSV(os.Stdout, params.Layers(), layers)
	}

	f, err := os.Create(*outPath)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	if err := writeCSV(f, params.Layers(), layers); err != nil {
		f.Close()
		return fmt.Errorf("writing %v: %w", *outPath, err)
	}
	logger.Info("connections written", "path", *outPath)
	return f.Close()
}

func writeCSV(out io.Writer, order []shapes.Layer, layers map[shapes.Layer][]shapes.Connection) error {
	w := csv.NewWriter(out)
	if err := w.Write([]string{"layer", "source", "target", "weight", "delay"}); err != nil {
		return err
	}

	for _, layer := range order {
		name := layer.String()
		for _, c := range layers[layer] {
			err := w.Write([]string{
				name,
				strconv.Itoa(c.Source),
				strconv.Itoa(c.Target),
				strconv.FormatFloat(c.Weight, 'g', -1, 64),
				strconv.FormatFloat(c.Delay, 'g', -1, 64),
			})
			if err != nil {
				return err
			}
		}
	}

	w.Flush()
	return w.Error()
}

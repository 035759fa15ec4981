// SPDX-License-Identifier: MIT

// orbit samples the orbit of a point, boundary point, geodesic or horocycle
// under a finitely generated Fuchsian group and writes the records as JSON,
// YAML or CBOR, optionally compressed.
//
// A request comes from --config (YAML or JSONC), then HYPERBOLIC_*
// environment variables (optionally loaded from --env-file), then explicit
// flags, each layer overriding the previous one.
//
// Exit codes: 0 on success, 1 on runtime failure, 2 on usage errors.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/hyperbolic/codec"
	"github.com/katalvlaran/hyperbolic/config"
	"github.com/katalvlaran/hyperbolic/sampler"
)

const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// flags holds the raw command line.
type flags struct {
	config         string
	envFile        string
	space          string
	generators     []string
	base           string
	baseAtInfinity bool
	count          int
	mode           string
	seed           int64
	tolerance      float64
	policy         string
	curvePoints    int
	selfCheck      bool
	format         string
	compress       string
	output         string
	logLevel       string
	logJSON        bool
}

func newFlagSet(f *flags, stderr io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet("orbit", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&f.config, "config", "", "request file (.yaml, .yml, .json, .jsonc)")
	fs.StringVar(&f.envFile, "env-file", "", "dotenv file with HYPERBOLIC_* variables")
	fs.StringVar(&f.space, "space", "", "point, boundary, geodesic or horocycle")
	fs.StringArrayVarP(&f.generators, "generator", "g", nil, "generator entries a,b,c,d (repeatable)")
	fs.StringVar(&f.base, "base", "", "base values: re,im | t | start,end | height")
	fs.BoolVar(&f.baseAtInfinity, "base-at-infinity", false, "start a boundary orbit at ∞")
	fs.IntVarP(&f.count, "count", "n", 0, "number of orbit steps")
	fs.StringVar(&f.mode, "mode", "", "sequential or random")
	fs.Int64Var(&f.seed, "seed", 0, "random seed (0 seeds from the clock)")
	fs.Float64Var(&f.tolerance, "tolerance", 0, "determinant tolerance (0 is exact)")
	fs.StringVar(&f.policy, "policy", "", "projected or strict")
	fs.IntVar(&f.curvePoints, "curve-points", 0, "polyline samples per geodesic or horocycle")
	fs.BoolVar(&f.selfCheck, "self-check", false, "verify group and action laws before sampling")
	fs.StringVar(&f.format, "format", "", "json, yaml or cbor (default from --output, else json)")
	fs.StringVar(&f.compress, "compress", "", "none, zstd or lz4 (default from --output)")
	fs.StringVarP(&f.output, "output", "o", "", "output file (default stdout)")
	fs.StringVar(&f.logLevel, "log-level", "info", "panic, fatal, error, warn, info, debug or trace")
	fs.BoolVar(&f.logJSON, "log-json", false, "log as JSON")

	return fs
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	var f flags
	fs := newFlagSet(&f, stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected argument: %s\n", fs.Arg(0))
		return exitUsage
	}

	log, err := newLogger(f.logLevel, f.logJSON, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitUsage
	}

	req, err := buildRequest(fs, &f)
	if err != nil {
		log.WithError(err).Error("invalid request")
		return usageOr(err)
	}

	format, compression, err := outputEncoding(fs, &f)
	if err != nil {
		log.WithError(err).Error("invalid output encoding")
		return exitUsage
	}

	res, err := sampler.Run(ctx, req, log)
	if err != nil {
		return usageOr(err)
	}

	if err := writeResult(res, f.output, format, compression, stdout); err != nil {
		log.WithError(err).Error("writing result")
		return exitFail
	}

	return exitOK
}

func newLogger(level string, asJSON bool, out io.Writer) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	log := logrus.New()
	log.SetOutput(out)
	log.SetLevel(lvl)
	if asJSON {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return log, nil
}

// buildRequest layers the config file, the environment and changed flags.
func buildRequest(fs *pflag.FlagSet, f *flags) (*config.Request, error) {
	req := config.Default()
	if f.config != "" {
		var err error
		if req, err = config.Load(f.config); err != nil {
			return nil, err
		}
	}
	if err := config.ApplyEnv(req, f.envFile); err != nil {
		return nil, err
	}

	if fs.Changed("space") {
		req.Space = config.Space(f.space)
	}
	if fs.Changed("policy") {
		req.Policy = config.Policy(f.policy)
	}
	if fs.Changed("generator") {
		req.Generators = req.Generators[:0]
		for _, s := range f.generators {
			g, err := config.ParseGenerator(s)
			if err != nil {
				return nil, err
			}
			req.Generators = append(req.Generators, g)
		}
	}
	if fs.Changed("base") {
		vals, err := config.ParseFloats(f.base)
		if err != nil {
			return nil, err
		}
		req.Base = vals
	}
	if fs.Changed("base-at-infinity") {
		req.BaseAtInfinity = f.baseAtInfinity
	}
	if fs.Changed("count") {
		req.Count = f.count
	}
	if fs.Changed("mode") {
		req.Mode = f.mode
	}
	if fs.Changed("seed") {
		req.Seed = f.seed
	}
	if fs.Changed("tolerance") {
		req.Tolerance = f.tolerance
	}
	if fs.Changed("curve-points") {
		req.CurvePoints = f.curvePoints
	}
	if fs.Changed("self-check") {
		req.SelfCheck = f.selfCheck
	}

	return req, nil
}

func outputEncoding(fs *pflag.FlagSet, f *flags) (codec.Format, codec.Compression, error) {
	format, compression := codec.FormatJSON, codec.CompressNone
	if f.output != "" {
		format, compression = codec.FormatFromPath(f.output)
	}

	var err error
	if fs.Changed("format") {
		if format, err = codec.ParseFormat(f.format); err != nil {
			return "", "", err
		}
	}
	if fs.Changed("compress") {
		if compression, err = codec.ParseCompression(f.compress); err != nil {
			return "", "", err
		}
	}

	return format, compression, nil
}

func writeResult(res *sampler.Result, path string, f codec.Format, c codec.Compression, stdout io.Writer) (err error) {
	if path == "" {
		return codec.Write(stdout, res, f, c)
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()

	return codec.Write(file, res, f, c)
}

func usageOr(err error) int {
	if errors.Is(err, config.ErrInvalidRequest) || errors.Is(err, config.ErrUnsupportedFormat) {
		return exitUsage
	}

	return exitFail
}

/*
 * fr2nim - A French-keyword toy language transpiled to Nim
 *
 * Copyright Flow Foundation
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/onflow/fr2nim/errors"
	"github.com/onflow/fr2nim/transpiler"
)

func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewDevelopmentConfig()
	config.DisableStacktrace = true
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}
	return config.Build()
}

// loadConfig loads the configuration file at the given path.
// The default configuration file is optional.
func loadConfig(path string) (transpiler.Config, error) {
	if path == transpiler.DefaultConfigFileName {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return transpiler.DefaultConfig(), nil
		}
	}
	return transpiler.LoadConfig(path)
}

type buildFlags struct {
	config  *string
	compile *bool
	target  *string
	prefix  *string
	stdlib  *string
	output  *string
	jobs    *int
	timeout *time.Duration
	verbose *bool
}

func newBuildFlags(flags *flag.FlagSet) buildFlags {
	return buildFlags{
		config:  flags.String("config", transpiler.DefaultConfigFileName, "configuration file"),
		compile: flags.Bool("compile", false, "compile the generated code"),
		target:  flags.String("target", "", "target operating system (macos|windows|linux)"),
		prefix:  flags.String("prefix", "", "stdlib prefix, random if empty"),
		stdlib:  flags.String("stdlib", "", "stdlib directory"),
		output:  flags.String("output", "", "output directory, next to the sources if empty"),
		jobs:    flags.Int("jobs", 0, "maximum number of files transpiled concurrently"),
		timeout: flags.Duration("timeout", 0, "compiler timeout"),
		verbose: flags.Bool("v", false, "log debug messages"),
	}
}

// apply overrides the configuration with the flags set on the command line
func (f buildFlags) apply(flags *flag.FlagSet, config *transpiler.Config) (err error) {
	flags.Visit(func(set *flag.Flag) {
		switch set.Name {
		case "compile":
			config.Compile = *f.compile
		case "target":
			var target transpiler.Target
			target, err = transpiler.ParseTarget(*f.target)
			config.Target = target
		case "prefix":
			config.Prefix = *f.prefix
		case "stdlib":
			config.Stdlib = *f.stdlib
		case "output":
			config.Output = *f.output
		case "jobs":
			config.Jobs = *f.jobs
		case "timeout":
			config.Timeout = *f.timeout
		}
	})
	return err
}

func runBuild(args []string, out io.Writer) error {
	flags := flag.NewFlagSet("build", flag.ContinueOnError)
	options := newBuildFlags(flags)

	err := flags.Parse(args)
	if err != nil {
		return err
	}

	files := flags.Args()
	if len(files) == 0 {
		return errors.NewDefaultUserError("expected at least one source file")
	}

	config, err := loadConfig(*options.config)
	if err != nil {
		return err
	}

	err = options.apply(flags, &config)
	if err != nil {
		return err
	}

	logger, err := newLogger(*options.verbose)
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()
	config.Logger = logger

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return build(ctx, transpiler.New(config), files, out)
}

func build(ctx context.Context, t *transpiler.Transpiler, files []string, out io.Writer) error {
	var bar *progressbar.ProgressBar
	if len(files) > 1 {
		bar = progressbar.NewOptions(
			len(files),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription("building"),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}

	for _, file := range files {
		result, err := t.Build(ctx, file)
		if err != nil {
			return err
		}

		for _, output := range result.Outputs {
			_, err = fmt.Fprintf(out, "Transpiled %s -> %s\n", output.Source, output.Path)
			if err != nil {
				return err
			}
		}

		if result.Stdlib != nil {
			_, err = fmt.Fprintf(out, "Bundled stdlib %s\n", result.Stdlib.Path)
			if err != nil {
				return err
			}
		}

		if result.Binary != "" {
			_, err = fmt.Fprintf(out, "Compiled %s\n", result.Binary)
			if err != nil {
				return err
			}
		}

		if bar != nil {
			_ = bar.Add(1)
		}
	}

	if bar != nil {
		_ = bar.Finish()
	}

	return nil
}

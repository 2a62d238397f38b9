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

package transpiler

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/onflow/fr2nim/errors"
)

// DefaultConfigFileName is the name of the configuration file
// which the CLI looks for in the working directory
const DefaultConfigFileName = "fr2nim.yaml"

const (
	// DefaultStdlibPrefix is the prefix used for stdlib sources
	// and for programs which are not built, e.g. in the REPL
	DefaultStdlibPrefix = "std"
	DefaultCompiler     = "nim"
	DefaultTimeout      = 5 * time.Minute
)

// Target is the operating system the compiled binary is built for
type Target string

const (
	TargetMacOS   Target = "macos"
	TargetWindows Target = "windows"
	TargetLinux   Target = "linux"
)

// HostTarget returns the target of the current operating system.
// Unknown operating systems fall back to Linux.
func HostTarget() Target {
	switch runtime.GOOS {
	case "darwin":
		return TargetMacOS
	case "windows":
		return TargetWindows
	default:
		return TargetLinux
	}
}

func ParseTarget(s string) (Target, error) {
	target := Target(strings.ToLower(s))
	switch target {
	case TargetMacOS, TargetWindows, TargetLinux:
		return target, nil
	}
	return "", errors.NewDefaultUserError(
		"unknown target %q, expected one of %s",
		s,
		strings.Join([]string{string(TargetMacOS), string(TargetWindows), string(TargetLinux)}, ", "),
	)
}

// NimOS returns the value of the Nim compiler's `--os` option
func (t Target) NimOS() string {
	if t == TargetMacOS {
		return "macosx"
	}
	return string(t)
}

// BinaryName returns the file name of the executable the compiler produces for the given module
func (t Target) BinaryName(module string) string {
	if t == TargetWindows {
		return module + ".exe"
	}
	return module
}

// OnRecordTraceFunc is a function that records a trace.
type OnRecordTraceFunc func(
	operationName string,
	duration time.Duration,
	attrs []attribute.KeyValue,
)

type Config struct {
	// Prefix is the name of the stdlib module imported by all generated files.
	// A random prefix is generated for each build if empty.
	Prefix string
	// Stdlib is the directory containing the stdlib sources.
	// No stdlib is bundled if empty or missing.
	Stdlib string
	// Output is the directory into which generated files are written.
	// Generated files are written next to their sources if empty.
	Output string
	// Target is the operating system to compile for
	Target Target
	// Compile enables compilation of the generated code
	Compile bool
	// Compiler is the Nim compiler command
	Compiler string
	// Timeout is the maximum duration of a compiler run
	Timeout time.Duration
	// Jobs is the maximum number of files transpiled concurrently
	Jobs int
	// Normalize enables NFC normalization of sources
	Normalize bool
	// Logger receives the build events
	Logger *zap.Logger
	// OnRecordTrace is called with the duration of each stage, if set
	OnRecordTrace OnRecordTraceFunc
}

func DefaultConfig() Config {
	return Config{
		Target:    HostTarget(),
		Compiler:  DefaultCompiler,
		Timeout:   DefaultTimeout,
		Jobs:      runtime.NumCPU(),
		Normalize: true,
		Logger:    zap.NewNop(),
	}
}

// withDefaults returns the config with all unset fields set to their defaults
func (c Config) withDefaults() Config {
	defaults := DefaultConfig()
	if c.Target == "" {
		c.Target = defaults.Target
	}
	if c.Compiler == "" {
		c.Compiler = defaults.Compiler
	}
	if c.Timeout <= 0 {
		c.Timeout = defaults.Timeout
	}
	if c.Jobs < 1 {
		c.Jobs = 1
	}
	if c.Logger == nil {
		c.Logger = defaults.Logger
	}
	return c
}

// fileConfig is the configuration file format
type fileConfig struct {
	Prefix    string `yaml:"prefix"`
	Stdlib    string `yaml:"stdlib"`
	Output    string `yaml:"output"`
	Target    string `yaml:"target"`
	Compile   *bool  `yaml:"compile"`
	Compiler  string `yaml:"compiler"`
	Timeout   string `yaml:"timeout"`
	Jobs      int    `yaml:"jobs"`
	Normalize *bool  `yaml:"normalize"`
}

// ParseConfig parses a YAML configuration.
// Settings missing from the configuration have their default values.
func ParseConfig(data []byte) (Config, error) {
	config := DefaultConfig()

	var file fileConfig
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Config{}, fmt.Errorf("failed to parse configuration: %w", err)
	}

	if file.Prefix != "" {
		config.Prefix = file.Prefix
	}
	if file.Stdlib != "" {
		config.Stdlib = file.Stdlib
	}
	if file.Output != "" {
		config.Output = file.Output
	}
	if file.Target != "" {
		target, err := ParseTarget(file.Target)
		if err != nil {
			return Config{}, err
		}
		config.Target = target
	}
	if file.Compile != nil {
		config.Compile = *file.Compile
	}
	if file.Compiler != "" {
		config.Compiler = file.Compiler
	}
	if file.Timeout != "" {
		timeout, err := time.ParseDuration(file.Timeout)
		if err != nil {
			return Config{}, fmt.Errorf("invalid timeout %q: %w", file.Timeout, err)
		}
		config.Timeout = timeout
	}
	if file.Jobs > 0 {
		config.Jobs = file.Jobs
	}
	if file.Normalize != nil {
		config.Normalize = *file.Normalize
	}

	return config, nil
}

// LoadConfig reads the configuration file at the given path
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read configuration %s: %w", path, err)
	}

	return ParseConfig(data)
}

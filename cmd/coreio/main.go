// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command coreio runs byte pipelines built from the coreio adapters.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/alecthomas/kong"

	"code.hybscloud.com/coreio"
	"code.hybscloud.com/coreio/internal/config"
	"code.hybscloud.com/coreio/internal/logging"
	"code.hybscloud.com/coreio/internal/pipeline"
	"code.hybscloud.com/coreio/osio"
)

type CLI struct {
	LogLevel   slog.Level `name:"log-level" help:"Log level." env:"COREIO_LOG_LEVEL" default:"INFO" enum:"DEBUG,INFO,WARN,ERROR"`
	BufferSize int        `name:"buffer-size" help:"Buffer size in bytes for inputs and output." env:"COREIO_BUFFER_SIZE" default:"8192"`

	Cat    CatCmd    `cmd:"" help:"Concatenate inputs to standard output."`
	Head   HeadCmd   `cmd:"" help:"Copy the first bytes of the concatenated inputs."`
	Split  SplitCmd  `cmd:"" help:"Split the concatenated inputs into records."`
	Lines  LinesCmd  `cmd:"" help:"Count or number the lines of the concatenated inputs."`
	Digest DigestCmd `cmd:"" help:"Print the xxhash64 of each input."`
	Run    RunCmd    `cmd:"" help:"Run a pipeline described in a YAML file."`
}

// Env carries what every command needs.
type Env struct {
	Logger     *slog.Logger
	Runner     *pipeline.Runner
	Stdout     coreio.Writer
	BufferSize int
}

// buffer returns storage for one buffered wrapper. Nil leaves the size to
// coreio.DefaultBufferSize.
func (e *Env) buffer() []byte {
	if e.BufferSize <= 0 {
		return nil
	}
	return make([]byte, e.BufferSize)
}

type CatCmd struct {
	Inputs []string `arg:"" optional:"" help:"Input files; - is standard input." default:"-"`
	Skip   uint64   `name:"skip" help:"Bytes to skip first." default:"0"`
	Digest bool     `name:"digest" help:"Log the xxhash64 of the output."`
}

func (c *CatCmd) Run(env *Env) error {
	return runPipeline(env, &config.Pipeline{Inputs: c.Inputs, Skip: c.Skip, Digest: c.Digest})
}

type HeadCmd struct {
	Bytes  uint64   `name:"bytes" short:"c" help:"Number of bytes." default:"1024"`
	Skip   uint64   `name:"skip" help:"Bytes to skip first." default:"0"`
	Inputs []string `arg:"" optional:"" help:"Input files; - is standard input." default:"-"`
}

func (c *HeadCmd) Run(env *Env) error {
	limit := c.Bytes
	return runPipeline(env, &config.Pipeline{Inputs: c.Inputs, Skip: c.Skip, Limit: &limit})
}

type SplitCmd struct {
	Delimiter string   `name:"delimiter" short:"d" help:"Record delimiter (one byte, Go escapes allowed)." default:","`
	Separator string   `name:"separator" short:"s" help:"Written after each record (Go escapes allowed)." default:"\\n"`
	Inputs    []string `arg:"" optional:"" help:"Input files; - is standard input." default:"-"`
}

func (c *SplitCmd) Run(env *Env) error {
	sep := unescape(c.Separator)
	return runPipeline(env, &config.Pipeline{Inputs: c.Inputs, Delimiter: unescape(c.Delimiter), Separator: &sep})
}

// unescape interprets Go escapes such as \n and \t; s is returned as is if
// it is not a valid quoted string body.
func unescape(s string) string {
	if u, err := strconv.Unquote(`"` + s + `"`); err == nil {
		return u
	}
	return s
}

type LinesCmd struct {
	Number bool     `name:"number" short:"n" help:"Print lines with their numbers instead of counting."`
	Inputs []string `arg:"" optional:"" help:"Input files; - is standard input." default:"-"`
}

func (c *LinesCmd) Run(env *Env) error {
	var opened []*osio.File
	defer func() {
		for _, f := range opened {
			_ = f.Close()
		}
	}()
	var src coreio.BufReader
	for _, name := range c.Inputs {
		f := osio.Stdin()
		if name != config.Stdio {
			var err error
			if f, err = osio.Open(name); err != nil {
				return err
			}
			opened = append(opened, f)
		}
		br := coreio.NewBufferedReader(f, env.buffer())
		if src == nil {
			src = br
		} else {
			src = coreio.ChainBuf(src, br)
		}
	}

	out := coreio.NewBufferedWriter(env.Stdout, env.buffer())
	count := 0
	for line, err := range coreio.Lines(src) {
		if err != nil {
			return err
		}
		count++
		if c.Number {
			if err := coreio.WriteFormatted(out, "%6d\t%s\n", count, line); err != nil {
				return err
			}
		}
	}
	if !c.Number {
		if err := coreio.WriteFormatted(out, "%d\n", count); err != nil {
			return err
		}
	}
	return out.Flush()
}

type DigestCmd struct {
	Inputs []string `arg:"" help:"Files to hash."`
}

func (c *DigestCmd) Run(env *Env) error {
	sums, err := digestFiles(c.Inputs, env.BufferSize)
	if err != nil {
		return err
	}
	out := coreio.NewBufferedWriter(env.Stdout, env.buffer())
	for i, name := range c.Inputs {
		if err := coreio.WriteFormatted(out, "%016x  %s\n", sums[i], name); err != nil {
			return err
		}
	}
	return out.Flush()
}

type RunCmd struct {
	Config string `name:"config" short:"f" help:"Pipeline file." env:"COREIO_PIPELINE" default:"pipeline.yaml" type:"existingfile"`
}

func (c *RunCmd) Run(env *Env) error {
	p, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	return runPipeline(env, p)
}

func runPipeline(env *Env, p *config.Pipeline) error {
	out := env.Stdout
	if !p.ToStdout() {
		f, err := osio.Create(p.Output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	res, err := env.Runner.Run(p, out)
	if err != nil {
		return err
	}
	if p.Digest {
		env.Logger.Info("digest", slog.String("xxhash64", fmt.Sprintf("%016x", res.Digest)))
	}
	return nil
}

func main() {
	var cli CLI
	kongCtx := kong.Parse(&cli,
		kong.Name("coreio"),
		kong.Description("Byte pipelines over the coreio adapters."),
		kong.UsageOnError(),
	)
	logger := logging.New(cli.LogLevel)
	env := &Env{
		Logger: logger,
		Runner: pipeline.New(
			pipeline.WithLogger(logger),
			pipeline.WithBufferSize(cli.BufferSize),
		),
		Stdout:     osio.Stdout(),
		BufferSize: cli.BufferSize,
	}
	if err := kongCtx.Run(env); err != nil {
		logger.Error("command failed", slog.String("command", kongCtx.Command()), slog.Any("error", err))
		os.Exit(1)
	}
}

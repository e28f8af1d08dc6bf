package cli

import (
	"cmp"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ryansmg/graphgen/pkg/errors"
	graphio "github.com/ryansmg/graphgen/pkg/io"
	"github.com/ryansmg/graphgen/pkg/observability"
	"github.com/ryansmg/graphgen/pkg/observability/prom"
	"github.com/ryansmg/graphgen/pkg/pipeline"
)

const defaultBatchPattern = "%02d.in"

// batchFile is the decoded form of a batch file.
//
// TOML:
//
//	out_dir = "tests"
//	seed = 7
//
//	[[case]]
//	shape = "tree"
//	n = 10
//	count = 3
//
// YAML uses the same keys with "case" holding a list.
type batchFile struct {
	OutDir  string      `toml:"out_dir" yaml:"out_dir"`
	Pattern string      `toml:"pattern" yaml:"pattern" validate:"omitempty,contains=%"`
	Format  string      `toml:"format" yaml:"format" validate:"omitempty,graphformat"`
	Shuffle string      `toml:"shuffle" yaml:"shuffle" validate:"omitempty,shuffle"`
	Seed    uint64      `toml:"seed" yaml:"seed"`
	Cases   []batchCase `toml:"case" yaml:"case" validate:"required,min=1,dive"`
}

// batchCase describes one or more generated tests. Unset Format and Shuffle
// fall back to the file-level values.
type batchCase struct {
	Shape      string  `toml:"shape" yaml:"shape" validate:"required,shape"`
	Nodes      int     `toml:"n" yaml:"n" validate:"gte=1"`
	Edges      int     `toml:"m" yaml:"m" validate:"gte=0"`
	TreeNodes  int     `toml:"tree_nodes" yaml:"tree_nodes" validate:"gte=0"`
	Cycles     int     `toml:"cycles" yaml:"cycles" validate:"gte=0"`
	Elongation *int    `toml:"elongation" yaml:"elongation"`
	First      *int    `toml:"first" yaml:"first" validate:"omitempty,gte=1"`
	Last       *int    `toml:"last" yaml:"last" validate:"omitempty,gte=1"`
	Root       *int    `toml:"root" yaml:"root" validate:"omitempty,gte=1"`
	Seed       *uint64 `toml:"seed" yaml:"seed"`
	Shuffle    string  `toml:"shuffle" yaml:"shuffle" validate:"omitempty,shuffle"`
	AsTree     bool    `toml:"as_tree" yaml:"as_tree"`
	Format     string  `toml:"format" yaml:"format" validate:"omitempty,graphformat"`
	Count      int     `toml:"count" yaml:"count" validate:"gte=0,lte=1000"`
}

var batchValidate = newBatchValidator()

func newBatchValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("shape", func(fl validator.FieldLevel) bool {
		_, err := pipeline.LookupShape(strings.ToLower(fl.Field().String()))
		return err == nil
	})
	_ = v.RegisterValidation("shuffle", func(fl validator.FieldLevel) bool {
		return pipeline.ValidateShuffle(fl.Field().String()) == nil
	})
	_ = v.RegisterValidation("graphformat", func(fl validator.FieldLevel) bool {
		_, err := graphio.ParseFormat(fl.Field().String())
		return err == nil
	})
	return v
}

// loadBatchFile decodes a TOML or YAML batch file, chosen by extension, and
// validates it.
func loadBatchFile(path string) (*batchFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "batch file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read %s", path)
	}

	var bf batchFile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		md, err := toml.Decode(string(data), &bf)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "%s: unknown key %q", path, undecoded[0].String())
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(strings.NewReader(string(data)))
		dec.KnownFields(true)
		if err := dec.Decode(&bf); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unsupported batch file extension %q (use .toml, .yaml or .yml)", ext)
	}

	if err := batchValidate.Struct(&bf); err != nil {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "%s: %s", path, validationMessage(err))
	}
	return &bf, nil
}

// validationMessage flattens validator errors into one line.
func validationMessage(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.TrimPrefix(fe.Namespace(), "batchFile.")
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s fails %s=%s", field, fe.Tag(), fe.Param()))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s fails %s", field, fe.Tag()))
		}
	}
	return strings.Join(msgs, "; ")
}

// batchJob is one expanded test.
type batchJob struct {
	Index int
	Case  int
	Path  string
	Opts  pipeline.Options
}

// jobs expands cases into numbered tests. Tests are numbered from 1 in file
// order; a case with count k yields k tests. Without an explicit seed, test
// i uses the file seed plus i.
func (bf *batchFile) jobs(outDir string) []batchJob {
	pattern := bf.Pattern
	if pattern == "" {
		pattern = defaultBatchPattern
	}
	var jobs []batchJob
	index := 0
	for ci, bc := range bf.Cases {
		count := max(bc.Count, 1)
		for k := range count {
			index++
			opts := pipeline.Options{
				Shape:      bc.Shape,
				Nodes:      bc.Nodes,
				Edges:      bc.Edges,
				TreeNodes:  bc.TreeNodes,
				Cycles:     bc.Cycles,
				Elongation: bc.Elongation,
				First:      bc.First,
				Last:       bc.Last,
				Root:       bc.Root,
				Seed:       bf.Seed + uint64(index),
				Shuffle:    cmp.Or(bc.Shuffle, bf.Shuffle),
				AsTree:     bc.AsTree,
				Format:     graphio.Format(cmp.Or(bc.Format, bf.Format)),
			}
			if bc.Seed != nil {
				opts.Seed = *bc.Seed + uint64(k)
			}
			jobs = append(jobs, batchJob{
				Index: index,
				Case:  ci + 1,
				Path:  filepath.Join(outDir, fmt.Sprintf(pattern, index)),
				Opts:  opts,
			})
		}
	}
	return jobs
}

// batchCommand creates the batch command.
func (c *CLI) batchCommand() *cobra.Command {
	var (
		outDir  string
		metrics string
		noCache bool
		refresh bool
	)

	cmd := &cobra.Command{
		Use:   "batch [file]",
		Short: "Generate a numbered set of tests from a TOML or YAML file",
		Long: `Generate a numbered set of tests from a TOML or YAML file.

Each [[case]] entry names a shape and its parameters; count repeats a case
with consecutive seeds. Tests are written as 01.in, 02.in, ... (set pattern
to change the names) into out_dir, or the directory given by --out-dir.

With --metrics, generation and cache counters are written to the given path
in Prometheus textfile format.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBatch(cmd.Context(), args[0], batchRunOpts{
				outDir:  outDir,
				metrics: metrics,
				noCache: noCache,
				refresh: refresh,
			})
		},
	}

	cmd.Flags().StringVarP(&outDir, "out-dir", "d", "", "output directory (overrides out_dir)")
	cmd.Flags().StringVar(&metrics, "metrics", "", "write Prometheus metrics to this file")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "regenerate and replace cached graphs")

	return cmd
}

type batchRunOpts struct {
	outDir  string
	metrics string
	noCache bool
	refresh bool
}

// runBatch generates every test of the batch file in order, stopping at the
// first failure.
func (c *CLI) runBatch(ctx context.Context, path string, ro batchRunOpts) error {
	bf, err := loadBatchFile(path)
	if err != nil {
		return err
	}

	outDir := ro.outDir
	if outDir == "" {
		outDir = bf.OutDir
	}
	if outDir == "" {
		outDir = "."
	} else if !filepath.IsAbs(outDir) && ro.outDir == "" {
		outDir = filepath.Join(filepath.Dir(path), outDir)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "create %s", outDir)
	}

	var m *prom.Metrics
	if ro.metrics != "" {
		m = prom.New(prometheus.NewRegistry())
		observability.SetGenerateHooks(m)
		observability.SetCacheHooks(m)
		defer observability.Reset()
	}

	runner, err := c.newRunner(ctx, ro.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	batchID := uuid.NewString()
	logger := c.Logger.With("batch", batchID[:8])
	jobs := bf.jobs(outDir)
	logger.Info("Starting batch", "file", path, "tests", len(jobs), "out", outDir)

	prog := newProgress(logger)
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Generating %d tests...", len(jobs)))
	spinner.Start()
	hits := 0
	for _, job := range jobs {
		job.Opts.Refresh = ro.refresh
		result, err := runner.Execute(ctx, job.Opts)
		if err != nil {
			stopInterrupted(spinner, "Batch")
			return fmt.Errorf("test %d (case %d, %s): %w", job.Index, job.Case, job.Opts.Shape, err)
		}
		if err := os.WriteFile(job.Path, result.Output, 0o644); err != nil {
			spinner.StopWithError("Batch failed")
			return errors.Wrap(errors.ErrCodeInternal, err, "write %s", job.Path)
		}
		if result.CacheHit {
			hits++
		}
		logger.Debug("Wrote test", "index", job.Index, "shape", job.Opts.Shape,
			"nodes", result.Stats.NodeCount, "edges", result.Stats.EdgeCount, "cached", result.CacheHit)
	}
	spinner.Stop()
	prog.done("Batch complete", "tests", len(jobs), "cached", hits)

	if m != nil {
		if err := m.WriteTextfile(ro.metrics); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "write metrics %s", ro.metrics)
		}
	}

	printSuccess("Generated %d tests (%d cached)", len(jobs), hits)
	printDetail("Directory: %s", outDir)
	if m != nil {
		printFile(ro.metrics)
	}
	return nil
}

// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	flag "github.com/spf13/pflag"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"aligner-core/align"
	"aligner-core/alphabet"
	"aligner-core/fasta"
	"aligner/internal/cli"
	"aligner/internal/cmdutil"
	"aligner/internal/config"
	"aligner/internal/output"
	"aligner/internal/version"
	"aligner/pkg/api"
)

// RunContext is the whole program behind a testable seam: argv in, exit code
// out, all output through the given writers.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("aligner")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			cli.Usage(outw, fs)
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		cli.Usage(stderr, fs)
		return 2
	}
	if opts.Version {
		_, _ = fmt.Fprintf(outw, "aligner version %s\n", version.Version)
		return 0
	}

	if opts.ConfigFile != "" {
		cf, err := config.Load(opts.ConfigFile)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 2
		}
		cf.Apply(&opts, fs.Changed)
	}
	if err := cli.Validate(&opts); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	mode, _ := align.ParseMode(opts.Mode) // already validated

	tbl := alphabet.New()
	queries, err := fasta.ReadAll(opts.QueriesFile, tbl)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}
	if len(queries) == 0 {
		_, _ = fmt.Fprintf(stderr, "no sequences in %s\n", opts.QueriesFile)
		return 1
	}
	cmdutil.Infof(stderr, opts.Silent, "read %d queries, %d residues total", len(queries), fasta.Residues(queries))

	targets, err := fasta.ReadAll(opts.TargetFile, tbl)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}
	if len(targets) == 0 {
		_, _ = fmt.Fprintf(stderr, "no sequences in %s\n", opts.TargetFile)
		return 1
	}
	target := targets[0]
	if len(targets) > 1 {
		cmdutil.Warnf(stderr, opts.Silent, "%s holds %d sequences; aligning against the first (%s)",
			opts.TargetFile, len(targets), target.ID)
	}
	cmdutil.Infof(stderr, opts.Silent, "read target %s, %d residues", target.ID, len(target.Seq))
	cmdutil.Infof(stderr, opts.Silent, "alphabet: %s (%d symbols)", tbl.Symbols(), tbl.Len())
	cmdutil.Infof(stderr, opts.Silent, "using %s alignment mode", mode)

	cfg := align.Config{
		Mode:               mode,
		MaxDistance:        opts.MaxDistance,
		WantLocations:      true,
		WantStartLocations: opts.FindStartLocs,
	}
	var eng align.Aligner
	if opts.Simple {
		eng = align.NewReference(cfg)
	} else {
		eng = align.New(cfg)
	}
	best := align.NewBestSet(opts.NumBest)

	var pbs *mpb.Progress
	var bar *mpb.Bar
	if !opts.Silent && !opts.FindPath {
		pbs = mpb.New(mpb.WithWidth(40), mpb.WithOutput(stderr))
		bar = pbs.AddBar(int64(len(queries)),
			mpb.PrependDecorators(
				decor.Name("aligned: "),
				decor.CountersNoUnit("%d / %d"),
			),
			mpb.AppendDecorators(decor.Percentage()),
		)
	}

	started := time.Now()
	for _, q := range queries {
		select {
		case <-ctx.Done():
			_, _ = fmt.Fprintln(stderr, ctx.Err())
			return 1
		default:
		}

		eng.SetMaxDistance(align.EffectiveBound(opts.MaxDistance, best.Bound()))
		res := eng.Distance(q.Seq, target.Seq)
		if res.Found {
			best.Observe(res.Score)
		}
		if bar != nil {
			bar.Increment()
		}
		if opts.Silent {
			continue
		}

		row := output.Row{
			QueryID: q.ID,
			Found:   res.Found,
			Score:   res.Score,
			Ends:    res.EndLocations,
			Starts:  res.StartLocations,
		}
		if opts.FindPath && res.Found {
			row.Path, row.PathStart = align.BuildPath(q.Seq, target.Seq, mode, res.EndLocations[0])
		}
		if err := writeRow(outw, row, &opts, q.Seq, target.Seq, tbl); err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 1
		}
	}
	if pbs != nil {
		pbs.Wait()
	}
	cmdutil.Infof(stderr, opts.Silent, "aligned %d queries in %s",
		len(queries), time.Since(started).Round(time.Millisecond))

	if err := outw.Flush(); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return 0
}

func writeRow(w io.Writer, row output.Row, opts *cli.Options, query, target []uint8, tbl *alphabet.Table) error {
	if opts.Output == "json" {
		v := api.ResultV1{
			QueryID:        row.QueryID,
			Found:          row.Found,
			Score:          row.Score,
			EndLocations:   row.Ends,
			StartLocations: row.Starts,
		}
		if row.Path != nil {
			v.Cigar = output.Cigar(row.Path, query, target, row.PathStart, opts.Format == cli.FormatCigarExt)
		}
		return output.WriteJSON(w, v)
	}

	if err := output.WriteText(w, row); err != nil {
		return err
	}
	if row.Path == nil {
		return nil
	}
	switch opts.Format {
	case cli.FormatNice:
		_, err := fmt.Fprint(w, output.RenderNice(query, target, row.Path, row.PathStart, tbl, opts.Width))
		return err
	default:
		_, err := fmt.Fprintf(w, "%s\n",
			output.Cigar(row.Path, query, target, row.PathStart, opts.Format == cli.FormatCigarExt))
		return err
	}
}

// Run uses a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

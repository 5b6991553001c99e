package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/midbel/linechart/config"
	"github.com/midbel/linechart/dataset"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

func main() {
	var (
		file     = flag.String("config", "", "configuration file")
		format   = flag.String("type", "", "output format (svg, png)")
		width    = flag.Float64("width", 0, "surface width")
		height   = flag.Float64("height", 0, "surface height")
		ratio    = flag.Float64("ratio", 0, "pixel ratio of png output")
		data     = flag.String("data", "", "dataset, eg [1, 2, 3]")
		result   = flag.String("file", "", "output file of -data")
		outdir   = flag.String("out", ".", "output directory")
		column   = flag.Int("col", 0, "index of column in csv files")
		header   = flag.Bool("header", false, "csv files have a header")
		parallel = flag.Int("parallel", 4, "number of files drawn concurrently")
		verbose  = flag.Bool("v", false, "verbose")
	)
	flag.Parse()
	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	cfg, err := config.LoadOrDefault(*file)
	if err != nil {
		logrus.Fatalf("fail to load configuration: %s", err)
	}
	if *format != "" {
		cfg.Format = *format
	}
	if *width > 0 {
		cfg.Width = *width
	}
	if *height > 0 {
		cfg.Height = *height
	}
	if *ratio > 0 {
		cfg.PixelRatio = *ratio
	}
	if err := cfg.Validate(); err != nil {
		logrus.Fatal(err)
	}

	if *data != "" {
		values, err := dataset.Parse(*data)
		if err != nil {
			logrus.Fatal(err)
		}
		if err := drawTo(*result, cfg, values); err != nil {
			logrus.Fatal(err)
		}
		return
	}
	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "no dataset given")
		os.Exit(1)
	}

	var (
		grp errgroup.Group
		col = dataset.Column{
			Index:  *column,
			Header: *header,
		}
	)
	grp.SetLimit(*parallel)
	for _, f := range flag.Args() {
		f := f
		grp.Go(func() error {
			values, err := dataset.Load(f, col)
			if err != nil {
				return fmt.Errorf("%s: %w", f, err)
			}
			out := filepath.Join(*outdir, getIdent(f)+"."+cfg.Format)
			if err := drawTo(out, cfg, values); err != nil {
				return fmt.Errorf("%s: %w", f, err)
			}
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		logrus.Error(err)
		os.Exit(2)
	}
}

func drawTo(file string, cfg *config.Config, values []float64) error {
	var w io.Writer = os.Stdout
	if file != "" {
		f, err := os.Create(file)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	n, err := draw(w, cfg, values)
	if err != nil {
		return err
	}
	if file != "" {
		logrus.WithFields(logrus.Fields{
			"file":   file,
			"values": len(values),
			"size":   humanize.Bytes(uint64(n)),
		}).Info("graph drawn")
	}
	return nil
}

func draw(w io.Writer, cfg *config.Config, values []float64) (int64, error) {
	g, surface, err := cfg.NewGraph()
	if err != nil {
		return 0, err
	}
	if err := g.Render(values); err != nil {
		return 0, err
	}
	logrus.WithField("size", g.Size()).Debug("dataset rendered")

	var (
		cw = counter{Writer: w}
		bw = bufio.NewWriter(&cw)
	)
	if err := surface.Export(bw); err != nil {
		return cw.n, err
	}
	err = bw.Flush()
	return cw.n, err
}

type counter struct {
	io.Writer
	n int64
}

func (c *counter) Write(b []byte) (int, error) {
	n, err := c.Writer.Write(b)
	c.n += int64(n)
	return n, err
}

func getIdent(file string) string {
	file = filepath.Base(file)
	for {
		e := filepath.Ext(file)
		if e == "" {
			break
		}
		file = strings.TrimSuffix(file, e)
	}
	return file
}

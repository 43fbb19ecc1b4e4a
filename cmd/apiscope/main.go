package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"github.com/apiscope/apiscope/internal/config"
	"github.com/apiscope/apiscope/internal/dataset"
	"github.com/apiscope/apiscope/internal/fetch"
	"github.com/apiscope/apiscope/internal/output"
	"github.com/apiscope/apiscope/internal/query"
	"github.com/apiscope/apiscope/internal/server"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	queryFlag  = flag.String("q", "", "query to run (e.g., \"SELECT name, population FROM data ORDER BY population DESC\")")
	formatFlag = flag.String("f", "", "output format: table, json, jsonl, csv, xlsx (default from config)")
	outFlag    = flag.String("o", "", "write output to this file instead of stdout")
	serveFlag  = flag.Bool("serve", false, "run the HTTP API server instead of a one-shot fetch")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <url>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Fetch a JSON API endpoint and explore the response.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s https://restcountries.com/v3.1/all\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -q \"SELECT name, population FROM data LIMIT 10\" https://example.com/api\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -f csv -o out.csv https://example.com/api\n", os.Args[0])
	}

	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if *serveFlag {
		log := logrus.New()
		srv := server.New(cfg, log)
		if err := srv.ListenAndServe(); err != nil {
			log.WithError(err).Fatal("server stopped")
		}
		return
	}

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Error: missing URL argument\n\n")
		flag.Usage()
		os.Exit(1)
	}
	url := flag.Arg(0)

	client := fetch.NewClient(cfg.FetchTimeout, cfg.MaxBodyBytes)
	res, err := client.Fetch(context.Background(), url)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching %s: %v\n", url, err)
		os.Exit(1)
	}

	ds, err := dataset.New(res.Raw, res.Body, res.URL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading dataset: %v\n", err)
		os.Exit(1)
	}

	out := io.Writer(os.Stdout)
	if *outFlag != "" {
		f, err := os.Create(*outFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	// Non-tabular payloads (single object, array of scalars) print as JSON.
	if !ds.Queryable() {
		if *queryFlag != "" {
			fmt.Fprintf(os.Stderr, "Error: %v (payload is not an array of records)\n", dataset.ErrNoData)
			os.Exit(1)
		}
		b, err := json.MarshalIndent(ds.Raw(), "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error formatting output: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintln(out, string(b))
		return
	}

	rows := ds.Flat()
	if *queryFlag != "" {
		sess := query.NewSession(ds)
		rows, err = sess.Execute(*queryFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		for _, warn := range sess.Warnings {
			fmt.Fprintf(os.Stderr, "warning: %s\n", warn)
		}
	}

	format := *formatFlag
	if format == "" {
		format = cfg.DefaultFormat
	}
	formatter, ok := output.NewFormatter(format, out)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unsupported format '%s'\n", format)
		fmt.Fprintf(os.Stderr, "Supported formats: table, json, jsonl, csv, xlsx\n")
		os.Exit(1)
	}
	formatter.SetColumns(ds.ColumnNames())

	if err := formatter.Format(rows); err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting output: %v\n", err)
		os.Exit(1)
	}
}

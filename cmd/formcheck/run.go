package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"time"

	"github.com/dmitrymomot/fintrack/pkg/finance"
	"github.com/dmitrymomot/fintrack/pkg/forms"
	"github.com/dmitrymomot/fintrack/pkg/i18n"
	"github.com/dmitrymomot/fintrack/pkg/logger"
	"github.com/dmitrymomot/fintrack/pkg/validator"
)

const (
	exitValid   = 0
	exitInvalid = 1
	exitUsage   = 2
)

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	app, cli, err := loadConfig()
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return exitUsage
	}

	fs := flag.NewFlagSet("formcheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	lang := fs.String("lang", cli.Lang, "message language")
	format := fs.String("format", "json", "output format: json or text")
	catalog := fs.String("translations", cli.Translations, "translation file or directory merged over the built-in messages")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: formcheck [flags] <payload.yaml|payload.json|->")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return exitUsage
	}
	if *format != "json" && *format != "text" {
		fmt.Fprintf(stderr, "format must be json or text, got %q\n", *format)
		return exitUsage
	}

	log, err := newLogger(app, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return exitUsage
	}

	p, err := readPayload(fs.Arg(0), stdin)
	if err != nil {
		fmt.Fprintf(stderr, "payload: %v\n", err)
		return exitUsage
	}
	if p.Lang != "" && !flagSet(fs, "lang") {
		*lang = p.Lang
	}
	if p.Today == "" {
		p.Today = finance.Today(time.Now())
	}

	tr, err := newTranslator(ctx, *catalog, log)
	if err != nil {
		fmt.Fprintf(stderr, "translations: %v\n", err)
		return exitUsage
	}

	res, err := check(p, forms.WithLogger(log), forms.WithTranslator(tr, *lang))
	if err != nil {
		fmt.Fprintf(stderr, "payload: %v\n", err)
		return exitUsage
	}
	log.Debug("form checked",
		logger.Form(res.Form),
		slog.Bool("valid", res.Valid),
		slog.String("lang", *lang),
	)

	if err := writeResult(stdout, *format, res); err != nil {
		fmt.Fprintf(stderr, "output: %v\n", err)
		return exitUsage
	}
	if !res.Valid {
		return exitInvalid
	}
	return exitValid
}

// newTranslator loads the built-in catalog and merges path over it when set.
func newTranslator(ctx context.Context, path string, log *slog.Logger) (*i18n.Translator, error) {
	tr, err := i18n.NewTranslator(ctx,
		i18n.NewFSAdapter(validator.Translations, "translations"),
		i18n.WithLogger(log),
	)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return tr, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	var adapter i18n.TranslationAdapter = i18n.NewFileAdapter(path)
	if info.IsDir() {
		adapter = i18n.NewDirectoryAdapter(path)
	}
	extra, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	tr.Merge(extra)
	log.Debug("translations merged", slog.String("path", path), slog.Any("languages", tr.SupportedLanguages()))
	return tr, nil
}

func writeResult(w io.Writer, format string, res result) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	fields := make([]string, 0, len(res.Errors))
	for field := range res.Errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var errs []error
	for _, field := range fields {
		_, err := fmt.Fprintf(w, "%s: %s\n", field, res.Errors[field])
		errs = append(errs, err)
	}
	if res.Error != "" {
		_, err := fmt.Fprintf(w, "error: %s\n", res.Error)
		errs = append(errs, err)
	}
	status := "invalid"
	if res.Valid {
		status = "valid"
	}
	_, err := fmt.Fprintf(w, "%s form is %s\n", res.Form, status)
	return errors.Join(append(errs, err)...)
}

func flagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

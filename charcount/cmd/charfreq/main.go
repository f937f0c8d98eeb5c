// Command charfreq prints character frequencies of a file or stdin.
//
// Every flag can also be set from the environment, prefixed with
// CHARFREQ_ and upper-cased: -log_level becomes CHARFREQ_LOG_LEVEL.
// Flags take precedence over the environment.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/heetch/confita"
	"github.com/heetch/confita/backend"
	"github.com/heetch/confita/backend/flags"
	log "github.com/sirupsen/logrus"

	"go.lepak.sg/charcount/charcount"
)

const envPrefix = "CHARFREQ_"

type config struct {
	File     string `config:"file,short=f,description=Input file (empty = stdin)"`
	Preset   string `config:"preset,short=p,description=Preset: all ascii numeric alphabetic alphanumeric whitespace no-whitespace chinese"`
	Query    string `config:"query,short=q,description=Query: all most least"`
	Char     string `config:"char,short=c,description=Only print the count of this character"`
	N        int    `config:"n,description=Only print characters counted exactly n times"`
	LogLevel string `config:"log_level,short=l,description=Logging level: panic fatal error warn info debug trace"`
}

func main() {
	cfg := config{
		Preset:   "all",
		Query:    "all",
		LogLevel: log.InfoLevel.String(),
	}

	ctx := context.Background()
	loader := confita.NewLoader(
		envBackend(envPrefix),
		flags.NewBackend(),
	)
	if err := loader.Load(ctx, &cfg); err != nil {
		log.WithError(err).Fatal("invalid config")
	}

	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.WithError(err).Fatal("invalid log level")
	}
	log.SetLevel(level)
	log.WithField("config", fmt.Sprintf("%+v", cfg)).Debug("loaded config")

	p, ok := charcount.PresetByName(cfg.Preset)
	if !ok {
		log.WithField("preset", cfg.Preset).
			Fatalf("unknown preset, want one of: %s",
				strings.Join(charcount.PresetNames(), " "))
	}

	text, err := readInput(cfg.File)
	if err != nil {
		log.WithError(err).Fatal("cannot read input")
	}

	r := charcount.Count(text, p)
	log.WithFields(log.Fields{
		"preset":   cfg.Preset,
		"distinct": len(r),
		"total":    r.Total(),
	}).Debug("counted")

	r, err = query(cfg, r)
	if errors.Is(err, charcount.ErrEmpty) {
		log.WithField("query", cfg.Query).Warn("nothing was counted")
		return
	} else if err != nil {
		log.WithError(err).Fatal("query failed")
	}

	for _, c := range r {
		fmt.Printf("%q\t%d\n", c.Char, c.Count)
	}
}

// envBackend looks up config keys in the environment under prefix,
// so that short keys like "n" do not pick up unrelated variables.
func envBackend(prefix string) backend.Backend {
	return backend.Func("env", func(_ context.Context, key string) ([]byte, error) {
		name := prefix + strings.ToUpper(strings.ReplaceAll(key, "-", "_"))
		if val, ok := os.LookupEnv(name); ok {
			return []byte(val), nil
		}
		return nil, backend.ErrNotFound
	})
}

func readInput(path string) (string, error) {
	if path == "" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("stdin: %w", err)
		}
		return string(b), nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(b), nil
}

func query(cfg config, r charcount.Result) (charcount.Result, error) {
	var err error

	switch cfg.Query {
	case "all":
	case "most":
		r, err = r.Most()
	case "least":
		r, err = r.Least()
	default:
		return nil, fmt.Errorf("unknown query %q", cfg.Query)
	}
	if err != nil {
		return nil, err
	}

	if cfg.N > 0 {
		r = r.FindByCount(cfg.N)
	}

	if cfg.Char != "" {
		c, size := utf8.DecodeRuneInString(cfg.Char)
		if size != len(cfg.Char) {
			return nil, fmt.Errorf("char %q is not a single character", cfg.Char)
		}

		cc, ok := r.FindByChar(c)
		if !ok {
			log.WithField("char", cfg.Char).Info("character not found")
			return charcount.Result{}, nil
		}
		r = charcount.Result{cc}
	}

	return r, nil
}

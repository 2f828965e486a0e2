// Package generate drives one run of the opcode generator: fetch the
// instruction table, catalog both code spaces and render them.
package generate

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/oisee/gbopcodes/pkg/config"
	"github.com/oisee/gbopcodes/pkg/inst"
	"github.com/oisee/gbopcodes/pkg/render"
	"github.com/oisee/gbopcodes/pkg/result"
	"github.com/oisee/gbopcodes/pkg/source"
)

// Options control a run.
type Options struct {
	Format     string        // config.FormatZig or config.FormatJSON
	Duplicates inst.DuplicatePolicy
	Timeout    time.Duration // fetch and decode limit, 0 for none
}

// OptionsFrom derives run options from a configuration.
func OptionsFrom(cfg config.Config) Options {
	opts := Options{Format: cfg.Format, Timeout: cfg.Timeout}
	if cfg.AllowDuplicates {
		opts.Duplicates = inst.DuplicateReplace
	}
	return opts
}

// Run fetches the table from src and renders it. Nothing is persisted; the
// caller writes the returned result once it is complete.
func Run(ctx context.Context, log *zap.Logger, src source.Source, opts Options) (*result.Result, error) {
	doc, err := Load(ctx, log, src, opts.Timeout)
	if err != nil {
		return nil, err
	}

	res := &result.Result{}
	for _, s := range inst.CodeSpaces() {
		c, err := inst.Build(doc.Space(s), s, opts.Duplicates)
		if err != nil {
			return nil, fmt.Errorf("catalog: %w", err)
		}
		log.Info("catalog built",
			zap.Stringer("space", s),
			zap.Int("entries", c.Len()),
			zap.Int("dropped", len(c.Dropped)))
		for _, e := range c.Entries() {
			log.Debug("entry", zap.Stringer("space", s), zap.String("code", e.Code), zap.String("id", e.Identifier))
		}
		if s == inst.CBPrefixed {
			res.CBPrefixed = c
		} else {
			res.Unprefixed = c
		}
	}

	switch opts.Format {
	case config.FormatJSON:
		res.Data, err = render.JSON(res.Catalogs()...)
		if err != nil {
			return nil, fmt.Errorf("render: %w", err)
		}
	case config.FormatZig, "":
		res.Data = []byte(render.Document(res.Unprefixed, res.CBPrefixed))
	default:
		return nil, fmt.Errorf("unknown format %q", opts.Format)
	}
	return res, nil
}

// Load fetches and decodes the instruction table.
func Load(ctx context.Context, log *zap.Logger, src source.Source, timeout time.Duration) (*inst.Document, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	log.Info("fetching instruction table", zap.Stringer("source", src))
	start := time.Now()

	rc, err := src.Open(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer rc.Close()

	doc, err := inst.Decode(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src, err)
	}
	log.Debug("instruction table loaded",
		zap.Duration("took", time.Since(start)),
		zap.Int("unprefixed", len(doc.Unprefixed)),
		zap.Int("cbprefixed", len(doc.CBPrefixed)))
	return doc, nil
}

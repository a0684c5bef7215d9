package report

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"github.com/sgostarter/i/l"
	"github.com/sgostarter/i/stg"
	"github.com/sgostarter/libchart/chart"
	"github.com/sgostarter/libchart/curve"
	"github.com/sgostarter/libchart/surface"
	"github.com/sgostarter/libchart/surface/svgdoc"
	"github.com/sgostarter/libeasygo/pathutils"
	"github.com/sgostarter/libeasygo/stg/fs/rawfs"
	"golang.org/x/sync/errgroup"
)

// Mount ids of the report charts.
const (
	ReturnsGraphID   = "portfolioReturnsGraph"
	ValuesGraphID    = "portfolioValuesGraph"
	BreakdownGraphID = "portfolioValueBreakdownGraph"
)

// Dataset keys used by LoadPortfolio.
const (
	ReturnsKey   = "portfolio_returns.yaml"
	ValuesKey    = "portfolio_values.yaml"
	BreakdownKey = "portfolio_value_breakdown.yaml"
)

// Portfolio holds the raw rows of the three report charts. Returns and Values
// are single-value rows, Breakdown has one column per holding.
type Portfolio struct {
	Returns   []curve.Row `yaml:"returns"`
	Values    []curve.Row `yaml:"values"`
	Breakdown []curve.Row `yaml:"breakdown"`
}

func LoadPortfolio(storage curve.Storage) (p Portfolio, err error) {
	for _, d := range []struct {
		key  string
		rows *[]curve.Row
	}{
		{ReturnsKey, &p.Returns},
		{ValuesKey, &p.Values},
		{BreakdownKey, &p.Breakdown},
	} {
		*d.rows, err = storage.Load(d.key)
		if err != nil {
			err = fmt.Errorf("load %s: %w", d.key, err)

			return
		}
	}

	return
}

type panel struct {
	id    string
	title string
	rows  []curve.Row
	mode  curve.InputMode
	opts  []chart.Option
}

type Builder struct {
	cfg      Config
	storage  stg.FileStorage
	renderer *chart.Renderer
	logger   l.Wrapper
}

func NewBuilder(cfg Config, storage stg.FileStorage, logger l.Wrapper) *Builder {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	if storage == nil {
		storage = rawfs.NewFSStorage("")
	}

	return &Builder{
		cfg:      cfg,
		storage:  storage,
		renderer: chart.NewRenderer(logger),
		logger:   logger.WithFields(l.StringField(l.ClsKey, "Builder")),
	}
}

func (b *Builder) panels(p Portfolio) []panel {
	shared := []chart.Option{chart.WithOptions(b.cfg.Chart)}

	breakdown := shared
	if len(b.cfg.BreakdownPalette) > 0 {
		breakdown = append([]chart.Option{}, shared...)
		breakdown = append(breakdown, chart.WithPalette(b.cfg.BreakdownPalette...))
	}

	single := curve.SingleValueMode{SeriesName: b.cfg.SeriesName}

	return []panel{
		{id: ReturnsGraphID, title: b.cfg.ReturnsLabel, rows: p.Returns, mode: single, opts: shared},
		{id: ValuesGraphID, title: b.cfg.ValuesLabel, rows: p.Values, mode: single, opts: shared},
		{id: BreakdownGraphID, title: b.cfg.BreakdownLabel, rows: p.Breakdown, mode: curve.MultiValueMode{}, opts: breakdown},
	}
}

// Build renders the charts concurrently, each on its own document, and mounts
// them into the page. A chart that fails is replaced by an error panel.
func (b *Builder) Build(ctx context.Context, p Portfolio) ([]byte, error) {
	if err := b.cfg.Validate(); err != nil {
		return nil, err
	}

	panels := b.panels(p)
	docs := make([]*svgdoc.Document, len(panels))
	errs := make([]error, len(panels))

	g, ctx := errgroup.WithContext(ctx)

	for idx := range panels {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			doc := svgdoc.NewDocument()

			_, err := b.renderer.RenderChart(doc, "", panels[idx].rows, panels[idx].mode, panels[idx].title,
				panels[idx].opts...)
			if err != nil {
				b.logger.WithFields(l.StringField("panel", panels[idx].id), l.ErrorField(err)).
					Error("render chart failed")

				errs[idx] = err

				return nil
			}

			docs[idx] = doc

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	page := svgdoc.NewDocument()
	b.skeleton(page.Root(), panels)

	for idx, pl := range panels {
		if errs[idx] != nil {
			mount, err := page.Mount(pl.id)
			if err != nil {
				return nil, err
			}

			mount.CreateChild("div").
				SetAttr("class", "chart-error").
				SetText("chart unavailable: " + errs[idx].Error())

			continue
		}

		if err := page.Adopt(pl.id, docs[idx]); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer

	buf.WriteString("<!DOCTYPE html>\n")

	if _, err := page.WriteTo(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (b *Builder) skeleton(root surface.Element, panels []panel) {
	html := root.CreateChild("html").SetAttr("lang", "en")

	head := html.CreateChild("head")
	head.CreateChild("meta").SetAttr("charset", "utf-8")
	head.CreateChild("title").SetText(b.cfg.Title)
	head.CreateChild("style").SetText(".chart-error { color: #b00020; padding: 1em; border: 1px solid #b00020; }")

	body := html.CreateChild("body")
	body.CreateChild("h1").SetText(b.cfg.Title)

	for _, pl := range panels {
		section := body.CreateChild("section")
		section.CreateChild("h2").SetText(pl.title)
		section.CreateChild("div").
			SetAttr("id", pl.id).
			SetAttr("class", "graph")
	}
}

func (b *Builder) Write(ctx context.Context, p Portfolio) (fileName string, err error) {
	d, err := b.Build(ctx, p)
	if err != nil {
		return
	}

	if b.cfg.Root != "" {
		_ = pathutils.MustDirExists(b.cfg.Root)
	}

	fileName = path.Join(b.cfg.Root, b.cfg.FileName)

	err = b.storage.WriteFile(fileName, d)
	if err != nil {
		b.logger.WithFields(l.StringField("file", fileName), l.ErrorField(err)).Error("write report failed")

		return
	}

	b.logger.WithFields(l.StringField("file", fileName), l.IntField("size", len(d))).Info("report written")

	return
}

package service

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"preizo/internal/label"
	"preizo/internal/layout"
	"preizo/internal/metrics"
	"preizo/internal/render"

	"go.uber.org/zap"
)

// Document is a finished, downloadable price tag.
type Document struct {
	Filename    string
	ContentType string
	Data        []byte
	Input       label.Input
	Plan        layout.Plan
}

// Generator runs normalize, plan and render for one request.
type Generator struct {
	planner  *layout.Planner
	renderer render.Renderer
	metrics  *metrics.Registry
	logger   *zap.Logger
}

func NewGenerator(planner *layout.Planner, renderer render.Renderer, m *metrics.Registry, logger *zap.Logger) *Generator {
	return &Generator{
		planner:  planner,
		renderer: renderer,
		metrics:  m,
		logger:   logger,
	}
}

// Format is the renderer's file extension without the dot.
func (g *Generator) Format() string {
	return strings.TrimPrefix(g.renderer.Extension(), ".")
}

// Generate never rejects input; only a failing renderer produces an error.
func (g *Generator) Generate(raw label.RawInput) (*Document, error) {
	const operation = "service.Generate"
	start := time.Now()

	in := label.Normalize(raw)
	if len(in.Defaulted) > 0 {
		g.logger.Warn("Unreadable numbers replaced by zero",
			zap.Strings("fields", in.Defaulted),
			zap.String("product", in.ProductName))
		if g.metrics != nil {
			for _, f := range in.Defaulted {
				g.metrics.FieldDefaulted.WithLabelValues(f).Inc()
			}
		}
	}

	plan := g.planner.Plan(in)

	var buf bytes.Buffer
	if err := g.renderer.Render(plan, &buf); err != nil {
		if g.metrics != nil {
			g.metrics.RenderFailures.WithLabelValues(g.Format()).Inc()
		}
		return nil, fmt.Errorf("%s: %w", operation, err)
	}

	doc := &Document{
		Filename:    in.Filename(g.renderer.Extension()),
		ContentType: g.renderer.ContentType(),
		Data:        buf.Bytes(),
		Input:       in,
		Plan:        plan,
	}

	elapsed := time.Since(start)
	if g.metrics != nil {
		g.metrics.RenderSeconds.Observe(elapsed.Seconds())
		g.metrics.LabelsGenerated.WithLabelValues(in.Department.String(), in.ProductType.String(), g.Format()).Inc()
	}
	g.logger.Info("Price tag generated",
		zap.String("filename", doc.Filename),
		zap.String("variant", plan.Variant),
		zap.Int("blocks", len(plan.Blocks)),
		zap.Int("bytes", len(doc.Data)),
		zap.Duration("elapsed", elapsed))

	return doc, nil
}

package console

import (
	"context"
	"log/slog"
	"os"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/zero-day-ai/console/asset"
	"github.com/zero-day-ai/console/config"
	"github.com/zero-day-ai/console/finding"
	"github.com/zero-day-ai/console/query"
	"github.com/zero-day-ai/console/timeline"
)

// Console wires the three engines to the configured policy values and the
// ambient logger/tracer. It holds no record data and no per-request state;
// a single instance serves every surface.
type Console struct {
	cfg    config.Config
	logger *slog.Logger
	tracer trace.Tracer
}

// New creates a console instance.
//
// Example:
//
//	c, err := console.New(
//	    console.WithLogger(logger),
//	    console.WithConfig("/etc/console.yaml"),
//	)
func New(opts ...Option) (*Console, error) {
	cc := &consoleConfig{}
	for _, opt := range opts {
		opt(cc)
	}

	if cc.logger == nil {
		cc.logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	}
	if cc.tracer == nil {
		cc.tracer = noop.NewTracerProvider().Tracer("console")
	}

	cfg := config.Default()
	if cc.configPath != "" {
		loaded, err := config.Load(cc.configPath)
		if err != nil {
			return nil, err
		}
		cfg = *loaded
	}

	return &Console{
		cfg:    cfg,
		logger: cc.logger,
		tracer: cc.tracer,
	}, nil
}

// PageSize returns the configured listing page size.
func (c *Console) PageSize() int {
	return c.cfg.PageSize
}

// NewView returns a findings view seeded with the configured page size.
func (c *Console) NewView() *query.View {
	return query.NewView(c.cfg.PageSize)
}

// Query runs the findings pipeline with the configured page size.
// Pages are 1-indexed; see query.Findings for the paging contract.
func (c *Console) Query(ctx context.Context, records []finding.Record, filters query.Filters, key query.SortKey, order query.Order, page int) query.Result {
	_, span := c.tracer.Start(ctx, "console.query", trace.WithAttributes(
		attribute.Int("findings.count", len(records)),
		attribute.Int("findings.page", page),
	))
	defer span.End()

	res := query.Findings(records, filters, key, order, page, c.cfg.PageSize)

	span.SetAttributes(attribute.Int("findings.matched", res.TotalCount))
	c.logger.Debug("findings query",
		"total", res.TotalCount,
		"pages", res.TotalPages,
		"page", page,
	)
	return res
}

// MonthGrid renders the 42-cell SLA timeline grid for the month containing
// anchor, using the kind's terminal predicate and the configured warning
// window.
func (c *Console) MonthGrid(ctx context.Context, records []finding.Record, anchor time.Time, kind finding.Kind) []timeline.Day {
	_, span := c.tracer.Start(ctx, "console.month_grid", trace.WithAttributes(
		attribute.String("timeline.month", anchor.Format("2006-01")),
		attribute.String("findings.kind", kind.String()),
	))
	defer span.End()

	return c.classifier(kind).Month(records, anchor)
}

// DayEvents returns the SLA timeline events for a single selected day.
func (c *Console) DayEvents(ctx context.Context, records []finding.Record, day time.Time, kind finding.Kind) []timeline.Event {
	_, span := c.tracer.Start(ctx, "console.day_events", trace.WithAttributes(
		attribute.String("timeline.day", day.Format("2006-01-02")),
	))
	defer span.End()

	return c.classifier(kind).DayEvents(records, day)
}

// AssetTree builds the asset hierarchy tree from the given tenants and
// tree state.
func (c *Console) AssetTree(tenants []asset.Tenant, state *asset.State) []asset.Node {
	return asset.BuildTree(tenants, state)
}

func (c *Console) classifier(kind finding.Kind) *timeline.Classifier {
	return &timeline.Classifier{
		Window:   c.cfg.ApproachingWindowDays,
		Terminal: kind.Terminal(),
	}
}

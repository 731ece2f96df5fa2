package connector

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Names are written to the created elements.
type Names struct {
	WebPlate string
	Dowel    string
}

// Skip records a column the detailer left alone.
type Skip struct {
	Element ElementID
	Reason  error
}

type Report struct {
	Placed  []Placement
	Skipped []Skip
	// Created lists the host ids per placement: web plate, then dowel.
	Created [][2]ElementID
}

// Detailer adds the base detail to every active column of a host.
type Detailer struct {
	host     Host
	settings Settings
	names    Names
	logger   *zap.Logger
}

func NewDetailer(host Host, settings Settings, names Names, logger *zap.Logger) *Detailer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Detailer{
		host:     host,
		settings: settings,
		names:    names,
		logger:   logger,
	}
}

// Run plans all active columns concurrently and then creates the hardware
// one column at a time. Columns that are not vertical or have no length are
// skipped and reported.
func (d *Detailer) Run(ctx context.Context) (Report, error) {
	if _, err := WebPlateThickness(d.settings.DowelDiameter); err != nil {
		return Report{}, err
	}

	ids, err := d.host.ActiveElementIDs(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("active elements: %w", err)
	}

	columns := make([]Column, len(ids))
	for i, id := range ids {
		c, err := d.host.Column(ctx, id)
		if err != nil {
			return Report{}, fmt.Errorf("element %d: %w", id, err)
		}
		c.ID = id
		columns[i] = c
	}

	placements, skips, err := d.plan(ctx, columns)
	if err != nil {
		return Report{}, err
	}

	report := Report{Skipped: skips}
	for _, p := range placements {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		created, err := d.apply(ctx, p)
		if err != nil {
			return report, fmt.Errorf("element %d: %w", p.Element, err)
		}
		report.Placed = append(report.Placed, p)
		report.Created = append(report.Created, created)
	}

	d.logger.Info("base details done",
		zap.Int("placed", len(report.Placed)),
		zap.Int("skipped", len(report.Skipped)),
	)
	return report, nil
}

func (d *Detailer) plan(ctx context.Context, columns []Column) ([]Placement, []Skip, error) {
	results := make([]Placement, len(columns))
	errs := make([]error, len(columns))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, c := range columns {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i], errs[i] = Plan(d.settings, c)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	var placements []Placement
	var skips []Skip
	for i, err := range errs {
		switch {
		case err == nil:
			placements = append(placements, results[i])
		case errors.Is(err, ErrNotVertical), errors.Is(err, ErrDegenerateColumn):
			d.logger.Warn("column ignored",
				zap.Uint64("element", uint64(columns[i].ID)),
				zap.String("reason", err.Error()),
			)
			skips = append(skips, Skip{Element: columns[i].ID, Reason: err})
		default:
			return nil, nil, fmt.Errorf("element %d: %w", columns[i].ID, err)
		}
	}
	return placements, skips, nil
}

func (d *Detailer) apply(ctx context.Context, p Placement) ([2]ElementID, error) {
	log := d.logger.With(
		zap.Uint64("element", uint64(p.Element)),
		zap.Stringer("placement", p.ID),
	)

	plate, err := d.host.CreateRectangularPanel(ctx, p.WebPlate)
	if err != nil {
		return [2]ElementID{}, fmt.Errorf("create web plate: %w", err)
	}
	if err := d.host.SetName(ctx, plate, d.names.WebPlate); err != nil {
		return [2]ElementID{}, fmt.Errorf("name web plate: %w", err)
	}
	log.Debug("web plate created", zap.Uint64("plate", uint64(plate)), zap.Stringer("p1", p.WebPlate.P1))

	if err := d.host.SubtractElements(ctx, []ElementID{plate}, []ElementID{p.Element}); err != nil {
		return [2]ElementID{}, fmt.Errorf("slot column: %w", err)
	}

	dowel, err := d.host.CreateStandardConnector(ctx, p.Dowel.Connector, p.Dowel.Start, p.Dowel.End)
	if err != nil {
		return [2]ElementID{}, fmt.Errorf("create dowel: %w", err)
	}
	if err := d.host.SetName(ctx, dowel, d.names.Dowel); err != nil {
		return [2]ElementID{}, fmt.Errorf("name dowel: %w", err)
	}
	log.Debug("dowel created", zap.Uint64("dowel", uint64(dowel)), zap.Stringer("start", p.Dowel.Start))

	return [2]ElementID{plate, dowel}, nil
}

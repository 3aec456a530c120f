package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/phrazzld/fortune/internal/birthday"
	"github.com/phrazzld/fortune/internal/config"
	"github.com/phrazzld/fortune/internal/fortune"
	"github.com/phrazzld/fortune/internal/platform/logger"
)

// application holds the dependencies of a single fortune run.
type application struct {
	config  *config.Config
	logger  *slog.Logger
	loc     *time.Location
	out     io.Writer
	store   birthday.Store
	fortune fortune.Service
}

// newApplication wires the store and fortune service for one run.
// The clock is read once here, so the validation of a new birthday and the
// reading itself always agree on the same day. A non-empty todayOverride
// replaces the clock with a fixed date.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	out io.Writer,
	now func() time.Time,
	todayOverride string,
) (*application, error) {
	log := logger.FromContext(ctx)

	loc, err := cfg.App.Location()
	if err != nil {
		return nil, err
	}

	instant := now()
	if todayOverride != "" {
		d, err := fortune.ParseDate(todayOverride)
		if err != nil {
			return nil, fmt.Errorf("invalid --today: %w", err)
		}
		instant = time.Date(d.Year, d.Month, d.Day, 12, 0, 0, 0, loc)
		log.Debug("using fixed date", "today", d.String())
	}

	return &application{
		config:  cfg,
		logger:  log,
		loc:     loc,
		out:     out,
		store:   birthday.NewFileStore(cfg.Store.Path, loc, log),
		fortune: fortune.NewServiceWithClock(func() time.Time { return instant }, loc),
	}, nil
}

// show prints the reading for override, or for the stored birthday when
// override is empty.
func (app *application) show(ctx context.Context, override string) error {
	var (
		birth fortune.Date
		err   error
	)
	if override != "" {
		birth, err = birthday.Parse(override, app.fortune.Today(), app.loc)
	} else {
		birth, err = app.store.Load(ctx)
	}
	if err != nil {
		return err
	}

	return app.print(birth)
}

// set validates and stores raw, then prints the reading for it.
func (app *application) set(ctx context.Context, raw string) error {
	birth, err := birthday.Parse(raw, app.fortune.Today(), app.loc)
	if err != nil {
		return err
	}

	if err := app.store.Save(ctx, birth); err != nil {
		return fmt.Errorf("failed to save birthday: %w", err)
	}

	return app.print(birth)
}

// reset forgets the stored birthday.
func (app *application) reset(ctx context.Context) error {
	if err := app.store.Reset(ctx); err != nil {
		return fmt.Errorf("failed to reset birthday: %w", err)
	}

	_, err := fmt.Fprintln(app.out, "Birthday cleared.")
	return err
}

// print computes the reading for birth and writes it in the configured format.
func (app *application) print(birth fortune.Date) error {
	reading, err := app.fortune.Reading(birth)
	if err != nil {
		return err
	}

	app.logger.Debug("reading computed",
		"today", reading.Today.String(),
		"life_path", reading.Numbers.LifePath,
		"daily_number", reading.Numbers.Daily,
		"sign", reading.Direction.Sign.Name)

	if app.config.Output.Format == "json" {
		return renderJSON(app.out, reading)
	}
	return renderText(app.out, reading)
}

// userMessage turns an error into the line shown to the user.
func userMessage(err error) string {
	switch {
	case errors.Is(err, birthday.ErrNotSet):
		return "no birthday saved yet; run `fortune set YYYY-MM-DD` first"
	case errors.Is(err, birthday.ErrCorrupt):
		return "the saved birthday could not be read; run `fortune reset` and set it again"
	default:
		return err.Error()
	}
}

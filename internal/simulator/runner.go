// Package simulator drives a running tagging server with simulated matches
// and checks what it stored.
package simulator

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/okian/matchtag/pkg/logger"
)

// File permission constants.
const (
	directoryPermission = 0o750
	filePermission      = 0o640
)

// Run simulates cfg.Sessions matches concurrently and verifies each one.
func Run(ctx context.Context, cfg *Config) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log := logger.Named("simulator")
	start := time.Now()

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(start.UnixNano())
	}

	log.Info(ctx, "starting match simulation",
		logger.String("url", cfg.BaseURL),
		logger.Int("sessions", cfg.Sessions),
		logger.Int("events", cfg.Events),
		logger.Duration("timeout", cfg.Timeout),
		logger.Any("seed", seed),
	)

	hc := &http.Client{Timeout: cfg.Timeout}
	if err := NewClient(hc, cfg.BaseURL, "").Health(ctx); err != nil {
		return nil, fmt.Errorf("service health check failed: %w", err)
	}

	if cfg.OutputDir != "" {
		if err := os.MkdirAll(cfg.OutputDir, directoryPermission); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	reports := make([]SessionReport, cfg.Sessions)
	errs := make([]error, cfg.Sessions)
	var wg sync.WaitGroup
	for i := range cfg.Sessions {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sid := uuid.New().String()
			client := NewClient(hc, cfg.BaseURL, sid)
			reports[i], errs[i] = simulateMatch(ctx, cfg, client, sid, NewGenerator(seed+uint64(i)))
			if errs[i] != nil {
				errs[i] = fmt.Errorf("session %s: %w", sid, errs[i])
			}
		}(i)
	}
	wg.Wait()

	report := &Report{Sessions: reports, Duration: time.Since(start)}
	for _, r := range reports {
		report.EventsTagged += r.EventsTagged
		report.EventsRejected += r.Rejected
	}

	log.Info(ctx, "simulation finished",
		logger.Int("eventsTagged", report.EventsTagged),
		logger.Int("eventsRejected", report.EventsRejected),
		logger.Duration("duration", report.Duration),
	)
	return report, errors.Join(errs...)
}

// simulateMatch tags one match in one session and verifies the result.
func simulateMatch(ctx context.Context, cfg *Config, client *Client, sid string, gen *Generator) (SessionReport, error) {
	log := logger.Named("simulator").With(logger.String("session", sid))
	rep := SessionReport{SessionID: sid}

	if _, err := client.StartStopwatch(ctx); err != nil {
		return rep, fmt.Errorf("start stopwatch: %w", err)
	}

	tagged := gen.Match(cfg.Events)
	for i, in := range tagged {
		if _, err := client.CreateEvent(ctx, in); err != nil {
			rep.Rejected++
			return rep, fmt.Errorf("tag event %d: %w", i, err)
		}
		rep.EventsTagged++
		if cfg.Verbose && rep.EventsTagged%50 == 0 {
			log.Info(ctx, "progress", logger.Int("tagged", rep.EventsTagged), logger.Int("total", cfg.Events))
		}
	}

	st, err := client.StopStopwatch(ctx)
	if err != nil {
		return rep, fmt.Errorf("stop stopwatch: %w", err)
	}
	rep.ElapsedTime = st.ElapsedTime

	ledger, err := client.ListEvents(ctx)
	if err != nil {
		return rep, fmt.Errorf("list events: %w", err)
	}
	if err := verifyLedger(tagged, ledger); err != nil {
		return rep, err
	}

	teams, err := client.TeamStats(ctx)
	if err != nil {
		return rep, fmt.Errorf("team stats: %w", err)
	}
	if err := verifyStats(tagged, teams); err != nil {
		return rep, err
	}

	if cfg.OutputDir != "" {
		data, err := client.ExportZIP(ctx, sid)
		if err != nil {
			return rep, fmt.Errorf("export: %w", err)
		}
		rep.ExportPath = filepath.Join(cfg.OutputDir, sid+".zip")
		if err := os.WriteFile(rep.ExportPath, data, filePermission); err != nil {
			return rep, fmt.Errorf("write export: %w", err)
		}
	}

	if cfg.Cleanup {
		if err := client.DeleteSession(ctx); err != nil {
			log.Warn(ctx, "failed to delete session", logger.Error(err))
		}
	}

	log.Info(ctx, "match verified", logger.Int("events", rep.EventsTagged), logger.Float64("elapsed", rep.ElapsedTime))
	return rep, nil
}

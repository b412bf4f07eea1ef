package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"
)

// Source is one collection to snapshot: a name and a fetcher that
// returns its full current contents.
type Source struct {
	Name  string
	Fetch func(ctx context.Context) (any, error)
}

// Scheduler dumps every source to a timestamped JSON file on a cron
// schedule. The store is the only copy of the site's content, so the
// snapshots are the recovery path for a bad full-replace write.
type Scheduler struct {
	c        *cron.Cron
	schedule string
	dir      string
	sources  []Source
}

func NewScheduler(schedule, dir string, sources []Source) *Scheduler {
	return &Scheduler{
		c:        cron.New(),
		schedule: schedule,
		dir:      dir,
		sources:  sources,
	}
}

// Start registers the cron job and starts the scheduler.
func (s *Scheduler) Start() error {
	_, err := s.c.AddFunc(s.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		if err := s.Snapshot(ctx); err != nil {
			log.Printf("backup run failed: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("schedule backup: %w", err)
	}

	log.Printf("Backup scheduler started (schedule %q, dir %q)", s.schedule, s.dir)
	s.c.Start()
	return nil
}

func (s *Scheduler) Stop() {
	if s.c != nil {
		s.c.Stop()
	}
}

// Snapshot exports every source to <dir>/<name>-<timestamp>.json.
// A failing source is logged and skipped; the others still run.
func (s *Scheduler) Snapshot(ctx context.Context) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("backup dir: %w", err)
	}

	stamp := time.Now().UTC().Format("20060102T150405")
	var firstErr error

	for _, src := range s.sources {
		data, err := src.Fetch(ctx)
		if err != nil {
			log.Printf("backup %s: fetch: %v", src.Name, err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}

		buf, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			log.Printf("backup %s: marshal: %v", src.Name, err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}

		path := filepath.Join(s.dir, fmt.Sprintf("%s-%s.json", src.Name, stamp))
		if err := os.WriteFile(path, buf, 0o644); err != nil {
			log.Printf("backup %s: write: %v", src.Name, err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
	}

	return firstErr
}

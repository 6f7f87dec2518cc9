/*
reloader.go - Periodic reward catalog reload

PURPOSE:
  Game numbers change with patches. When the server runs with a catalog
  file, the reloader re-reads it on an interval and swaps the handler's
  calculator when the file parses and validates. A broken file is logged
  and the previous catalog keeps serving.

DESIGN:
  - Runs a background goroutine with a configurable check interval
  - Compares file modification time; unchanged files are not re-parsed
  - Swaps atomically; in-flight requests finish on the old calculator

USAGE:
  reloader := NewCatalogReloader(handler, "catalog.yaml")
  reloader.Start()
  // ... later
  reloader.Stop()

SEE ALSO:
  - rewards/loader.go: LoadCatalog
  - handlers.go: Handler.SetCalculator
*/
package api

import (
	"log"
	"os"
	"sync"
	"time"

	"github.com/warp/jade-forecast/rewards"
)

// CatalogReloader watches a catalog file and swaps the handler's calculator.
type CatalogReloader struct {
	Handler       *Handler
	Path          string
	CheckInterval time.Duration
	Enabled       bool

	lastMod time.Time
	ticker  *time.Ticker
	stop    chan struct{}
	wg      sync.WaitGroup
	mu      sync.Mutex
}

// NewCatalogReloader creates a reloader. It is disabled when path is empty.
func NewCatalogReloader(handler *Handler, path string) *CatalogReloader {
	return &CatalogReloader{
		Handler:       handler,
		Path:          path,
		CheckInterval: 1 * time.Minute,
		Enabled:       path != "",
	}
}

// Start begins watching.
func (cr *CatalogReloader) Start() {
	cr.mu.Lock()
	defer cr.mu.Unlock()

	if !cr.Enabled {
		log.Println("[Catalog] No catalog file, reload disabled")
		return
	}
	if cr.ticker != nil {
		return
	}

	if info, err := os.Stat(cr.Path); err == nil {
		cr.lastMod = info.ModTime()
	}
	cr.ticker = time.NewTicker(cr.CheckInterval)
	cr.stop = make(chan struct{})
	cr.wg.Add(1)

	go cr.run(cr.ticker, cr.stop)

	log.Printf("[Catalog] Watching %s every %v", cr.Path, cr.CheckInterval)
}

// Stop stops watching.
func (cr *CatalogReloader) Stop() {
	cr.mu.Lock()
	defer cr.mu.Unlock()

	if cr.ticker != nil {
		cr.ticker.Stop()
		close(cr.stop)
		cr.wg.Wait()
		cr.ticker = nil
		log.Println("[Catalog] Stopped")
	}
}

// Running reports whether the watch goroutine is active.
func (cr *CatalogReloader) Running() bool {
	cr.mu.Lock()
	defer cr.mu.Unlock()
	return cr.ticker != nil
}

func (cr *CatalogReloader) run(ticker *time.Ticker, stop <-chan struct{}) {
	defer cr.wg.Done()

	for {
		select {
		case <-ticker.C:
			cr.CheckAndReload()
		case <-stop:
			return
		}
	}
}

// CheckAndReload reloads the catalog if the file changed since the last
// check. It reports whether the calculator was swapped.
func (cr *CatalogReloader) CheckAndReload() bool {
	info, err := os.Stat(cr.Path)
	if err != nil {
		log.Printf("[Catalog] Cannot stat %s: %v", cr.Path, err)
		CatalogReloads.WithLabelValues(outcomeError).Inc()
		return false
	}
	if !info.ModTime().After(cr.lastMod) {
		return false
	}

	cat, err := rewards.LoadCatalog(cr.Path)
	cr.lastMod = info.ModTime()
	if err != nil {
		log.Printf("[Catalog] Keeping previous catalog, %s is invalid: %v", cr.Path, err)
		CatalogReloads.WithLabelValues(outcomeRejected).Inc()
		return false
	}

	cr.Handler.SetCalculator(rewards.NewCalculator(cat))
	CatalogReloads.WithLabelValues(outcomeOK).Inc()
	log.Printf("[Catalog] Reloaded %s", cr.Path)
	return true
}

package service

import (
	"context"
	"log"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/VicJoao/CardapioRU/api"
	"github.com/VicJoao/CardapioRU/menu"
	"github.com/VicJoao/CardapioRU/util"
)

// MenuRefresherService downloads the menu PDF and re-runs the extraction
// pipeline, on demand and on a cron schedule.
type MenuRefresherService struct {
	downloader  *api.HTTPClient
	pipeline    *menu.Pipeline
	menuService *MenuService

	pdfURL      string
	localPath   string
	downloadTTL time.Duration
	plotPath    string // empty disables the overview chart

	cron     *cron.Cron
	inFlight int32
}

// NewMenuRefresherService constructs a refresher with its dependencies.
func NewMenuRefresherService(
	downloader *api.HTTPClient,
	pipeline *menu.Pipeline,
	menuService *MenuService,
	pdfURL string,
	localPath string,
	downloadTTL time.Duration,
	plotPath string,
) *MenuRefresherService {
	return &MenuRefresherService{
		downloader:  downloader,
		pipeline:    pipeline,
		menuService: menuService,
		pdfURL:      pdfURL,
		localPath:   localPath,
		downloadTTL: downloadTTL,
		plotPath:    plotPath,
		cron:        cron.New(),
	}
}

// RefreshMenuData runs one download + extract cycle and publishes the
// result. At most one refresh runs at a time; overlapping calls are skipped.
// A download failure aborts the run without touching the published snapshot.
func (r *MenuRefresherService) RefreshMenuData() error {
	if !atomic.CompareAndSwapInt32(&r.inFlight, 0, 1) {
		log.Println("[MenuRefresherService] Refresh already in flight, skipping.")
		return nil
	}
	defer atomic.StoreInt32(&r.inFlight, 0)

	ctx, cancel := context.WithTimeout(context.Background(), r.downloadTTL)
	defer cancel()

	log.Printf("[MenuRefresherService] Downloading menu from %s", r.pdfURL)
	if err := r.downloader.Download(ctx, r.pdfURL, r.localPath); err != nil {
		log.Printf("[MenuRefresherService] Download failed: %v", err)
		return err
	}

	meals := r.pipeline.Process(r.localPath, time.Now())
	r.menuService.Publish(meals)
	log.Println("[MenuRefresherService] Published fresh meals snapshot.")

	if r.plotPath != "" {
		if err := util.PlotMealsOverview(meals, r.plotPath); err != nil {
			log.Printf("[MenuRefresherService] Failed to render overview chart: %v", err)
		}
	}
	return nil
}

// StartPeriodicJob schedules RefreshMenuData with the given cron expression
// (standard 5-field format).
func (r *MenuRefresherService) StartPeriodicJob(schedule string) error {
	_, err := r.cron.AddFunc(schedule, func() {
		log.Println("[MenuRefresherService] Running scheduled menu refresh.")
		if err := r.RefreshMenuData(); err != nil {
			log.Printf("[MenuRefresherService] Scheduled refresh returned error: %v", err)
		} else {
			log.Println("[MenuRefresherService] Scheduled refresh completed.")
		}
	})
	if err != nil {
		return err
	}
	r.cron.Start()
	return nil
}

// Stop halts the periodic job.
func (r *MenuRefresherService) Stop() {
	r.cron.Stop()
}

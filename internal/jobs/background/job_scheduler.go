package background

import (
	"context"
	"log"
	"time"

	"stockit/internal/services"

	"github.com/go-co-op/gocron/v2"
)

// JobScheduler runs the one-shot history backfill at start and a periodic
// low-stock scan.
type JobScheduler struct {
	scheduler         gocron.Scheduler
	historyService    services.LocationHistoryService
	inventoryService  services.InventoryService
	lowStockThreshold int
}

func NewJobScheduler(historyService services.LocationHistoryService, inventoryService services.InventoryService, lowStockThreshold int) (*JobScheduler, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	js := &JobScheduler{
		scheduler:         scheduler,
		historyService:    historyService,
		inventoryService:  inventoryService,
		lowStockThreshold: lowStockThreshold,
	}

	if err := js.registerJobs(); err != nil {
		return nil, err
	}
	return js, nil
}

func (js *JobScheduler) Start() {
	log.Printf("Starting background job scheduler")
	js.scheduler.Start()
}

func (js *JobScheduler) Stop() error {
	log.Printf("Stopping background job scheduler")
	return js.scheduler.Shutdown()
}

func (js *JobScheduler) registerJobs() error {
	// Backfill runs once at startup so products predating the location
	// log get their initial entry.
	_, err := js.scheduler.NewJob(
		gocron.OneTimeJob(gocron.OneTimeJobStartImmediately()),
		gocron.NewTask(js.backfillLocationHistory),
		gocron.WithName("location-history-backfill"),
	)
	if err != nil {
		return err
	}

	_, err = js.scheduler.NewJob(
		gocron.DurationJob(30*time.Minute),
		gocron.NewTask(js.scanLowStock),
		gocron.WithName("low-stock-scan"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	return err
}

func (js *JobScheduler) backfillLocationHistory() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	created, err := js.historyService.Backfill(ctx)
	if err != nil {
		log.Printf("Location history backfill failed: %v", err)
		return
	}
	if created > 0 {
		log.Printf("Location history backfill created %d initial entries", created)
	}
}

func (js *JobScheduler) scanLowStock() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	products, err := js.inventoryService.ListLowStock(ctx, js.lowStockThreshold)
	if err != nil {
		log.Printf("Low stock scan failed: %v", err)
		return
	}
	for _, p := range products {
		log.Printf("Low stock: %s (%s) has %d left at %s", p.Name, p.ID, p.Stoc, p.CurrentLocation)
	}
}

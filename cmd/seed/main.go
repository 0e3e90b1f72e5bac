// Package main loads a demo data set: one client with a product, a receiving
// zone with a receiver, and three days of inbound demand against different
// availability (deficit, surplus, balanced).
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"capplan/internal/config"
	"capplan/internal/core/id"
	"capplan/internal/core/types"
	"capplan/internal/domain/capacity"
	"capplan/internal/domain/catalogs/client"
	"capplan/internal/domain/catalogs/norm"
	"capplan/internal/domain/catalogs/product"
	"capplan/internal/domain/catalogs/resource"
	"capplan/internal/domain/catalogs/warehouse"
	"capplan/internal/domain/catalogs/zone"
	"capplan/internal/domain/documents/inbound"
	"capplan/internal/domain/registers/availability"
	"capplan/internal/infrastructure/storage/postgres"
	"capplan/internal/infrastructure/storage/postgres/catalog_repo"
	"capplan/internal/infrastructure/storage/postgres/document_repo"
	"capplan/internal/infrastructure/storage/postgres/register_repo"
	"capplan/pkg/logger"
)

// scenario is one day of demo data.
// Demand is quantity × 0.05 h, so 100 units need 5.00 hours.
type scenario struct {
	offset    int
	number    string
	quantity  string
	available string
}

var scenarios = []scenario{
	{offset: 0, number: "DEMO-IN-1", quantity: "100", available: "3"},  // −2.00: дефицит
	{offset: 1, number: "DEMO-IN-2", quantity: "100", available: "10"}, // +5.00: избыток
	{offset: 2, number: "DEMO-IN-3", quantity: "100", available: "5"},  // 0: баланс
}

func main() {
	configPath := flag.String("config", os.Getenv("CAPPLAN_CONFIG"), "path to config file (yaml)")
	startDate := flag.String("date", time.Now().Format(capacity.DateLayout), "first scenario date (YYYY-MM-DD)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	base, err := logger.New(cfg.Logger())
	if err != nil {
		fmt.Printf("failed to create logger: %v\n", err)
		os.Exit(1)
	}
	log := base.WithComponent("seed")

	start, err := time.Parse(capacity.DateLayout, *startDate)
	if err != nil {
		log.Fatalw("invalid -date", "value", *startDate, "error", err)
	}

	ctx := logger.WithLogger(context.Background(), log)

	pool, err := postgres.NewPool(ctx, cfg.Pool())
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	log.Info("connected to database")

	txm := postgres.NewTxManager(pool)
	audit, err := postgres.NewAuditService(txm)
	if err != nil {
		log.Fatalw("failed to initialize audit", "error", err)
	}

	if err := seed(ctx, txm, audit, start); err != nil {
		log.Fatalw("failed to seed demo data", "error", err)
	}

	log.Infow("seeding completed successfully",
		"from", start.Format(capacity.DateLayout),
		"days", len(scenarios),
	)
}

func seed(ctx context.Context, txm *postgres.TxManager, audit *postgres.AuditService, start time.Time) error {
	cl := client.NewClient("Демо-клиент", "")
	if err := client.NewService(catalog_repo.NewClientRepo(txm), txm).Create(ctx, cl); err != nil {
		return fmt.Errorf("client: %w", err)
	}

	wh := warehouse.NewWarehouse("Склад №1", "")
	if err := warehouse.NewService(catalog_repo.NewWarehouseRepo(txm), txm).Create(ctx, wh); err != nil {
		return fmt.Errorf("warehouse: %w", err)
	}

	zn := zone.NewZone(wh.ID, "Зона приёмки", "receiving")
	if err := zone.NewService(catalog_repo.NewZoneRepo(txm), txm).Create(ctx, zn); err != nil {
		return fmt.Errorf("zone: %w", err)
	}

	pr := product.NewProduct(cl.ID, "Коробка 40×30")
	if err := product.NewService(catalog_repo.NewProductRepo(txm), txm).Create(ctx, pr); err != nil {
		return fmt.Errorf("product: %w", err)
	}

	rs := resource.NewResource(capacity.KindStaff, "Приёмщик", "Иванов И.")
	rs.ZoneID = &zn.ID
	if err := resource.NewService(catalog_repo.NewResourceRepo(txm), txm).Create(ctx, rs); err != nil {
		return fmt.Errorf("resource: %w", err)
	}

	nm := norm.NewNorm(norm.Key{
		ClientID:        cl.ID,
		ProductID:       pr.ID,
		OperationType:   capacity.OperationInbound,
		ZoneType:        zn.Type,
		ResourceSubtype: rs.Subtype,
		UnitType:        types.DefaultUnitType,
	}, types.MustDecimal("0.05"))
	if err := norm.NewService(catalog_repo.NewNormRepo(txm), txm).Create(ctx, nm); err != nil {
		return fmt.Errorf("norm: %w", err)
	}

	docs := inbound.NewService(document_repo.NewInboundRepo(txm), txm, audit)
	records := availability.NewService(register_repo.NewAvailabilityRepo(txm), txm)

	for _, sc := range scenarios {
		date := start.AddDate(0, 0, sc.offset)

		if err := seedDay(ctx, docs, records, sc, date, cl.ID, pr.ID, zn.ID, rs.ID); err != nil {
			return fmt.Errorf("%s: %w", sc.number, err)
		}
	}
	return nil
}

func seedDay(
	ctx context.Context,
	docs *inbound.Service,
	records *availability.Service,
	sc scenario,
	date time.Time,
	clientID, productID, zoneID, resourceID id.ID,
) error {
	doc := inbound.NewDocument(clientID, sc.number, date)
	doc.SetLines([]inbound.LineInput{{
		ProductID: productID,
		ZoneID:    zoneID,
		Quantity:  types.QuantityInput(sc.quantity),
		UnitType:  types.DefaultUnitType,
	}})
	if err := docs.Create(ctx, doc); err != nil {
		return fmt.Errorf("create inbound: %w", err)
	}
	if _, err := docs.Validate(ctx, doc.ID); err != nil {
		return fmt.Errorf("validate inbound: %w", err)
	}

	rec := availability.NewRecord(resourceID, date, types.MustDecimal(sc.available))
	if err := records.Create(ctx, rec); err != nil {
		return fmt.Errorf("availability: %w", err)
	}
	return nil
}

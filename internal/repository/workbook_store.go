package repository

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/xuri/excelize/v2"

	"StockPulse/internal/domain/models"
	domrepo "StockPulse/internal/domain/repository"
	"StockPulse/pkg/logger"
	"StockPulse/pkg/util"
)

const (
	salesSheet     = "Sales"
	inventorySheet = "Inventory"
)

// WorkbookStore implements SalesHistorySource from a local sales export:
// an .xlsx workbook with "Sales" and "Inventory" sheets, or a .csv with
// date,product_id,quantity rows. The file is parsed once, lazily; malformed
// rows are skipped with a warning.
type WorkbookStore struct {
	path string
	log  *logger.Logger

	once      sync.Once
	loadErr   error
	order     []string
	series    map[string][]float64
	snapshots []models.InventorySnapshot
}

func NewWorkbookStore(path string, log *logger.Logger) *WorkbookStore {
	return &WorkbookStore{
		path:   path,
		log:    log,
		series: make(map[string][]float64),
	}
}

func (s *WorkbookStore) Products(ctx context.Context) ([]string, error) {
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}
	return append([]string(nil), s.order...), nil
}

func (s *WorkbookStore) DemandSeries(ctx context.Context, productID string) ([]float64, error) {
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}
	return append([]float64(nil), s.series[productID]...), nil
}

func (s *WorkbookStore) Snapshots(ctx context.Context) ([]models.InventorySnapshot, error) {
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}
	return append([]models.InventorySnapshot(nil), s.snapshots...), nil
}

func (s *WorkbookStore) ensureLoaded() error {
	s.once.Do(func() { s.loadErr = s.load() })
	return s.loadErr
}

func (s *WorkbookStore) load() error {
	switch strings.ToLower(filepath.Ext(s.path)) {
	case ".xlsx":
		return s.loadWorkbook()
	case ".csv":
		return s.loadCSV()
	default:
		return fmt.Errorf("unsupported input format %q (want .xlsx or .csv)", filepath.Ext(s.path))
	}
}

type salesEntry struct {
	date time.Time
	qty  float64
}

func (s *WorkbookStore) loadWorkbook() error {
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(salesSheet)
	if err != nil {
		// fall back to the first sheet for bare exports
		rows, err = f.GetRows(f.GetSheetName(0))
		if err != nil {
			return fmt.Errorf("read sales rows: %w", err)
		}
	}
	s.ingestSales(rows)

	if invRows, err := f.GetRows(inventorySheet); err == nil {
		s.ingestInventory(invRows)
	} else {
		s.log.Debug("no inventory sheet in workbook", logger.String("path", s.path))
	}
	return nil
}

func (s *WorkbookStore) loadCSV() error {
	file, err := os.Open(s.path)
	if err != nil {
		return fmt.Errorf("open csv: %w", err)
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return fmt.Errorf("parse csv: %w", err)
	}
	s.ingestSales(rows)
	return nil
}

// ingestSales collects date/product/quantity rows into per-product series,
// chronological per product, product order by first appearance.
func (s *WorkbookStore) ingestSales(rows [][]string) {
	entries := make(map[string][]salesEntry)
	for i, row := range rows {
		if len(row) < 3 {
			continue
		}
		date, ok := util.ParseDate(strings.TrimSpace(row[0]))
		if !ok {
			if i > 0 {
				s.log.Warn("skipping sales row with bad date",
					logger.Int("row", i+1), logger.String("date", row[0]))
			}
			continue // header or malformed
		}
		id := strings.TrimSpace(row[1])
		qty := util.ParseFloatDefault(strings.TrimSpace(row[2]), -1)
		if id == "" || qty < 0 {
			s.log.Warn("skipping malformed sales row", logger.Int("row", i+1))
			continue
		}
		if _, seen := entries[id]; !seen {
			s.order = append(s.order, id)
		}
		entries[id] = append(entries[id], salesEntry{date: date, qty: qty})
	}

	for id, es := range entries {
		sort.SliceStable(es, func(i, j int) bool { return es[i].date.Before(es[j].date) })
		series := make([]float64, len(es))
		for i, e := range es {
			series[i] = e.qty
		}
		s.series[id] = series
	}
}

// ingestInventory parses id/stock/min/max/price rows. Missing min/max cells
// stay zero here; the recommender fills defaults.
func (s *WorkbookStore) ingestInventory(rows [][]string) {
	for i, row := range rows {
		if len(row) < 2 {
			continue
		}
		id := strings.TrimSpace(row[0])
		if id == "" || strings.EqualFold(id, "product_id") {
			continue
		}
		cell := func(idx int) string {
			if idx < len(row) {
				return strings.TrimSpace(row[idx])
			}
			return ""
		}
		snap := models.InventorySnapshot{
			ID:            id,
			StockLevel:    util.ParseIntDefault(cell(1), 0),
			MinStockLevel: util.ParseIntDefault(cell(2), 0),
			MaxStockLevel: util.ParseIntDefault(cell(3), 0),
			Price:         util.ParseFloatDefault(cell(4), 0),
		}
		if snap.Price <= 0 {
			s.log.Warn("skipping inventory row without a positive price",
				logger.Int("row", i+1), logger.String("product", id))
			continue
		}
		s.snapshots = append(s.snapshots, snap)
		if _, seen := s.series[id]; !seen {
			found := false
			for _, p := range s.order {
				if p == id {
					found = true
					break
				}
			}
			if !found {
				s.order = append(s.order, id)
			}
		}
	}
}

var _ domrepo.SalesHistorySource = (*WorkbookStore)(nil)

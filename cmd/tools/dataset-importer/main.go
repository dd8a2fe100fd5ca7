package main

import (
	"LakbayLaguna/database/postgres"
	chatRepository "LakbayLaguna/internal/api/chat/repository"
	"LakbayLaguna/internal/entity"
	"LakbayLaguna/pkg/log"
	"LakbayLaguna/pkg/utils"
	"context"
	"flag"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/xuri/excelize/v2"
)

// Sheet layout of the per-city workbooks: Sheet1 holds attractions,
// Sheet2 accommodations, Sheet3 foods. Header names vary between
// workbooks (including a few long-standing misspellings), so they are
// normalized through headerAliases before field lookup.
const (
	sheetAttractions    = "Sheet1"
	sheetAccommodations = "Sheet2"
	sheetFoods          = "Sheet3"
)

var headerAliases = map[string]string{
	"to_do_activies":         "activities",
	"to_do_activities":       "activities",
	"type_of_accomodation":   "type",
	"type_of_accommodation":  "type",
	"level_of_accomodation":  "level",
	"level_of_accommodation": "level",
	"one-day_rate":           "one_day_rate",
	"12-hours_rate":          "twelve_hour_rate",
	"6-hours_rate":           "six_hour_rate",
	"available_dates":        "available_days",
}

func main() {
	dir := flag.String("dir", "datasets", "directory holding per-city xlsx workbooks")
	city := flag.String("city", "", "import a single city (default: every workbook in -dir)")
	flag.Parse()

	logger := log.NewLogger()
	if err := godotenv.Load(); err != nil {
		logger.Warnf("No .env file loaded: %v", err)
	}

	db, err := postgres.New()
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	repo := chatRepository.New(db, logger)
	idGen := utils.New()

	workbooks, err := workbooksToImport(*dir, *city)
	if err != nil {
		logger.Fatalf("Failed to list workbooks: %v", err)
	}
	if len(workbooks) == 0 {
		logger.Fatalf("No workbooks found in %s", *dir)
	}

	ctx := context.Background()

	for _, path := range workbooks {
		cityName := cityFromFilename(path)
		if err := importCity(ctx, repo, idGen, path, cityName); err != nil {
			logger.Fatalf("Failed to import %s: %v", cityName, err)
		}
		logger.Infof("Imported dataset for %s", cityName)
	}
}

func workbooksToImport(dir, city string) ([]string, error) {
	if city != "" {
		filename := strings.ReplaceAll(strings.ToLower(city), " ", "_") + ".xlsx"
		return []string{filepath.Join(dir, filename)}, nil
	}
	return filepath.Glob(filepath.Join(dir, "*.xlsx"))
}

func cityFromFilename(path string) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return strings.ReplaceAll(strings.ToLower(base), "_", " ")
}

// importCity replaces a city's rows inside one transaction so a failed
// workbook never leaves the city half loaded.
func importCity(ctx context.Context, repo chatRepository.Repository, idGen utils.IUtils, path, city string) error {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	client, err := repo.NewClient(true)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := importCityTx(ctx, client, idGen, f, city); err != nil {
		if rbErr := client.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback also failed: %v)", err, rbErr)
		}
		return err
	}

	return client.Commit()
}

func importCityTx(ctx context.Context, client chatRepository.Client, idGen utils.IUtils, f *excelize.File, city string) error {
	if err := client.Attractions.DeleteByCity(ctx, city); err != nil {
		return err
	}
	if err := client.Accommodations.DeleteByCity(ctx, city); err != nil {
		return err
	}
	if err := client.Foods.DeleteByCity(ctx, city); err != nil {
		return err
	}

	attractions, err := sheetRecords(f, sheetAttractions)
	if err != nil {
		return err
	}
	for _, record := range attractions {
		id, err := idGen.NewULIDFromTimestamp(time.Now())
		if err != nil {
			return err
		}
		if err := client.Attractions.CreateAttraction(ctx, entity.Attraction{
			ID:            id,
			City:          city,
			Location:      record["location"],
			Opening:       record["opening"],
			Closing:       record["closing"],
			Activities:    record["activities"],
			Description:   record["description"],
			Rating:        parseRating(record["rating"]),
			EntranceFee:   record["entrance_fee"],
			BestSeason:    record["best_season"],
			BestSeasonWhy: record["best_season_why"],
			BestDate:      record["best_date"],
			AvailableDays: record["available_days"],
		}); err != nil {
			return err
		}
	}

	accommodations, err := sheetRecords(f, sheetAccommodations)
	if err != nil {
		return err
	}
	for _, record := range accommodations {
		id, err := idGen.NewULIDFromTimestamp(time.Now())
		if err != nil {
			return err
		}
		if err := client.Accommodations.CreateAccommodation(ctx, entity.Accommodation{
			ID:                id,
			City:              city,
			Name:              record["name"],
			Description:       record["description"],
			NearestAttraction: record["nearest_attraction"],
			Type:              record["type"],
			Level:             record["level"],
			PhoneNumber:       record["phone_number"],
			Rating:            parseRating(record["rating"]),
			PriceRange:        record["price_range"],
			OneDayRate:        record["one_day_rate"],
			TwelveHourRate:    record["twelve_hour_rate"],
			SixHourRate:       record["six_hour_rate"],
		}); err != nil {
			return err
		}
	}

	foods, err := sheetRecords(f, sheetFoods)
	if err != nil {
		return err
	}
	for _, record := range foods {
		id, err := idGen.NewULIDFromTimestamp(time.Now())
		if err != nil {
			return err
		}
		if err := client.Foods.CreateFood(ctx, entity.Food{
			ID:          id,
			City:        city,
			Name:        record["name"],
			Description: record["description"],
			PriceRange:  record["price_range"],
			Type:        record["type"],
			WhereToBuy:  record["where_to_buy"],
		}); err != nil {
			return err
		}
	}

	return nil
}

// sheetRecords reads a sheet into maps keyed by the normalized header
// row. A missing sheet yields no records, matching the absent row-set
// semantics of the chat service.
func sheetRecords(f *excelize.File, sheet string) ([]map[string]string, error) {
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, nil
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	if len(rows) < 2 {
		return nil, nil
	}

	headers := make([]string, len(rows[0]))
	for i, header := range rows[0] {
		headers[i] = normalizeHeader(header)
	}

	var records []map[string]string
	for _, row := range rows[1:] {
		if isEmptyRow(row) {
			continue
		}
		record := make(map[string]string, len(headers))
		for i, header := range headers {
			if header == "" || i >= len(row) {
				continue
			}
			record[header] = strings.TrimSpace(row[i])
		}
		records = append(records, record)
	}

	return records, nil
}

func normalizeHeader(header string) string {
	normalized := strings.ToLower(strings.TrimSpace(header))
	normalized = strings.ReplaceAll(normalized, " ", "_")
	if canonical, ok := headerAliases[normalized]; ok {
		return canonical
	}
	return normalized
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func parseRating(raw string) float64 {
	rating, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return rating
}


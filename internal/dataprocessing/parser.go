package dataprocessing

import (
	"encoding/csv"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"bikeshare/internal/errors"
	"bikeshare/pkg/contracts/domain"
)

// Column headers expected in the city data files. Only Start Time is
// mandatory; reporters guard the rest through Dataset presence flags.
const (
	colStartTime    = "Start Time"
	colTripDuration = "Trip Duration"
	colStartStation = "Start Station"
	colEndStation   = "End Station"
	colUserType     = "User Type"
	colGender       = "Gender"
	colBirthYear    = "Birth Year"
)

// startTimeLayouts lists the timestamp formats tried in order when
// parsing the Start Time column.
var startTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
}

// columnMap holds the index of each known column, -1 when absent
type columnMap struct {
	startTime    int
	duration     int
	startStation int
	endStation   int
	userType     int
	gender       int
	birthYear    int
}

// ParseFile reads a city data file and extracts its trip records.
// CSV and Excel inputs are supported; the format is chosen by file
// extension.
func ParseFile(path string, logger *slog.Logger) (*domain.Dataset, error) {
	if logger == nil {
		logger = slog.Default()
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return parseCSV(path, logger)
	case ".xlsx":
		return parseExcel(path, logger)
	default:
		return nil, errors.NewParsingError("unsupported data file format", nil).
			WithContext("path", path)
	}
}

// parseCSV reads trip records from a CSV file
func parseCSV(path string, logger *slog.Logger) (*domain.Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.NewStorageError("failed to open data file", err).
			WithContext("path", path)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, errors.NewStorageError("failed to read data file", err).
			WithContext("path", path)
	}

	// Remove BOM if present
	if len(content) >= 3 && content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF {
		content = content[3:]
	}

	reader := csv.NewReader(strings.NewReader(string(content)))
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.NewParsingError("failed to read CSV data", err).
			WithContext("path", path)
	}

	return buildDataset(rows, path, logger)
}

// parseExcel reads trip records from the first worksheet whose header
// row carries a Start Time column.
func parseExcel(path string, logger *slog.Logger) (*domain.Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.NewStorageError("failed to open Excel file", err).
			WithContext("path", path)
	}
	defer f.Close()

	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil || len(rows) == 0 {
			continue
		}
		if headerIndex(rows[0], colStartTime) == -1 {
			continue
		}
		logger.Debug("found trip data sheet", slog.String("sheet", sheet))
		return buildDataset(rows, path, logger)
	}

	return nil, errors.NewParsingError("no worksheet with trip data found", nil).
		WithContext("path", path)
}

// buildDataset converts raw rows (header first) into a Dataset,
// dropping rows whose start time does not parse.
func buildDataset(rows [][]string, path string, logger *slog.Logger) (*domain.Dataset, error) {
	if len(rows) == 0 {
		return nil, errors.NewNoDataError("data file is empty").
			WithContext("path", path)
	}

	cols, err := mapColumns(rows[0])
	if err != nil {
		return nil, err
	}

	ds := &domain.Dataset{
		HasDuration:  cols.duration != -1,
		HasStations:  cols.startStation != -1 && cols.endStation != -1,
		HasUserType:  cols.userType != -1,
		HasGender:    cols.gender != -1,
		HasBirthYear: cols.birthYear != -1,
		SourceRows:   len(rows) - 1,
	}

	dropped := 0
	for _, row := range rows[1:] {
		record, ok := buildRecord(row, cols)
		if !ok {
			dropped++
			continue
		}
		ds.Records = append(ds.Records, record)
	}

	if dropped > 0 {
		logger.Warn("dropped rows with invalid start time",
			slog.Int("dropped", dropped),
			slog.String("path", path))
	}
	logger.Info("parsed trip data",
		slog.String("path", path),
		slog.Int("rows", len(ds.Records)),
		slog.Int("source_rows", ds.SourceRows))

	return ds, nil
}

// mapColumns locates the known columns in the header row. Start Time
// is required; everything else is optional.
func mapColumns(header []string) (columnMap, error) {
	cols := columnMap{
		startTime:    headerIndex(header, colStartTime),
		duration:     headerIndex(header, colTripDuration),
		startStation: headerIndex(header, colStartStation),
		endStation:   headerIndex(header, colEndStation),
		userType:     headerIndex(header, colUserType),
		gender:       headerIndex(header, colGender),
		birthYear:    headerIndex(header, colBirthYear),
	}

	if cols.startTime == -1 {
		return cols, errors.NewParsingError("required column missing", nil).
			WithContext("column", colStartTime)
	}
	return cols, nil
}

// headerIndex finds a column by name, ignoring case and padding
func headerIndex(header []string, name string) int {
	for i, h := range header {
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return i
		}
	}
	return -1
}

// buildRecord converts one data row into a TripRecord. It returns
// ok=false when the start time cell is missing or unparseable, which
// drops the row.
func buildRecord(row []string, cols columnMap) (domain.TripRecord, bool) {
	startTime, ok := parseStartTime(cell(row, cols.startTime))
	if !ok {
		return domain.TripRecord{}, false
	}

	record := domain.TripRecord{
		StartTime:    startTime,
		Duration:     parseDuration(cell(row, cols.duration)),
		StartStation: cell(row, cols.startStation),
		EndStation:   cell(row, cols.endStation),
		UserType:     cell(row, cols.userType),
		Gender:       cell(row, cols.gender),
		BirthYear:    parseBirthYear(cell(row, cols.birthYear)),
		Month:        int(startTime.Month()),
		Weekday:      strings.ToLower(startTime.Weekday().String()),
		Hour:         startTime.Hour(),
	}
	return record, true
}

// cell safely extracts and trims a field from a row
func cell(row []string, index int) string {
	if index < 0 || index >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[index])
}

// parseStartTime tries each known timestamp layout in order
func parseStartTime(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range startTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseDuration parses a trip duration in seconds, returning NaN for
// missing or malformed values so the row survives with the duration
// marked absent.
func parseDuration(value string) float64 {
	if value == "" {
		return math.NaN()
	}
	d, err := strconv.ParseFloat(strings.ReplaceAll(value, ",", ""), 64)
	if err != nil || d < 0 {
		return math.NaN()
	}
	return d
}

// parseBirthYear parses a birth year cell. Source files store the year
// as a float (e.g. "1992.0"); 0 marks a missing value.
func parseBirthYear(value string) int {
	if value == "" {
		return 0
	}
	y, err := strconv.ParseFloat(value, 64)
	if err != nil || y <= 0 {
		return 0
	}
	return int(y)
}

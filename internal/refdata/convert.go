package refdata

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/cedrichille/monopoly-companion-app/internal/adapter"
	"github.com/cedrichille/monopoly-companion-app/internal/domain"
	"github.com/cedrichille/monopoly-companion-app/internal/logger"
)

// Converter turns CSV exports of the reference tables into JSON fixture files.
// Each CSV has a header row; property rent columns are prefixed with "rent_".
type Converter struct {
	fs   adapter.FileSystem
	json adapter.JSON
}

// NewConverter creates a new fixture converter
func NewConverter(fs adapter.FileSystem, json adapter.JSON) *Converter {
	return &Converter{fs: fs, json: json}
}

// csvName maps a fixture file name to its CSV export
func csvName(fixture string) string {
	return strings.TrimSuffix(fixture, filepath.Ext(fixture)) + ".csv"
}

// Convert reads the four CSV exports in srcDir, validates them as a set and writes the JSON fixtures to dstDir
func (c *Converter) Convert(ctx context.Context, srcDir, dstDir string) (*Summary, error) {
	var fixtures Fixtures

	actionRows, err := c.readCSV(filepath.Join(srcDir, csvName(ActionTypeFile)))
	if err != nil {
		return nil, err
	}
	for _, row := range actionRows {
		a := ActionTypeFixture{Code: domain.ActionType(row.str("code")), Name: row.str("name")}
		if a.ID, err = row.number("id"); err != nil {
			return nil, err
		}
		fixtures.ActionTypes = append(fixtures.ActionTypes, a)
	}

	versionRows, err := c.readCSV(filepath.Join(srcDir, csvName(GameVersionFile)))
	if err != nil {
		return nil, err
	}
	for _, row := range versionRows {
		v := GameVersionFixture{Name: row.str("name")}
		if err := row.numbers(map[string]*int64{
			"id":            &v.ID,
			"total_cash":    &v.TotalCash,
			"starting_cash": &v.StartingCash,
			"go_value":      &v.GoValue,
			"income_tax":    &v.IncomeTax,
			"luxury_tax":    &v.LuxuryTax,
		}); err != nil {
			return nil, err
		}
		fixtures.GameVersions = append(fixtures.GameVersions, v)
	}

	playerRows, err := c.readCSV(filepath.Join(srcDir, csvName(PlayersFile)))
	if err != nil {
		return nil, err
	}
	for _, row := range playerRows {
		p := PlayerFixture{Name: row.str("name")}
		if p.ID, err = row.number("id"); err != nil {
			return nil, err
		}
		fixtures.Players = append(fixtures.Players, p)
	}

	propertyRows, err := c.readCSV(filepath.Join(srcDir, csvName(PropertyFile)))
	if err != nil {
		return nil, err
	}
	for _, row := range propertyRows {
		p := PropertyFixture{
			Name:  row.str("name"),
			Group: row.str("group"),
			Type:  domain.PropertyType(row.str("type")),
		}
		if err := row.numbers(map[string]*int64{
			"id":                  &p.ID,
			"game_version_id":     &p.GameVersionID,
			"price":               &p.Price,
			"mortgage_value":      &p.MortgageValue,
			"house_cost":          &p.HouseCost,
			"rent_basic":          &p.Rent.Basic,
			"rent_monopoly":       &p.Rent.Monopoly,
			"rent_house1":         &p.Rent.House1,
			"rent_house2":         &p.Rent.House2,
			"rent_house3":         &p.Rent.House3,
			"rent_house4":         &p.Rent.House4,
			"rent_hotel":          &p.Rent.Hotel,
			"rent_two_owned":      &p.Rent.TwoOwned,
			"rent_three_owned":    &p.Rent.ThreeOwned,
			"rent_four_owned":     &p.Rent.FourOwned,
			"rent_multiplier_one": &p.Rent.MultiplierOne,
			"rent_multiplier_two": &p.Rent.MultiplierTwo,
		}); err != nil {
			return nil, err
		}
		fixtures.Properties = append(fixtures.Properties, p)
	}

	if err := fixtures.Validate(); err != nil {
		return nil, err
	}

	outputs := []struct {
		name string
		v    interface{}
	}{
		{ActionTypeFile, fixtures.ActionTypes},
		{GameVersionFile, fixtures.GameVersions},
		{PlayersFile, fixtures.Players},
		{PropertyFile, fixtures.Properties},
	}
	for _, out := range outputs {
		if err := c.writeJSON(filepath.Join(dstDir, out.name), out.v); err != nil {
			return nil, err
		}
	}

	summary := fixtures.Summary()
	logger.InfoCtx(ctx, "Fixtures converted",
		zap.String("src", srcDir),
		zap.String("dst", dstDir),
		zap.Int("properties", summary.Properties),
	)
	return &summary, nil
}

func (c *Converter) readCSV(path string) ([]csvRow, error) {
	f, err := c.fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%s is empty", path)
		}
		return nil, fmt.Errorf("failed to read header of %s: %w", path, err)
	}
	columns := make(map[string]int, len(header))
	for i, h := range header {
		// Spreadsheet exports often start with a UTF-8 BOM
		columns[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}

	var rows []csvRow
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		rows = append(rows, csvRow{path: path, line: line, columns: columns, record: record})
	}
	return rows, nil
}

func (c *Converter) writeJSON(path string, v interface{}) error {
	data, err := c.json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}

	f, err := c.fs.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if _, err := f.Write(append(data, '\n')); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}

type csvRow struct {
	path    string
	line    int
	columns map[string]int
	record  []string
}

// str returns the trimmed cell of a column, or "" when the column is absent
func (r csvRow) str(column string) string {
	i, ok := r.columns[column]
	if !ok || i >= len(r.record) {
		return ""
	}
	return strings.TrimSpace(r.record[i])
}

// number parses a whole-number cell; empty cells read as zero
func (r csvRow) number(column string) (int64, error) {
	cell := r.str(column)
	if cell == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(cell, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s line %d: column %q is not a whole number: %q", r.path, r.line, column, cell)
	}
	return n, nil
}

func (r csvRow) numbers(targets map[string]*int64) error {
	for column, target := range targets {
		n, err := r.number(column)
		if err != nil {
			return err
		}
		*target = n
	}
	return nil
}

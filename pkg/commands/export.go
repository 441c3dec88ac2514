package commands

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-errors/errors"
	goyaml "github.com/goccy/go-yaml"
)

// ReportFormat selects the on-disk format of an exported report.
type ReportFormat string

const (
	ReportFormatCSV  ReportFormat = "csv"
	ReportFormatJSON ReportFormat = "json"
	ReportFormatYAML ReportFormat = "yaml"
)

// ParseReportFormat validates a user-supplied format name.
func ParseReportFormat(value string) (ReportFormat, error) {
	switch strings.ToLower(value) {
	case "csv":
		return ReportFormatCSV, nil
	case "json":
		return ReportFormatJSON, nil
	case "yaml", "yml":
		return ReportFormatYAML, nil
	default:
		return "", errors.Errorf("unsupported report format %q (want csv, json or yaml)", value)
	}
}

// ReportRow is one snap's scan outcome as it appears in a report.
type ReportRow struct {
	Name            string   `json:"name" yaml:"name"`
	Title           string   `json:"title,omitempty" yaml:"title,omitempty"`
	Version         string   `json:"version" yaml:"version"`
	Revision        string   `json:"revision" yaml:"revision"`
	Publisher       string   `json:"publisher,omitempty" yaml:"publisher,omitempty"`
	StoreURL        string   `json:"storeUrl" yaml:"storeUrl"`
	Classification  string   `json:"classification" yaml:"classification"`
	CoveragePercent float64  `json:"coveragePercent" yaml:"coveragePercent"`
	PresentLocales  []string `json:"presentLocales" yaml:"presentLocales"`
	MissingLocales  []string `json:"missingLocales" yaml:"missingLocales"`
	DesktopFiles    int      `json:"desktopFiles" yaml:"desktopFiles"`
	ScanError       string   `json:"scanError,omitempty" yaml:"scanError,omitempty"`
}

// Report is the document an export produces. Only scanned snaps get a row;
// TotalSnaps still counts everything so a cancelled sweep is visible.
type Report struct {
	GeneratedAt      time.Time   `json:"generatedAt" yaml:"generatedAt"`
	ReferenceLocales []string    `json:"referenceLocales" yaml:"referenceLocales"`
	TotalSnaps       int         `json:"totalSnaps" yaml:"totalSnaps"`
	Translated       int         `json:"translated" yaml:"translated"`
	Partial          int         `json:"partial" yaml:"partial"`
	Untranslated     int         `json:"untranslated" yaml:"untranslated"`
	Snaps            []ReportRow `json:"snaps" yaml:"snaps"`
}

// BuildReport summarises the scan outcomes of the given snaps.
func (c *SnapdCommand) BuildReport(snaps []*Snap) *Report {
	report := &Report{
		GeneratedAt:      time.Now(),
		ReferenceLocales: c.currentScanner().ReferenceLocales,
		TotalSnaps:       len(snaps),
	}

	for _, snap := range snaps {
		state := snap.CurrentScanState()
		if !state.Scanned {
			continue
		}

		row := ReportRow{
			Name:            snap.Name,
			Title:           snap.Details.Title,
			Version:         snap.Details.Version,
			Revision:        snap.Details.Revision,
			Publisher:       snap.Details.PublisherName(),
			StoreURL:        snap.StoreURL(),
			Classification:  state.Status.Classification.String(),
			CoveragePercent: state.Status.CoverageRatio() * 100,
			PresentLocales:  state.Status.PresentLocales,
			MissingLocales:  state.Status.MissingLocales,
			DesktopFiles:    len(state.Status.DesktopFiles),
		}

		if state.Err != nil {
			// the row still goes in so the reader can see which snaps we
			// couldn't judge, but it stays out of the classification counts
			row.ScanError = state.Err.Error()
		} else {
			switch state.Status.Classification {
			case ClassificationComplete:
				report.Translated++
			case ClassificationPartial:
				report.Partial++
			default:
				report.Untranslated++
			}
		}

		report.Snaps = append(report.Snaps, row)
	}

	return report
}

// WriteReport writes the report into dir and returns the path of the file it
// created.
func (c *SnapdCommand) WriteReport(report *Report, format ReportFormat, dir string) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", WrapError(err)
	}

	filename := fmt.Sprintf("snap-l10n-%s.%s", report.GeneratedAt.Format("20060102-150405"), format)
	path := filepath.Join(dir, filename)

	var err error
	switch format {
	case ReportFormatJSON:
		err = writeJSONReport(report, path)
	case ReportFormatCSV:
		err = writeCSVReport(report, path)
	case ReportFormatYAML:
		err = writeYAMLReport(report, path)
	default:
		return "", errors.Errorf("unsupported report format %q", format)
	}
	if err != nil {
		return "", WrapError(err)
	}

	return path, nil
}

func writeJSONReport(report *Report, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}

func writeYAMLReport(report *Report, path string) error {
	content, err := goyaml.Marshal(report)
	if err != nil {
		return err
	}
	return os.WriteFile(path, content, 0o644)
}

func writeCSVReport(report *Report, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	header := []string{
		"name", "version", "revision", "publisher", "classification",
		"coverage_percent", "present_locales", "missing_locales",
		"desktop_files", "store_url", "scan_error",
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, row := range report.Snaps {
		record := []string{
			row.Name,
			row.Version,
			row.Revision,
			row.Publisher,
			row.Classification,
			strconv.FormatFloat(row.CoveragePercent, 'f', 1, 64),
			strings.Join(row.PresentLocales, " "),
			strings.Join(row.MissingLocales, " "),
			strconv.Itoa(row.DesktopFiles),
			row.StoreURL,
			row.ScanError,
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

//-------------------------------------------------------------------------
//
// crmgen - synthetic retail/CRM dataset generator
//
// This software is released under the MIT License
//
//-------------------------------------------------------------------------

// Package report renders an exploratory-data-analysis HTML report over the
// generated dataset: per-column descriptive statistics, value
// distributions as inline Chart.js charts, and sample rows per table.
package report

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"sort"

	"github.com/synthcrm/crmgen/internal/logging"
)

const (
	sampleRowLimit = 5
	histogramBins  = 10

	// Non-numeric columns with more distinct values than this (raw
	// identifiers, mostly) get no distribution chart.
	maxCategoricalCardinality = 50
)

// ColumnStats holds descriptive statistics for one column.
type ColumnStats struct {
	Name    string
	Count   int
	Missing int
	Unique  int
	Numeric bool
	Min     float64
	Max     float64
	Mean    float64
}

// Chart is one rendered distribution: a canvas ID plus the Chart.js data
// payload embedded as inline JSON.
type Chart struct {
	CanvasID string
	Title    string
	Payload  template.JS
}

// TableReport is the analysis of one table.
type TableReport struct {
	Name    string
	Columns []string
	Samples [][]string
	Stats   []ColumnStats
	Charts  []Chart
}

// Generate full-scans the given tables and writes the HTML report.
func Generate(ctx context.Context, sqlDB *sql.DB, tables []string, outputPath string) error {
	reports := make([]TableReport, 0, len(tables))
	for _, table := range tables {
		tr, err := analyzeTable(ctx, sqlDB, table)
		if err != nil {
			return fmt.Errorf("analyze %s: %w", table, err)
		}
		reports = append(reports, tr)
		logging.Info().
			Str("table", table).
			Int("columns", len(tr.Columns)).
			Msg("Table analyzed")
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	defer out.Close()

	if err := reportTemplate.Execute(out, reports); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	logging.Info().Str("path", outputPath).Msg("EDA report written")
	return nil
}

// columnAccumulator collects per-column state during the table scan.
type columnAccumulator struct {
	name    string
	count   int
	missing int
	numeric bool
	started bool
	values  []float64
	freq    map[string]int
}

func analyzeTable(ctx context.Context, sqlDB *sql.DB, table string) (TableReport, error) {
	rows, err := sqlDB.QueryContext(ctx, "SELECT * FROM "+table)
	if err != nil {
		return TableReport{}, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return TableReport{}, err
	}

	accs := make([]*columnAccumulator, len(columns))
	for i, name := range columns {
		accs[i] = &columnAccumulator{name: name, freq: map[string]int{}}
	}

	var samples [][]string
	scan := make([]any, len(columns))
	ptrs := make([]any, len(columns))
	for i := range scan {
		ptrs[i] = &scan[i]
	}

	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return TableReport{}, err
		}
		if len(samples) < sampleRowLimit {
			sample := make([]string, len(columns))
			for i, v := range scan {
				sample[i] = truncate(formatValue(v), 50)
			}
			samples = append(samples, sample)
		}
		for i, v := range scan {
			accs[i].observe(v)
		}
	}
	if err := rows.Err(); err != nil {
		return TableReport{}, err
	}

	tr := TableReport{Name: table, Columns: columns, Samples: samples}
	for _, acc := range accs {
		stats, chart := acc.finish(table)
		tr.Stats = append(tr.Stats, stats)
		if chart != nil {
			tr.Charts = append(tr.Charts, *chart)
		}
	}
	return tr, nil
}

func (a *columnAccumulator) observe(v any) {
	a.count++
	if v == nil {
		a.missing++
		return
	}

	num, isNum := asFloat(v)
	if !a.started {
		a.started = true
		a.numeric = isNum
	}
	if a.numeric && !isNum {
		// Mixed column degrades to categorical
		a.numeric = false
		a.values = nil
	}
	if a.numeric {
		a.values = append(a.values, num)
	}
	a.freq[formatValue(v)]++
}

func (a *columnAccumulator) finish(table string) (ColumnStats, *Chart) {
	stats := ColumnStats{
		Name:    a.name,
		Count:   a.count,
		Missing: a.missing,
		Unique:  len(a.freq),
		Numeric: a.numeric,
	}

	if a.numeric && len(a.values) > 0 {
		stats.Min, stats.Max = a.values[0], a.values[0]
		var sum float64
		for _, v := range a.values {
			if v < stats.Min {
				stats.Min = v
			}
			if v > stats.Max {
				stats.Max = v
			}
			sum += v
		}
		stats.Mean = sum / float64(len(a.values))
		return stats, a.histogramChart(table, stats)
	}

	if len(a.freq) == 0 || len(a.freq) > maxCategoricalCardinality {
		return stats, nil
	}
	return stats, a.topValuesChart(table)
}

func (a *columnAccumulator) histogramChart(table string, stats ColumnStats) *Chart {
	labels := make([]string, 0, histogramBins)
	counts := make([]int, histogramBins)

	if stats.Max == stats.Min {
		labels = append(labels, formatValue(stats.Min))
		counts = []int{len(a.values)}
	} else {
		step := (stats.Max - stats.Min) / histogramBins
		for b := 0; b < histogramBins; b++ {
			low := stats.Min + float64(b)*step
			labels = append(labels, fmt.Sprintf("%.1f-%.1f", low, low+step))
		}
		for _, v := range a.values {
			idx := int((v - stats.Min) / step)
			if idx >= histogramBins {
				idx = histogramBins - 1
			}
			counts[idx]++
		}
	}
	return newChart(table, a.name, labels, counts)
}

func (a *columnAccumulator) topValuesChart(table string) *Chart {
	type kv struct {
		key   string
		count int
	}
	pairs := make([]kv, 0, len(a.freq))
	for k, c := range a.freq {
		pairs = append(pairs, kv{k, c})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].count != pairs[j].count {
			return pairs[i].count > pairs[j].count
		}
		return pairs[i].key < pairs[j].key
	})
	if len(pairs) > 10 {
		pairs = pairs[:10]
	}

	labels := make([]string, len(pairs))
	counts := make([]int, len(pairs))
	for i, p := range pairs {
		labels[i] = truncate(p.key, 30)
		counts[i] = p.count
	}
	return newChart(table, a.name, labels, counts)
}

func newChart(table, column string, labels []string, counts []int) *Chart {
	payload, err := json.Marshal(map[string]any{
		"labels": labels,
		"datasets": []map[string]any{{
			"label":           column,
			"data":            counts,
			"backgroundColor": "#3498db",
		}},
	})
	if err != nil {
		return nil
	}
	return &Chart{
		CanvasID: fmt.Sprintf("chart_%s_%s", table, column),
		Title:    column,
		Payload:  template.JS(payload),
	}
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

func formatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case []byte:
		return string(t)
	case float64:
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t))
		}
		return fmt.Sprintf("%.2f", t)
	default:
		return fmt.Sprintf("%v", t)
	}
}

func truncate(s string, maxLen int) string {
	if len(s) > maxLen {
		return s[:maxLen]
	}
	return s
}

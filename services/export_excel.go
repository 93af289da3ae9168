package services

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// GenerateQuoteExcel creates an Excel worksheet mirroring the quote
// document and returns the file contents as a byte slice.
func GenerateQuoteExcel(page *QuotePage) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := sheetNameFromTitle(page.Title)

	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	columns := []string{"A", "B", "C", "D"}
	lastCol := columns[len(columns)-1]

	widths := []float64{48, 16, 10, 16}
	for i, colRef := range columns {
		if err := f.SetColWidth(sheetName, colRef, colRef, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", colRef, err)
		}
	}

	// ── Styles ──────────────────────────────────────────────────────────

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	subtitleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 11},
	})
	if err != nil {
		return nil, fmt.Errorf("create subtitle style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#2D3342"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	itemStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create item style: %w", err)
	}

	shadedItemStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"#F3F4F6"}, Pattern: 1},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create shaded item style: %w", err)
	}

	totalLabelStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return nil, fmt.Errorf("create total label style: %w", err)
	}

	totalValueStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
	})
	if err != nil {
		return nil, fmt.Errorf("create total value style: %w", err)
	}

	noteStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 9, Italic: true},
	})
	if err != nil {
		return nil, fmt.Errorf("create note style: %w", err)
	}

	// ── Header rows ─────────────────────────────────────────────────────

	if err := f.MergeCell(sheetName, "A1", lastCol+"1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheetName, "A1", sanitizeExcelCell(page.Title))
	f.SetCellStyle(sheetName, "A1", lastCol+"1", titleStyle)

	if page.CustomerLine != "" {
		if err := f.MergeCell(sheetName, "A2", lastCol+"2"); err != nil {
			return nil, fmt.Errorf("merge customer: %w", err)
		}
		f.SetCellValue(sheetName, "A2", sanitizeExcelCell(page.CustomerLine))
		f.SetCellStyle(sheetName, "A2", lastCol+"2", subtitleStyle)
	}

	// ── Column headers (row 4) ──────────────────────────────────────────

	for i, h := range page.ColumnHeads {
		cell := fmt.Sprintf("%s4", columns[i])
		f.SetCellValue(sheetName, cell, h)
	}
	f.SetCellStyle(sheetName, "A4", lastCol+"4", headerStyle)

	// ── Item rows ───────────────────────────────────────────────────────

	rowNum := 5
	for _, r := range page.Rows {
		rowStr := fmt.Sprintf("%d", rowNum)

		f.SetCellValue(sheetName, "A"+rowStr, sanitizeExcelCell(r.Name))
		f.SetCellValue(sheetName, "B"+rowStr, r.UnitPrice)
		f.SetCellValue(sheetName, "C"+rowStr, sanitizeExcelCell(r.Quantity))
		f.SetCellValue(sheetName, "D"+rowStr, r.LineTotal)

		style := itemStyle
		if r.Shaded {
			style = shadedItemStyle
		}
		f.SetCellStyle(sheetName, "A"+rowStr, lastCol+rowStr, style)

		rowNum++
	}

	// ── Total row ───────────────────────────────────────────────────────

	if page.Total != nil {
		rowNum++
		rowStr := fmt.Sprintf("%d", rowNum)
		if err := f.MergeCell(sheetName, "A"+rowStr, "C"+rowStr); err != nil {
			return nil, fmt.Errorf("merge total: %w", err)
		}
		f.SetCellValue(sheetName, "A"+rowStr, page.Total.Label)
		f.SetCellStyle(sheetName, "A"+rowStr, "C"+rowStr, totalLabelStyle)
		f.SetCellValue(sheetName, "D"+rowStr, page.Total.Amount)
		f.SetCellStyle(sheetName, "D"+rowStr, "D"+rowStr, totalValueStyle)
	}

	// ── Footer notes ────────────────────────────────────────────────────

	rowNum += 2
	for _, note := range page.FooterNotes {
		rowStr := fmt.Sprintf("%d", rowNum)
		if err := f.MergeCell(sheetName, "A"+rowStr, lastCol+rowStr); err != nil {
			return nil, fmt.Errorf("merge note: %w", err)
		}
		f.SetCellValue(sheetName, "A"+rowStr, "• "+sanitizeExcelCell(note))
		f.SetCellStyle(sheetName, "A"+rowStr, lastCol+rowStr, noteStyle)
		rowNum++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// sheetNameFromTitle derives a valid worksheet name from the free-text
// service title. The format forbids : \ / ? * [ ] in sheet names and caps
// them at 31 characters; forbidden characters become spaces and the cap is
// applied per rune so a multibyte character is never split.
func sheetNameFromTitle(title string) string {
	var b strings.Builder
	for _, r := range title {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			b.WriteRune(' ')
		default:
			b.WriteRune(r)
		}
	}

	name := strings.TrimSpace(b.String())
	if runes := []rune(name); len(runes) > 31 {
		name = strings.TrimSpace(string(runes[:31]))
	}
	if name == "" {
		return "Orçamento"
	}
	return name
}

// thinBorders returns a full thin border set for table cells.
func thinBorders() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "#CCCCCC", Style: 1},
		{Type: "right", Color: "#CCCCCC", Style: 1},
		{Type: "top", Color: "#CCCCCC", Style: 1},
		{Type: "bottom", Color: "#CCCCCC", Style: 1},
	}
}

// sanitizeExcelCell neutralizes strings a spreadsheet would interpret as a
// formula.
func sanitizeExcelCell(s string) string {
	if s == "" {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@':
		return "'" + s
	}
	return s
}

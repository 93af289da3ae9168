package services

import (
	"bytes"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestGenerateQuoteExcel(t *testing.T) {
	page := BuildQuotePage(sampleSession())

	xlsxBytes, err := GenerateQuoteExcel(page)
	if err != nil {
		t.Fatalf("GenerateQuoteExcel: %v", err)
	}
	if len(xlsxBytes) == 0 {
		t.Fatal("expected non-empty workbook")
	}
	// xlsx is a zip container.
	if !bytes.HasPrefix(xlsxBytes, []byte("PK")) {
		t.Error("output is not a zip archive")
	}

	f, err := excelize.OpenReader(bytes.NewReader(xlsxBytes))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet != "Concertina" {
		t.Errorf("sheet name = %q, want %q", sheet, "Concertina")
	}

	title, err := f.GetCellValue(sheet, "A1")
	if err != nil {
		t.Fatalf("GetCellValue A1: %v", err)
	}
	if title != "Concertina" {
		t.Errorf("A1 = %q", title)
	}

	firstItem, err := f.GetCellValue(sheet, "A5")
	if err != nil {
		t.Fatalf("GetCellValue A5: %v", err)
	}
	if firstItem != "CONCERTINA (À VISTA)" {
		t.Errorf("A5 = %q", firstItem)
	}

	firstTotal, err := f.GetCellValue(sheet, "D5")
	if err != nil {
		t.Fatalf("GetCellValue D5: %v", err)
	}
	if firstTotal != "R$ 1.188,00" {
		t.Errorf("D5 = %q", firstTotal)
	}
}

func TestGenerateQuoteExcel_HiddenTotal(t *testing.T) {
	s := sampleSession()
	s.ShowTotal = false
	page := BuildQuotePage(s)

	xlsxBytes, err := GenerateQuoteExcel(page)
	if err != nil {
		t.Fatalf("GenerateQuoteExcel: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(xlsxBytes))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	for _, row := range rows {
		for _, cell := range row {
			if cell == "Valor Total" {
				t.Fatal("total row present despite hidden total bar")
			}
		}
	}
}

func TestGenerateQuoteExcel_EmptyTitleFallsBack(t *testing.T) {
	s := sampleSession()
	s.ServiceTitle = ""
	page := BuildQuotePage(s)

	xlsxBytes, err := GenerateQuoteExcel(page)
	if err != nil {
		t.Fatalf("GenerateQuoteExcel: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(xlsxBytes))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	if got := f.GetSheetName(0); got != "Orçamento" {
		t.Errorf("sheet name = %q, want fallback", got)
	}
}

func TestGenerateQuoteExcel_SlashInTitle(t *testing.T) {
	s := sampleSession()
	s.ServiceTitle = "Cerca/Portão"
	page := BuildQuotePage(s)

	xlsxBytes, err := GenerateQuoteExcel(page)
	if err != nil {
		t.Fatalf("GenerateQuoteExcel: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(xlsxBytes))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	if got := f.GetSheetName(0); got != "Cerca Portão" {
		t.Errorf("sheet name = %q, want %q", got, "Cerca Portão")
	}

	// The title cell keeps the original text untouched.
	title, err := f.GetCellValue("Cerca Portão", "A1")
	if err != nil {
		t.Fatalf("GetCellValue A1: %v", err)
	}
	if title != "Cerca/Portão" {
		t.Errorf("A1 = %q", title)
	}
}

func TestSheetNameFromTitle(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		expect string
	}{
		{"plain", "Concertina", "Concertina"},
		{"empty", "", "Orçamento"},
		{"forbidden chars", `Cerca: \Portão/ [3]?*`, "Cerca   Portão   3"},
		{"only forbidden chars", "///", "Orçamento"},
		{"rune cap", strings.Repeat("ã", 40), strings.Repeat("ã", 31)},
		{"cap then trim", strings.Repeat("a", 30) + " b", strings.Repeat("a", 30)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sheetNameFromTitle(tt.in); got != tt.expect {
				t.Errorf("sheetNameFromTitle(%q) = %q, want %q", tt.in, got, tt.expect)
			}
		})
	}
}

func TestSanitizeExcelCell(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		expect string
	}{
		{"plain", "SIRENE", "SIRENE"},
		{"empty", "", ""},
		{"formula", "=SUM(A1)", "'=SUM(A1)"},
		{"plus", "+1", "'+1"},
		{"minus", "-1", "'-1"},
		{"at", "@cercaseguracl", "'@cercaseguracl"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizeExcelCell(tt.in); got != tt.expect {
				t.Errorf("sanitizeExcelCell(%q) = %q, want %q", tt.in, got, tt.expect)
			}
		})
	}
}

// Package export renders a user's budget as CSV or as an Excel-readable SpreadsheetML workbook.
package export

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/gradgoals/gradgoals/internal/models"
	"github.com/gradgoals/gradgoals/internal/money"
)

// Supported formats.
const (
	FormatCSV = "csv"
	FormatXML = "xml"
)

// ErrUnknownFormat is returned for formats other than csv and xml.
var ErrUnknownFormat = errors.New("unknown export format")

// ContentType returns the MIME type and file extension for a format.
func ContentType(format string) (mime, ext string, err error) {
	switch format {
	case FormatCSV:
		return "text/csv; charset=utf-8", "csv", nil
	case FormatXML:
		return "application/vnd.ms-excel", "xml", nil
	default:
		return "", "", ErrUnknownFormat
	}
}

// Write renders items and their summary in the given format.
func Write(w io.Writer, format string, items []models.BudgetItem, sum models.BudgetSummary) error {
	switch format {
	case FormatCSV:
		return WriteCSV(w, items, sum)
	case FormatXML:
		return WriteSpreadsheet(w, items, sum)
	default:
		return ErrUnknownFormat
	}
}

func amount(v float64) string {
	return strconv.FormatFloat(money.RoundCents(v), 'f', 2, 64)
}

func totalsRows(sum models.BudgetSummary) [][2]string {
	return [][2]string{
		{"Total Income", amount(sum.Income)},
		{"Total Expenses", amount(sum.Expenses)},
		{"Remaining Balance", amount(sum.Net)},
	}
}

// WriteCSV writes one row per item followed by a blank line and the totals.
func WriteCSV(w io.Writer, items []models.BudgetItem, sum models.BudgetSummary) error {
	cw := csv.NewWriter(w)
	records := [][]string{{"Category", "Amount", "Type"}}
	for _, it := range items {
		records = append(records, []string{it.Category, amount(it.Amount), strings.ToUpper(it.Type)})
	}
	records = append(records, []string{"", "", ""})
	for _, row := range totalsRows(sum) {
		records = append(records, []string{row[0], row[1], ""})
	}
	return cw.WriteAll(records)
}

const (
	ssNS       = "urn:schemas-microsoft-com:office:spreadsheet"
	headerID   = "header"
	currencyID = "currency"
)

// WriteSpreadsheet writes a SpreadsheetML 2003 workbook with a single Budget sheet.
func WriteSpreadsheet(w io.Writer, items []models.BudgetItem, sum models.BudgetSummary) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	doc.CreateProcInst("mso-application", `progid="Excel.Sheet"`)

	wb := doc.CreateElement("Workbook")
	wb.CreateAttr("xmlns", ssNS)
	wb.CreateAttr("xmlns:ss", ssNS)

	styles := wb.CreateElement("Styles")
	header := styles.CreateElement("Style")
	header.CreateAttr("ss:ID", headerID)
	header.CreateElement("Font").CreateAttr("ss:Bold", "1")
	currency := styles.CreateElement("Style")
	currency.CreateAttr("ss:ID", currencyID)
	currency.CreateElement("NumberFormat").CreateAttr("ss:Format", `"$"#,##0.00`)

	sheet := wb.CreateElement("Worksheet")
	sheet.CreateAttr("ss:Name", "Budget")
	table := sheet.CreateElement("Table")

	row := table.CreateElement("Row")
	for _, h := range []string{"Category", "Amount", "Type"} {
		cell(row, "String", h, headerID)
	}
	for _, it := range items {
		row := table.CreateElement("Row")
		cell(row, "String", it.Category, "")
		cell(row, "Number", amount(it.Amount), currencyID)
		cell(row, "String", strings.ToUpper(it.Type), "")
	}

	table.CreateElement("Row")
	for _, t := range totalsRows(sum) {
		row := table.CreateElement("Row")
		cell(row, "String", t[0], headerID)
		cell(row, "Number", t[1], currencyID)
	}

	doc.Indent(2)
	_, err := doc.WriteTo(w)
	return err
}

func cell(row *etree.Element, kind, value, style string) {
	c := row.CreateElement("Cell")
	if style != "" {
		c.CreateAttr("ss:StyleID", style)
	}
	data := c.CreateElement("Data")
	data.CreateAttr("ss:Type", kind)
	data.SetText(value)
}

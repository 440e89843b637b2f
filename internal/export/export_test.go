package export

import (
	"bytes"
	"encoding/csv"
	"errors"
	"strings"
	"testing"

	"github.com/beevik/etree"

	"github.com/gradgoals/gradgoals/internal/models"
)

var (
	testItems = []models.BudgetItem{
		{Category: "Job", Amount: 2000, Type: models.ItemIncome},
		{Category: "Rent, shared", Amount: 850.5, Type: models.ItemExpense},
	}
	testSummary = models.BudgetSummary{Income: 2000, Expenses: 850.5, Net: 1149.5}
)

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, FormatCSV, testItems, testSummary); err != nil {
		t.Fatalf("Write: %v", err)
	}
	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("reading csv back: %v", err)
	}
	if len(records) != 7 {
		t.Fatalf("len(records) = %d, want 7", len(records))
	}
	if got := records[2]; got[0] != "Rent, shared" || got[1] != "850.50" || got[2] != "EXPENSE" {
		t.Errorf("row = %v", got)
	}
	if got := records[6]; got[0] != "Remaining Balance" || got[1] != "1149.50" {
		t.Errorf("totals row = %v", got)
	}
}

func TestWriteSpreadsheet(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, FormatXML, testItems, testSummary); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !strings.Contains(buf.String(), `progid="Excel.Sheet"`) {
		t.Error("missing Excel processing instruction")
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(buf.Bytes()); err != nil {
		t.Fatalf("parsing output: %v", err)
	}
	rows := doc.FindElements("//Row")
	// header, two items, spacer, three totals
	if len(rows) != 7 {
		t.Fatalf("len(rows) = %d, want 7", len(rows))
	}
	var texts []string
	for _, d := range rows[1].FindElements(".//Data") {
		texts = append(texts, d.Text())
	}
	if strings.Join(texts, "|") != "Job|2000.00|INCOME" {
		t.Errorf("first item row = %v", texts)
	}
}

func TestWrite_UnknownFormat(t *testing.T) {
	if err := Write(&bytes.Buffer{}, "pdf", nil, models.BudgetSummary{}); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("err = %v, want ErrUnknownFormat", err)
	}
	if _, _, err := ContentType("pdf"); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("err = %v, want ErrUnknownFormat", err)
	}
}

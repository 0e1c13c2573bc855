package excel

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/nurpe/gigpay/internal/model"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) Generate(statement model.Statement) ([]byte, error) {
	file := excelize.NewFile()

	sheet := "Statement"
	file.SetSheetName("Sheet1", sheet)
	if err := g.writeStatement(file, sheet, statement); err != nil {
		return nil, err
	}

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) writeStatement(file *excelize.File, sheet string, statement model.Statement) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "Account")
	set("B1", statement.Profile.FullName())
	set("A2", "Profession")
	set("B2", statement.Profile.Profession)
	set("A3", "Period start")
	set("B3", formatDate(statement.PeriodStart))
	set("A4", "Period end")
	set("B4", formatDate(statement.PeriodEnd))
	set("A5", "Current balance")
	set("B5", statement.Profile.Balance.StringFixed(2))
	set("A6", "Total paid in period")
	set("B6", statement.TotalPaid.StringFixed(2))
	set("A7", "Total outstanding")
	set("B7", statement.TotalOutstanding.StringFixed(2))

	tableRow := 9
	headers := []string{
		"Date",
		"Description",
		"Counterparty",
		"Role",
		"Price",
		"Status",
		"Payment date",
	}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, tableRow)
		set(cell, header)
	}

	for i, line := range statement.Lines {
		row := tableRow + 1 + i
		set(fmt.Sprintf("A%d", row), line.ContractID.String())
		set(fmt.Sprintf("B%d", row), line.Description)
		set(fmt.Sprintf("C%d", row), line.CounterpartyName)
		set(fmt.Sprintf("D%d", row), string(line.Role))
		set(fmt.Sprintf("E%d", row), line.Price.StringFixed(2))
		set(fmt.Sprintf("F%d", row), statusLabel(line.Paid))
		set(fmt.Sprintf("G%d", row), formatDateTime(line.PaymentDate))
	}

	_ = file.SetColWidth(sheet, "A", "A", 38)
	_ = file.SetColWidth(sheet, "B", "C", 32)
	_ = file.SetColWidth(sheet, "D", "D", 12)
	_ = file.SetColWidth(sheet, "E", "E", 14)
	_ = file.SetColWidth(sheet, "F", "G", 20)
	return nil
}

func statusLabel(paid bool) string {
	if paid {
		return "paid"
	}
	return "unpaid"
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

func formatDateTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02 15:04:05")
}

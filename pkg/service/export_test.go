package service

import (
	"strings"
	"testing"

	"sellerpulse/ms-seller-analytics/pkg/model"
)

func samplePnlReport() model.PnlReportResponse {
	return model.PnlReportResponse{
		Periods: []string{"2021-06", "2021-05"},
		Rows: []model.PnlRow{
			{
				Parameter: "Sales",
				Periods: []model.PnlPeriodValue{
					{Period: "2021-06", Value: 1234.56},
					{Period: "2021-05", Value: 1000},
				},
				Total: 2234.56,
			},
			{
				Parameter:    "Amazon fees",
				IsExpandable: true,
				Periods: []model.PnlPeriodValue{
					{Period: "2021-06", Value: 100},
					{Period: "2021-05", Value: 90},
				},
				Total: 190,
				Children: []model.PnlRow{
					{
						Parameter: "FBA fees",
						Periods: []model.PnlPeriodValue{
							{Period: "2021-06", Value: 60},
							{Period: "2021-05", Value: 55},
						},
						Total: 115,
					},
				},
			},
			{
				Parameter: "Net profit",
				Periods: []model.PnlPeriodValue{
					{Period: "2021-06", Value: 400},
					{Period: "2021-05", Value: 300},
				},
				Total: 700,
			},
			{
				Parameter: "Net margin",
				Periods: []model.PnlPeriodValue{
					{Period: "2021-06", Value: 32.4},
					{Period: "2021-05", Value: 30},
				},
			},
		},
	}
}

func TestBuildPnlWorkbook(t *testing.T) {
	f, err := buildPnlWorkbook(samplePnlReport())
	if err != nil {
		t.Fatalf("buildPnlWorkbook() error = %v", err)
	}

	got, err := f.GetCellValue(pnlSheetName, "A2")
	if err != nil {
		t.Fatalf("GetCellValue() error = %v", err)
	}
	if got != "Sales" {
		t.Errorf("A2 = %q, want Sales", got)
	}

	// child rows are indented under their parent
	got, _ = f.GetCellValue(pnlSheetName, "A4")
	if strings.TrimSpace(got) != "FBA fees" || !strings.HasPrefix(got, " ") {
		t.Errorf("A4 = %q, want indented FBA fees", got)
	}

	// header: Parameter, two periods, Total
	got, _ = f.GetCellValue(pnlSheetName, "D1")
	if got != "Total" {
		t.Errorf("D1 = %q, want Total", got)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer() error = %v", err)
	}
	if buf.Len() == 0 {
		t.Error("WriteToBuffer() produced an empty workbook")
	}
}

func TestPnlEmailBody(t *testing.T) {
	body := pnlEmailBody(samplePnlReport())

	for _, want := range []string{"2021-06", "1,234.56", "400.00", "32.40%"} {
		if !strings.Contains(body, want) {
			t.Errorf("pnlEmailBody() missing %q in %q", want, body)
		}
	}
}

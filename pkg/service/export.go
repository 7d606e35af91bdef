package service

import (
	"context"
	"encoding/base64"
	"net/http"
	"time"

	"sellerpulse/ms-seller-analytics/conf"
	"sellerpulse/ms-seller-analytics/pkg/model"

	sendinblue "github.com/sendinblue/APIv3-go-library/lib"
	"github.com/xuri/excelize/v2"
	"gitlab.com/goxp/cloud0/ginext"
	"gitlab.com/goxp/cloud0/logger"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const pnlSheetName = "P&L"

type PnlExportService struct {
	pnl PnlServiceInterface
}

func NewPnlExportService(pnl PnlServiceInterface) PnlExportServiceInterface {
	return &PnlExportService{pnl: pnl}
}

type PnlExportServiceInterface interface {
	ExportPnlReport(ctx context.Context, req model.PnlRequest) (fileName string, content []byte, err error)
	SendPnlEmail(ctx context.Context, req model.SendPnlEmailRequest) error
}

func (s *PnlExportService) ExportPnlReport(ctx context.Context, req model.PnlRequest) (fileName string, content []byte, err error) {
	log := logger.WithCtx(ctx, "PnlExportService.ExportPnlReport").WithField("req", req)

	report, err := s.pnl.GetPnlReport(ctx, req)
	if err != nil {
		return "", nil, err
	}

	fileName, content, err = exportReport(report)
	if err != nil {
		log.WithError(err).Error("error_500: build P&L workbook error")
		return "", nil, ginext.NewError(http.StatusInternalServerError, "build P&L workbook error")
	}

	return fileName, content, nil
}

func exportReport(report model.PnlReportResponse) (string, []byte, error) {
	file, err := buildPnlWorkbook(report)
	if err != nil {
		return "", nil, err
	}
	buf, err := file.WriteToBuffer()
	if err != nil {
		return "", nil, err
	}
	return "pnl-report-" + time.Now().Format("2006-01-02") + ".xlsx", buf.Bytes(), nil
}

func (s *PnlExportService) SendPnlEmail(ctx context.Context, req model.SendPnlEmailRequest) error {
	log := logger.WithCtx(ctx, "PnlExportService.SendPnlEmail").WithField("req", req)

	if len(req.Recipients) == 0 {
		return ginext.NewError(http.StatusBadRequest, "recipients is required")
	}
	config := conf.LoadEnv()
	if config.SendinblueAPIKey == "" {
		log.Error("error_500: sendinblue api key is not configured")
		return ginext.NewError(http.StatusInternalServerError, "email delivery is not configured")
	}

	report, err := s.pnl.GetPnlReport(ctx, model.PnlRequest{
		UserRole:    req.UserRole,
		UserCallAPI: req.UserCallAPI,
		AccountID:   req.AccountID,
	})
	if err != nil {
		return err
	}
	fileName, content, err := exportReport(report)
	if err != nil {
		log.WithError(err).Error("error_500: build P&L workbook error")
		return ginext.NewError(http.StatusInternalServerError, "build P&L workbook error")
	}

	subject := req.Subject
	if subject == "" {
		subject = "Profit & Loss report " + time.Now().Format("2006-01-02")
	}

	to := make([]sendinblue.SendSmtpEmailTo, 0, len(req.Recipients))
	for _, r := range req.Recipients {
		to = append(to, sendinblue.SendSmtpEmailTo{Email: r})
	}

	cfg := sendinblue.NewConfiguration()
	cfg.AddDefaultHeader("api-key", config.SendinblueAPIKey)
	client := sendinblue.NewAPIClient(cfg)

	email := sendinblue.SendSmtpEmail{
		Sender: &sendinblue.SendSmtpEmailSender{
			Name:  config.ReportFromName,
			Email: config.ReportFromEmail,
		},
		To:          to,
		Subject:     subject,
		HtmlContent: pnlEmailBody(report),
		Attachment: []sendinblue.SendSmtpEmailAttachment{
			{
				Name:    fileName,
				Content: base64.StdEncoding.EncodeToString(content),
			},
		},
	}

	if _, _, err := client.TransactionalEmailsApi.SendTransacEmail(ctx, email); err != nil {
		log.WithError(err).Error("error_500: send P&L email error")
		return ginext.NewError(http.StatusInternalServerError, "send P&L email error")
	}

	return nil
}

func buildPnlWorkbook(report model.PnlReportResponse) (*excelize.File, error) {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", pnlSheetName)

	headerStyle, err := f.NewStyle(`{"font":{"bold":true},"fill":{"type":"pattern","color":["#DDEBF7"],"pattern":1}}`)
	if err != nil {
		return nil, err
	}
	numberStyle, err := f.NewStyle(`{"number_format":4}`)
	if err != nil {
		return nil, err
	}

	header := append([]string{"Parameter"}, report.Periods...)
	header = append(header, "Total")
	for i, h := range header {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(pnlSheetName, cell, h); err != nil {
			return nil, err
		}
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(header), 1)
	if err := f.SetCellStyle(pnlSheetName, "A1", lastHeader, headerStyle); err != nil {
		return nil, err
	}

	rowNo := 2
	var writeRow func(row model.PnlRow, indent string) error
	writeRow = func(row model.PnlRow, indent string) error {
		cell, err := excelize.CoordinatesToCellName(1, rowNo)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(pnlSheetName, cell, indent+row.Parameter); err != nil {
			return err
		}
		for i, p := range row.Periods {
			cell, err := excelize.CoordinatesToCellName(i+2, rowNo)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(pnlSheetName, cell, p.Value); err != nil {
				return err
			}
		}
		cell, err = excelize.CoordinatesToCellName(len(row.Periods)+2, rowNo)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(pnlSheetName, cell, row.Total); err != nil {
			return err
		}
		rowNo++
		for _, child := range row.Children {
			if err := writeRow(child, indent+"    "); err != nil {
				return err
			}
		}
		return nil
	}
	for _, row := range report.Rows {
		if err := writeRow(row, ""); err != nil {
			return nil, err
		}
	}

	firstNumber, _ := excelize.CoordinatesToCellName(2, 2)
	lastNumber, _ := excelize.CoordinatesToCellName(len(header), rowNo-1)
	if err := f.SetCellStyle(pnlSheetName, firstNumber, lastNumber, numberStyle); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(pnlSheetName, "A", "A", 28); err != nil {
		return nil, err
	}

	return f, nil
}

// pnlEmailBody summarizes the newest column, the full ladder travels as the
// spreadsheet attachment.
func pnlEmailBody(report model.PnlReportResponse) string {
	printer := message.NewPrinter(language.English)

	latest := func(parameter string) float64 {
		for _, row := range report.Rows {
			if row.Parameter == parameter && len(row.Periods) > 0 {
				return row.Periods[0].Value
			}
		}
		return 0
	}

	period := ""
	if len(report.Periods) > 0 {
		period = report.Periods[0]
	}

	return printer.Sprintf(
		"<h3>Profit &amp; Loss %s (month to date)</h3>"+
			"<p>Sales: %.2f<br/>"+
			"Net profit: %.2f<br/>"+
			"Net margin: %.2f%%</p>"+
			"<p>The full report is attached.</p>",
		period, latest("Sales"), latest("Net profit"), latest("Net margin"),
	)
}

package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/jpkn-sabah/attendance-backend-go/internal/domain/report"
	"github.com/jpkn-sabah/attendance-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	DownloadPDF(w http.ResponseWriter, r *http.Request)
	DownloadXLSX(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.Service
}

func NewReportHandler(reportService report.Service) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

// DownloadPDF implements ReportHandler
func (h *reportHandlerImpl) DownloadPDF(w http.ResponseWriter, r *http.Request) {
	deptCode := r.URL.Query().Get("dept")
	period := r.URL.Query().Get("period")

	data, err := h.reportService.AttendancePDF(r.Context(), deptCode, period)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", attachmentName("attendance-report", period, "pdf"))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// DownloadXLSX implements ReportHandler
func (h *reportHandlerImpl) DownloadXLSX(w http.ResponseWriter, r *http.Request) {
	deptCode := r.URL.Query().Get("dept")
	period := r.URL.Query().Get("period")

	data, err := h.reportService.AttendanceXLSX(r.Context(), deptCode, period)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", attachmentName("attendance-data", period, "xlsx"))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func attachmentName(prefix, period, ext string) string {
	if period == "" {
		period = "daily"
	}
	return fmt.Sprintf(`attachment; filename="%s-%s-%d.%s"`, prefix, period, time.Now().Unix(), ext)
}

package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	apierrors "aimdash/internal/errors"
	"aimdash/pkg/contracts/domain"
)

// queryDateFormat is the wire format of the start/end query parameters
const queryDateFormat = "2006-01-02"

// dateRangeQuery carries the optional date filter query parameters
type dateRangeQuery struct {
	Start string `validate:"omitempty,datetime=2006-01-02"`
	End   string `validate:"omitempty,datetime=2006-01-02"`
}

// ReportHandler handles reporting HTTP requests with RFC 7807 compliance
type ReportHandler struct {
	service      ReportServiceInterface
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
	validate     *validator.Validate
}

// NewReportHandler creates a new report handler with RFC 7807 error handling
func NewReportHandler(service ReportServiceInterface, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *ReportHandler {
	return &ReportHandler{
		service:      service,
		logger:       logger.With(slog.String("component", "report_handler")),
		errorHandler: errorHandler,
		validate:     validator.New(),
	}
}

// Routes returns the reporting routes
func (h *ReportHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/dashboard", h.GetDashboard)
	r.Get("/pl", h.GetPLSummary)
	r.Get("/loads", h.GetLoads)
	r.Get("/otr/unmatched", h.GetUnmatchedOTR)

	return r
}

// GetDashboard handles GET /api/reports/dashboard
func (h *ReportHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	dateRange, err := h.parseDateRange(r)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	metrics, err := h.service.Dashboard(r.Context(), dateRange)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to build dashboard",
			slog.String("error", err.Error()),
			slog.String("request_id", middleware.GetReqID(r.Context())))
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.JSON(w, r, metrics)
}

// GetPLSummary handles GET /api/reports/pl
func (h *ReportHandler) GetPLSummary(w http.ResponseWriter, r *http.Request) {
	dateRange, err := h.parseDateRange(r)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	summary, err := h.service.PLSummary(r.Context(), dateRange)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to build P&L summary",
			slog.String("error", err.Error()),
			slog.String("request_id", middleware.GetReqID(r.Context())))
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.JSON(w, r, summary)
}

// GetLoads handles GET /api/reports/loads
func (h *ReportHandler) GetLoads(w http.ResponseWriter, r *http.Request) {
	loads, err := h.service.Loads(r.Context())
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]any{
		"loads": loads,
		"count": len(loads),
	})
}

// GetUnmatchedOTR handles GET /api/reports/otr/unmatched
func (h *ReportHandler) GetUnmatchedOTR(w http.ResponseWriter, r *http.Request) {
	unmatched, err := h.service.UnmatchedOTR(r.Context())
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]any{
		"load_ids": unmatched,
		"count":    len(unmatched),
	})
}

// parseDateRange reads the optional start/end query parameters. Both must be
// present to form a filter; a lone parameter or a malformed date is a
// validation error.
func (h *ReportHandler) parseDateRange(r *http.Request) (*domain.DateRange, error) {
	q := dateRangeQuery{
		Start: r.URL.Query().Get("start"),
		End:   r.URL.Query().Get("end"),
	}

	if q.Start == "" && q.End == "" {
		return nil, nil
	}
	if q.Start == "" || q.End == "" {
		return nil, apierrors.ErrValidation("start/end", "both start and end are required for a date filter")
	}

	if err := h.validate.Struct(q); err != nil {
		return nil, apierrors.ErrValidation("start/end", "dates must use the YYYY-MM-DD format")
	}

	start, err := time.Parse(queryDateFormat, q.Start)
	if err != nil {
		return nil, apierrors.ErrValidation("start", "must be a valid date")
	}
	end, err := time.Parse(queryDateFormat, q.End)
	if err != nil {
		return nil, apierrors.ErrValidation("end", "must be a valid date")
	}

	if end.Before(start) {
		return nil, apierrors.ErrValidation("end", "must not be before start")
	}

	return &domain.DateRange{Start: start, End: end}, nil
}

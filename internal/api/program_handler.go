// internal/api/program_handler.go
package api

import (
	"errors"
	"net/http"
	"strconv"

	"alcyxob/fitness-program/internal/delivery"
	"alcyxob/fitness-program/internal/domain"
	"alcyxob/fitness-program/internal/service"

	"github.com/gin-gonic/gin"
)

// ProgramHandler serves program generation and email previews.
type ProgramHandler struct {
	programService service.ProgramService
}

// NewProgramHandler creates a new ProgramHandler.
func NewProgramHandler(programService service.ProgramService) *ProgramHandler {
	return &ProgramHandler{programService: programService}
}

// DeliverySummary condenses a DispatchReport for API clients.
type DeliverySummary struct {
	Welcome    domain.DeliveryStatus `json:"welcome"`
	Sent       int                   `json:"sent"`
	Scheduled  int                   `json:"scheduled"`
	Skipped    int                   `json:"skipped"`
	Failed     int                   `json:"failed"`
	FailedDays []int                 `json:"failedDays"`
}

// GenerateProgramResponse is returned after a program was generated.
type GenerateProgramResponse struct {
	Program     *domain.Program  `json:"program"`
	Delivery    *DeliverySummary `json:"delivery,omitempty"`
	SnapshotURL string           `json:"snapshotUrl,omitempty"`
}

// EmailPreviewResponse is the JSON form of a rendered email.
type EmailPreviewResponse struct {
	Day     int    `json:"day"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
	Text    string `json:"text"`
}

func summarize(r *delivery.DispatchReport) *DeliverySummary {
	if r == nil {
		return nil
	}
	failed := r.Failed()
	if failed == nil {
		failed = []int{}
	}
	return &DeliverySummary{
		Welcome:    r.Welcome.Status,
		Sent:       r.Count(domain.DeliveryStatusSent),
		Scheduled:  r.Count(domain.DeliveryStatusScheduled),
		Skipped:    r.Count(domain.DeliveryStatusSkipped),
		Failed:     len(failed),
		FailedDays: failed,
	}
}

// GenerateProgram godoc
// @Summary Generate and deliver a 14-day program
// @Description Builds the program from the completed assessment, stores it, sends the welcome email and schedules days 2-14.
// @Tags Programs
// @Produce json
// @Param id path string true "User ID"
// @Success 201 {object} GenerateProgramResponse
// @Failure 404 {object} gin.H "User not found"
// @Failure 409 {object} gin.H "Assessment not completed"
// @Failure 422 {object} gin.H "Program could not be generated"
// @Router /users/{id}/generate-program [post]
func (h *ProgramHandler) GenerateProgram(c *gin.Context) {
	userID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	// Delivery failures do not surface as errors; they show up in the summary
	result, err := h.programService.GenerateProgram(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err, "Failed to generate program.")
		return
	}
	c.JSON(http.StatusCreated, GenerateProgramResponse{
		Program:     result.Program,
		Delivery:    summarize(result.Report), // nil when delivery did not start
		SnapshotURL: result.SnapshotURL,
	})
}

// GetLatestProgram godoc
// @Summary Get the user's most recent program
// @Tags Programs
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} domain.Program
// @Failure 404 {object} gin.H "No program"
// @Router /users/{id}/program [get]
func (h *ProgramHandler) GetLatestProgram(c *gin.Context) {
	userID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	prog, err := h.programService.GetLatestProgram(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err, "Failed to load program.")
		return
	}
	c.JSON(http.StatusOK, prog)
}

// PreviewEmail godoc
// @Summary Preview the email for one day
// @Description Renders HTML by default; format=text returns the plain-text part and format=json both.
// @Tags Programs
// @Produce html
// @Param id path string true "User ID"
// @Param day path int true "Day (1-14)"
// @Param format query string false "html, text or json"
// @Success 200 {string} string "Rendered email"
// @Failure 400 {object} gin.H "Invalid day"
// @Router /users/{id}/email-preview/{day} [get]
func (h *ProgramHandler) PreviewEmail(c *gin.Context) {
	userID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	// Range is checked by the service; only parse here
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Day must be a number.")
		return
	}

	msg, err := h.programService.PreviewDay(c.Request.Context(), userID, day)
	if err != nil {
		h.handleError(c, err, "Failed to render preview.")
		return
	}

	// Pick the representation requested via ?format=
	switch c.DefaultQuery("format", "html") {
	case "text":
		c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(msg.Text))
	case "json":
		c.JSON(http.StatusOK, EmailPreviewResponse{Day: day, Subject: msg.Subject, HTML: msg.HTML, Text: msg.Text})
	default:
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(msg.HTML))
	}
}

// ListDeliveries godoc
// @Summary List the delivery log of a program
// @Tags Programs
// @Produce json
// @Param programId path string true "Program ID"
// @Success 200 {array} domain.DeliveryRecord
// @Failure 404 {object} gin.H "Program not found"
// @Router /programs/{programId}/deliveries [get]
func (h *ProgramHandler) ListDeliveries(c *gin.Context) {
	// Program ids are generator UUIDs, not ObjectIDs
	records, err := h.programService.ListDeliveries(c.Request.Context(), c.Param("programId"))
	if err != nil {
		h.handleError(c, err, "Failed to load deliveries.")
		return
	}
	if records == nil {
		records = []domain.DeliveryRecord{} // Return [] rather than null
	}
	c.JSON(http.StatusOK, records)
}

func (h *ProgramHandler) handleError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrUserNotFound), errors.Is(err, service.ErrProgramNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidDay):
		abortWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrProfileIncomplete):
		abortWithError(c, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrGenerationFailed):
		_ = c.Error(err) // Keep the per-day detail in the request log
		abortWithError(c, http.StatusUnprocessableEntity, err.Error())
	default:
		_ = c.Error(err)
		abortWithError(c, http.StatusInternalServerError, fallback)
	}
}

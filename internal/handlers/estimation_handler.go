package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "costbook/internal/errors"
	"costbook/internal/models"
	"costbook/internal/services"
)

// EstimationHandler handles estimation and estimation line requests
type EstimationHandler struct {
	estimationService services.EstimationServicer
}

// NewEstimationHandler creates a new EstimationHandler
func NewEstimationHandler(estimationService services.EstimationServicer) *EstimationHandler {
	return &EstimationHandler{estimationService: estimationService}
}

// CreateEstimationRequest represents the request payload for creating an estimation
type CreateEstimationRequest struct {
	EstimationName string `json:"estimation_name" binding:"required"`
}

// UpdateEstimationRequest represents the request payload for renaming an estimation
type UpdateEstimationRequest struct {
	EstimationName string `json:"estimation_name" binding:"required"`
}

// LineRequest represents the request payload for creating or updating a line.
// Numeric fields are pointers so that an omitted field is distinguishable
// from an explicit zero.
type LineRequest struct {
	ItemID         uint     `json:"item_id" binding:"required"`
	SubDescription string   `json:"sub_description"`
	NoOfUnits      *float64 `json:"no_of_units" binding:"omitempty,gte=0"`
	Length         *float64 `json:"length" binding:"omitempty,gte=0"`
	Width          *float64 `json:"width" binding:"omitempty,gte=0"`
	Thickness      *float64 `json:"thickness" binding:"omitempty,gte=0"`
	Quantity       *float64 `json:"quantity" binding:"omitempty,gte=0"`
	Rate           *float64 `json:"rate" binding:"omitempty,gte=0"`
}

func (r *LineRequest) toInput() services.LineInput {
	return services.LineInput{
		ItemID:         r.ItemID,
		SubDescription: r.SubDescription,
		NoOfUnits:      r.NoOfUnits,
		Length:         r.Length,
		Width:          r.Width,
		Thickness:      r.Thickness,
		Quantity:       r.Quantity,
		Rate:           r.Rate,
	}
}

// DeleteLinesRequest represents the request payload for bulk line deletion
type DeleteLinesRequest struct {
	LineIDs []uint `json:"line_ids" binding:"required"`
}

// TotalResponse represents the grand total of an estimation
type TotalResponse struct {
	EstimationID uint    `json:"estimation_id"`
	GrandTotal   float64 `json:"grand_total"`
}

// CreateEstimation handles attaching a new estimation to a project
// @Summary     Create an estimation
// @Description Create a named estimation under a project
// @Tags        estimations
// @Accept      json
// @Produce     json
// @Param       project_id path int true "Project ID"
// @Param       request body CreateEstimationRequest true "Estimation details"
// @Success     201 {object} models.Estimation "Estimation created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Project not found"
// @Router      /projects/{project_id}/estimations [post]
func (h *EstimationHandler) CreateEstimation(c *gin.Context) {
	projectID, err := parsePathID(c, "project_id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateEstimationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	estimation, err := h.estimationService.CreateEstimation(projectID, req.EstimationName)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, estimation)
}

// ListEstimations handles listing a project's estimations
// @Summary     List estimations
// @Description List a project's estimations in creation order
// @Tags        estimations
// @Produce     json
// @Param       project_id path int true "Project ID"
// @Param       skip  query int false "Rows to skip"
// @Param       limit query int false "Maximum rows to return"
// @Success     200 {array} models.Estimation "List of estimations"
// @Failure     404 {object} ErrorResponse "Project not found"
// @Router      /projects/{project_id}/estimations [get]
func (h *EstimationHandler) ListEstimations(c *gin.Context) {
	projectID, err := parsePathID(c, "project_id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	window, err := bindWindow(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	estimations, err := h.estimationService.ListEstimations(projectID, window)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if estimations == nil {
		estimations = []models.Estimation{}
	}

	c.JSON(http.StatusOK, estimations)
}

// GetEstimation handles retrieving a single estimation with its lines
// @Summary     Get an estimation
// @Description Get an estimation and its lines
// @Tags        estimations
// @Produce     json
// @Param       estimation_id path int true "Estimation ID"
// @Success     200 {object} models.Estimation "Estimation with lines"
// @Failure     404 {object} ErrorResponse "Estimation not found"
// @Router      /estimations/{estimation_id} [get]
func (h *EstimationHandler) GetEstimation(c *gin.Context) {
	estimationID, err := parsePathID(c, "estimation_id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	estimation, err := h.estimationService.GetEstimation(estimationID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, estimation)
}

// UpdateEstimation handles renaming an estimation
// @Summary     Rename an estimation
// @Description Update an estimation's name
// @Tags        estimations
// @Accept      json
// @Produce     json
// @Param       estimation_id path int true "Estimation ID"
// @Param       request body UpdateEstimationRequest true "New name"
// @Success     200 {object} models.Estimation "Updated estimation"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Estimation not found"
// @Router      /estimations/{estimation_id} [patch]
func (h *EstimationHandler) UpdateEstimation(c *gin.Context) {
	estimationID, err := parsePathID(c, "estimation_id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateEstimationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	estimation, err := h.estimationService.RenameEstimation(estimationID, req.EstimationName)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, estimation)
}

// DeleteEstimation handles deleting an estimation and its lines
// @Summary     Delete an estimation
// @Description Delete an estimation together with its lines
// @Tags        estimations
// @Produce     json
// @Param       estimation_id path int true "Estimation ID"
// @Success     200 {object} models.Estimation "Deleted estimation"
// @Failure     404 {object} ErrorResponse "Estimation not found"
// @Router      /estimations/{estimation_id} [delete]
func (h *EstimationHandler) DeleteEstimation(c *gin.Context) {
	estimationID, err := parsePathID(c, "estimation_id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	estimation, err := h.estimationService.DeleteEstimation(estimationID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, estimation)
}

// AddLine handles appending a line to an estimation
// @Summary     Add an estimation line
// @Description Add a line; quantity is taken as given or derived from units × length × width × thickness
// @Tags        estimations
// @Accept      json
// @Produce     json
// @Param       estimation_id path int true "Estimation ID"
// @Param       request body LineRequest true "Line details"
// @Success     201 {object} models.EstimationLine "Line created with computed quantity, rate and amount"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Estimation or item not found"
// @Router      /estimations/{estimation_id}/lines [post]
func (h *EstimationHandler) AddLine(c *gin.Context) {
	estimationID, err := parsePathID(c, "estimation_id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req LineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	line, err := h.estimationService.AddLine(estimationID, req.toInput())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, line)
}

// ListLines handles listing an estimation's lines
// @Summary     List estimation lines
// @Description List an estimation's lines in creation order
// @Tags        estimations
// @Produce     json
// @Param       estimation_id path int true "Estimation ID"
// @Param       skip  query int false "Rows to skip"
// @Param       limit query int false "Maximum rows to return"
// @Success     200 {array} models.EstimationLine "List of lines"
// @Failure     404 {object} ErrorResponse "Estimation not found"
// @Router      /estimations/{estimation_id}/lines [get]
func (h *EstimationHandler) ListLines(c *gin.Context) {
	estimationID, err := parsePathID(c, "estimation_id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	window, err := bindWindow(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	lines, err := h.estimationService.ListLines(estimationID, window)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if lines == nil {
		lines = []models.EstimationLine{}
	}

	c.JSON(http.StatusOK, lines)
}

// UpdateLine handles replacing a line's inputs
// @Summary     Update an estimation line
// @Description Replace a line's inputs and recompute quantity, rate and amount
// @Tags        estimations
// @Accept      json
// @Produce     json
// @Param       line_id path int true "Line ID"
// @Param       request body LineRequest true "Line details"
// @Success     200 {object} models.EstimationLine "Updated line"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Line or item not found"
// @Router      /estimations/lines/{line_id} [put]
func (h *EstimationHandler) UpdateLine(c *gin.Context) {
	lineID, err := parsePathID(c, "line_id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req LineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	line, err := h.estimationService.UpdateLine(lineID, req.toInput())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, line)
}

// DeleteLines handles bulk deletion of estimation lines
// @Summary     Delete estimation lines
// @Description Delete the given lines; IDs that do not resolve are skipped
// @Tags        estimations
// @Accept      json
// @Produce     json
// @Param       request body DeleteLinesRequest true "Line IDs"
// @Success     200 {object} MessageResponse "Deletion summary"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /estimations/lines [delete]
func (h *EstimationHandler) DeleteLines(c *gin.Context) {
	var req DeleteLinesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	deleted, err := h.estimationService.DeleteLines(req.LineIDs)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("%d lines deleted successfully.", deleted),
	})
}

// GetTotal handles summing an estimation's line amounts
// @Summary     Get the grand total
// @Description Sum the amounts over an estimation's lines; 0 when there are none
// @Tags        estimations
// @Produce     json
// @Param       estimation_id path int true "Estimation ID"
// @Success     200 {object} TotalResponse "Grand total"
// @Failure     404 {object} ErrorResponse "Estimation not found"
// @Router      /estimations/{estimation_id}/total [get]
func (h *EstimationHandler) GetTotal(c *gin.Context) {
	estimationID, err := parsePathID(c, "estimation_id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	total, err := h.estimationService.GrandTotal(estimationID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, TotalResponse{
		EstimationID: estimationID,
		GrandTotal:   total,
	})
}

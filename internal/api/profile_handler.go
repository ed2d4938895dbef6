package api

import (
	"errors"
	"net/http"
	"time"

	"alcyxob/fitness-program/internal/domain"
	"alcyxob/fitness-program/internal/service"

	"github.com/gin-gonic/gin"
)

// ProfileHandler serves the onboarding phases.
type ProfileHandler struct {
	profileService service.ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// --- DTOs ---

// CreateUserRequest is phase 1 of the onboarding form.
type CreateUserRequest struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Age      int    `json:"age" binding:"required"`
	Gender   string `json:"gender" binding:"required"`
}

// FitnessProfileRequest is phase 2.
type FitnessProfileRequest struct {
	ExperienceLevel    string `json:"experienceLevel" binding:"required"`
	WorkoutDuration    string `json:"workoutDuration" binding:"required"`
	PrimaryGoal        string `json:"primaryGoal" binding:"required"`
	WorkoutEnvironment string `json:"workoutEnvironment" binding:"required"`
}

// EquipmentRequest is phase 3.
type EquipmentRequest struct {
	Equipment []string `json:"equipment"`
}

// InjuryRequest is one entry of phase 4.
type InjuryRequest struct {
	InjuryType string `json:"injuryType"`
	BodyPart   string `json:"bodyPart"`
	Severity   string `json:"severity"`
	IsCurrent  *bool  `json:"isCurrent"`
	Notes      string `json:"notes"`
}

// InjuriesRequest is phase 4 of the onboarding form.
type InjuriesRequest struct {
	Injuries []InjuryRequest `json:"injuries"`
}

// UserResponse is the DTO for returning a stored user.
type UserResponse struct {
	ID             string                 `json:"id"`
	FullName       string                 `json:"fullName"`
	Email          string                 `json:"email"`
	Age            int                    `json:"age"`
	Gender         string                 `json:"gender"`
	FitnessProfile *domain.FitnessProfile `json:"fitnessProfile,omitempty"`
	Equipment      []string               `json:"equipment"`
	Injuries       []domain.InjuryRecord  `json:"injuries"`
	CreatedAt      time.Time              `json:"createdAt"`
	UpdatedAt      time.Time              `json:"updatedAt"`
}

// MapUserToResponse converts a domain.User to UserResponse DTO.
func MapUserToResponse(u *domain.User) UserResponse {
	if u == nil {
		return UserResponse{}
	}
	resp := UserResponse{
		ID:             u.ID.Hex(),
		FullName:       u.FullName,
		Email:          u.Email,
		Age:            u.Age,
		Gender:         u.Gender,
		FitnessProfile: u.FitnessProfile,
		Equipment:      u.Equipment,
		Injuries:       u.Injuries,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
	if resp.Equipment == nil {
		resp.Equipment = []string{}
	}
	if resp.Injuries == nil {
		resp.Injuries = []domain.InjuryRecord{}
	}
	return resp
}

// --- Handler Methods ---

// CreateUser godoc
// @Summary Start onboarding
// @Description Stores a new lead. Submitting a known email returns the existing user.
// @Tags Onboarding
// @Accept json
// @Produce json
// @Param user body CreateUserRequest true "Personal details"
// @Success 201 {object} UserResponse
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /users [post]
func (h *ProfileHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	// Call the service; an existing email comes back as that user
	user, err := h.profileService.CreateUser(c.Request.Context(), req.FullName, req.Email, req.Age, req.Gender)
	if err != nil {
		h.handleError(c, err, "Failed to create user.")
		return
	}
	c.JSON(http.StatusCreated, MapUserToResponse(user))
}

// SaveFitnessProfile godoc
// @Summary Save fitness assessment
// @Tags Onboarding
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param profile body FitnessProfileRequest true "Fitness assessment"
// @Success 200 {object} UserResponse
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 404 {object} gin.H "User not found"
// @Router /users/{id}/fitness-profile [post]
func (h *ProfileHandler) SaveFitnessProfile(c *gin.Context) {
	userID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	var req FitnessProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	// Raw strings go to the service, which parses and validates them
	user, err := h.profileService.SaveFitnessProfile(c.Request.Context(), userID,
		req.ExperienceLevel, req.WorkoutDuration, req.PrimaryGoal, req.WorkoutEnvironment)
	if err != nil {
		h.handleError(c, err, "Failed to save fitness profile.")
		return
	}
	c.JSON(http.StatusOK, MapUserToResponse(user))
}

// SaveEquipment godoc
// @Summary Save available equipment
// @Tags Onboarding
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param equipment body EquipmentRequest true "Equipment tokens"
// @Success 200 {object} UserResponse
// @Router /users/{id}/equipment [post]
func (h *ProfileHandler) SaveEquipment(c *gin.Context) {
	userID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	var req EquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	user, err := h.profileService.SaveEquipment(c.Request.Context(), userID, req.Equipment) // Tokens are normalised by the service
	if err != nil {
		h.handleError(c, err, "Failed to save equipment.")
		return
	}
	c.JSON(http.StatusOK, MapUserToResponse(user))
}

// SaveInjuries godoc
// @Summary Save injuries and limitations
// @Tags Onboarding
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param injuries body InjuriesRequest true "Injuries"
// @Success 200 {object} UserResponse
// @Router /users/{id}/injuries [post]
func (h *ProfileHandler) SaveInjuries(c *gin.Context) {
	userID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	var req InjuriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	// Map request DTOs to service inputs; defaults are applied downstream
	inputs := make([]service.InjuryInput, 0, len(req.Injuries))
	for _, in := range req.Injuries {
		inputs = append(inputs, service.InjuryInput{
			InjuryType: in.InjuryType,
			BodyPart:   in.BodyPart,
			Severity:   in.Severity,
			IsCurrent:  in.IsCurrent, // nil means current
			Notes:      in.Notes,
		})
	}
	user, err := h.profileService.SaveInjuries(c.Request.Context(), userID, inputs)
	if err != nil {
		h.handleError(c, err, "Failed to save injuries.")
		return
	}
	c.JSON(http.StatusOK, MapUserToResponse(user))
}

// GetProfile godoc
// @Summary Get a user's onboarding profile
// @Tags Onboarding
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} UserResponse
// @Failure 404 {object} gin.H "User not found"
// @Router /users/{id}/profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := objectIDParam(c, "id")
	if !ok {
		return // objectIDParam already aborted with 400
	}
	user, err := h.profileService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err, "Failed to load profile.")
		return
	}
	c.JSON(http.StatusOK, MapUserToResponse(user))
}

// ListFunnelEvents godoc
// @Summary List the onboarding funnel steps a user has reached
// @Tags Onboarding
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {array} domain.FunnelEvent
// @Failure 404 {object} gin.H "User not found"
// @Router /users/{id}/events [get]
func (h *ProfileHandler) ListFunnelEvents(c *gin.Context) {
	userID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	events, err := h.profileService.ListFunnelEvents(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err, "Failed to load funnel events.")
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *ProfileHandler) handleError(c *gin.Context, err error, fallback string) {
	// Map service errors to HTTP status codes
	switch {
	case errors.Is(err, service.ErrValidationFailed):
		abortWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrUserNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	default:
		_ = c.Error(err) // Picked up by RequestLogger
		abortWithError(c, http.StatusInternalServerError, fallback)
	}
}

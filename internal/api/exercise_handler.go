package api

import (
	"errors"
	"net/http"
	"time"

	"alcyxob/fitness-program/internal/domain"
	"alcyxob/fitness-program/internal/service"

	"github.com/gin-gonic/gin"
)

// ExerciseHandler holds the exercise service dependency.
type ExerciseHandler struct {
	exerciseService service.ExerciseService
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(exerciseService service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

// --- DTOs for API (Data Transfer Objects) ---

// CreateExerciseRequest defines the expected JSON for creating an exercise.
type CreateExerciseRequest struct {
	Name                       string   `json:"name" binding:"required"`
	Category                   string   `json:"category" binding:"required"`
	Subcategory                string   `json:"subcategory"`
	DifficultyLevel            int      `json:"difficultyLevel" binding:"required"`
	EquipmentRequired          []string `json:"equipmentRequired"`
	Contraindications          string   `json:"contraindications"`
	PrimaryMuscleGroup         string   `json:"primaryMuscleGroup"`
	SecondaryMuscleGroups      []string `json:"secondaryMuscleGroups"`
	Instructions               string   `json:"instructions"`
	FormCues                   string   `json:"formCues"`
	SafetyTips                 string   `json:"safetyTips"`
	EstimatedCaloriesPerMinute float64  `json:"estimatedCaloriesPerMinute"`
}

// ExerciseResponse is the DTO for returning exercise details.
type ExerciseResponse struct {
	ID                         string    `json:"id"`
	Name                       string    `json:"name"`
	Category                   string    `json:"category"`
	Subcategory                string    `json:"subcategory,omitempty"`
	DifficultyLevel            int       `json:"difficultyLevel"`
	EquipmentRequired          []string  `json:"equipmentRequired"`
	Contraindications          string    `json:"contraindications,omitempty"`
	PrimaryMuscleGroup         string    `json:"primaryMuscleGroup,omitempty"`
	SecondaryMuscleGroups      []string  `json:"secondaryMuscleGroups,omitempty"`
	Instructions               string    `json:"instructions,omitempty"`
	FormCues                   string    `json:"formCues,omitempty"`
	SafetyTips                 string    `json:"safetyTips,omitempty"`
	EstimatedCaloriesPerMinute float64   `json:"estimatedCaloriesPerMinute"`
	CreatedAt                  time.Time `json:"createdAt"`
}

// MapExerciseToResponse converts a domain.ExerciseRecord to ExerciseResponse DTO.
func MapExerciseToResponse(ex *domain.ExerciseRecord) ExerciseResponse {
	if ex == nil {
		return ExerciseResponse{}
	}
	return ExerciseResponse{
		ID:                         ex.ID.Hex(),
		Name:                       ex.Name,
		Category:                   ex.Category,
		Subcategory:                ex.Subcategory,
		DifficultyLevel:            ex.DifficultyLevel,
		EquipmentRequired:          ex.Equipment(),
		Contraindications:          ex.Contraindications,
		PrimaryMuscleGroup:         ex.PrimaryMuscleGroup,
		SecondaryMuscleGroups:      ex.SecondaryMuscleGroups,
		Instructions:               ex.Instructions,
		FormCues:                   ex.FormCues,
		SafetyTips:                 ex.SafetyTips,
		EstimatedCaloriesPerMinute: ex.EstimatedCaloriesPerMinute,
		CreatedAt:                  ex.CreatedAt,
	}
}

// MapExercisesToResponse converts a slice of domain.ExerciseRecord to a slice of ExerciseResponse DTO.
func MapExercisesToResponse(exercises []domain.ExerciseRecord) []ExerciseResponse {
	responses := make([]ExerciseResponse, len(exercises))
	for i := range exercises {
		responses[i] = MapExerciseToResponse(&exercises[i])
	}
	return responses
}

// --- Handler Methods ---

// CreateExercise godoc
// @Summary Add an exercise to the catalog
// @Tags Exercises
// @Accept json
// @Produce json
// @Param exercise body CreateExerciseRequest true "Exercise details"
// @Success 201 {object} ExerciseResponse "Exercise created successfully"
// @Failure 400 {object} gin.H "Invalid input (validation error)"
// @Failure 409 {object} gin.H "Duplicate name"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /exercises [post]
func (h *ExerciseHandler) CreateExercise(c *gin.Context) {
	var req CreateExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	// Build the catalog record from the request DTO
	exercise, err := h.exerciseService.CreateExercise(c.Request.Context(), domain.ExerciseRecord{
		Name:                       req.Name,
		Category:                   req.Category,
		Subcategory:                req.Subcategory,
		DifficultyLevel:            req.DifficultyLevel,
		EquipmentRequired:          req.EquipmentRequired, // Empty means bodyweight
		Contraindications:          req.Contraindications,
		PrimaryMuscleGroup:         req.PrimaryMuscleGroup,
		SecondaryMuscleGroups:      req.SecondaryMuscleGroups,
		Instructions:               req.Instructions,
		FormCues:                   req.FormCues,
		SafetyTips:                 req.SafetyTips,
		EstimatedCaloriesPerMinute: req.EstimatedCaloriesPerMinute,
	})
	if err != nil {
		// Map service errors to HTTP status codes
		switch {
		case errors.Is(err, service.ErrValidationFailed):
			abortWithError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrExerciseExists):
			abortWithError(c, http.StatusConflict, err.Error())
		default:
			_ = c.Error(err)
			abortWithError(c, http.StatusInternalServerError, "Failed to create exercise.")
		}
		return
	}

	c.JSON(http.StatusCreated, MapExerciseToResponse(exercise))
}

// ListExercises godoc
// @Summary List the exercise catalog
// @Description Returns the catalog in the order programs see it.
// @Tags Exercises
// @Produce json
// @Success 200 {array} ExerciseResponse
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /exercises [get]
func (h *ExerciseHandler) ListExercises(c *gin.Context) {
	exercises, err := h.exerciseService.ListCatalog(c.Request.Context())
	if err != nil {
		_ = c.Error(err) // Log the underlying error
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve exercises.")
		return
	}
	c.JSON(http.StatusOK, MapExercisesToResponse(exercises))
}

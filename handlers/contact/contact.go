package contact

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/shloksagar/backend/model"
	"github.com/shloksagar/backend/utils/response"
	"github.com/shloksagar/backend/utils/validation"
	"gorm.io/gorm"
)

// ContactHandler handles contact form submissions
type ContactHandler struct {
	db        *gorm.DB
	validator *validation.Validator
}

// NewContactHandler creates a new contact handler
func NewContactHandler(db *gorm.DB) *ContactHandler {
	return &ContactHandler{
		db:        db,
		validator: validation.NewValidator(),
	}
}

// ContactRequest represents a contact form submission
type ContactRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"omitempty,max=20"`
	Message string `json:"message" validate:"required,min=10,max=5000"`
}

// Submit handles POST /api/v1/public/contact
//
// Unlike the analytics endpoints, a storage failure here is surfaced to the
// caller so the form can show an error instead of silently losing the message.
func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	var req ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	submission := model.ContactSubmission{
		Name:    validation.SanitizeString(req.Name),
		Email:   req.Email,
		Phone:   validation.SanitizeString(req.Phone),
		Message: validation.SanitizeString(req.Message),
	}

	if err := h.db.WithContext(c.Context()).Create(&submission).Error; err != nil {
		return response.InternalServerError(c, "Failed to save your message. Please try again")
	}

	return response.Created(c, fiber.Map{"id": submission.ID})
}

// ListSubmissions handles GET /api/v1/admin/contact
func (h *ContactHandler) ListSubmissions(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	query := h.db.WithContext(c.Context()).Model(&model.ContactSubmission{})
	if c.Query("unread", "") == "true" {
		query = query.Where("is_read = ?", false)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return response.InternalServerError(c, "Failed to count submissions")
	}

	pagination := response.CalculatePagination(page, limit, total)

	var submissions []model.ContactSubmission
	if err := query.Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&submissions).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch submissions")
	}

	return response.Paginated(c, submissions, pagination)
}

// MarkRead handles PATCH /api/v1/admin/contact/:id/read
func (h *ContactHandler) MarkRead(c *fiber.Ctx) error {
	id := c.Params("id")

	result := h.db.WithContext(c.Context()).
		Model(&model.ContactSubmission{}).
		Where("id = ?", id).
		Update("is_read", true)
	if result.Error != nil {
		return response.InternalServerError(c, "Failed to update submission")
	}
	if result.RowsAffected == 0 {
		return response.NotFound(c, "Submission not found")
	}

	return response.Success(c, nil)
}

package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shloksagar/backend/model"
	"github.com/shloksagar/backend/utils/response"
	"gorm.io/gorm"
)

// GoogleSignInRequest represents a Google OAuth sign-in
type GoogleSignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"omitempty,max=100"`
	GoogleID string `json:"googleId" validate:"required,max=64"`
}

// GoogleSignIn handles POST /api/v1/public/auth/google
func (h *AuthHandler) GoogleSignIn(c *fiber.Ctx) error {
	var req GoogleSignInRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	// A different account already owning this google id means the email
	// changed on Google's side; match on google id first.
	var existing model.User
	err := h.db.Where("google_id = ?", req.GoogleID).First(&existing).Error
	if err == nil {
		user, upErr := h.upsertUser(existing.Email, req.Name, req.GoogleID)
		if upErr != nil {
			return response.InternalServerError(c, "Failed to sign in")
		}
		return h.respondWithToken(c, user)
	}
	if err != gorm.ErrRecordNotFound {
		return response.InternalServerError(c, "Failed to sign in")
	}

	user, err := h.upsertUser(req.Email, req.Name, req.GoogleID)
	if err != nil {
		return response.InternalServerError(c, "Failed to sign in")
	}

	return h.respondWithToken(c, user)
}

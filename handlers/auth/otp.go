package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shloksagar/backend/model"
	"github.com/shloksagar/backend/services"
	authutil "github.com/shloksagar/backend/utils/auth"
	"github.com/shloksagar/backend/utils/crypto"
	"github.com/shloksagar/backend/utils/middleware"
	"github.com/shloksagar/backend/utils/response"
	"github.com/shloksagar/backend/utils/validation"
	"gorm.io/gorm"
)

// otpExpiry is how long a sign-in code stays valid
const otpExpiry = 10 * time.Minute

// AuthHandler handles authentication-related requests
type AuthHandler struct {
	db                   *gorm.DB
	validator            *validation.Validator
	jwtManager           *authutil.JWTManager
	emailService         *services.EmailService
	bruteForceProtection *middleware.BruteForceProtection
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(db *gorm.DB, jwtManager *authutil.JWTManager, emailService *services.EmailService, bruteForceProtection *middleware.BruteForceProtection) *AuthHandler {
	return &AuthHandler{
		db:                   db,
		validator:            validation.NewValidator(),
		jwtManager:           jwtManager,
		emailService:         emailService,
		bruteForceProtection: bruteForceProtection,
	}
}

// SendOTPRequest represents a request for a sign-in code
type SendOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// VerifyOTPRequest represents a code verification attempt
type VerifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,len=6,numeric"`
}

// AuthResponse represents a successful sign-in
type AuthResponse struct {
	User        UserResponse `json:"user"`
	AccessToken string       `json:"access_token"`
	ExpiresIn   int          `json:"expires_in"` // in seconds
}

// UserResponse represents user data in responses
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// SendOTP handles POST /api/v1/public/auth/send-otp
func (h *AuthHandler) SendOTP(c *fiber.Ctx) error {
	var req SendOTPRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	code, err := crypto.GenerateOTPCode()
	if err != nil {
		return response.InternalServerError(c, "Failed to generate sign-in code")
	}

	salt, err := crypto.GenerateSalt()
	if err != nil {
		return response.InternalServerError(c, "Failed to generate sign-in code")
	}

	// Invalidate any earlier codes for this address before storing the new one
	if err := h.db.Where("email = ?", req.Email).Delete(&model.EmailOTP{}).Error; err != nil {
		return response.InternalServerError(c, "Failed to issue sign-in code")
	}

	otp := model.EmailOTP{
		Email:     req.Email,
		CodeHash:  crypto.HashOTP(code, salt),
		CodeSalt:  salt,
		ExpiresAt: time.Now().Add(otpExpiry),
	}
	if err := h.db.Create(&otp).Error; err != nil {
		return response.InternalServerError(c, "Failed to issue sign-in code")
	}

	if err := h.emailService.SendOTPEmail(req.Email, code); err != nil {
		return response.InternalServerError(c, "Failed to send sign-in code")
	}

	return response.SuccessWithMessage(c, "Sign-in code sent", nil)
}

// VerifyOTP handles POST /api/v1/public/auth/verify-otp
func (h *AuthHandler) VerifyOTP(c *fiber.Ctx) error {
	var req VerifyOTPRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	ip := c.IP()

	var otp model.EmailOTP
	err := h.db.Where("email = ? AND consumed = ? AND expires_at > ?", req.Email, false, time.Now()).
		Order("created_at DESC").
		First(&otp).Error
	if err != nil {
		if h.bruteForceProtection != nil {
			h.bruteForceProtection.RecordFailedAttempt(c, ip)
		}
		return response.Unauthorized(c, "Invalid or expired code")
	}

	if !crypto.VerifyOTP(req.Code, otp.CodeSalt, otp.CodeHash) {
		if h.bruteForceProtection != nil {
			h.bruteForceProtection.RecordFailedAttempt(c, ip)
		}
		return response.Unauthorized(c, "Invalid or expired code")
	}

	if err := h.db.Model(&otp).Update("consumed", true).Error; err != nil {
		return response.InternalServerError(c, "Failed to verify code")
	}

	if h.bruteForceProtection != nil {
		h.bruteForceProtection.RecordSuccessfulAttempt(c, ip)
	}

	user, err := h.upsertUser(req.Email, "", "")
	if err != nil {
		return response.InternalServerError(c, "Failed to sign in")
	}

	return h.respondWithToken(c, user)
}

// upsertUser finds or creates the account for an email address
func (h *AuthHandler) upsertUser(email, name, googleID string) (*model.User, error) {
	var user model.User
	err := h.db.Where("email = ?", email).First(&user).Error
	if err == gorm.ErrRecordNotFound {
		user = model.User{
			Email:    email,
			Name:     name,
			GoogleID: googleID,
			Role:     "user",
		}
		if err := h.db.Create(&user).Error; err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{"last_login_at": time.Now()}
	if googleID != "" && user.GoogleID == "" {
		updates["google_id"] = googleID
	}
	if name != "" && user.Name == "" {
		updates["name"] = name
	}
	if err := h.db.Model(&user).Updates(updates).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

// respondWithToken issues an access token for the user
func (h *AuthHandler) respondWithToken(c *fiber.Ctx, user *model.User) error {
	accessToken, _, err := h.jwtManager.GenerateAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		return response.InternalServerError(c, "Failed to generate access token")
	}

	return response.Success(c, AuthResponse{
		User: UserResponse{
			ID:        user.ID,
			Email:     user.Email,
			Name:      user.Name,
			Role:      user.Role,
			CreatedAt: user.CreatedAt,
		},
		AccessToken: accessToken,
		ExpiresIn:   int(h.jwtManager.Expiry().Seconds()),
	})
}

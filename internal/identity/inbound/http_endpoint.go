package inbound

import (
	"github.com/shandysiswandi/otpgate/internal/identity/entity"
	"github.com/shandysiswandi/otpgate/internal/identity/usecase"
	"github.com/shandysiswandi/otpgate/internal/pkg/router"
)

// HTTPEndpoint exposes the registration handlers.
type HTTPEndpoint struct {
	uc uc
}

// Register starts a user registration by emailing a one-time code.
// @Summary Register user
// @Description Validates the payload and sends a 4-digit verification code to the email address.
// @Tags Identity, Registration
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration payload"
// @Success 200 {object} router.successResponse{data=RegisterResponse} "OTP sent"
// @Failure 400 {object} router.errorResponse "Invalid request body or OTP request restricted"
// @Failure 409 {object} router.errorResponse "Email already registered"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/identity/register [post]
func (h *HTTPEndpoint) Register(r *router.Request) (any, error) {
	var req RegisterRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.Register(r.Context(), usecase.RegisterInput{
		AccountType: entity.AccountTypeUser,
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
	}); err != nil {
		return nil, err
	}

	return &RegisterResponse{}, nil
}

// RegisterSeller starts a seller registration by emailing a one-time code.
// @Summary Register seller
// @Description Same as Register, with the seller contact fields required.
// @Tags Identity, Registration
// @Accept json
// @Produce json
// @Param request body SellerRegisterRequest true "Seller registration payload"
// @Success 200 {object} router.successResponse{data=RegisterResponse} "OTP sent"
// @Failure 400 {object} router.errorResponse "Invalid request body or OTP request restricted"
// @Failure 409 {object} router.errorResponse "Email already registered"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/identity/register/seller [post]
func (h *HTTPEndpoint) RegisterSeller(r *router.Request) (any, error) {
	var req SellerRegisterRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.Register(r.Context(), usecase.RegisterInput{
		AccountType: entity.AccountTypeSeller,
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		PhoneNumber: req.PhoneNumber,
		Country:     req.Country,
	}); err != nil {
		return nil, err
	}

	return &RegisterResponse{}, nil
}

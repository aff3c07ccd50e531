package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/otpgate/internal/identity/entity"
	"github.com/shandysiswandi/otpgate/internal/pkg/goerror"
)

// RegisterInput carries a registration attempt. Password, PhoneNumber and
// Country are validated only; the OTP flow never stores them.
type RegisterInput struct {
	AccountType entity.AccountType `json:"account_type" validate:"required,oneof=user seller"`
	Name        string             `json:"name" validate:"required,max=100"`
	Email       string             `json:"email" validate:"required,email"`
	Password    string             `json:"password" validate:"required"`
	PhoneNumber string             `json:"phone_number" validate:"required_if=AccountType seller"`
	Country     string             `json:"country" validate:"required_if=AccountType seller"`
}

// Register validates the attempt, rejects known emails and, unless a
// restriction applies, emails a fresh OTP to the address.
func (s *Usecase) Register(ctx context.Context, in RegisterInput) error {
	ctx, span := s.startSpan(ctx, "Register")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	in.Name = strings.TrimSpace(in.Name)
	in.PhoneNumber = strings.TrimSpace(in.PhoneNumber)
	in.Country = strings.TrimSpace(in.Country)

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	_, err := s.repoDB.GetUserByEmail(ctx, in.Email)
	if err == nil {
		s.countRejected(ctx, "duplicate_account")
		return entity.ErrDuplicateAccount
	}
	if !errors.Is(err, goerror.ErrNotFound) {
		slog.ErrorContext(ctx, "failed to repo get user by email", "email", in.Email, "error", err)
		return goerror.NewServer(err)
	}

	if err := s.checkOTPRestrictions(ctx, in.Email); err != nil {
		return err
	}

	if err := s.trackOTPRequest(ctx, in.Email); err != nil {
		return err
	}

	return s.sendOTP(ctx, in.Name, in.Email, in.AccountType)
}

package db

import (
	"context"

	"github.com/shandysiswandi/otpgate/internal/identity/entity"
)

const getUserByEmail = `
SELECT id, email, full_name, created_at
FROM identity_users
WHERE LOWER(email) = LOWER($1) AND deleted_at IS NULL
LIMIT 1`

func (s *DB) GetUserByEmail(ctx context.Context, email string) (user *entity.User, err error) {
	ctx, span := s.startSpan(ctx, "GetUserByEmail")
	defer func() { s.endSpan(span, err) }()

	var u entity.User
	err = s.mapError(s.conn.QueryRow(ctx, getUserByEmail, email).Scan(&u.ID, &u.Email, &u.FullName, &u.CreatedAt))
	if err != nil {
		return nil, err
	}

	return &u, nil
}

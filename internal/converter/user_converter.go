package converter

import (
	"vet-clinic-api/internal/delivery/dto"
	"vet-clinic-api/internal/domain/entity"

	"vet-clinic-api/pkg/session"
)

func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	return &dto.UserResponse{
		UserID:    user.UserID,
		Username:  user.Username,
		FullName:  user.FullName,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}

// UserToIdentity builds the session identity for a freshly authenticated
// user. This is all the session ever learns about them.
func UserToIdentity(user *entity.User) session.Identity {
	return session.Identity{
		UserID:   user.UserID,
		FullName: user.FullName,
		Role:     user.Role,
	}
}

func IdentityToResponse(identity *session.Identity) *dto.IdentityResponse {
	if identity == nil {
		return nil
	}

	return &dto.IdentityResponse{
		UserID:   identity.UserID,
		FullName: identity.FullName,
		Role:     identity.Role,
	}
}

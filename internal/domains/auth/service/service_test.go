package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"innkeeper/config"
	"innkeeper/infras/jwt"
	jwtMocks "innkeeper/infras/jwt/mocks"
	"innkeeper/infras/otel/mocks"
	"innkeeper/internal/domains/auth/model/dto"
	"innkeeper/internal/domains/auth/service"
	staffMocks "innkeeper/internal/domains/staff/mocks"
	staffModel "innkeeper/internal/domains/staff/model"
	"innkeeper/shared/constant"
	"innkeeper/shared/password"
)

func newAuthService(ctrl *gomock.Controller) (service.Auth, *staffMocks.MockStaff, *jwtMocks.MockJWT) {
	staffRepo := staffMocks.NewMockStaff(ctrl)
	jwtService := jwtMocks.NewMockJWT(ctrl)

	svc := service.New(staffRepo, &config.Config{}, mocks.NewOtel(), jwtService)

	return svc, staffRepo, jwtService
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hashed, err := password.Hash("s3cret")
	assert.NoError(t, err)

	staff := staffModel.Staff{
		ID:       "staff-1",
		Email:    "desk@example.com",
		Password: hashed,
		Role:     constant.RoleReceptionist,
		Active:   true,
	}

	t.Run("valid credentials", func(t *testing.T) {
		svc, staffRepo, jwtService := newAuthService(ctrl)

		staffRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(staff, nil)
		jwtService.EXPECT().GenerateTokenPair("staff-1", "desk@example.com", constant.RoleReceptionist).Return(&jwt.TokenPair{
			AccessToken:  "access",
			RefreshToken: "refresh",
			ExpiresIn:    900,
		}, nil)

		res, err := svc.Login(context.Background(), dto.LoginRequest{Email: "desk@example.com", Password: "s3cret"})

		assert.NoError(t, err)
		assert.Equal(t, "access", res.AccessToken)
		assert.Equal(t, "refresh", res.RefreshToken)
		assert.Equal(t, int64(900), res.ExpiresIn)
	})

	t.Run("unknown email", func(t *testing.T) {
		svc, staffRepo, _ := newAuthService(ctrl)

		staffRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(staffModel.Staff{}, nil)

		_, err := svc.Login(context.Background(), dto.LoginRequest{Email: "nobody@example.com", Password: "s3cret"})

		assert.Error(t, err)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, staffRepo, _ := newAuthService(ctrl)

		staffRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(staff, nil)

		_, err := svc.Login(context.Background(), dto.LoginRequest{Email: "desk@example.com", Password: "wrong"})

		assert.Error(t, err)
	})

	t.Run("lookup failure", func(t *testing.T) {
		svc, staffRepo, _ := newAuthService(ctrl)

		staffRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(staffModel.Staff{}, errors.New("db down"))

		_, err := svc.Login(context.Background(), dto.LoginRequest{Email: "desk@example.com", Password: "s3cret"})

		assert.Error(t, err)
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("valid refresh token", func(t *testing.T) {
		svc, _, jwtService := newAuthService(ctrl)

		jwtService.EXPECT().RefreshTokens("refresh").Return(&jwt.TokenPair{
			AccessToken:  "new-access",
			RefreshToken: "new-refresh",
			ExpiresIn:    900,
		}, nil)

		res, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "refresh"})

		assert.NoError(t, err)
		assert.Equal(t, "new-access", res.AccessToken)
	})

	t.Run("invalid refresh token", func(t *testing.T) {
		svc, _, jwtService := newAuthService(ctrl)

		jwtService.EXPECT().RefreshTokens("bad").Return(nil, errors.New("token expired"))

		_, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "bad"})

		assert.Error(t, err)
	})
}

package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"innkeeper/config"
	"innkeeper/infras/otel/mocks"
	s3Mocks "innkeeper/infras/s3/mocks"
	guestMocks "innkeeper/internal/domains/guest/mocks"
	"innkeeper/internal/domains/guest/model"
	"innkeeper/internal/domains/guest/model/dto"
	"innkeeper/internal/domains/guest/service"
)

func newGuestService(ctrl *gomock.Controller) (service.Guest, *guestMocks.MockGuest, *s3Mocks.MockS3) {
	repo := guestMocks.NewMockGuest(ctrl)
	s3 := s3Mocks.NewMockS3(ctrl)

	svc := service.New(repo, &config.Config{}, s3, mocks.NewOtel())

	return svc, repo, s3
}

func TestGuestService_FindOrCreateByPhone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	req := dto.GuestInput{
		FullName: "Jamie Guest",
		Phone:    "+628123456789",
	}

	t.Run("existing phone reuses the guest", func(t *testing.T) {
		svc, repo, _ := newGuestService(ctrl)

		existing := model.Guest{ID: "g-1", FullName: "Jamie Guest", Phone: "+628123456789"}

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(existing, nil)

		res, err := svc.FindOrCreateByPhone(context.Background(), req, "staff-1")

		assert.NoError(t, err)
		assert.Equal(t, "g-1", res.ID)
	})

	t.Run("unknown phone creates a guest", func(t *testing.T) {
		svc, repo, _ := newGuestService(ctrl)

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Guest{}, nil)
		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, guest model.Guest) error {
				assert.NotEmpty(t, guest.ID)
				assert.Equal(t, "+628123456789", guest.Phone)
				return nil
			})

		res, err := svc.FindOrCreateByPhone(context.Background(), req, "staff-1")

		assert.NoError(t, err)
		assert.Equal(t, "Jamie Guest", res.FullName)
	})

	t.Run("lookup failure propagates", func(t *testing.T) {
		svc, repo, _ := newGuestService(ctrl)

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Guest{}, errors.New("db down"))

		_, err := svc.FindOrCreateByPhone(context.Background(), req, "staff-1")

		assert.Error(t, err)
	})
}

func TestGuestService_Get_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, _ := newGuestService(ctrl)

	repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Guest{}, nil)

	_, err := svc.Get(context.Background(), "missing")

	assert.Error(t, err)
}

func TestGuestService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("unknown guest", func(t *testing.T) {
		svc, repo, _ := newGuestService(ctrl)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.Update(context.Background(), dto.UpdateGuestRequest{}, "missing", "staff-1")

		assert.Error(t, err)
	})

	t.Run("success", func(t *testing.T) {
		svc, repo, _ := newGuestService(ctrl)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		err := svc.Update(context.Background(), dto.UpdateGuestRequest{FullName: "Jamie Updated"}, "g-1", "staff-1")

		assert.NoError(t, err)
	})
}

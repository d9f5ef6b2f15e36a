package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"innkeeper/config"
	"innkeeper/infras/otel/mocks"
	pricingMocks "innkeeper/internal/domains/pricing/mocks"
	"innkeeper/internal/domains/pricing/model"
	"innkeeper/internal/domains/pricing/service"
	roomMocks "innkeeper/internal/domains/room/mocks"
	roomModel "innkeeper/internal/domains/room/model"
	"innkeeper/shared/timezone"
)

func newPricingService(ctrl *gomock.Controller) (service.Pricing, *pricingMocks.MockRateOverride, *pricingMocks.MockPromotion, *roomMocks.MockRoomType) {
	overrideRepo := pricingMocks.NewMockRateOverride(ctrl)
	promoRepo := pricingMocks.NewMockPromotion(ctrl)
	typeRepo := roomMocks.NewMockRoomType(ctrl)

	svc := service.New(overrideRepo, promoRepo, typeRepo, &config.Config{}, mocks.NewOtel())

	return svc, overrideRepo, promoRepo, typeRepo
}

func date(value string) time.Time {
	parsed, _ := time.Parse("2006-01-02", value)
	return parsed
}

func TestPricingService_Quote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("base rate with one override", func(t *testing.T) {
		svc, overrideRepo, _, typeRepo := newPricingService(ctrl)

		typeRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomModel.RoomType{ID: "rt-1", BaseRate: 500_000}, nil)
		overrideRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.RateOverride{
			{ID: "o-1", RoomTypeID: "rt-1", Date: date("2026-03-11"), Rate: 750_000},
		}, nil)

		res, err := svc.Quote(context.Background(), "rt-1", date("2026-03-10"), date("2026-03-13"))

		assert.NoError(t, err)
		assert.Len(t, res.Nights, 3)
		assert.Equal(t, int64(500_000), res.Nights[0].Rate)
		assert.Equal(t, int64(750_000), res.Nights[1].Rate)
		assert.Equal(t, int64(500_000), res.Nights[2].Rate)
		assert.Equal(t, int64(1_750_000), res.Total)
	})

	t.Run("inverted range is rejected", func(t *testing.T) {
		svc, _, _, _ := newPricingService(ctrl)

		_, err := svc.Quote(context.Background(), "rt-1", date("2026-03-13"), date("2026-03-10"))

		assert.Error(t, err)
	})

	t.Run("unknown room type", func(t *testing.T) {
		svc, _, _, typeRepo := newPricingService(ctrl)

		typeRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomModel.RoomType{}, nil)

		_, err := svc.Quote(context.Background(), "missing", date("2026-03-10"), date("2026-03-11"))

		assert.Error(t, err)
	})
}

func TestPricingService_Promotion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("active promotion resolves", func(t *testing.T) {
		svc, _, promoRepo, _ := newPricingService(ctrl)

		promoRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Promotion{ID: "p-1", Code: "SUMMER", Percent: 10, Active: true}, nil)

		res, err := svc.Promotion(context.Background(), "SUMMER")

		assert.NoError(t, err)
		assert.Equal(t, 10, res.Percent)
	})

	t.Run("unknown code", func(t *testing.T) {
		svc, _, promoRepo, _ := newPricingService(ctrl)

		promoRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Promotion{}, nil)

		_, err := svc.Promotion(context.Background(), "NOPE")

		assert.Error(t, err)
	})

	t.Run("expired promotion is rejected", func(t *testing.T) {
		svc, _, promoRepo, _ := newPricingService(ctrl)

		expired := timezone.Now().AddDate(0, 0, -1)

		promoRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Promotion{ID: "p-1", Code: "OLD", Active: true, ExpiresAt: &expired}, nil)

		_, err := svc.Promotion(context.Background(), "OLD")

		assert.Error(t, err)
	})
}

package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"innkeeper/config"
	"innkeeper/infras/otel"
	"innkeeper/internal/domains/pricing/model"
	"innkeeper/internal/domains/pricing/model/dto"
	"innkeeper/internal/domains/pricing/repository"
	roomModel "innkeeper/internal/domains/room/model"
	roomRepo "innkeeper/internal/domains/room/repository"
	"innkeeper/shared"
	"innkeeper/shared/constant"
	gDto "innkeeper/shared/dto"
	"innkeeper/shared/failure"
	"innkeeper/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Pricing interface {
	Quote(ctx context.Context, roomTypeID string, start, end time.Time) (dto.Quote, error)
	Promotion(ctx context.Context, code string) (model.Promotion, error)
}

type serviceImpl struct {
	overrideRepo repository.RateOverride
	promoRepo    repository.Promotion
	roomTypeRepo roomRepo.RoomType
	cfg          *config.Config
	otel         otel.Otel
}

func New(overrideRepo repository.RateOverride, promoRepo repository.Promotion, roomTypeRepo roomRepo.RoomType, cfg *config.Config, otel otel.Otel) Pricing {
	return &serviceImpl{
		overrideRepo: overrideRepo,
		promoRepo:    promoRepo,
		roomTypeRepo: roomTypeRepo,
		cfg:          cfg,
		otel:         otel,
	}
}

// Quote prices each night of the half-open [start, end) interval: the room
// type's base rate, replaced by a calendar override where one exists.
func (s *serviceImpl) Quote(ctx context.Context, roomTypeID string, start, end time.Time) (res dto.Quote, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Quote")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !end.After(start) {
		return res, failure.BadRequestFromString("end date must be after start date") // nolint:wrapcheck
	}

	roomType, err := s.roomTypeRepo.Get(ctx, shared.FilterByID(roomTypeID, roomModel.RoomTypeFieldID, roomModel.RoomTypeTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room type")

		return res, fmt.Errorf("failed to get room type: %w", err)
	}

	if roomType.ID == constant.Empty {
		return res, failure.NotFound("room type not found") // nolint:wrapcheck
	}

	overrides, err := s.overrideRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldRoomTypeID, Operator: gDto.FilterOperatorEq, Value: roomTypeID, Table: model.TableName},
			gDto.Filter{ArgName: "date_from", Field: model.FieldDate, Operator: gDto.FilterOperatorGreaterEq, Value: start, Table: model.TableName},
			gDto.Filter{ArgName: "date_to", Field: model.FieldDate, Operator: gDto.FilterOperatorLess, Value: end, Table: model.TableName},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get rate overrides")

		return res, fmt.Errorf("failed to get rate overrides: %w", err)
	}

	byDate := make(map[string]int64, len(overrides))
	for _, override := range overrides {
		byDate[override.Date.Format(constant.DateOnlyFormat)] = override.Rate
	}

	res.RoomTypeID = roomTypeID

	for night := start; night.Before(end); night = night.AddDate(0, 0, 1) {
		rate := roomType.BaseRate
		if override, ok := byDate[night.Format(constant.DateOnlyFormat)]; ok {
			rate = override
		}

		res.Nights = append(res.Nights, dto.DailyRate{Date: night, Rate: rate})
		res.Total += rate
	}

	return res, nil
}

// Promotion resolves an active, non-expired promotion code.
func (s *serviceImpl) Promotion(ctx context.Context, code string) (res model.Promotion, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Promotion")
	defer scope.End()
	defer scope.TraceIfError(err)

	promo, err := s.promoRepo.Get(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.PromotionFieldCode, Operator: gDto.FilterOperatorEq, Value: code, Table: model.PromotionTableName},
			gDto.Filter{Field: model.PromotionFieldActive, Operator: gDto.FilterOperatorEq, Value: true, Table: model.PromotionTableName},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get promotion")

		return res, fmt.Errorf("failed to get promotion: %w", err)
	}

	if promo.ID == constant.Empty {
		return res, failure.NotFound("promotion not found") // nolint:wrapcheck
	}

	if promo.ExpiresAt != nil && promo.ExpiresAt.Before(timezone.Now()) {
		return res, failure.BadRequestFromString("promotion has expired") // nolint:wrapcheck
	}

	return promo, nil
}

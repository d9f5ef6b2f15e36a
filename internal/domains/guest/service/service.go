package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"innkeeper/config"
	"innkeeper/infras/otel"
	"innkeeper/infras/s3"
	"innkeeper/internal/domains/guest/model"
	"innkeeper/internal/domains/guest/model/dto"
	"innkeeper/internal/domains/guest/repository"
	"innkeeper/shared"
	"innkeeper/shared/base64"
	"innkeeper/shared/constant"
	gDto "innkeeper/shared/dto"
	"innkeeper/shared/failure"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Guest interface {
	FindOrCreateByPhone(ctx context.Context, req dto.GuestInput, user string) (model.Guest, error)
	Get(ctx context.Context, id string) (dto.GuestResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetGuestsResponse, error)
	Update(ctx context.Context, req dto.UpdateGuestRequest, id, user string) error
}

type serviceImpl struct {
	repo repository.Guest
	cfg  *config.Config
	s3   s3.S3
	otel otel.Otel
}

func New(repo repository.Guest, cfg *config.Config, s3 s3.S3, otel otel.Otel) Guest {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		s3:   s3,
		otel: otel,
	}
}

func (s *serviceImpl) phoneFilter(phone string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldPhone,
				Operator: gDto.FilterOperatorEq,
				Value:    phone,
				Table:    model.TableName,
			},
		},
	}
}

// FindOrCreateByPhone reuses an existing guest identity when the phone number
// is already on file; otherwise it creates one, uploading the ID-card image
// to object storage when provided.
func (s *serviceImpl) FindOrCreateByPhone(ctx context.Context, req dto.GuestInput, user string) (res model.Guest, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".FindOrCreateByPhone")
	defer scope.End()
	defer scope.TraceIfError(err)

	existing, err := s.repo.Get(ctx, s.phoneFilter(req.Phone))
	if err != nil {
		log.Error().Err(err).Msg("failed to look up guest by phone")

		return res, fmt.Errorf("failed to look up guest by phone: %w", err)
	}

	if existing.ID != constant.Empty {
		scope.AddEvent("Existing guest reused for phone " + req.Phone)

		return existing, nil
	}

	imageURL := constant.Empty

	if req.IDCardImage != constant.Empty {
		imageURL, err = s.uploadIDCard(ctx, req.IDCardImage)
		if err != nil {
			return res, err
		}
	}

	guest := req.ToModel(user, imageURL)

	if err = s.repo.Insert(ctx, guest); err != nil {
		log.Error().Err(err).Msg("failed to create guest")

		return res, fmt.Errorf("failed to create guest: %w", err)
	}

	return guest, nil
}

func (s *serviceImpl) uploadIDCard(ctx context.Context, image string) (url string, err error) {
	contentType := base64.GetContentType(image)

	data, err := base64.Decode(image)
	if err != nil {
		log.Error().Err(err).Msg("failed to decode ID card image")

		return constant.Empty, failure.BadRequestFromString("invalid ID card image encoding") // nolint:wrapcheck
	}

	bucketName := s.cfg.External.S3.BucketName
	fileName := uuid.NewString()

	url, err = s.s3.UploadFileBytes(ctx, bucketName, model.EntityName, fileName, contentType, data)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload ID card image")

		return constant.Empty, fmt.Errorf("failed to upload ID card image: %w", err)
	}

	return url, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.GuestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	guest, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get guest")

		return res, fmt.Errorf("failed to get guest: %w", err)
	}

	if guest.ID == constant.Empty {
		return res, failure.NotFound("guest not found") // nolint:wrapcheck
	}

	res.FromModel(guest)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetGuestsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count guests")

		return res, fmt.Errorf("failed to count guests: %w", err)
	}

	guests, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get guests")

		return res, fmt.Errorf("failed to get guests: %w", err)
	}

	res.FromModels(guests, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateGuestRequest, id, user string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if guest exists")

		return fmt.Errorf("failed to check if guest exists: %w", err)
	}

	if !exist {
		return failure.NotFound("guest not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update guest")

		return fmt.Errorf("failed to update guest: %w", err)
	}

	return nil
}

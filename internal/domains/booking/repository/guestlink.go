package repository

//go:generate go run go.uber.org/mock/mockgen -source=./guestlink.go -destination=../mocks/guestlink_mock.go -package=mocks

import (
	"context"
	"innkeeper/infras/otel"
	"innkeeper/infras/postgres"
	"innkeeper/internal/domains/booking/model"
	gDto "innkeeper/shared/dto"
	gRepo "innkeeper/shared/repository"

	"github.com/jmoiron/sqlx"
)

type GuestLink interface {
	Insert(ctx context.Context, model model.GuestLink) error
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.GuestLink) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.GuestLink, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.GuestLink, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) error
}

type guestLinkRepositoryImpl struct {
	gRepo.Repository[model.GuestLink]
	db   *postgres.Connection
	otel otel.Otel
}

func NewGuestLink(db *postgres.Connection, otel otel.Otel) GuestLink {
	return &guestLinkRepositoryImpl{
		Repository: gRepo.NewRepository[model.GuestLink](model.GuestLinkEntityName, model.GuestLinkTableName, model.GuestLinkFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

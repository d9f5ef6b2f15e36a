package dto

import (
	"innkeeper/internal/domains/guest/model"
	"innkeeper/shared"
	gDto "innkeeper/shared/dto"
	gModel "innkeeper/shared/model"
	"innkeeper/shared/timezone"

	"github.com/google/uuid"
)

type GuestInput struct {
	FullName     string `json:"full_name"      validate:"required,max=150"`
	Phone        string `json:"phone"          validate:"required,max=20"`
	Email        string `json:"email"          validate:"omitempty,email,max=100"`
	IDCardNumber string `json:"id_card_number" validate:"omitempty,max=32"`
	// IDCardImage is a base64 data URL; stored object URL ends up on the model.
	IDCardImage string `json:"id_card_image" validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=2"`
}

func (c *GuestInput) ToModel(user, imageURL string) model.Guest {
	return model.Guest{
		ID:           uuid.NewString(),
		FullName:     c.FullName,
		Phone:        c.Phone,
		Email:        c.Email,
		IDCardNumber: c.IDCardNumber,
		IDCardImage:  imageURL,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateGuestRequest struct {
	FullName     string `db:"full_name"      json:"full_name"      validate:"omitempty,max=150"`
	Email        string `db:"email"          json:"email"          validate:"omitempty,email,max=100"`
	IDCardNumber string `db:"id_card_number" json:"id_card_number" validate:"omitempty,max=32"`
}

type GuestResponse struct {
	ID           string `json:"id"`
	FullName     string `json:"full_name"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	IDCardNumber string `json:"id_card_number"`
	IDCardImage  string `json:"id_card_image"`
	gDto.Metadata
}

func (r *GuestResponse) FromModel(model model.Guest) {
	r.ID = model.ID
	r.FullName = model.FullName
	r.Phone = model.Phone
	r.Email = model.Email
	r.IDCardNumber = model.IDCardNumber
	r.IDCardImage = model.IDCardImage
	r.Metadata.FromModel(model.Metadata)
}

type GetGuestsResponse struct {
	Guests    []GuestResponse `json:"guests"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetGuestsResponse) FromModels(models []model.Guest, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Guests = make([]GuestResponse, len(models))
	for i, mod := range models {
		r.Guests[i].FromModel(mod)
	}
}

package dto

import (
	"innkeeper/internal/domains/room/model"
	"innkeeper/shared"
	gDto "innkeeper/shared/dto"
	gModel "innkeeper/shared/model"
	"innkeeper/shared/timezone"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	HotelID    string `json:"hotel_id"     validate:"required"`
	RoomTypeID string `json:"room_type_id" validate:"required"`
	Number     string `json:"number"       validate:"required,max=10"`
	Floor      int    `json:"floor"        validate:"omitempty,min=0"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	return model.Room{
		ID:         uuid.NewString(),
		HotelID:    c.HotelID,
		RoomTypeID: c.RoomTypeID,
		Number:     c.Number,
		Floor:      c.Floor,
		Status:     model.StatusAvailable,
		Active:     true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	Number string `db:"number" json:"number" validate:"omitempty,max=10"`
	Floor  int    `db:"floor"  json:"floor"  validate:"omitempty,min=0"`
	Status string `db:"status" json:"status" validate:"omitempty,oneof=available occupied maintenance"`
}

type RoomResponse struct {
	ID         string `json:"id"`
	HotelID    string `json:"hotel_id"`
	RoomTypeID string `json:"room_type_id"`
	Number     string `json:"number"`
	Floor      int    `json:"floor"`
	Status     string `json:"status"`
	Active     bool   `json:"active"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.HotelID = model.HotelID
	r.RoomTypeID = model.RoomTypeID
	r.Number = model.Number
	r.Floor = model.Floor
	r.Status = model.Status
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}

type CreateRoomTypeRequest struct {
	HotelID  string `json:"hotel_id"  validate:"required"`
	Name     string `json:"name"      validate:"required,max=100"`
	Capacity int    `json:"capacity"  validate:"required,min=1"`
	BaseRate int64  `json:"base_rate" validate:"required,min=0"`
}

func (c *CreateRoomTypeRequest) ToModel(user string) model.RoomType {
	return model.RoomType{
		ID:       uuid.NewString(),
		HotelID:  c.HotelID,
		Name:     c.Name,
		Capacity: c.Capacity,
		BaseRate: c.BaseRate,
		Active:   true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomTypeRequest struct {
	Name     string `db:"name"      json:"name"      validate:"omitempty,max=100"`
	Capacity int    `db:"capacity"  json:"capacity"  validate:"omitempty,min=1"`
	BaseRate int64  `db:"base_rate" json:"base_rate" validate:"omitempty,min=0"`
}

type RoomTypeResponse struct {
	ID       string `json:"id"`
	HotelID  string `json:"hotel_id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	BaseRate int64  `json:"base_rate"`
	Active   bool   `json:"active"`
	gDto.Metadata
}

func (r *RoomTypeResponse) FromModel(model model.RoomType) {
	r.ID = model.ID
	r.HotelID = model.HotelID
	r.Name = model.Name
	r.Capacity = model.Capacity
	r.BaseRate = model.BaseRate
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomTypesResponse struct {
	RoomTypes []RoomTypeResponse `json:"room_types"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetRoomTypesResponse) FromModels(models []model.RoomType, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.RoomTypes = make([]RoomTypeResponse, len(models))
	for i, mod := range models {
		r.RoomTypes[i].FromModel(mod)
	}
}

package service

import (
	"github.com/popeskul/whatsapp-assistant/internal/api"
	"github.com/popeskul/whatsapp-assistant/internal/models"
)

func toAPIUser(user *models.User, totalChats int64) api.User {
	out := api.User{
		Id:          user.ID,
		PhoneNumber: user.PhoneNumber,
		IsActive:    user.IsActive,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
		TotalChats:  totalChats,
	}
	if user.Name.Valid {
		name := user.Name.String
		out.Name = &name
	}
	return out
}

func toAPIMessage(msg *models.Message) api.Message {
	return api.Message{
		Id:        msg.ID,
		UserId:    msg.UserID,
		Role:      api.MessageRole(msg.Role),
		Content:   msg.Content,
		CreatedAt: msg.CreatedAt,
	}
}

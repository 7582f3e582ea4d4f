package domain

import "time"

// Client guarda as credenciais da conta de anúncios informadas no onboarding.
// Cada usuário possui no máximo um client, que define o escopo dos anúncios.
type Client struct {
	ID                string    `json:"id"`
	UserID            int       `json:"user_id"`
	Name              string    `json:"name" validate:"required"`
	Email             string    `json:"email" validate:"required,email"`
	Country           string    `json:"country" validate:"required"`
	Business          string    `json:"business" validate:"required"`
	OrganizationEmail string    `json:"organization_email" validate:"required,email"`
	AdAccountID       string    `json:"ad_account_ID" validate:"required"`
	PageID            string    `json:"page_ID" validate:"required"`
	PixelID           string    `json:"pixel_ID" validate:"required"`
	InstagramID       *string   `json:"instagram_ID"`
	WhatsappID        *string   `json:"whatsapp_ID"`
	CreatedAt         time.Time `json:"created_at"`
	LastModified      time.Time `json:"last_modified"`
}

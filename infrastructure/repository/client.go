package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/BrianElionDev/Meta-ads-project/infrastructure/database/postgres"
	"github.com/BrianElionDev/Meta-ads-project/internal/domain"
	"github.com/Masterminds/squirrel"
)

const clientsTable = "clients"

var clientColumns = []string{
	"id", "user_id", "name", "email", "country", "business", "organization_email",
	"ad_account_id", "page_id", "pixel_id", "instagram_id", "whatsapp_id",
	"created_at", "last_modified",
}

type ClientRepository interface {
	GetByUserID(ctx context.Context, userID int) (*domain.Client, error)
	Create(ctx context.Context, client *domain.Client) error
	ListAdAccountIDs(ctx context.Context) ([]string, error)
}

type clientRepository struct {
	conn *postgres.Connection
}

func NewClientRepository(conn *postgres.Connection) ClientRepository {
	return &clientRepository{
		conn: conn,
	}
}

func (r *clientRepository) GetByUserID(ctx context.Context, userID int) (*domain.Client, error) {
	clientSQL, clientArgs, err := squirrel.
		Select(clientColumns...).
		From(clientsTable).
		Where(squirrel.Eq{"user_id": userID}).
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var client domain.Client
	err = r.conn.QueryRowContext(ctx, clientSQL, clientArgs...).Scan(
		&client.ID,
		&client.UserID,
		&client.Name,
		&client.Email,
		&client.Country,
		&client.Business,
		&client.OrganizationEmail,
		&client.AdAccountID,
		&client.PageID,
		&client.PixelID,
		&client.InstagramID,
		&client.WhatsappID,
		&client.CreatedAt,
		&client.LastModified,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapDatabaseError(err)
	}

	return &client, nil
}

func (r *clientRepository) Create(ctx context.Context, client *domain.Client) error {
	clientSQL, clientArgs, err := squirrel.
		Insert(clientsTable).
		Columns(clientColumns...).
		Values(
			client.ID, client.UserID, client.Name, client.Email, client.Country, client.Business,
			client.OrganizationEmail, client.AdAccountID, client.PageID, client.PixelID,
			client.InstagramID, client.WhatsappID, client.CreatedAt, client.LastModified,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, clientSQL, clientArgs...); err != nil {
		return wrapDatabaseError(err)
	}

	return nil
}

// ListAdAccountIDs retorna as contas de anúncio distintas já cadastradas no onboarding
func (r *clientRepository) ListAdAccountIDs(ctx context.Context) ([]string, error) {
	accountsSQL, accountsArgs, err := squirrel.
		Select("DISTINCT ad_account_id").
		From(clientsTable).
		OrderBy("ad_account_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, accountsSQL, accountsArgs...)
	if err != nil {
		return nil, wrapDatabaseError(err)
	}
	defer rows.Close()

	accountIDs := make([]string, 0)
	for rows.Next() {
		var accountID string
		if err := rows.Scan(&accountID); err != nil {
			return nil, wrapDatabaseError(err)
		}
		accountIDs = append(accountIDs, accountID)
	}

	return accountIDs, rows.Err()
}

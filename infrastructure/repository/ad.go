package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/BrianElionDev/Meta-ads-project/infrastructure/database/postgres"
	"github.com/BrianElionDev/Meta-ads-project/internal/domain"
	"github.com/Masterminds/squirrel"
	"github.com/sirupsen/logrus"
)

const adsTable = "ads"

// adColumns segue a ordem de scanAd
var adColumns = []string{
	"id",
	"ad_account_id",
	"filename",
	"image_url",
	"hook",
	"call_to_action_type",
	"message",
	"full_message",
	"cta_text",
	"campaign_id",
	"campaign_name",
	"campaign_objective",
	"adset_id",
	"adset_name",
	"adset_optimization_goal",
	"image_hash",
	"ad_creative_id",
	"ad_name",
	"platform_ad_id",
	"facebook_image_url",
	"ad_image_url",
	"status",
	"n8n_workflow_id",
	"error_message",
	"content_creation_completed_at",
	"campaign_creation_completed_at",
	"adset_creation_completed_at",
	"adcreative_creation_completed_at",
	"approval_completed_at",
	"ad_posting_completed_at",
	"created_at",
	"updated_at",
}

type AdRepository interface {
	List(ctx context.Context, filter domain.AdFilter) ([]*domain.Ad, error)
	GetByID(ctx context.Context, accountID, id string) (*domain.Ad, error)
	Create(ctx context.Context, q postgres.Queryer, ad *domain.Ad) error
	ApplyUpdate(ctx context.Context, update *domain.AdUpdate) (*domain.Ad, error)
}

type adRepository struct {
	conn *postgres.Connection
}

func NewAdRepository(conn *postgres.Connection) AdRepository {
	return &adRepository{
		conn: conn,
	}
}

func buildListAdsQuery(filter domain.AdFilter) squirrel.SelectBuilder {
	queryBuilder := squirrel.
		Select(adColumns...).
		From(adsTable).
		Where(squirrel.Eq{"ad_account_id": filter.AccountID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filter.Status != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"status": string(*filter.Status)})
	}

	if filter.CampaignID != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"campaign_id": *filter.CampaignID})
	}

	if filter.AdsetID != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"adset_id": *filter.AdsetID})
	}

	if filter.RequireCampaign {
		queryBuilder = queryBuilder.Where(squirrel.NotEq{"campaign_id": nil})
	}

	if filter.RequireAdset {
		queryBuilder = queryBuilder.Where(squirrel.NotEq{"adset_id": nil})
	}

	if filter.Limit > 0 {
		queryBuilder = queryBuilder.Limit(filter.Limit)
	}

	return queryBuilder
}

func (r *adRepository) List(ctx context.Context, filter domain.AdFilter) ([]*domain.Ad, error) {
	adsSQL, adsArgs, err := buildListAdsQuery(filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, adsSQL, adsArgs...)
	if err != nil {
		return nil, wrapDatabaseError(err)
	}
	defer rows.Close()

	ads := make([]*domain.Ad, 0)
	for rows.Next() {
		ad, err := scanAd(rows)
		if err != nil {
			return nil, err
		}
		ads = append(ads, ad)
	}

	if err := rows.Err(); err != nil {
		return nil, wrapDatabaseError(err)
	}

	return ads, nil
}

// GetByID busca um anúncio. Com accountID vazio a busca não é restrita à conta.
func (r *adRepository) GetByID(ctx context.Context, accountID, id string) (*domain.Ad, error) {
	queryBuilder := squirrel.
		Select(adColumns...).
		From(adsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	if accountID != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"ad_account_id": accountID})
	}

	adSQL, adArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	ad, err := scanAd(r.conn.QueryRowContext(ctx, adSQL, adArgs...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return ad, nil
}

func (r *adRepository) Create(ctx context.Context, q postgres.Queryer, ad *domain.Ad) error {
	queryBuilder := squirrel.
		Insert(adsTable).
		Columns(
			"id", "ad_account_id", "campaign_id", "campaign_name", "campaign_objective",
			"adset_id", "adset_name", "ad_creative_id", "ad_name", "message", "cta_text",
			"image_url", "status", "created_at", "updated_at",
		).
		Values(
			ad.ID, ad.AdAccountID, ad.CampaignID, ad.CampaignName, ad.CampaignObjective,
			ad.AdsetID, ad.AdsetName, ad.AdCreativeID, ad.AdName, ad.Message, ad.CTAText,
			ad.ImageURL, string(ad.Status), ad.CreatedAt, ad.UpdatedAt,
		).
		PlaceholderFormat(squirrel.Dollar)

	adSQL, adArgs, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := q.ExecContext(ctx, adSQL, adArgs...); err != nil {
		return wrapDatabaseError(err)
	}

	return nil
}

// buildApplyUpdateQuery monta um único UPDATE esparso. A guarda de status
// fica no WHERE para que a verificação e a escrita sejam atômicas.
func buildApplyUpdateQuery(update *domain.AdUpdate) squirrel.UpdateBuilder {
	queryBuilder := squirrel.
		Update(adsTable).
		Set("status", string(update.Status)).
		Set("updated_at", update.At).
		Where(squirrel.Eq{"id": update.ID}).
		Suffix("RETURNING " + strings.Join(adColumns, ", ")).
		PlaceholderFormat(squirrel.Dollar)

	optional := []struct {
		column string
		value  *string
	}{
		{"campaign_id", update.CampaignID},
		{"adset_id", update.AdsetID},
		{"ad_creative_id", update.AdCreativeID},
		{"platform_ad_id", update.PlatformAdID},
		{"facebook_image_url", update.FacebookImageURL},
		{"ad_image_url", update.AdImageURL},
		{"n8n_workflow_id", update.N8NWorkflowID},
		{"error_message", update.ErrorMessage},
	}

	for _, field := range optional {
		if field.value != nil {
			queryBuilder = queryBuilder.Set(field.column, *field.value)
		}
	}

	if update.Stage != nil {
		column := update.Stage.Column()
		queryBuilder = queryBuilder.Set(column, squirrel.Expr("COALESCE("+column+", ?)", update.At))
	}

	if update.AccountID != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"ad_account_id": *update.AccountID})
	}

	if len(update.AllowedPrior) > 0 {
		prior := make([]string, 0, len(update.AllowedPrior))
		for _, status := range update.AllowedPrior {
			prior = append(prior, string(status))
		}
		queryBuilder = queryBuilder.Where(squirrel.Eq{"status": prior})
	}

	return queryBuilder
}

// ApplyUpdate aplica a atualização e retorna a linha resultante.
// Retorna nil quando nenhuma linha casou com o id, a conta ou a guarda de status.
func (r *adRepository) ApplyUpdate(ctx context.Context, update *domain.AdUpdate) (*domain.Ad, error) {
	if update.ID == "" {
		return nil, errors.New("ID is required")
	}

	adSQL, adArgs, err := buildApplyUpdateQuery(update).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	ad, err := scanAd(r.conn.QueryRowContext(ctx, adSQL, adArgs...))
	if errors.Is(err, sql.ErrNoRows) {
		logrus.WithFields(logrus.Fields{
			"ad_id":  update.ID,
			"status": update.Status,
		}).Debug("ads: update matched no rows")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return ad, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAd(row rowScanner) (*domain.Ad, error) {
	var ad domain.Ad
	var status string

	err := row.Scan(
		&ad.ID,
		&ad.AdAccountID,
		&ad.Filename,
		&ad.ImageURL,
		&ad.Hook,
		&ad.CallToActionType,
		&ad.Message,
		&ad.FullMessage,
		&ad.CTAText,
		&ad.CampaignID,
		&ad.CampaignName,
		&ad.CampaignObjective,
		&ad.AdsetID,
		&ad.AdsetName,
		&ad.AdsetOptimizationGoal,
		&ad.ImageHash,
		&ad.AdCreativeID,
		&ad.AdName,
		&ad.PlatformAdID,
		&ad.FacebookImageURL,
		&ad.AdImageURL,
		&status,
		&ad.N8NWorkflowID,
		&ad.ErrorMessage,
		&ad.ContentCreationCompletedAt,
		&ad.CampaignCreationCompletedAt,
		&ad.AdsetCreationCompletedAt,
		&ad.AdCreativeCreationCompletedAt,
		&ad.ApprovalCompletedAt,
		&ad.AdPostingCompletedAt,
		&ad.CreatedAt,
		&ad.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, wrapDatabaseError(err)
	}

	ad.Status = domain.AdStatus(status)
	return &ad, nil
}

package main

import (
	"context"
	"database/sql"
	"os"
	"strings"
	"time"

	"github.com/BrianElionDev/Meta-ads-project/infrastructure/database/postgres"
	"github.com/BrianElionDev/Meta-ads-project/internal/config"
	"github.com/BrianElionDev/Meta-ads-project/internal/domain"
	"github.com/BrianElionDev/Meta-ads-project/pkg/log"
	"golang.org/x/crypto/bcrypt"
)

// schema cria as tabelas do pipeline. Todas as instruções são idempotentes.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            SERIAL PRIMARY KEY,
		name          TEXT NOT NULL,
		lastname      TEXT NOT NULL,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		active        BOOLEAN NOT NULL DEFAULT TRUE,
		role_id       INTEGER NOT NULL DEFAULT 3,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS clients (
		id                 TEXT PRIMARY KEY,
		user_id            INTEGER NOT NULL UNIQUE REFERENCES users (id),
		name               TEXT NOT NULL,
		email              TEXT NOT NULL,
		country            TEXT NOT NULL,
		business           TEXT NOT NULL,
		organization_email TEXT NOT NULL,
		ad_account_id      TEXT NOT NULL,
		page_id            TEXT NOT NULL,
		pixel_id           TEXT NOT NULL,
		instagram_id       TEXT,
		whatsapp_id        TEXT,
		created_at         TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		last_modified      TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS clients_ad_account_id_idx ON clients (ad_account_id)`,
	`CREATE TABLE IF NOT EXISTS ads (
		id                               TEXT PRIMARY KEY,
		ad_account_id                    TEXT NOT NULL,
		filename                         TEXT,
		image_url                        TEXT,
		hook                             TEXT,
		call_to_action_type              TEXT,
		message                          TEXT,
		full_message                     TEXT,
		cta_text                         TEXT,
		campaign_id                      TEXT,
		campaign_name                    TEXT,
		campaign_objective               TEXT,
		adset_id                         TEXT,
		adset_name                       TEXT,
		adset_optimization_goal          TEXT,
		image_hash                       TEXT,
		ad_creative_id                   TEXT,
		ad_name                          TEXT,
		platform_ad_id                   TEXT,
		facebook_image_url               TEXT,
		ad_image_url                     TEXT,
		status                           TEXT NOT NULL DEFAULT 'pending'
			CHECK (status IN ('pending', 'ready', 'approved', 'posted', 'cancelled')),
		n8n_workflow_id                  TEXT,
		error_message                    TEXT,
		content_creation_completed_at    TIMESTAMPTZ,
		campaign_creation_completed_at   TIMESTAMPTZ,
		adset_creation_completed_at      TIMESTAMPTZ,
		adcreative_creation_completed_at TIMESTAMPTZ,
		approval_completed_at            TIMESTAMPTZ,
		ad_posting_completed_at          TIMESTAMPTZ,
		created_at                       TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at                       TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS ads_ad_account_id_created_at_idx ON ads (ad_account_id, created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS ads_campaign_id_idx ON ads (campaign_id)`,
	`CREATE INDEX IF NOT EXISTS ads_adset_id_idx ON ads (adset_id)`,
}

func migrate(ctx context.Context, conn *postgres.Connection) error {
	return conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for i, stmt := range schema {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				log.L.WithError(err).WithField("statement", i).Error("migration: statement failed")
				return err
			}
		}
		return nil
	})
}

// seedAdmin cria o administrador informado em ADMIN_EMAIL / ADMIN_PASSWORD, se ainda não existir
func seedAdmin(ctx context.Context, conn *postgres.Connection) error {
	email := strings.ToLower(strings.TrimSpace(os.Getenv("ADMIN_EMAIL")))
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.L.Info("migration: admin seed skipped")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	result, err := conn.ExecContext(ctx, `
		INSERT INTO users (name, lastname, email, password_hash, active, role_id)
		VALUES ($1, $2, $3, $4, TRUE, $5)
		ON CONFLICT (email) DO NOTHING`,
		"Admin", "Admin", email, string(hash), domain.RoleAdmin)
	if err != nil {
		return err
	}

	rows, _ := result.RowsAffected()
	log.L.WithFields(log.Fields{"email": email, "created": rows == 1}).Info("migration: admin seed done")
	return nil
}

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.L.WithError(err).Fatal("config: failed to load")
	}

	log.Setup(log.Options{Level: cfg.App.LogLevel})

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		log.L.WithError(err).Fatal("postgres: failed to connect")
	}
	defer conn.Close()

	startTime := time.Now()

	if err := migrate(ctx, conn); err != nil {
		log.L.WithError(err).Fatal("migration: schema failed")
	}

	if err := seedAdmin(ctx, conn); err != nil {
		log.L.WithError(err).Fatal("migration: admin seed failed")
	}

	log.L.WithField("duration", time.Since(startTime).String()).Info("migration: completed")
}

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"eurocompare/internal/platform"
	"eurocompare/internal/platform/models"
	"eurocompare/internal/platform/storage/gen/postgres/public/table"

	pgmodels "eurocompare/internal/platform/storage/gen/postgres/public/model"

	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/lib/pq"
	"github.com/samber/lo"
)

const uniqueViolation = "23505"

// Postgres is the observation history and price alert store.
type Postgres struct {
	db *sql.DB
}

// NewPostgres returns new Postgres.
func NewPostgres(db *sql.DB) Postgres {
	return Postgres{
		db: db,
	}
}

// AppendObservations appends observations to the history. Rows are
// never updated afterwards.
func (p Postgres) AppendObservations(ctx context.Context, observations []models.Observation) error {
	if len(observations) == 0 {
		return nil
	}

	dbObservations := lo.Map(observations, func(o models.Observation, _ int) pgmodels.PriceObservation {
		return toDBObservation(&o)
	})

	columnList := table.PriceObservation.AllColumns.Except(table.PriceObservation.ID)

	_, err := table.PriceObservation.INSERT(columnList).
		MODELS(dbObservations).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't insert observations: %w", err)
	}

	return nil
}

// Observations returns the observations of a product captured at or
// after since, oldest first.
func (p Postgres) Observations(ctx context.Context, asin string, since time.Time) ([]models.Observation, error) {
	var rows []pgmodels.PriceObservation
	err := table.PriceObservation.SELECT(table.PriceObservation.AllColumns).
		WHERE(pg.AND(
			table.PriceObservation.Asin.EQ(pg.String(asin)),
			table.PriceObservation.CapturedAt.GT_EQ(pg.TimestampzT(since)),
		)).
		ORDER_BY(table.PriceObservation.CapturedAt.ASC()).
		QueryContext(ctx, p.db, &rows)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("can't query observations: %w", err)
	}

	return lo.Map(rows, func(row pgmodels.PriceObservation, _ int) models.Observation {
		return fromDBObservation(&row)
	}), nil
}

// Trending returns the products with the most observations captured at
// or after since, annotated with price aggregates.
func (p Postgres) Trending(ctx context.Context, since time.Time, limit int64) ([]models.TrendingProduct, error) {
	var rows []struct {
		Asin         string
		Observations int64
		AvgPrice     float64
		MinPrice     float64
		MaxPrice     float64
	}

	err := table.PriceObservation.SELECT(
		table.PriceObservation.Asin.AS("asin"),
		pg.COUNT(table.PriceObservation.ID).AS("observations"),
		pg.AVG(table.PriceObservation.Price).AS("avg_price"),
		pg.MINf(table.PriceObservation.Price).AS("min_price"),
		pg.MAXf(table.PriceObservation.Price).AS("max_price"),
	).
		WHERE(table.PriceObservation.CapturedAt.GT_EQ(pg.TimestampzT(since))).
		GROUP_BY(table.PriceObservation.Asin).
		ORDER_BY(pg.COUNT(table.PriceObservation.ID).DESC()).
		LIMIT(limit).
		QueryContext(ctx, p.db, &rows)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("can't query trending products: %w", err)
	}

	trending := make([]models.TrendingProduct, 0, len(rows))
	for ix := range rows {
		product := models.TrendingProduct{
			ASIN:         rows[ix].Asin,
			Observations: rows[ix].Observations,
			AvgPrice:     rows[ix].AvgPrice,
			MinPrice:     rows[ix].MinPrice,
			MaxPrice:     rows[ix].MaxPrice,
		}

		latest, err := p.latestObservation(ctx, rows[ix].Asin)
		if err == nil && latest != nil {
			product.Title = latest.Title
			product.ImageURL = latest.ImageURL
		}

		trending = append(trending, product)
	}

	return trending, nil
}

// CreateAlert inserts a new active alert and fills its generated id and
// creation time. It returns platform.ErrDuplicateAlert when an active
// alert for the same (asin, email, country) already exists.
func (p Postgres) CreateAlert(ctx context.Context, alert *models.PriceAlert) error {
	dbAlert := toDBAlert(alert)

	err := table.PriceAlert.INSERT(
		table.PriceAlert.Asin,
		table.PriceAlert.TargetPrice,
		table.PriceAlert.Email,
		table.PriceAlert.Country,
		table.PriceAlert.ProductName,
		table.PriceAlert.ProductImage,
	).
		MODEL(dbAlert).
		RETURNING(table.PriceAlert.ID, table.PriceAlert.CreatedAt, table.PriceAlert.IsActive).
		QueryContext(ctx, p.db, dbAlert)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return platform.ErrDuplicateAlert
		}
		return fmt.Errorf("can't insert alert: %w", err)
	}

	alert.ID = dbAlert.ID
	alert.CreatedAt = dbAlert.CreatedAt
	alert.IsActive = dbAlert.IsActive

	return nil
}

// ActiveAlerts returns all active alerts for a product.
func (p Postgres) ActiveAlerts(ctx context.Context, asin string) ([]models.PriceAlert, error) {
	var rows []pgmodels.PriceAlert
	err := table.PriceAlert.SELECT(table.PriceAlert.AllColumns).
		WHERE(pg.AND(
			table.PriceAlert.Asin.EQ(pg.String(asin)),
			table.PriceAlert.IsActive.IS_TRUE(),
		)).
		ORDER_BY(table.PriceAlert.CreatedAt.ASC()).
		QueryContext(ctx, p.db, &rows)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("can't query active alerts: %w", err)
	}

	return lo.Map(rows, func(row pgmodels.PriceAlert, _ int) models.PriceAlert {
		return fromDBAlert(&row)
	}), nil
}

// AlertsByEmail returns the alerts of one email address, newest first.
// A non-nil active filters by alert state.
func (p Postgres) AlertsByEmail(ctx context.Context, email string, active *bool) ([]models.PriceAlert, error) {
	condition := table.PriceAlert.Email.EQ(pg.String(email))
	if active != nil {
		condition = condition.AND(table.PriceAlert.IsActive.EQ(pg.Bool(*active)))
	}

	var rows []pgmodels.PriceAlert
	err := table.PriceAlert.SELECT(table.PriceAlert.AllColumns).
		WHERE(condition).
		ORDER_BY(table.PriceAlert.CreatedAt.DESC()).
		QueryContext(ctx, p.db, &rows)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("can't query alerts by email: %w", err)
	}

	return lo.Map(rows, func(row pgmodels.PriceAlert, _ int) models.PriceAlert {
		return fromDBAlert(&row)
	}), nil
}

// HasActiveAlert reports whether an active alert exists for the
// (asin, email, country) triple.
func (p Postgres) HasActiveAlert(ctx context.Context, asin, email, country string) (bool, error) {
	var row pgmodels.PriceAlert
	err := table.PriceAlert.SELECT(table.PriceAlert.ID).
		WHERE(pg.AND(
			table.PriceAlert.Asin.EQ(pg.String(asin)),
			table.PriceAlert.Email.EQ(pg.String(email)),
			table.PriceAlert.Country.EQ(pg.String(country)),
			table.PriceAlert.IsActive.IS_TRUE(),
		)).
		LIMIT(1).
		QueryContext(ctx, p.db, &row)
	if errors.Is(err, qrm.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("can't query alert existence: %w", err)
	}

	return true, nil
}

// ClaimAlert atomically flips an alert from active to inactive and
// stamps its trigger time. It reports whether this caller won the
// claim; a false result means the alert was already inactive.
func (p Postgres) ClaimAlert(ctx context.Context, id int64, triggeredAt time.Time) (bool, error) {
	result, err := table.PriceAlert.UPDATE().
		SET(
			table.PriceAlert.IsActive.SET(pg.Bool(false)),
			table.PriceAlert.TriggeredAt.SET(pg.TimestampzT(triggeredAt)),
		).
		WHERE(pg.AND(
			table.PriceAlert.ID.EQ(pg.Int64(id)),
			table.PriceAlert.IsActive.IS_TRUE(),
		)).
		ExecContext(ctx, p.db)
	if err != nil {
		return false, fmt.Errorf("can't claim alert: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("can't read claim result: %w", err)
	}

	return rowsAffected == 1, nil
}

// ReleaseAlert reverts a claimed alert back to active so a later
// comparison can retry the notification.
func (p Postgres) ReleaseAlert(ctx context.Context, id int64) error {
	_, err := table.PriceAlert.UPDATE().
		SET(
			table.PriceAlert.IsActive.SET(pg.Bool(true)),
			table.PriceAlert.TriggeredAt.SET(pg.TimestampzExp(pg.NULL)),
		).
		WHERE(table.PriceAlert.ID.EQ(pg.Int64(id))).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't release alert: %w", err)
	}

	return nil
}

// DeleteAlert removes an alert entirely. It reports whether the alert
// existed.
func (p Postgres) DeleteAlert(ctx context.Context, id int64) (bool, error) {
	result, err := table.PriceAlert.DELETE().
		WHERE(table.PriceAlert.ID.EQ(pg.Int64(id))).
		ExecContext(ctx, p.db)
	if err != nil {
		return false, fmt.Errorf("can't delete alert: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("can't read delete result: %w", err)
	}

	return rowsAffected == 1, nil
}

func (p Postgres) latestObservation(ctx context.Context, asin string) (*pgmodels.PriceObservation, error) {
	var row pgmodels.PriceObservation
	err := table.PriceObservation.SELECT(table.PriceObservation.AllColumns).
		WHERE(table.PriceObservation.Asin.EQ(pg.String(asin))).
		ORDER_BY(table.PriceObservation.CapturedAt.DESC()).
		LIMIT(1).
		QueryContext(ctx, p.db, &row)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &row, nil
}

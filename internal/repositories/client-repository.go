package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"supermaids/internal/entities"
	"supermaids/pkg/database"
	apperrors "supermaids/pkg/errors"
)

const clientFields = "clientNumber, firstName, lastName, street, city, postCode, telephoneNumber"

type ClientRepositoryInterface interface {
	Create(ctx context.Context, tx *sql.Tx, c entities.Client) error
	FindByNumber(ctx context.Context, tx *sql.Tx, clientNumber int64) (*entities.Client, error)
	DeleteAll(ctx context.Context, tx *sql.Tx) error
}

type clientRepository struct {
	baseRepository
}

func NewClientRepository(store *database.Store) ClientRepositoryInterface {
	return &clientRepository{baseRepository: newBase(store)}
}

func (r *clientRepository) Create(ctx context.Context, tx *sql.Tx, c entities.Client) error {
	builder := r.psql.Insert(entities.TableClient).
		Columns("clientNumber", "firstName", "lastName", "street", "city", "postCode", "telephoneNumber").
		Values(c.ClientNumber, c.FirstName, c.LastName, c.Street, c.City, c.PostCode, c.TelephoneNumber)
	return r.exec(ctx, tx, builder, fmt.Sprintf("ошибка вставки клиента %d", c.ClientNumber))
}

func (r *clientRepository) FindByNumber(ctx context.Context, tx *sql.Tx, clientNumber int64) (*entities.Client, error) {
	query, args, err := r.psql.Select(clientFields).From(entities.TableClient).
		Where(sq.Eq{"clientNumber": clientNumber}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки SQL для FindByNumber: %w", err)
	}

	var c entities.Client
	err = r.getQuerier(tx).QueryRowContext(ctx, query, args...).Scan(
		&c.ClientNumber, &c.FirstName, &c.LastName, &c.Street, &c.City, &c.PostCode, &c.TelephoneNumber,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка чтения клиента %d: %w", clientNumber, apperrors.FromStore(err))
	}
	return &c, nil
}

func (r *clientRepository) DeleteAll(ctx context.Context, tx *sql.Tx) error {
	return r.deleteAll(ctx, tx, entities.TableClient)
}

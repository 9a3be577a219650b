package user

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/user-registration/model"
)

// ErrDuplicateKey reports a uniqueness-constraint violation at insert time,
// i.e. a race lost against the pre-check.
var ErrDuplicateKey = errors.New("duplicate entry for unique field")

type SQL struct {
	conn *sqlx.DB
}

type UserRepository interface {
	Create(ctx context.Context, req *model.UserEntity) (*model.UserEntity, error)
	Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error)
}

func NewUserRepository(conn *sqlx.DB) UserRepository {
	return &SQL{conn: conn}
}

const (
	insertUserQuery = `INSERT INTO users (firstname, lastname, email, username, password_hash, country_code, mobile_number, full_mobile, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, NOW())`
	getUserBase = `SELECT id, firstname, lastname, email, username, password_hash, country_code, mobile_number, full_mobile, created_at, updated_at
		FROM users WHERE true`

	createTableQuery = `CREATE TABLE IF NOT EXISTS users (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		firstname VARCHAR(100) NOT NULL,
		lastname VARCHAR(100) NOT NULL,
		email VARCHAR(255) NOT NULL,
		username VARCHAR(100) NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		country_code VARCHAR(5) NOT NULL,
		mobile_number VARCHAR(15) NOT NULL,
		full_mobile VARCHAR(20) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NULL ON UPDATE CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		UNIQUE KEY idx_username (username),
		UNIQUE KEY idx_email (email),
		UNIQUE KEY idx_full_mobile (full_mobile)
	)`
)

// InitSchema creates the users table on boot. The unique keys back the
// application-level pre-check against concurrent registrations.
func InitSchema(ctx context.Context, conn *sqlx.DB) error {
	_, err := conn.ExecContext(ctx, createTableQuery)
	return err
}

func (s *SQL) Create(ctx context.Context, data *model.UserEntity) (*model.UserEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertUserQuery,
		data.Firstname, data.Lastname, data.Email, data.Username,
		data.PasswordHash, data.CountryCode, data.MobileNumber, data.FullMobile)
	if err != nil {
		if IsDuplicateErr(err) {
			return nil, ErrDuplicateKey
		}
		return nil, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	data.ID = uint64(lastID)
	return data, nil
}

func (s *SQL) Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error) {
	query := getUserBase
	args := make([]any, 0, 4)

	if filter.ID != 0 {
		query += " AND id = ?"
		args = append(args, filter.ID)
	}
	if filter.Username != "" {
		query += " AND username = ?"
		args = append(args, filter.Username)
	}
	if filter.Email != "" {
		query += " AND email = ?"
		args = append(args, filter.Email)
	}
	if filter.FullMobile != "" {
		query += " AND full_mobile = ?"
		args = append(args, filter.FullMobile)
	}

	var entity model.UserEntity
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

// IsDuplicateErr reports whether err is a MySQL duplicate-entry error (1062)
func IsDuplicateErr(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}

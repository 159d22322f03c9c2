package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/obras-api/internal/domain"
	"github.com/jhoicas/obras-api/internal/domain/entity"
	"github.com/jhoicas/obras-api/internal/domain/repository"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

// ─── Users ────────────────────────────────────────────────────────────────────

func TestUserRepo_CreateEmailDuplicadoEsConflicto(t *testing.T) {
	mock := newMock(t)
	mock.ExpectExec("INSERT INTO users").
		WithArgs("u1", "co1", "dup@x.com", "hash", "Contractor", nil, "owner1", pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

	err := NewUserRepository(mock).Create(context.Background(), &entity.User{
		ID: "u1", CompanyID: "co1", Email: "dup@x.com", PasswordHash: "hash",
		Role: entity.RoleContractor, CreatedBy: "owner1", CreatedAt: time.Now(),
	})

	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_GetByIDSinFilaDevuelveNil(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery("FROM users WHERE id = ").WithArgs("nadie").WillReturnError(pgx.ErrNoRows)

	u, err := NewUserRepository(mock).GetByID(context.Background(), "nadie")

	require.NoError(t, err)
	assert.Nil(t, u)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_IDQueNoEsUUIDDevuelveNil(t *testing.T) {
	malformed := &pgconn.PgError{Code: "22P02", Message: `invalid input syntax for type uuid: "42"`}
	ctx := context.Background()

	mock := newMock(t)
	mock.ExpectQuery("FROM users WHERE id = ").WithArgs("42").WillReturnError(malformed)
	mock.ExpectQuery("FROM company_registrations WHERE id = .* FOR UPDATE").WithArgs("42").WillReturnError(malformed)
	mock.ExpectQuery("FROM projects p WHERE p.id = ").WithArgs("abc").WillReturnError(malformed)
	mock.ExpectQuery("WHERE po.id = ").WithArgs("42").WillReturnError(malformed)

	u, err := NewUserRepository(mock).GetByID(ctx, "42")
	require.NoError(t, err)
	assert.Nil(t, u)

	reg, err := NewRegistrationRepository(mock).GetByIDForUpdate(ctx, "42")
	require.NoError(t, err)
	assert.Nil(t, reg)

	p, err := NewProjectRepository(mock).GetByID(ctx, "abc")
	require.NoError(t, err)
	assert.Nil(t, p)

	po, err := NewPurchaseOrderRepository(mock).GetByID(ctx, "42")
	require.NoError(t, err)
	assert.Nil(t, po)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_OtroErrorDePostgresSePropaga(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery("FROM users WHERE id = ").WithArgs("u1").WillReturnError(&pgconn.PgError{Code: "57P01"})

	_, err := NewUserRepository(mock).GetByID(context.Background(), "u1")

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_ListByCreatorAndRole(t *testing.T) {
	mock := newMock(t)
	created := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	rows := pgxmock.NewRows([]string{"id", "company_id", "email", "password_hash", "role", "specialization", "created_by", "created_at"}).
		AddRow("s1", "co1", "s1@x.com", "h", "Supplier", "", "c1", created).
		AddRow("s2", "co1", "s2@x.com", "h", "Supplier", "", "c1", created)
	mock.ExpectQuery("FROM users WHERE created_by = ").WithArgs("c1", "Supplier").WillReturnRows(rows)

	list, err := NewUserRepository(mock).ListByCreatorAndRole(context.Background(), "c1", entity.RoleSupplier)

	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, entity.RoleSupplier, list[0].Role)
	assert.Equal(t, "c1", list[1].CreatedBy)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ─── Assignments ──────────────────────────────────────────────────────────────

func TestProjectRepo_AssignDuplicadoEsConflicto(t *testing.T) {
	mock := newMock(t)
	mock.ExpectExec("INSERT INTO project_assignments").
		WithArgs("p1", "c1", pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	err := NewProjectRepository(mock).Assign(context.Background(), &entity.ProjectAssignment{
		ProjectID: "p1", ContractorID: "c1", AssignedAt: time.Now(),
	})

	assert.ErrorIs(t, err, domain.ErrDuplicateAssignment)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ─── Registrations ────────────────────────────────────────────────────────────

func TestRegistrationRepo_UpdateStatusSinFilaEsNotFound(t *testing.T) {
	mock := newMock(t)
	mock.ExpectExec("UPDATE company_registrations SET status").
		WithArgs("r1", entity.RegistrationApproved, pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := NewRegistrationRepository(mock).UpdateStatus(context.Background(), "r1", entity.RegistrationApproved, time.Now())

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ─── Reports ──────────────────────────────────────────────────────────────────

func TestReportRepo_ListConRangoAgregaPredicados(t *testing.T) {
	mock := newMock(t)
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)
	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	rows := pgxmock.NewRows([]string{"id", "project_id", "engineer", "email", "report_date", "content", "created_at"}).
		AddRow("r1", "p1", "se1", "se@x.com", day, "avance", day)
	mock.ExpectQuery(regexp.QuoteMeta("d.report_date >= $2 AND d.report_date < $3 ORDER BY d.report_date DESC")).
		WithArgs("p1", from, to).
		WillReturnRows(rows)

	list, err := NewReportRepository(mock).List(context.Background(), entity.ReportFilter{ProjectID: "p1", From: &from, To: &to})

	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "se@x.com", list[0].EngineerEmail)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ─── TxRunner ─────────────────────────────────────────────────────────────────

func TestTxRunner_CommitSiFnTermina(t *testing.T) {
	mock := newMock(t)
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE company_registrations SET status").
		WithArgs("r1", entity.RegistrationRejected, pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	err := NewTxRunner(mock).RunRegistration(context.Background(), func(regs repository.RegistrationRepository, _ repository.UserRepository) error {
		return regs.UpdateStatus(context.Background(), "r1", entity.RegistrationRejected, time.Now())
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTxRunner_RollbackSiFnFalla(t *testing.T) {
	mock := newMock(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	boom := errors.New("boom")
	err := NewTxRunner(mock).RunRegistration(context.Background(), func(repository.RegistrationRepository, repository.UserRepository) error {
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ─── Pool ─────────────────────────────────────────────────────────────────────

func TestFirstIPv4_Literales(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, "10.0.0.5", firstIPv4(ctx, "10.0.0.5"))
	assert.Empty(t, firstIPv4(ctx, "::1"), "una IPv6 literal no tiene equivalente IPv4")
}

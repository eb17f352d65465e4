package repository_test

import (
	"regexp"
	"testing"

	"patient-chatbot/internal/domain/entity"
	"patient-chatbot/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditLogRepository_Create(t *testing.T) {
	db, dbMock := setupGorm(t)
	repo := repository.NewAuditLogRepository(db)

	dbMock.ExpectBegin()
	dbMock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "audit_logs"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))
	dbMock.ExpectCommit()

	log := &entity.AuditLog{
		Action:   entity.AuditActionAppointmentCreate,
		Metadata: entity.JSON{"entity": "appointment"},
	}
	require.NoError(t, repo.Create(t.Context(), log))
	assert.Equal(t, int64(42), log.ID)
	require.NoError(t, dbMock.ExpectationsWereMet())
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hospital-tui/internal/models"
)

func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *gorm.DB) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gdb, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock, gdb
}

func TestGormRepository_List(t *testing.T) {
	db, mock, gdb := setupMockDB(t)
	defer db.Close()
	repo := NewGormRepository[models.Patient](gdb, zap.NewNop())

	rows := sqlmock.NewRows([]string{"id", "first_name", "last_name", "phone_number"}).
		AddRow(1, "Amara", "Okafor", "555-0101").
		AddRow(2, "Jonas", "Berg", "555-0102")
	mock.ExpectQuery("SELECT (.+) FROM `patients`").WillReturnRows(rows)

	patients, err := repo.List(context.Background())

	require.NoError(t, err)
	require.Len(t, patients, 2)
	assert.Equal(t, int64(1), patients[0].ID)
	assert.Equal(t, "Berg", patients[1].LastName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormRepository_GetNotFound(t *testing.T) {
	db, mock, gdb := setupMockDB(t)
	defer db.Close()
	repo := NewGormRepository[models.Patient](gdb, zap.NewNop())

	mock.ExpectQuery("SELECT (.+) FROM `patients`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "first_name"}))

	_, err := repo.Get(context.Background(), 99999)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormRepository_GetDatabaseError(t *testing.T) {
	db, mock, gdb := setupMockDB(t)
	defer db.Close()
	repo := NewGormRepository[models.Invoice](gdb, zap.NewNop())

	mock.ExpectQuery("SELECT (.+) FROM `invoices`").WillReturnError(errors.New("connection reset"))

	_, err := repo.Get(context.Background(), 3)

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestGormRepository_Create(t *testing.T) {
	db, mock, gdb := setupMockDB(t)
	defer db.Close()
	repo := NewGormRepository[models.StaffMember](gdb, zap.NewNop())

	mock.ExpectExec("INSERT INTO `staff`").WillReturnResult(sqlmock.NewResult(7, 1))

	s := models.StaffMember{Name: "Sam Rivera", Role: models.StaffRoleNurse}
	id, err := repo.Create(context.Background(), &s)

	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormRepository_Delete(t *testing.T) {
	db, mock, gdb := setupMockDB(t)
	defer db.Close()
	repo := NewGormRepository[models.MedicalRecord](gdb, zap.NewNop())

	mock.ExpectExec("DELETE FROM `medical_records`").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM `medical_records`").WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background(), 4))
	assert.ErrorIs(t, repo.Delete(context.Background(), 5), ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormRepository_Update(t *testing.T) {
	db, mock, gdb := setupMockDB(t)
	defer db.Close()
	repo := NewGormRepository[models.MedicalRecord](gdb, zap.NewNop())

	mock.ExpectExec("UPDATE `medical_records` SET").WillReturnResult(sqlmock.NewResult(0, 1))

	rec := models.MedicalRecord{PatientID: 1, Diagnosis: "Flu"}
	rec.ID = 9
	require.NoError(t, repo.Update(context.Background(), rec))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormShiftStore_AssignAndList(t *testing.T) {
	db, mock, gdb := setupMockDB(t)
	defer db.Close()
	s := &GormShiftStore{DB: gdb}

	mock.ExpectExec("INSERT INTO `shift_assignments`").WillReturnResult(sqlmock.NewResult(1, 1))
	day := time.Date(2026, time.October, 21, 0, 0, 0, 0, time.UTC)
	require.NoError(t, s.AssignShift(context.Background(), 2, day, models.ShiftNight))

	rows := sqlmock.NewRows([]string{"id", "staff_id", "date", "shift"}).
		AddRow(1, 2, day, "Night")
	mock.ExpectQuery("SELECT (.+) FROM `shift_assignments` WHERE staff_id").
		WithArgs(int64(2)).
		WillReturnRows(rows)

	got, err := s.ListAssignments(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, models.ShiftNight, got[0].Shift)
	assert.NoError(t, mock.ExpectationsWereMet())
}

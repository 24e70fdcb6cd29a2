package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"hospital-tui/internal/models"
)

// GormRepository implements Repository on top of a gorm connection.
type GormRepository[T models.Entity] struct {
	DB     *gorm.DB
	Logger *zap.Logger
}

// NewGormRepository creates a new GormRepository.
func NewGormRepository[T models.Entity](db *gorm.DB, logger *zap.Logger) *GormRepository[T] {
	return &GormRepository[T]{DB: db, Logger: logger}
}

func (r *GormRepository[T]) List(ctx context.Context) ([]T, error) {
	var items []T
	if err := r.DB.WithContext(ctx).Order("id").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}
	return items, nil
}

func (r *GormRepository[T]) Get(ctx context.Context, id int64) (T, error) {
	var item T
	if err := r.DB.WithContext(ctx).First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return item, ErrNotFound
		}
		return item, fmt.Errorf("get %d: %w", id, err)
	}
	return item, nil
}

func (r *GormRepository[T]) Create(ctx context.Context, rec *T) (int64, error) {
	if err := r.DB.WithContext(ctx).Create(rec).Error; err != nil {
		return 0, fmt.Errorf("create: %w", err)
	}
	id := (*rec).GetID()
	r.Logger.Debug("record created", zap.Int64("id", id))
	return id, nil
}

func (r *GormRepository[T]) Update(ctx context.Context, rec T) error {
	if err := r.DB.WithContext(ctx).Save(&rec).Error; err != nil {
		return fmt.Errorf("update %d: %w", rec.GetID(), err)
	}
	return nil
}

func (r *GormRepository[T]) Delete(ctx context.Context, id int64) error {
	res := r.DB.WithContext(ctx).Delete(new(T), id)
	if res.Error != nil {
		return fmt.Errorf("delete %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// GormShiftStore implements ShiftStore on top of a gorm connection.
type GormShiftStore struct {
	DB *gorm.DB
}

func (s *GormShiftStore) AssignShift(ctx context.Context, staffID int64, date time.Time, kind models.ShiftKind) error {
	assignment := models.ShiftAssignment{
		StaffID: staffID,
		Date:    dateOnly(date),
		Shift:   kind,
	}
	if err := s.DB.WithContext(ctx).Create(&assignment).Error; err != nil {
		return fmt.Errorf("assign shift: %w", err)
	}
	return nil
}

func (s *GormShiftStore) ListAssignments(ctx context.Context, staffID int64) ([]models.ShiftAssignment, error) {
	var assignments []models.ShiftAssignment
	err := s.DB.WithContext(ctx).
		Where("staff_id = ?", staffID).
		Order("date").Order("id").
		Find(&assignments).Error
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	return assignments, nil
}

// NewGormStores wires gorm-backed repositories for every entity.
func NewGormStores(db *gorm.DB, logger *zap.Logger) *Stores {
	return &Stores{
		Patients: NewGormRepository[models.Patient](db, logger.Named("patients")),
		Staff:    NewGormRepository[models.StaffMember](db, logger.Named("staff")),
		Records:  NewGormRepository[models.MedicalRecord](db, logger.Named("records")),
		Invoices: NewGormRepository[models.Invoice](db, logger.Named("invoices")),
		Shifts:   &GormShiftStore{DB: db},
	}
}

package adapters

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"jobboard_backend/internal/feature/jobs/domain/entity"
	"jobboard_backend/internal/feature/jobs/usecase"
)

// companyGorm is the gorm implementation of CompanyRepository.
type companyGorm struct {
	db *gorm.DB
}

var _ usecase.CompanyRepository = (*companyGorm)(nil)

// NewCompanyRepository creates a new companyGorm backed by the given connection.
func NewCompanyRepository(db *gorm.DB) *companyGorm {
	return &companyGorm{db: db}
}

// FindOrCreate returns the company with the given name, inserting it with
// the default domain when absent. ON CONFLICT DO NOTHING makes the
// check-then-act atomic: concurrent creators converge on a single row.
func (r *companyGorm) FindOrCreate(ctx context.Context, name string) (*entity.Company, error) {
	company := entity.Company{
		Name:   name,
		Domain: entity.DefaultCompanyDomain,
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).
		Create(&company).Error
	if err != nil {
		return nil, err
	}
	if company.ID != 0 {
		return &company, nil
	}

	// The insert hit the unique constraint: another request (or an earlier
	// job) already created the row, so read it back.
	var existing entity.Company
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&existing).Error; err != nil {
		return nil, err
	}
	return &existing, nil
}

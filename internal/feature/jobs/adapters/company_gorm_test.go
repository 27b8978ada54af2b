package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard_backend/internal/feature/jobs/domain/entity"
)

func TestCompanyGorm_FindOrCreate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCompanyRepository(db)

	t.Run("creates on first sight with default domain", func(t *testing.T) {
		company, err := repo.FindOrCreate(context.Background(), "Acme")
		require.NoError(t, err)

		assert.NotZero(t, company.ID)
		assert.Equal(t, "Acme", company.Name)
		assert.Equal(t, entity.DefaultCompanyDomain, company.Domain)
	})

	t.Run("reuses the existing record", func(t *testing.T) {
		first, err := repo.FindOrCreate(context.Background(), "Globex")
		require.NoError(t, err)

		second, err := repo.FindOrCreate(context.Background(), "Globex")
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID, "same name must resolve to one record")

		var count int64
		require.NoError(t, db.Model(&entity.Company{}).Where("name = ?", "Globex").Count(&count).Error)
		assert.Equal(t, int64(1), count, "no duplicate company rows")
	})

	t.Run("preserves a custom domain on reuse", func(t *testing.T) {
		require.NoError(t, db.Create(&entity.Company{Name: "Initech", Domain: "Finance"}).Error)

		company, err := repo.FindOrCreate(context.Background(), "Initech")
		require.NoError(t, err)

		assert.Equal(t, "Finance", company.Domain, "existing record must win over defaults")
	})
}

package repo

import (
	"context"
	"errors"

	"smartparking/be/biz/model/convert"
	"smartparking/be/biz/model/domain"
	"smartparking/be/biz/model/storage"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	FindByEmail(ctx context.Context, correo string) (*domain.User, error)
	FindByID(ctx context.Context, id uint64) (*domain.User, error)
	UpdatePartial(ctx context.Context, id uint64, fields domain.Fields) (int64, error)
	Delete(ctx context.Context, id uint64) (int64, error)
}

type UserRepositoryGorm struct {
	db *gorm.DB
}

func NewUserRepositoryGorm(db *gorm.DB) *UserRepositoryGorm {
	return &UserRepositoryGorm{db: db}
}

func (r *UserRepositoryGorm) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	m := convert.UserDomainToRecord(u)
	m.ID = 0
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return convert.UserRecordToDomain(m), nil
}

// List returns every row in engine order, callers must not rely on it.
func (r *UserRepositoryGorm) List(ctx context.Context) ([]*domain.User, error) {
	var records []*storage.UserRecord
	if err := r.db.WithContext(ctx).Find(&records).Error; err != nil {
		return nil, err
	}
	users := make([]*domain.User, 0, len(records))
	for _, m := range records {
		users = append(users, convert.UserRecordToDomain(m))
	}
	return users, nil
}

func (r *UserRepositoryGorm) FindByEmail(ctx context.Context, correo string) (*domain.User, error) {
	return r.findOne(ctx, "correo = ?", correo)
}

func (r *UserRepositoryGorm) FindByID(ctx context.Context, id uint64) (*domain.User, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *UserRepositoryGorm) findOne(ctx context.Context, query string, args ...any) (*domain.User, error) {
	var m storage.UserRecord
	err := r.db.WithContext(ctx).Where(query, args...).Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return convert.UserRecordToDomain(&m), nil
}

// UpdatePartial sets only the allow-listed fields present. An empty set
// issues no statement and reports zero affected rows.
func (r *UserRepositoryGorm) UpdatePartial(ctx context.Context, id uint64, fields domain.Fields) (int64, error) {
	columns := convert.FieldsToColumns(fields)
	if len(columns) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).Model(&storage.UserRecord{}).Where("id = ?", id).Updates(columns)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *UserRepositoryGorm) Delete(ctx context.Context, id uint64) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&storage.UserRecord{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

package repository

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotFound - записи с таким id нет в хранилище
var ErrNotFound = errors.New("record not found")

// Page - параметры постраничной выборки, Number начинается с нуля
type Page struct {
	Number int
	Size   int
}

func (p Page) Offset() int {
	return p.Number * p.Size
}

// SoftDeletable - сущность с идентификатором и флагом мягкого удаления
type SoftDeletable interface {
	GetID() int64
	MarkDeleted()
	TableName() string
}

type entityPtr[T any] interface {
	*T
	SoftDeletable
}

// SoftDeleteRepository определяет общие операции над сущностями с мягким удалением.
// Удалённые записи не видны в выборках, но физически остаются в таблице.
type SoftDeleteRepository[T any] interface {
	Create(ctx context.Context, entity *T) error
	Save(ctx context.Context, entity *T) error
	FindByIDNotDeleted(ctx context.Context, id int64) (*T, error)
	FindAllNotDeleted(ctx context.Context) ([]T, error)
	FindPageNotDeleted(ctx context.Context, page Page) ([]T, int64, error)
	Trash(ctx context.Context, id int64) (*T, error)
	TrashList(ctx context.Context, ids []int64) ([]T, error)
}

type softDeleteRepository[T any, PT entityPtr[T]] struct {
	db *gorm.DB
}

func newSoftDeleteRepository[T any, PT entityPtr[T]](db *gorm.DB) *softDeleteRepository[T, PT] {
	return &softDeleteRepository[T, PT]{db: db}
}

func (r *softDeleteRepository[T, PT]) table() string {
	var entity T
	return PT(&entity).TableName()
}

func (r *softDeleteRepository[T, PT]) Create(ctx context.Context, entity *T) error {
	if err := conn(ctx, r.db).Omit(clause.Associations).Create(entity).Error; err != nil {
		return errors.Wrapf(err, "create %s", r.table())
	}
	return nil
}

func (r *softDeleteRepository[T, PT]) Save(ctx context.Context, entity *T) error {
	if err := conn(ctx, r.db).Omit(clause.Associations).Save(entity).Error; err != nil {
		return errors.Wrapf(err, "save %s id %d", r.table(), PT(entity).GetID())
	}
	return nil
}

func (r *softDeleteRepository[T, PT]) FindByIDNotDeleted(ctx context.Context, id int64) (*T, error) {
	var entity T
	err := conn(ctx, r.db).Where("deleted = ?", false).First(&entity, id).Error
	if err != nil {
		return nil, r.wrapLookup(err, id)
	}
	return &entity, nil
}

func (r *softDeleteRepository[T, PT]) FindAllNotDeleted(ctx context.Context) ([]T, error) {
	var entities []T
	err := conn(ctx, r.db).Where("deleted = ?", false).Order("id ASC").Find(&entities).Error
	if err != nil {
		return nil, errors.Wrapf(err, "list %s", r.table())
	}
	return entities, nil
}

func (r *softDeleteRepository[T, PT]) FindPageNotDeleted(ctx context.Context, page Page) ([]T, int64, error) {
	db := conn(ctx, r.db)

	var total int64
	if err := db.Model(new(T)).Where("deleted = ?", false).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "count %s", r.table())
	}

	var entities []T
	err := db.Where("deleted = ?", false).
		Order("id ASC").
		Limit(page.Size).
		Offset(page.Offset()).
		Find(&entities).Error
	if err != nil {
		return nil, 0, errors.Wrapf(err, "list %s page %d", r.table(), page.Number)
	}
	return entities, total, nil
}

// Trash помечает запись удалённой независимо от её текущего состояния.
// Если записи с таким id нет вовсе, возвращает ErrNotFound.
func (r *softDeleteRepository[T, PT]) Trash(ctx context.Context, id int64) (*T, error) {
	db := conn(ctx, r.db)

	var entity T
	if err := db.First(&entity, id).Error; err != nil {
		return nil, r.wrapLookup(err, id)
	}

	if err := db.Model(PT(&entity)).Update("deleted", true).Error; err != nil {
		return nil, errors.Wrapf(err, "trash %s id %d", r.table(), id)
	}
	PT(&entity).MarkDeleted()

	return &entity, nil
}

// TrashList применяет Trash к каждому id по очереди. При ошибке уже помеченные
// записи остаются помеченными, если вызов не обёрнут в транзакцию.
func (r *softDeleteRepository[T, PT]) TrashList(ctx context.Context, ids []int64) ([]T, error) {
	result := make([]T, 0, len(ids))
	for _, id := range ids {
		entity, err := r.Trash(ctx, id)
		if err != nil {
			return result, err
		}
		result = append(result, *entity)
	}
	return result, nil
}

func (r *softDeleteRepository[T, PT]) wrapLookup(err error, id int64) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errors.Wrapf(ErrNotFound, "%s id %d", r.table(), id)
	}
	return errors.Wrapf(err, "find %s id %d", r.table(), id)
}

package service

import (
	"context"
	"time"

	"github.com/org-payroll-api/internal/domain"
	"github.com/org-payroll-api/internal/dto"
	"github.com/org-payroll-api/internal/repository"
	"github.com/pkg/errors"
)

// mapNotFound подменяет ошибку хранилища "не найдено" на бизнес-ошибку
func mapNotFound(err error, notFound *domain.Error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return notFound
	}
	return err
}

func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrNotFound)
}

func toPage(query *dto.PageQuery) repository.Page {
	return repository.Page{Number: query.Page, Size: query.Size}
}

func parseDate(value string) (time.Time, error) {
	date, err := time.Parse(dto.DateLayout, value)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "parse date %q", value)
	}
	return date, nil
}

// trash проверяет, что запись существует и не удалена, затем помечает её удалённой
func trash[T any](ctx context.Context, repo repository.SoftDeleteRepository[T], id int64, notFound func(int64) *domain.Error) error {
	if _, err := repo.FindByIDNotDeleted(ctx, id); err != nil {
		return mapNotFound(err, notFound(id))
	}
	_, err := repo.Trash(ctx, id)
	return err
}

// trashAll проверяет все id до первого изменения и только потом удаляет пачкой
func trashAll[T any](ctx context.Context, repo repository.SoftDeleteRepository[T], ids []int64, notFound func(int64) *domain.Error) error {
	for _, id := range ids {
		if _, err := repo.FindByIDNotDeleted(ctx, id); err != nil {
			return mapNotFound(err, notFound(id))
		}
	}
	_, err := repo.TrashList(ctx, ids)
	return err
}

package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type ProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

// レチョン商品の一覧。削除済みはgormのsoft deleteで自動的に外れる。
func (r *ProductGormRepository) ListLechon(ctx context.Context) ([]model.LechonProduct, error) {
	var products []model.LechonProduct
	err := r.db.WithContext(ctx).Order("id asc").Find(&products).Error
	if err != nil {
		return []model.LechonProduct{}, err
	}
	return products, nil
}

// ビアンド商品の一覧
func (r *ProductGormRepository) ListViands(ctx context.Context) ([]model.ViandProduct, error) {
	var products []model.ViandProduct
	err := r.db.WithContext(ctx).Order("id asc").Find(&products).Error
	if err != nil {
		return []model.ViandProduct{}, err
	}
	return products, nil
}

// 種別＋IDでスナップショットを1件取得
func (r *ProductGormRepository) FindByKind(ctx context.Context, kind model.ProductKind, id int64) (repo.ProductSnapshot, error) {
	switch kind {
	case model.KindLechon:
		var p model.LechonProduct
		err := r.db.WithContext(ctx).First(&p, id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repo.ProductSnapshot{}, repo.ErrNotFound
		}
		if err != nil {
			return repo.ProductSnapshot{}, err
		}
		return repo.ProductSnapshot{
			ID:       p.ID,
			Kind:     model.KindLechon,
			Name:     p.Type,
			Price:    p.Price,
			Quantity: p.Quantity,
			ImageURL: p.ImageURL,
			Weight:   p.Weight,
		}, nil

	case model.KindViand:
		var p model.ViandProduct
		err := r.db.WithContext(ctx).First(&p, id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repo.ProductSnapshot{}, repo.ErrNotFound
		}
		if err != nil {
			return repo.ProductSnapshot{}, err
		}
		return repo.ProductSnapshot{
			ID:       p.ID,
			Kind:     model.KindViand,
			Name:     p.Name,
			Price:    p.Price,
			Quantity: p.Quantity,
			ImageURL: p.ImageURL,
			Serves:   p.Serves,
		}, nil

	default:
		return repo.ProductSnapshot{}, repo.ErrNotFound
	}
}

package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/paclead/paclead-backend/internal/logger"
	"github.com/paclead/paclead-backend/internal/normalization"
	"github.com/paclead/paclead-backend/internal/repos"
	"github.com/paclead/paclead-backend/internal/requestdata"
	"github.com/paclead/paclead-backend/internal/types"
)

type ProductInput struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Stock       int             `json:"stock"`
	ImageURL    string          `json:"image_url"`
}

// ProductUpdateInput carries only the fields the caller wants to change.
type ProductUpdateInput struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Category    *string          `json:"category"`
	Stock       *int             `json:"stock"`
	ImageURL    *string          `json:"image_url"`
}

type ProductService interface {
	Create(ctx context.Context, input ProductInput) (*types.Product, error)
	List(ctx context.Context) ([]*types.Product, error)
	Get(ctx context.Context, productID uuid.UUID) (*types.Product, error)
	Update(ctx context.Context, productID uuid.UUID, input ProductUpdateInput) (*types.Product, error)
	Delete(ctx context.Context, productID uuid.UUID) error
}

type productService struct {
	db          *gorm.DB
	log         *logger.Logger
	productRepo repos.ProductRepo
}

func NewProductService(db *gorm.DB, log *logger.Logger, productRepo repos.ProductRepo) ProductService {
	return &productService{
		db:          db,
		log:         log.With("service", "ProductService"),
		productRepo: productRepo,
	}
}

func ownerFromContext(ctx context.Context) (uuid.UUID, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return uuid.Nil, fmt.Errorf("not authenticated")
	}
	return rd.UserID, nil
}

func validateProductInput(input *ProductInput) error {
	input.Name = normalization.TrimInputString(input.Name)
	if input.Name == "" {
		return fmt.Errorf("a product name is required")
	}
	if input.Price.Sign() < 0 {
		return fmt.Errorf("price cannot be negative")
	}
	if input.Stock < 0 {
		return fmt.Errorf("stock cannot be negative")
	}
	return nil
}

func (ps *productService) Create(ctx context.Context, input ProductInput) (*types.Product, error) {
	ownerID, err := ownerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if vErr := validateProductInput(&input); vErr != nil {
		return nil, vErr
	}
	product := &types.Product{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		Stock:       input.Stock,
		ImageURL:    input.ImageURL,
	}
	if _, err := ps.productRepo.Create(ctx, nil, []*types.Product{product}); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return product, nil
}

func (ps *productService) List(ctx context.Context) ([]*types.Product, error) {
	ownerID, err := ownerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	products, err := ps.productRepo.ListByOwner(ctx, nil, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (ps *productService) Get(ctx context.Context, productID uuid.UUID) (*types.Product, error) {
	ownerID, err := ownerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	product, err := ps.productRepo.GetByIDForOwner(ctx, nil, productID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product: %w", err)
	}
	if product == nil {
		return nil, fmt.Errorf("product %s: %w", productID, ErrNotFound)
	}
	return product, nil
}

func (ps *productService) Update(ctx context.Context, productID uuid.UUID, input ProductUpdateInput) (*types.Product, error) {
	ownerID, err := ownerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if input.Name != nil {
		name := normalization.TrimInputString(*input.Name)
		if name == "" {
			return nil, fmt.Errorf("a product name is required")
		}
		fields["name"] = name
	}
	if input.Description != nil {
		fields["description"] = *input.Description
	}
	if input.Price != nil {
		if input.Price.Sign() < 0 {
			return nil, fmt.Errorf("price cannot be negative")
		}
		fields["price"] = *input.Price
	}
	if input.Category != nil {
		fields["category"] = *input.Category
	}
	if input.Stock != nil {
		if *input.Stock < 0 {
			return nil, fmt.Errorf("stock cannot be negative")
		}
		fields["stock"] = *input.Stock
	}
	if input.ImageURL != nil {
		fields["image_url"] = *input.ImageURL
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("no fields to update")
	}

	var updated *types.Product
	if err := ps.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		affected, uErr := ps.productRepo.UpdateFieldsForOwner(ctx, tx, productID, ownerID, fields)
		if uErr != nil {
			return fmt.Errorf("failed to update product: %w", uErr)
		}
		if affected == 0 {
			return fmt.Errorf("product %s: %w", productID, ErrNotFound)
		}
		p, gErr := ps.productRepo.GetByIDForOwner(ctx, tx, productID, ownerID)
		if gErr != nil {
			return fmt.Errorf("failed to reload product: %w", gErr)
		}
		updated = p
		return nil
	}); err != nil {
		return nil, err
	}
	return updated, nil
}

func (ps *productService) Delete(ctx context.Context, productID uuid.UUID) error {
	ownerID, err := ownerFromContext(ctx)
	if err != nil {
		return err
	}
	affected, dErr := ps.productRepo.DeleteByIDForOwner(ctx, nil, productID, ownerID)
	if dErr != nil {
		return fmt.Errorf("failed to delete product: %w", dErr)
	}
	if affected == 0 {
		return fmt.Errorf("product %s: %w", productID, ErrNotFound)
	}
	return nil
}

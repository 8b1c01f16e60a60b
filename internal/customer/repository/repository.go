package repository

import (
	"context"
	"errors"

	"github.com/jeffleon2/ebanking/internal/customer/models"
	"github.com/jeffleon2/ebanking/internal/repository/posgrest"
	"gorm.io/gorm"
)

type CustomerRepository struct {
	*posgrest.Repository[models.Customer]
}

func New(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{
		Repository: posgrest.New[models.Customer](db),
	}
}

func (r *CustomerRepository) Get(ctx context.Context, id string) (*models.Customer, error) {
	c, err := r.GetByID(ctx, id)
	return c, notFound(err)
}

func (r *CustomerRepository) GetByUsername(ctx context.Context, username string) (*models.Customer, error) {
	c, err := r.GetOneBy(ctx, map[string]interface{}{"username": username})
	return c, notFound(err)
}

func (r *CustomerRepository) UsernameTaken(ctx context.Context, username string) (bool, error) {
	n, err := r.Count(ctx, map[string]interface{}{"username": username})
	return n > 0, err
}

func (r *CustomerRepository) List(ctx context.Context) ([]models.Customer, error) {
	customers, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return *customers, nil
}

func (r *CustomerRepository) Save(ctx context.Context, c *models.Customer) error {
	return notFound(r.Update(ctx, c, c.ID))
}

func (r *CustomerRepository) Remove(ctx context.Context, id string) error {
	return notFound(r.Delete(ctx, id))
}

func notFound(err error) error {
	if errors.Is(err, posgrest.ErrNotFound) {
		return models.ErrCustomerNotFound
	}
	return err
}

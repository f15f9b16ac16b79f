package services

import (
	"strings"

	"github.com/parodie/restaurantBack/entity"
	"github.com/parodie/restaurantBack/repository"
)

type MenuService struct {
	Repo *repository.DishRepository
}

func NewMenuService(repo *repository.DishRepository) *MenuService {
	return &MenuService{Repo: repo}
}

// ----- Categories -----

func (s *MenuService) CreateCategory(name, description string) (*entity.Category, error) {
	cat := &entity.Category{Name: strings.TrimSpace(name), Description: description}
	if err := s.Repo.CreateCategory(cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *MenuService) ListCategories() ([]entity.Category, error) {
	return s.Repo.ListCategories()
}

func (s *MenuService) UpdateCategory(id uint, updates map[string]any) (*entity.Category, error) {
	if _, err := s.Repo.FindCategory(id); err != nil {
		return nil, wrapNotFound(err)
	}
	if err := s.Repo.UpdateCategory(id, updates); err != nil {
		return nil, err
	}
	return s.Repo.FindCategory(id)
}

func (s *MenuService) DeleteCategory(id uint) error {
	if _, err := s.Repo.FindCategory(id); err != nil {
		return wrapNotFound(err)
	}
	return s.Repo.DeleteCategory(id)
}

// DishesInCategory powers the client menu: available dishes only.
func (s *MenuService) DishesInCategory(catID uint, availableOnly bool) ([]entity.Dish, error) {
	if _, err := s.Repo.FindCategory(catID); err != nil {
		return nil, wrapNotFound(err)
	}
	return s.Repo.DishesInCategory(catID, availableOnly)
}

// ----- Dishes -----

type DishIn struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Ingredients string `json:"ingredients"`
	Price       int64  `json:"price" binding:"required,min=1"`
	CategoryIDs []uint `json:"categoryIds"`
}

func (s *MenuService) CreateDish(in *DishIn) (*entity.Dish, error) {
	dish := &entity.Dish{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Ingredients: in.Ingredients,
		Price:       in.Price,
		Available:   true,
	}
	if err := s.Repo.Create(dish); err != nil {
		return nil, err
	}
	if len(in.CategoryIDs) > 0 {
		cats, err := s.Repo.FindCategories(in.CategoryIDs)
		if err != nil {
			return nil, err
		}
		if err := s.Repo.ReplaceCategories(dish, cats); err != nil {
			return nil, err
		}
	}
	return dish, nil
}

func (s *MenuService) GetDish(id uint) (*entity.Dish, error) {
	d, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return d, nil
}

func (s *MenuService) ListDishes(availableOnly bool) ([]entity.Dish, error) {
	return s.Repo.List(availableOnly)
}

func (s *MenuService) SearchDishes(q string) ([]entity.Dish, error) {
	return s.Repo.Search(q)
}

func (s *MenuService) UpdateDish(id uint, updates map[string]any) (*entity.Dish, error) {
	if _, err := s.Repo.FindByID(id); err != nil {
		return nil, wrapNotFound(err)
	}
	if err := s.Repo.Update(id, updates); err != nil {
		return nil, err
	}
	return s.Repo.FindByID(id)
}

// ToggleAvailability flips the ordering flag; existing order lines keep
// their snapshotted price either way.
func (s *MenuService) ToggleAvailability(id uint) (*entity.Dish, error) {
	d, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, wrapNotFound(err)
	}
	if err := s.Repo.Update(id, map[string]any{"available": !d.Available}); err != nil {
		return nil, err
	}
	return s.Repo.FindByID(id)
}

func (s *MenuService) DeleteDish(id uint) error {
	if _, err := s.Repo.FindByID(id); err != nil {
		return wrapNotFound(err)
	}
	return s.Repo.Delete(id)
}

package repository

import (
	"github.com/parodie/restaurantBack/entity"

	"gorm.io/gorm"
)

type DishRepository struct {
	DB *gorm.DB
}

func NewDishRepository(db *gorm.DB) *DishRepository {
	return &DishRepository{DB: db}
}

// ---------------- Dishes ----------------

func (r *DishRepository) Create(d *entity.Dish) error {
	return r.DB.Create(d).Error
}

func (r *DishRepository) FindByID(id uint) (*entity.Dish, error) {
	var d entity.Dish
	if err := r.DB.First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

// FindAvailable resolves a dish for ordering: it must exist AND currently be
// available, otherwise gorm.ErrRecordNotFound.
func (r *DishRepository) FindAvailable(id uint) (*entity.Dish, error) {
	var d entity.Dish
	err := r.DB.Where("id = ? AND available = ?", id, true).First(&d).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DishRepository) List(availableOnly bool) ([]entity.Dish, error) {
	var dishes []entity.Dish
	q := r.DB.Order("id")
	if availableOnly {
		q = q.Where("available = ?", true)
	}
	err := q.Find(&dishes).Error
	return dishes, err
}

func (r *DishRepository) Search(name string) ([]entity.Dish, error) {
	var dishes []entity.Dish
	err := r.DB.Where("available = ? AND name LIKE ?", true, "%"+name+"%").
		Order("id").Find(&dishes).Error
	return dishes, err
}

func (r *DishRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Dish{}).Where("id = ?", id).Updates(updates).Error
}

func (r *DishRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Dish{}, id).Error
}

func (r *DishRepository) ReplaceCategories(d *entity.Dish, cats []entity.Category) error {
	return r.DB.Model(d).Association("Categories").Replace(cats)
}

// ---------------- Categories ----------------

func (r *DishRepository) CreateCategory(cat *entity.Category) error {
	return r.DB.Create(cat).Error
}

func (r *DishRepository) FindCategory(id uint) (*entity.Category, error) {
	var cat entity.Category
	if err := r.DB.First(&cat, id).Error; err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *DishRepository) ListCategories() ([]entity.Category, error) {
	var cats []entity.Category
	err := r.DB.Order("id").Find(&cats).Error
	return cats, err
}

func (r *DishRepository) FindCategories(ids []uint) ([]entity.Category, error) {
	var cats []entity.Category
	err := r.DB.Where("id IN ?", ids).Find(&cats).Error
	return cats, err
}

// DishesInCategory lists a category's dishes through the join table.
func (r *DishRepository) DishesInCategory(catID uint, availableOnly bool) ([]entity.Dish, error) {
	var dishes []entity.Dish
	q := r.DB.Joins("JOIN dish_categories dc ON dc.dish_id = dishes.id").
		Where("dc.category_id = ?", catID)
	if availableOnly {
		q = q.Where("dishes.available = ?", true)
	}
	err := q.Order("dishes.id").Find(&dishes).Error
	return dishes, err
}

func (r *DishRepository) UpdateCategory(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Category{}).Where("id = ?", id).Updates(updates).Error
}

func (r *DishRepository) DeleteCategory(id uint) error {
	return r.DB.Delete(&entity.Category{}, id).Error
}

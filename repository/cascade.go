package repository

import (
	"github.com/cppla/community/models"
	"gorm.io/gorm"
)

// deletePostsWhere removes every post whose column equals value, along with
// the likes, comments and images hanging off those posts. Must run inside tx.
func deletePostsWhere(tx *gorm.DB, column string, value uint) error {
	postIDs := func() *gorm.DB {
		return tx.Model(&models.Post{}).Select("id").Where(column+" = ?", value)
	}
	for _, child := range []interface{}{&models.Like{}, &models.Comment{}, &models.PostImage{}} {
		if err := tx.Where("post_id IN (?)", postIDs()).Delete(child).Error; err != nil {
			return err
		}
	}
	return tx.Where(column+" = ?", value).Delete(&models.Post{}).Error
}

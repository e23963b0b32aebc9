package dao

import (
	"context"

	"blogapi/model"

	"gorm.io/gorm"
)

type ArticleDAO struct {
	db *gorm.DB
}

func NewArticleDAO(db *gorm.DB) *ArticleDAO {
	return &ArticleDAO{db: db}
}

// CreateArticle 创建文章
func (dao *ArticleDAO) CreateArticle(ctx context.Context, article *model.Article) error {
	return dao.db.WithContext(ctx).Create(article).Error
}

// GetByID 根据id查询文章
func (dao *ArticleDAO) GetByID(ctx context.Context, id string) (*model.Article, error) {
	var article model.Article
	err := dao.db.WithContext(ctx).Where("id = ?", id).First(&article).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// UpdateFields 按字段更新文章
func (dao *ArticleDAO) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	return dao.db.WithContext(ctx).Model(&model.Article{}).Where("id = ?", id).Updates(fields).Error
}

// ListByCreateTime 按创建时间倒序分页
func (dao *ArticleDAO) ListByCreateTime(ctx context.Context, offset, limit int) ([]model.Article, error) {
	var articles []model.Article
	err := dao.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&articles).Error
	return articles, err
}

// ListSelected 精选文章，按创建时间倒序分页
func (dao *ArticleDAO) ListSelected(ctx context.Context, offset, limit int) ([]model.Article, error) {
	var articles []model.Article
	err := dao.db.WithContext(ctx).
		Where("selected = ?", true).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&articles).Error
	return articles, err
}

// ListByAuthors 指定作者集合的文章，按创建时间倒序分页
func (dao *ArticleDAO) ListByAuthors(ctx context.Context, authorIDs []string, offset, limit int) ([]model.Article, error) {
	var articles []model.Article
	err := dao.db.WithContext(ctx).
		Where("author_id IN ?", authorIDs).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&articles).Error
	return articles, err
}

package store

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/Shin-da/ojt-tracking-system-sub000/model"
	"github.com/Shin-da/ojt-tracking-system-sub000/pkg/errors"
)

type DocumentStore struct {
	db *gorm.DB
}

func NewDocumentStore(db *gorm.DB) *DocumentStore {
	return &DocumentStore{db: db}
}

func (s *DocumentStore) List() ([]model.Document, error) {
	var docs []model.Document
	if err := s.db.Order("uploaded_at DESC, id DESC").Find(&docs).Error; err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return docs, nil
}

func (s *DocumentStore) FindByID(id int32) (*model.Document, error) {
	var doc model.Document
	if err := s.db.First(&doc, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NotFound
		}
		return nil, fmt.Errorf("find document %d: %w", id, err)
	}
	return &doc, nil
}

func (s *DocumentStore) Create(doc *model.Document) error {
	if doc.FileName == "" || doc.StorageKey == "" {
		return errors.DuplicateOrInvalid
	}
	if err := s.db.Create(doc).Error; err != nil {
		return fmt.Errorf("create document: %w", err)
	}
	return nil
}

func (s *DocumentStore) DeleteByID(id int32) error {
	res := s.db.Delete(&model.Document{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete document %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return errors.NotFound
	}
	return nil
}

package gorm

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/dao"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/entity"
)

// contentDocumentDAO implements dao.ContentDocumentDAO using GORM.
type contentDocumentDAO struct {
	db *gorm.DB
}

// NewContentDocumentDAO creates a new GORM-based ContentDocumentDAO.
func NewContentDocumentDAO(db *gorm.DB) dao.ContentDocumentDAO {
	return &contentDocumentDAO{db: db}
}

// FindByKey retrieves the document stored under key.
func (d *contentDocumentDAO) FindByKey(ctx context.Context, key string) (*entity.ContentDocument, error) {
	var doc entity.ContentDocument
	err := d.db.WithContext(ctx).Where("doc_key = ?", key).First(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// Save inserts or conditionally updates a document inside a transaction.
// The UPDATE is guarded by the version read in the same transaction so a
// concurrent writer that slips in between makes it affect zero rows.
func (d *contentDocumentDAO) Save(ctx context.Context, doc *entity.ContentDocument, expectedVersion int64) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current entity.ContentDocument
		err := tx.Where("doc_key = ?", doc.Key).First(&current).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if expectedVersion > 0 {
				return dao.ErrVersionMismatch
			}
			doc.ID = 0
			doc.Version = 1
			return tx.Create(doc).Error
		}
		if err != nil {
			return err
		}

		if expectedVersion != dao.AnyVersion && current.Version != expectedVersion {
			return dao.ErrVersionMismatch
		}

		now := time.Now()
		result := tx.Model(&entity.ContentDocument{}).
			Where("doc_key = ? AND version = ?", doc.Key, current.Version).
			Updates(map[string]any{
				"payload":    doc.Payload,
				"version":    current.Version + 1,
				"updated_at": now,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return dao.ErrVersionMismatch
		}

		doc.ID = current.ID
		doc.Version = current.Version + 1
		doc.CreatedAt = current.CreatedAt
		doc.UpdatedAt = now
		return nil
	})
}

// FindAll returns every stored document ordered by key.
func (d *contentDocumentDAO) FindAll(ctx context.Context) ([]*entity.ContentDocument, error) {
	var docs []*entity.ContentDocument
	err := d.db.WithContext(ctx).Order("doc_key").Find(&docs).Error
	return docs, err
}

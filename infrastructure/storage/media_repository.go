package storage

import (
	"context"
	"fmt"
	"greeting-hub/domain"
	"greeting-hub/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

type diskMediaRecord struct {
	ID       string `cbor:"id"`
	OwnerID  string `cbor:"owner_id"`
	MimeType string `cbor:"mime_type"`
	Size     int    `cbor:"size"`
}

// MediaRepository keeps greeting attachments: metadata under "media:{id}",
// raw bytes under "media_blob:{id}".
type MediaRepository struct {
	db *badger.DB
}

func NewMediaRepository(db *badger.DB) *MediaRepository {
	return &MediaRepository{db: db}
}

func (r *MediaRepository) PutMedia(_ context.Context, owner domain.UserID, mimeType string, data []byte) (domain.Media, error) {
	record := diskMediaRecord{
		ID:       uuid.NewString(),
		OwnerID:  string(owner),
		MimeType: mimeType,
		Size:     len(data),
	}
	err := r.db.Update(func(txn *badger.Txn) error {
		if err := setValue(txn, "media:"+record.ID, record); err != nil {
			return err
		}
		return txn.Set([]byte("media_blob:"+record.ID), data)
	})
	if err != nil {
		return domain.Media{}, err
	}
	return domain.Media{ID: record.ID, MimeType: record.MimeType, Size: record.Size}, nil
}

func (r *MediaRepository) GetMedia(_ context.Context, id string) (domain.Media, []byte, error) {
	var record diskMediaRecord
	var data []byte
	err := r.db.View(func(txn *badger.Txn) error {
		if err := getValue(txn, "media:"+id, &record); err != nil {
			return err
		}
		item, err := txn.Get([]byte("media_blob:" + id))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return fmt.Errorf("%w: media %s has no content", errors.ErrNotFound, id)
			}
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		return domain.Media{}, nil, err
	}
	return domain.Media{ID: record.ID, MimeType: record.MimeType, Size: record.Size}, data, nil
}

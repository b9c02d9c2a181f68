package database

import (
	"fmt"

	"hainyu/model"
)

// InsertMarkImage は荷印画像の記録を追加し、採番された id を返します。既存行は変更しません。
func InsertMarkImage(dbtx DBTX, img model.MarkImage) (int64, error) {
	const q = `
		INSERT INTO hainyu_mark_images (hainyu_id, image_path, created_at)
		VALUES (:hainyu_id, :image_path, :created_at)`
	res, err := dbtx.NamedExec(q, img)
	if err != nil {
		return 0, fmt.Errorf("InsertMarkImage (ID: %s, Path: %s) failed: %w", img.HainyuID, img.ImagePath, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("InsertMarkImage: failed to read inserted id: %w", err)
	}
	return id, nil
}

// ListMarkImages は搬入IDの荷印画像を新しい順に返します。同一秒の登録は id の大きい方を先にします。
func ListMarkImages(dbtx DBTX, hainyuID string) ([]model.MarkImage, error) {
	images := []model.MarkImage{}
	const q = `
		SELECT id, hainyu_id, image_path, created_at
		FROM hainyu_mark_images
		WHERE hainyu_id = ?
		ORDER BY created_at DESC, id DESC`
	if err := dbtx.Select(&images, q, hainyuID); err != nil {
		return nil, fmt.Errorf("ListMarkImages (ID: %s) failed: %w", hainyuID, err)
	}
	return images, nil
}

package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cardstream/decksync/internal/logger"
	"github.com/cardstream/decksync/models"
)

type noteTypeRepository struct {
	*DB
	logger *logger.Logger
}

func NewNoteTypeRepository(db *DB, logger *logger.Logger) NoteTypeRepository {
	return &noteTypeRepository{DB: db, logger: logger}
}

func (r *noteTypeRepository) SaveNoteTypes(ctx context.Context, deckID string, types []models.NoteType) error {
	for _, nt := range types {
		fields, err := json.Marshal(nt.Fields)
		if err != nil {
			return fmt.Errorf("encode note type fields %s: %w", nt.ID, err)
		}
		if _, err = r.ExecContext(ctx, upsertNoteType,
			deckID, nt.ID, nt.Name, string(fields), nt.Templates, nt.CSS,
		); err != nil {
			return fmt.Errorf("save note type %s: %w", nt.ID, err)
		}
	}
	return nil
}

func (r *noteTypeRepository) ListNoteTypes(ctx context.Context, deckID string) ([]models.NoteType, error) {
	rows, err := r.QueryContext(ctx, listNoteTypes, deckID)
	if err != nil {
		return nil, fmt.Errorf("query note types: %w", err)
	}
	defer rows.Close()

	var types []models.NoteType
	for rows.Next() {
		var nt models.NoteType
		var fields string
		if err = rows.Scan(&nt.ID, &nt.Name, &fields, &nt.Templates, &nt.CSS); err != nil {
			return nil, fmt.Errorf("scan note type: %w", err)
		}
		if err = json.Unmarshal([]byte(fields), &nt.Fields); err != nil {
			return nil, fmt.Errorf("decode note type fields %s: %w", nt.ID, err)
		}
		types = append(types, nt)
	}
	return types, rows.Err()
}

type mediaRepository struct {
	*DB
	logger *logger.Logger
}

func NewMediaRepository(db *DB, logger *logger.Logger) MediaRepository {
	return &mediaRepository{DB: db, logger: logger}
}

func (r *mediaRepository) KnownHashes(ctx context.Context, deckID string) (map[string]struct{}, error) {
	rows, err := r.QueryContext(ctx, listMediaHashes, deckID)
	if err != nil {
		return nil, fmt.Errorf("query media hashes: %w", err)
	}
	defer rows.Close()

	hashes := make(map[string]struct{})
	for rows.Next() {
		var h string
		if err = rows.Scan(&h); err != nil {
			return nil, fmt.Errorf("scan media hash: %w", err)
		}
		hashes[h] = struct{}{}
	}
	return hashes, rows.Err()
}

func (r *mediaRepository) SaveFile(ctx context.Context, deckID string, file models.MediaFile) error {
	if _, err := r.ExecContext(ctx, upsertMediaFile,
		deckID, file.FileName, file.FileHash, file.Size,
	); err != nil {
		return fmt.Errorf("save media file %s: %w", file.FileName, err)
	}
	return nil
}

func (r *mediaRepository) ListFiles(ctx context.Context, deckID string) ([]models.MediaFile, error) {
	rows, err := r.QueryContext(ctx, listMediaFiles, deckID)
	if err != nil {
		return nil, fmt.Errorf("query media files: %w", err)
	}
	defer rows.Close()

	var files []models.MediaFile
	for rows.Next() {
		var f models.MediaFile
		if err = rows.Scan(&f.FileName, &f.FileHash, &f.Size); err != nil {
			return nil, fmt.Errorf("scan media file: %w", err)
		}
		files = append(files, f)
	}
	return files, rows.Err()
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The decksync Authors

package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cardstream/decksync/internal/adapter"
	"github.com/cardstream/decksync/internal/logger"
	"github.com/cardstream/decksync/internal/store"
	"github.com/cardstream/decksync/models"
)

type mediaSyncService struct {
	server      adapter.ServerAdapter
	media       store.MediaRepository
	mediaDir    string
	maxAttempts int
	logger      *logger.Logger
}

// NewMediaSyncService syncs deck media. File bytes live under mediaDir (one
// subdirectory per deck); the store holds only name/hash/size metadata, so
// "do we have it" is a hash lookup, never a disk scan.
func NewMediaSyncService(
	server adapter.ServerAdapter,
	media store.MediaRepository,
	mediaDir string,
	maxAttempts int,
	logger *logger.Logger,
) MediaSyncService {
	return &mediaSyncService{
		server:      server,
		media:       media,
		mediaDir:    mediaDir,
		maxAttempts: maxAttempts,
		logger:      logger,
	}
}

func (s *mediaSyncService) PullMedia(ctx context.Context, deckID string) (int, error) {
	log := s.logger.WithDeck(deckID)

	var listResp models.MediaSyncResponse
	err := withRetry(ctx, log, s.maxAttempts, func() error {
		var listErr error
		listResp, listErr = s.server.SyncMedia(ctx, models.MediaSyncRequest{
			DeckID: deckID,
			Action: models.MediaList,
		})
		return listErr
	})
	if err != nil {
		return 0, fmt.Errorf("list media for deck %s: %w", deckID, err)
	}

	known, err := s.media.KnownHashes(ctx, deckID)
	if err != nil {
		return 0, err
	}

	fetched := 0
	for _, file := range listResp.Files {
		if err := ctx.Err(); err != nil {
			return fetched, err
		}
		if _, ok := known[file.FileHash]; ok {
			continue
		}

		if err = s.downloadOne(ctx, log, deckID, file); err != nil {
			// One broken file must not strand the rest of the deck's media.
			log.Error().Err(err).Str("file", file.FileName).Msg("media download failed")
			continue
		}
		known[file.FileHash] = struct{}{}
		fetched++
	}

	if fetched > 0 {
		log.Info().Int("fetched", fetched).Int("listed", len(listResp.Files)).Msg("media pulled")
	}
	return fetched, nil
}

func (s *mediaSyncService) downloadOne(ctx context.Context, log *logger.Logger, deckID string, file models.MediaFile) error {
	url := file.URL
	if url == "" {
		var resp models.MediaSyncResponse
		err := withRetry(ctx, log, s.maxAttempts, func() error {
			var dlErr error
			resp, dlErr = s.server.SyncMedia(ctx, models.MediaSyncRequest{
				DeckID:   deckID,
				Action:   models.MediaDownload,
				FileName: file.FileName,
				FileHash: file.FileHash,
			})
			return dlErr
		})
		if err != nil {
			return err
		}
		if len(resp.Files) > 0 {
			url = resp.Files[0].URL
		}
		if url == "" {
			return fmt.Errorf("%w: no download url for %s", adapter.ErrMalformedResponse, file.FileName)
		}
	}

	content, err := s.server.DownloadFile(ctx, url)
	if err != nil {
		return err
	}

	sum := sha256.Sum256(content)
	if got := hex.EncodeToString(sum[:]); got != file.FileHash {
		return fmt.Errorf("hash mismatch for %s: listed %s, got %s", file.FileName, file.FileHash, got)
	}

	if err = s.writeFile(deckID, file.FileName, content); err != nil {
		return err
	}
	file.Size = int64(len(content))
	return s.media.SaveFile(ctx, deckID, file)
}

func (s *mediaSyncService) UploadMedia(ctx context.Context, deckID, fileName string, content []byte) error {
	log := s.logger.WithDeck(deckID)

	sum := sha256.Sum256(content)
	hash := hex.EncodeToString(sum[:])

	known, err := s.media.KnownHashes(ctx, deckID)
	if err != nil {
		return err
	}
	if _, ok := known[hash]; ok {
		return nil
	}

	var urlResp models.MediaSyncResponse
	err = withRetry(ctx, log, s.maxAttempts, func() error {
		var urlErr error
		urlResp, urlErr = s.server.SyncMedia(ctx, models.MediaSyncRequest{
			DeckID:   deckID,
			Action:   models.MediaGetUploadURL,
			FileName: fileName,
			FileHash: hash,
		})
		return urlErr
	})
	if err != nil {
		return fmt.Errorf("get upload url for %s: %w", fileName, err)
	}
	if urlResp.UploadURL == "" {
		return fmt.Errorf("%w: no upload url for %s", adapter.ErrMalformedResponse, fileName)
	}

	if err = s.server.UploadFile(ctx, urlResp.UploadURL, content); err != nil {
		return fmt.Errorf("upload %s: %w", fileName, err)
	}

	err = withRetry(ctx, log, s.maxAttempts, func() error {
		_, confirmErr := s.server.SyncMedia(ctx, models.MediaSyncRequest{
			DeckID:   deckID,
			Action:   models.MediaConfirmUpload,
			FileName: fileName,
			FileHash: hash,
		})
		return confirmErr
	})
	if err != nil {
		return fmt.Errorf("confirm upload of %s: %w", fileName, err)
	}

	if err = s.writeFile(deckID, fileName, content); err != nil {
		return err
	}
	return s.media.SaveFile(ctx, deckID, models.MediaFile{
		FileName: fileName,
		FileHash: hash,
		Size:     int64(len(content)),
	})
}

func (s *mediaSyncService) writeFile(deckID, fileName string, content []byte) error {
	dir := filepath.Join(s.mediaDir, deckID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create media dir: %w", err)
	}
	// filepath.Base strips any path the server smuggled into the name.
	path := filepath.Join(dir, filepath.Base(fileName))
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("write media file %s: %w", fileName, err)
	}
	return nil
}

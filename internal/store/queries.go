// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The decksync Authors

package store

const (
	getCheckpoint = `
		SELECT deck_id, last_change_id, deck_version, access_tier, last_synced_at
		FROM checkpoints
		WHERE deck_id = $1;`

	upsertCheckpoint = `
		INSERT INTO checkpoints (deck_id, last_change_id, deck_version, access_tier, last_synced_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (deck_id) DO UPDATE SET
			last_change_id = excluded.last_change_id,
			deck_version   = excluded.deck_version,
			access_tier    = excluded.access_tier,
			last_synced_at = excluded.last_synced_at;`

	upsertCard = `
		INSERT INTO cards (deck_id, card_guid, note_type, fields, tags, subdeck_path,
		                   is_suspended, is_buried, deleted, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (deck_id, card_guid) DO UPDATE SET
			note_type    = excluded.note_type,
			fields       = excluded.fields,
			tags         = excluded.tags,
			subdeck_path = excluded.subdeck_path,
			is_suspended = excluded.is_suspended,
			is_buried    = excluded.is_buried,
			deleted      = excluded.deleted,
			updated_at   = excluded.updated_at;`

	// Placeholder numbers follow appearance order: SQLite indexes $N-style
	// parameters by first occurrence, not by the number.
	tombstoneCard = `
		UPDATE cards SET deleted = 1, updated_at = $1
		WHERE deck_id = $2 AND card_guid = $3;`

	// The snapshot GUID list is bound as one JSON array parameter and
	// expanded by json_each, so it never hits SQLite's bound-variable limit.
	sweepAbsentCards = `
		UPDATE cards SET deleted = 1, updated_at = $1
		WHERE deck_id = $2 AND deleted = 0
		  AND card_guid NOT IN (SELECT value FROM json_each($3));`

	getCard = `
		SELECT deck_id, card_guid, note_type, fields, tags, subdeck_path,
		       is_suspended, is_buried, deleted, updated_at
		FROM cards
		WHERE deck_id = $1 AND card_guid = $2;`

	countCards = `
		SELECT COUNT(*) FROM cards
		WHERE deck_id = $1 AND deleted = 0;`

	listSuspendStates = `
		SELECT card_guid, is_suspended, is_buried FROM cards
		WHERE deck_id = $1 AND deleted = 0;`

	setSuspendState = `
		UPDATE cards SET is_suspended = $1, is_buried = $2
		WHERE deck_id = $3 AND card_guid = $4;`

	insertAppliedChange = `
		INSERT INTO applied_changes (deck_id, change_id, applied_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (deck_id, change_id) DO NOTHING;`

	insertConflict = `
		INSERT INTO conflicts (deck_id, card_guid, field_name, local_value,
		                       server_value, is_protected, detected_at, resolved)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 0)
		ON CONFLICT (deck_id, card_guid, field_name) DO UPDATE SET
			local_value  = excluded.local_value,
			server_value = excluded.server_value,
			is_protected = excluded.is_protected,
			detected_at  = excluded.detected_at,
			resolved     = 0;`

	listConflicts = `
		SELECT deck_id, card_guid, field_name, local_value, server_value,
		       is_protected, detected_at
		FROM conflicts
		WHERE deck_id = $1 AND resolved = 0
		ORDER BY detected_at;`

	resolveConflict = `
		UPDATE conflicts SET resolved = 1
		WHERE deck_id = $1 AND card_guid = $2 AND field_name = $3;`

	enqueueEdit = `
		INSERT INTO push_queue (id, deck_id, card_guid, field_name, old_value,
		                        new_value, kind, reason, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 'pending', $9);`

	nextPushBatch = `
		SELECT id, deck_id, card_guid, field_name, old_value, new_value,
		       kind, reason, status, rejection, created_at
		FROM push_queue
		WHERE deck_id = $1 AND status = 'pending'
		ORDER BY seq
		LIMIT $2;`

	listRejectedEdits = `
		SELECT id, deck_id, card_guid, field_name, old_value, new_value,
		       kind, reason, status, rejection, created_at
		FROM push_queue
		WHERE deck_id = $1 AND status = 'rejected'
		ORDER BY seq;`

	countPendingEdits = `
		SELECT COUNT(*) FROM push_queue
		WHERE deck_id = $1 AND status = 'pending';`

	upsertNoteType = `
		INSERT INTO note_types (deck_id, note_type_id, name, fields, templates, css)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (deck_id, note_type_id) DO UPDATE SET
			name      = excluded.name,
			fields    = excluded.fields,
			templates = excluded.templates,
			css       = excluded.css;`

	listNoteTypes = `
		SELECT note_type_id, name, fields, templates, css
		FROM note_types
		WHERE deck_id = $1
		ORDER BY note_type_id;`

	upsertMediaFile = `
		INSERT INTO media_files (deck_id, file_name, file_hash, size)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (deck_id, file_name) DO UPDATE SET
			file_hash = excluded.file_hash,
			size      = excluded.size;`

	listMediaFiles = `
		SELECT file_name, file_hash, size
		FROM media_files
		WHERE deck_id = $1
		ORDER BY file_name;`

	listMediaHashes = `
		SELECT DISTINCT file_hash FROM media_files
		WHERE deck_id = $1;`
)

// clearDeckStatements removes every local trace of a deck. Executed inside
// one transaction by CheckpointRepository.Clear.
var clearDeckStatements = []string{
	`DELETE FROM media_files WHERE deck_id = $1;`,
	`DELETE FROM note_types WHERE deck_id = $1;`,
	`DELETE FROM push_queue WHERE deck_id = $1;`,
	`DELETE FROM conflicts WHERE deck_id = $1;`,
	`DELETE FROM applied_changes WHERE deck_id = $1;`,
	`DELETE FROM cards WHERE deck_id = $1;`,
	`DELETE FROM checkpoints WHERE deck_id = $1;`,
}

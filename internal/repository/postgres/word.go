package postgres

import (
	"database/sql"

	"flashbot/internal/domain"
)

// WordRepo implements repository.WordRepository
type WordRepo struct {
	db *sql.DB
}

// NewWordRepo creates a new word repository
func NewWordRepo(db *sql.DB) *WordRepo {
	return &WordRepo{db: db}
}

// RandomSharedWord returns one shared word uniformly at random,
// or nil when the shared vocabulary is empty
func (r *WordRepo) RandomSharedWord() (*domain.Word, error) {
	var w domain.Word
	query := `
		SELECT id, source_text, target_text, created_at
		FROM shared_words
		ORDER BY RANDOM()
		LIMIT 1
	`
	err := r.db.QueryRow(query).Scan(&w.ID, &w.SourceText, &w.TargetText, &w.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	w.Origin = domain.OriginShared
	return &w, nil
}

// RandomPersonalWord returns one of the user's own words uniformly at random,
// or nil when the user has none
func (r *WordRepo) RandomPersonalWord(userID int64) (*domain.Word, error) {
	var w domain.Word
	query := `
		SELECT id, user_id, source_text, target_text, created_at
		FROM personal_words
		WHERE user_id = $1
		ORDER BY RANDOM()
		LIMIT 1
	`
	err := r.db.QueryRow(query, userID).Scan(&w.ID, &w.UserID, &w.SourceText, &w.TargetText, &w.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	w.Origin = domain.OriginPersonal
	return &w, nil
}

// RandomDistractors returns up to limit distinct shared translations,
// excluding the correct one, in random order. Fewer rows than limit is
// not an error; the caller gets whatever exists.
func (r *WordRepo) RandomDistractors(exclude string, limit int) ([]string, error) {
	query := `
		SELECT target_text FROM (
			SELECT DISTINCT target_text
			FROM shared_words
			WHERE target_text <> $1
		) candidates
		ORDER BY RANDOM()
		LIMIT $2
	`

	rows, err := r.db.Query(query, exclude, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var options []string
	for rows.Next() {
		var text string
		if err := rows.Scan(&text); err != nil {
			return nil, err
		}
		options = append(options, text)
	}

	return options, rows.Err()
}

// InsertPersonalWord saves a user-authored word pair and returns its id
func (r *WordRepo) InsertPersonalWord(userID int64, sourceText, targetText string) (int64, error) {
	var id int64
	query := `
		INSERT INTO personal_words (user_id, source_text, target_text)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := r.db.QueryRow(query, userID, sourceText, targetText).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// DeletePersonalWord removes a word only if it belongs to the user.
// Returns whether a row was actually deleted.
func (r *WordRepo) DeletePersonalWord(userID, wordID int64) (bool, error) {
	query := `
		DELETE FROM personal_words
		WHERE id = $1 AND user_id = $2
	`
	res, err := r.db.Exec(query, wordID, userID)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// ListPersonalWords returns the user's words, newest first
func (r *WordRepo) ListPersonalWords(userID int64) ([]domain.Word, error) {
	query := `
		SELECT id, user_id, source_text, target_text, created_at
		FROM personal_words
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var words []domain.Word
	for rows.Next() {
		var w domain.Word
		if err := rows.Scan(&w.ID, &w.UserID, &w.SourceText, &w.TargetText, &w.CreatedAt); err != nil {
			return nil, err
		}
		w.Origin = domain.OriginPersonal
		words = append(words, w)
	}

	return words, rows.Err()
}

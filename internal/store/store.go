// Package store provides SQLite-backed persistence for the CRUD surface:
// users, articles, achievements, configuration and artifact metadata.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"fluidcontent/internal/core"

	_ "github.com/mattn/go-sqlite3"
)

// Store is the SQLite-backed store.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens (or creates) the database at dbPath, creating the parent
// directory and schema as needed.
func NewStore(dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{
		db:   db,
		path: dbPath,
	}

	if err := store.initialize(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return store, nil
}

// initialize creates the necessary tables
func (s *Store) initialize() error {
	usersTable := `
	CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		email TEXT UNIQUE,
		name TEXT,
		age INTEGER,
		interests TEXT,
		points INTEGER DEFAULT 0,
		date_created DATETIME
	);`

	articlesTable := `
	CREATE TABLE IF NOT EXISTS articles (
		id TEXT PRIMARY KEY,
		author_id TEXT,
		title TEXT,
		description TEXT,
		body TEXT,
		tags TEXT,
		date_created DATETIME
	);`

	achievementsTable := `
	CREATE TABLE IF NOT EXISTS achievements (
		id TEXT PRIMARY KEY,
		name TEXT,
		description TEXT,
		points INTEGER DEFAULT 0,
		icon TEXT
	);`

	userAchievementsTable := `
	CREATE TABLE IF NOT EXISTS user_achievements (
		user_id TEXT,
		achievement_id TEXT,
		date_unlocked DATETIME,
		PRIMARY KEY (user_id, achievement_id),
		FOREIGN KEY (user_id) REFERENCES users (id),
		FOREIGN KEY (achievement_id) REFERENCES achievements (id)
	);`

	configurationsTable := `
	CREATE TABLE IF NOT EXISTS configurations (
		key TEXT PRIMARY KEY,
		value TEXT,
		description TEXT,
		date_updated DATETIME
	);`

	artifactsTable := `
	CREATE TABLE IF NOT EXISTS artifacts (
		id TEXT PRIMARY KEY,
		user_id TEXT,
		content_title TEXT,
		filename TEXT,
		confidence TEXT,
		date_generated DATETIME
	);`

	tables := []string{usersTable, articlesTable, achievementsTable,
		userAchievementsTable, configurationsTable, artifactsTable}
	for _, table := range tables {
		if _, err := s.db.Exec(table); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	return nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// CreateUser inserts a new user.
func (s *Store) CreateUser(user core.User) error {
	interests, _ := json.Marshal(user.Interests)

	query := `
	INSERT INTO users (id, email, name, age, interests, points, date_created)
	VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := s.db.Exec(query,
		user.ID,
		user.Email,
		user.Name,
		nullableInt(user.Age),
		string(interests),
		user.Points,
		user.DateCreated,
	)
	return err
}

// GetUser retrieves a user by ID. Returns nil when not found.
func (s *Store) GetUser(id string) (*core.User, error) {
	query := `
	SELECT id, email, name, age, interests, points, date_created
	FROM users WHERE id = ?`

	return scanUser(s.db.QueryRow(query, id))
}

// ListUsers retrieves users ordered by creation date.
func (s *Store) ListUsers(limit, offset int) ([]core.User, error) {
	query := `
	SELECT id, email, name, age, interests, points, date_created
	FROM users ORDER BY date_created LIMIT ? OFFSET ?`

	rows, err := s.db.Query(query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []core.User
	for rows.Next() {
		user, err := scanUserRow(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}
	return users, rows.Err()
}

// UpdateUser updates an existing user.
func (s *Store) UpdateUser(user core.User) error {
	interests, _ := json.Marshal(user.Interests)

	query := `
	UPDATE users SET email = ?, name = ?, age = ?, interests = ?, points = ?
	WHERE id = ?`

	res, err := s.db.Exec(query,
		user.Email,
		user.Name,
		nullableInt(user.Age),
		string(interests),
		user.Points,
		user.ID,
	)
	if err != nil {
		return err
	}
	return requireRowAffected(res, "user", user.ID)
}

// DeleteUser removes a user by ID.
func (s *Store) DeleteUser(id string) error {
	res, err := s.db.Exec(`DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRowAffected(res, "user", id)
}

// CreateArticle inserts a new article.
func (s *Store) CreateArticle(article core.Article) error {
	tags, _ := json.Marshal(article.Tags)

	query := `
	INSERT INTO articles (id, author_id, title, description, body, tags, date_created)
	VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := s.db.Exec(query,
		article.ID,
		article.AuthorID,
		article.Title,
		article.Description,
		article.Body,
		string(tags),
		article.DateCreated,
	)
	return err
}

// GetArticle retrieves an article by ID. Returns nil when not found.
func (s *Store) GetArticle(id string) (*core.Article, error) {
	query := `
	SELECT id, author_id, title, description, body, tags, date_created
	FROM articles WHERE id = ?`

	row := s.db.QueryRow(query, id)

	var article core.Article
	var tagsJSON string
	err := row.Scan(
		&article.ID,
		&article.AuthorID,
		&article.Title,
		&article.Description,
		&article.Body,
		&tagsJSON,
		&article.DateCreated,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan article: %w", err)
	}

	_ = json.Unmarshal([]byte(tagsJSON), &article.Tags)
	return &article, nil
}

// ListArticles retrieves articles ordered by creation date, newest first.
func (s *Store) ListArticles(limit, offset int) ([]core.Article, error) {
	query := `
	SELECT id, author_id, title, description, body, tags, date_created
	FROM articles ORDER BY date_created DESC LIMIT ? OFFSET ?`

	rows, err := s.db.Query(query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query articles: %w", err)
	}
	defer rows.Close()

	var articles []core.Article
	for rows.Next() {
		var article core.Article
		var tagsJSON string
		if err := rows.Scan(
			&article.ID,
			&article.AuthorID,
			&article.Title,
			&article.Description,
			&article.Body,
			&tagsJSON,
			&article.DateCreated,
		); err != nil {
			return nil, fmt.Errorf("failed to scan article: %w", err)
		}
		_ = json.Unmarshal([]byte(tagsJSON), &article.Tags)
		articles = append(articles, article)
	}
	return articles, rows.Err()
}

// UpdateArticleTags replaces an article's tag list.
func (s *Store) UpdateArticleTags(id string, tags []string) error {
	tagsJSON, _ := json.Marshal(tags)
	res, err := s.db.Exec(`UPDATE articles SET tags = ? WHERE id = ?`, string(tagsJSON), id)
	if err != nil {
		return err
	}
	return requireRowAffected(res, "article", id)
}

// DeleteArticle removes an article by ID.
func (s *Store) DeleteArticle(id string) error {
	res, err := s.db.Exec(`DELETE FROM articles WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRowAffected(res, "article", id)
}

// CreateAchievement inserts a new achievement definition.
func (s *Store) CreateAchievement(a core.Achievement) error {
	query := `
	INSERT INTO achievements (id, name, description, points, icon)
	VALUES (?, ?, ?, ?, ?)`

	_, err := s.db.Exec(query, a.ID, a.Name, a.Description, a.Points, a.Icon)
	return err
}

// ListAchievements retrieves all achievement definitions.
func (s *Store) ListAchievements() ([]core.Achievement, error) {
	rows, err := s.db.Query(`SELECT id, name, description, points, icon FROM achievements ORDER BY points`)
	if err != nil {
		return nil, fmt.Errorf("failed to query achievements: %w", err)
	}
	defer rows.Close()

	var achievements []core.Achievement
	for rows.Next() {
		var a core.Achievement
		if err := rows.Scan(&a.ID, &a.Name, &a.Description, &a.Points, &a.Icon); err != nil {
			return nil, fmt.Errorf("failed to scan achievement: %w", err)
		}
		achievements = append(achievements, a)
	}
	return achievements, rows.Err()
}

// UnlockAchievement records an achievement for a user and credits its
// points to the user's total.
func (s *Store) UnlockAchievement(userID, achievementID string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.Exec(`
	INSERT OR IGNORE INTO user_achievements (user_id, achievement_id, date_unlocked)
	VALUES (?, ?, ?)`, userID, achievementID, time.Now().UTC())
	if err != nil {
		return err
	}

	_, err = tx.Exec(`
	UPDATE users SET points = points + (SELECT points FROM achievements WHERE id = ?)
	WHERE id = ?`, achievementID, userID)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// GetUserAchievements retrieves the achievements unlocked by a user.
func (s *Store) GetUserAchievements(userID string) ([]core.UserAchievement, error) {
	rows, err := s.db.Query(`
	SELECT user_id, achievement_id, date_unlocked
	FROM user_achievements WHERE user_id = ? ORDER BY date_unlocked`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query user achievements: %w", err)
	}
	defer rows.Close()

	var unlocked []core.UserAchievement
	for rows.Next() {
		var ua core.UserAchievement
		if err := rows.Scan(&ua.UserID, &ua.AchievementID, &ua.DateUnlocked); err != nil {
			return nil, fmt.Errorf("failed to scan user achievement: %w", err)
		}
		unlocked = append(unlocked, ua)
	}
	return unlocked, rows.Err()
}

// GetLeaderboard returns users ranked by points, highest first.
func (s *Store) GetLeaderboard(limit int) ([]core.LeaderboardEntry, error) {
	rows, err := s.db.Query(`
	SELECT id, name, points FROM users ORDER BY points DESC, name LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []core.LeaderboardEntry
	rank := 0
	for rows.Next() {
		var entry core.LeaderboardEntry
		if err := rows.Scan(&entry.UserID, &entry.Name, &entry.Points); err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard entry: %w", err)
		}
		rank++
		entry.Rank = rank
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// SetConfiguration inserts or updates a configuration entry.
func (s *Store) SetConfiguration(cfg core.Configuration) error {
	query := `
	INSERT OR REPLACE INTO configurations (key, value, description, date_updated)
	VALUES (?, ?, ?, ?)`

	_, err := s.db.Exec(query, cfg.Key, cfg.Value, cfg.Description, time.Now().UTC())
	return err
}

// GetConfiguration retrieves a configuration entry. Returns nil when not found.
func (s *Store) GetConfiguration(key string) (*core.Configuration, error) {
	row := s.db.QueryRow(`
	SELECT key, value, description, date_updated FROM configurations WHERE key = ?`, key)

	var cfg core.Configuration
	err := row.Scan(&cfg.Key, &cfg.Value, &cfg.Description, &cfg.DateUpdated)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan configuration: %w", err)
	}
	return &cfg, nil
}

// ListConfigurations retrieves all configuration entries.
func (s *Store) ListConfigurations() ([]core.Configuration, error) {
	rows, err := s.db.Query(`
	SELECT key, value, description, date_updated FROM configurations ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("failed to query configurations: %w", err)
	}
	defer rows.Close()

	var configs []core.Configuration
	for rows.Next() {
		var cfg core.Configuration
		if err := rows.Scan(&cfg.Key, &cfg.Value, &cfg.Description, &cfg.DateUpdated); err != nil {
			return nil, fmt.Errorf("failed to scan configuration: %w", err)
		}
		configs = append(configs, cfg)
	}
	return configs, rows.Err()
}

// SaveArtifactMeta records metadata for a persisted HTML artifact. The
// document body lives on disk; only metadata is indexed here.
func (s *Store) SaveArtifactMeta(artifact core.HTMLArtifact) error {
	query := `
	INSERT INTO artifacts (id, user_id, content_title, filename, confidence, date_generated)
	VALUES (?, ?, ?, ?, ?, ?)`

	_, err := s.db.Exec(query,
		artifact.ID,
		artifact.UserID,
		artifact.ContentTitle,
		artifact.Filename,
		string(artifact.Confidence),
		artifact.DateGenerated,
	)
	return err
}

// ListArtifactMeta retrieves artifact metadata for a user, newest first.
func (s *Store) ListArtifactMeta(userID string, limit int) ([]core.HTMLArtifact, error) {
	rows, err := s.db.Query(`
	SELECT id, user_id, content_title, filename, confidence, date_generated
	FROM artifacts WHERE user_id = ? ORDER BY date_generated DESC LIMIT ?`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query artifacts: %w", err)
	}
	defer rows.Close()

	var metas []core.HTMLArtifact
	for rows.Next() {
		var a core.HTMLArtifact
		var confidence string
		if err := rows.Scan(&a.ID, &a.UserID, &a.ContentTitle, &a.Filename, &confidence, &a.DateGenerated); err != nil {
			return nil, fmt.Errorf("failed to scan artifact: %w", err)
		}
		a.Confidence = core.ExtractionConfidence(confidence)
		metas = append(metas, a)
	}
	return metas, rows.Err()
}

// Helpers

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row *sql.Row) (*core.User, error) {
	user, err := scanUserRow(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return user, err
}

func scanUserRow(row rowScanner) (*core.User, error) {
	var user core.User
	var age sql.NullInt64
	var interestsJSON string

	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&age,
		&interestsJSON,
		&user.Points,
		&user.DateCreated,
	)
	if err != nil {
		return nil, err
	}

	if age.Valid {
		v := int(age.Int64)
		user.Age = &v
	}
	_ = json.Unmarshal([]byte(interestsJSON), &user.Interests)
	return &user, nil
}

func nullableInt(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

func requireRowAffected(res sql.Result, kind, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s %s not found", kind, id)
	}
	return nil
}

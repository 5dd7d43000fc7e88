package server

import (
	"net/http"
	"strconv"
	"time"

	"fluidcontent/internal/core"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// pagination reads limit/offset query parameters with sane defaults.
func pagination(r *http.Request) (limit, offset int) {
	limit, offset = 50, 0
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 && v <= 500 {
		limit = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil && v >= 0 {
		offset = v
	}
	return limit, offset
}

// handleListUsers handles GET /api/users
func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	limit, offset := pagination(r)
	users, err := s.store.ListUsers(limit, offset)
	if err != nil {
		s.log.Error("Failed to list users", "error", err)
		s.respondError(w, http.StatusInternalServerError, "Failed to retrieve users")
		return
	}
	if users == nil {
		users = []core.User{}
	}
	s.respondJSON(w, http.StatusOK, users)
}

// handleCreateUser handles POST /api/users
func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var user core.User
	if !s.decodeJSON(w, r, &user) {
		return
	}
	if user.Email == "" {
		s.respondError(w, http.StatusBadRequest, "Email is required")
		return
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	user.DateCreated = time.Now().UTC()

	if err := s.store.CreateUser(user); err != nil {
		s.log.Error("Failed to create user", "error", err)
		s.respondError(w, http.StatusInternalServerError, "Failed to create user")
		return
	}
	s.respondJSON(w, http.StatusCreated, user)
}

// handleGetUser handles GET /api/users/{id}
func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	user, err := s.store.GetUser(chi.URLParam(r, "id"))
	if err != nil {
		s.log.Error("Failed to get user", "error", err)
		s.respondError(w, http.StatusInternalServerError, "Failed to retrieve user")
		return
	}
	if user == nil {
		s.respondError(w, http.StatusNotFound, "User not found")
		return
	}
	s.respondJSON(w, http.StatusOK, user)
}

// handleUpdateUser handles PUT /api/users/{id}
func (s *Server) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	var user core.User
	if !s.decodeJSON(w, r, &user) {
		return
	}
	user.ID = chi.URLParam(r, "id")

	if err := s.store.UpdateUser(user); err != nil {
		s.respondError(w, http.StatusNotFound, "User not found")
		return
	}
	s.respondJSON(w, http.StatusOK, user)
}

// handleDeleteUser handles DELETE /api/users/{id}
func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteUser(chi.URLParam(r, "id")); err != nil {
		s.respondError(w, http.StatusNotFound, "User not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleUserAchievements handles GET /api/users/{id}/achievements
func (s *Server) handleUserAchievements(w http.ResponseWriter, r *http.Request) {
	unlocked, err := s.store.GetUserAchievements(chi.URLParam(r, "id"))
	if err != nil {
		s.log.Error("Failed to list user achievements", "error", err)
		s.respondError(w, http.StatusInternalServerError, "Failed to retrieve achievements")
		return
	}
	if unlocked == nil {
		unlocked = []core.UserAchievement{}
	}
	s.respondJSON(w, http.StatusOK, unlocked)
}

// handleListArticles handles GET /api/articles
func (s *Server) handleListArticles(w http.ResponseWriter, r *http.Request) {
	limit, offset := pagination(r)
	articles, err := s.store.ListArticles(limit, offset)
	if err != nil {
		s.log.Error("Failed to list articles", "error", err)
		s.respondError(w, http.StatusInternalServerError, "Failed to retrieve articles")
		return
	}
	if articles == nil {
		articles = []core.Article{}
	}
	s.respondJSON(w, http.StatusOK, articles)
}

// handleCreateArticle handles POST /api/articles
func (s *Server) handleCreateArticle(w http.ResponseWriter, r *http.Request) {
	var article core.Article
	if !s.decodeJSON(w, r, &article) {
		return
	}
	if article.Title == "" || article.Body == "" {
		s.respondError(w, http.StatusBadRequest, "Title and body are required")
		return
	}
	if article.ID == "" {
		article.ID = uuid.NewString()
	}
	article.DateCreated = time.Now().UTC()

	if err := s.store.CreateArticle(article); err != nil {
		s.log.Error("Failed to create article", "error", err)
		s.respondError(w, http.StatusInternalServerError, "Failed to create article")
		return
	}
	s.respondJSON(w, http.StatusCreated, article)
}

// handleGetArticle handles GET /api/articles/{id}
func (s *Server) handleGetArticle(w http.ResponseWriter, r *http.Request) {
	article, err := s.store.GetArticle(chi.URLParam(r, "id"))
	if err != nil {
		s.log.Error("Failed to get article", "error", err)
		s.respondError(w, http.StatusInternalServerError, "Failed to retrieve article")
		return
	}
	if article == nil {
		s.respondError(w, http.StatusNotFound, "Article not found")
		return
	}
	s.respondJSON(w, http.StatusOK, article)
}

// handleDeleteArticle handles DELETE /api/articles/{id}
func (s *Server) handleDeleteArticle(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteArticle(chi.URLParam(r, "id")); err != nil {
		s.respondError(w, http.StatusNotFound, "Article not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleListAchievements handles GET /api/achievements
func (s *Server) handleListAchievements(w http.ResponseWriter, r *http.Request) {
	achievements, err := s.store.ListAchievements()
	if err != nil {
		s.log.Error("Failed to list achievements", "error", err)
		s.respondError(w, http.StatusInternalServerError, "Failed to retrieve achievements")
		return
	}
	if achievements == nil {
		achievements = []core.Achievement{}
	}
	s.respondJSON(w, http.StatusOK, achievements)
}

// handleCreateAchievement handles POST /api/achievements
func (s *Server) handleCreateAchievement(w http.ResponseWriter, r *http.Request) {
	var a core.Achievement
	if !s.decodeJSON(w, r, &a) {
		return
	}
	if a.Name == "" {
		s.respondError(w, http.StatusBadRequest, "Name is required")
		return
	}
	if a.ID == "" {
		a.ID = uuid.NewString()
	}

	if err := s.store.CreateAchievement(a); err != nil {
		s.log.Error("Failed to create achievement", "error", err)
		s.respondError(w, http.StatusInternalServerError, "Failed to create achievement")
		return
	}
	s.respondJSON(w, http.StatusCreated, a)
}

// handleLeaderboard handles GET /api/leaderboard
func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit, _ := pagination(r)
	entries, err := s.store.GetLeaderboard(limit)
	if err != nil {
		s.log.Error("Failed to compute leaderboard", "error", err)
		s.respondError(w, http.StatusInternalServerError, "Failed to retrieve leaderboard")
		return
	}
	if entries == nil {
		entries = []core.LeaderboardEntry{}
	}
	s.respondJSON(w, http.StatusOK, entries)
}

// handleListConfigurations handles GET /api/configurations
func (s *Server) handleListConfigurations(w http.ResponseWriter, r *http.Request) {
	configs, err := s.store.ListConfigurations()
	if err != nil {
		s.log.Error("Failed to list configurations", "error", err)
		s.respondError(w, http.StatusInternalServerError, "Failed to retrieve configurations")
		return
	}
	if configs == nil {
		configs = []core.Configuration{}
	}
	s.respondJSON(w, http.StatusOK, configs)
}

// handleGetConfiguration handles GET /api/configurations/{key}
func (s *Server) handleGetConfiguration(w http.ResponseWriter, r *http.Request) {
	cfg, err := s.store.GetConfiguration(chi.URLParam(r, "key"))
	if err != nil {
		s.log.Error("Failed to get configuration", "error", err)
		s.respondError(w, http.StatusInternalServerError, "Failed to retrieve configuration")
		return
	}
	if cfg == nil {
		s.respondError(w, http.StatusNotFound, "Configuration not found")
		return
	}
	s.respondJSON(w, http.StatusOK, cfg)
}

// handleSetConfiguration handles PUT /api/configurations/{key}
func (s *Server) handleSetConfiguration(w http.ResponseWriter, r *http.Request) {
	var cfg core.Configuration
	if !s.decodeJSON(w, r, &cfg) {
		return
	}
	cfg.Key = chi.URLParam(r, "key")

	if err := s.store.SetConfiguration(cfg); err != nil {
		s.log.Error("Failed to set configuration", "error", err)
		s.respondError(w, http.StatusInternalServerError, "Failed to save configuration")
		return
	}
	s.respondJSON(w, http.StatusOK, cfg)
}

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"todoly-be/internal/cache"
	"todoly-be/internal/entities"
	"todoly-be/internal/models"
	"todoly-be/internal/repository"
)

// todoListCacheTTL bounds staleness for the per-user list cache; every
// write by the owner invalidates the entry immediately.
const todoListCacheTTL = 5 * time.Minute

// TodoService defines the interface for todo business logic. Every
// operation is scoped to the authenticated caller's user ID.
type TodoService interface {
	List(userID string) ([]*models.TodoResponse, error)
	Create(userID string, req *models.CreateTodoRequest) (*models.TodoResponse, error)
	GetByID(id, userID string) (*entities.Todo, error)
	UpdateContent(id, userID, content string) error
	Delete(id, userID string) error
}

type todoService struct {
	repo  repository.TodoRepository
	cache cache.Cache
	ctx   context.Context
}

// NewTodoService creates a new todo service. The cache is optional;
// a nil cache degrades to hitting the database on every list.
func NewTodoService(repo repository.TodoRepository, cacheClient cache.Cache) TodoService {
	svc := &todoService{
		repo: repo,
		ctx:  context.Background(),
	}
	if cacheClient != nil {
		svc.cache = cacheClient
	}
	return svc
}

func listCacheKey(userID string) string {
	return fmt.Sprintf("todos:user:%s", userID)
}

// List retrieves every todo owned by the user. A user with zero todos
// gets ErrNoTodos, which the HTTP layer reports as 404.
func (s *todoService) List(userID string) ([]*models.TodoResponse, error) {
	if s.cache != nil {
		var cached []*models.TodoResponse
		if err := s.cache.GetJSON(s.ctx, listCacheKey(userID), &cached); err == nil && len(cached) > 0 {
			return cached, nil
		}
	}

	todos, err := s.repo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	if len(todos) == 0 {
		return nil, ErrNoTodos
	}

	responses := make([]*models.TodoResponse, len(todos))
	for i, todo := range todos {
		responses[i] = &models.TodoResponse{
			ID:        todo.ID,
			Content:   todo.Content,
			CreatedAt: todo.CreatedAt,
			UserID:    todo.UserID,
		}
	}

	if s.cache != nil {
		s.cache.SetJSON(s.ctx, listCacheKey(userID), responses, todoListCacheTTL)
	}

	return responses, nil
}

// Create stores a new todo for the user. Owner and creation timestamp
// are assigned here; nothing but content comes from the client.
func (s *todoService) Create(userID string, req *models.CreateTodoRequest) (*models.TodoResponse, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, ErrEmptyContent
	}

	createdAt := time.Now().UTC().Format(time.RFC3339)

	todo, err := s.repo.Create(req.Content, createdAt, userID)
	if err != nil {
		return nil, err
	}

	s.invalidateList(userID)

	return &models.TodoResponse{
		ID:        todo.ID,
		Content:   todo.Content,
		CreatedAt: todo.CreatedAt,
		UserID:    todo.UserID,
	}, nil
}

// GetByID fetches a single todo owned by the user
func (s *todoService) GetByID(id, userID string) (*entities.Todo, error) {
	todo, err := s.repo.FindByID(id, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrTodoNotFound
	}
	if err != nil {
		return nil, err
	}
	return todo, nil
}

// UpdateContent replaces a todo's content, leaving id, owner and
// creation timestamp unchanged
func (s *todoService) UpdateContent(id, userID, content string) error {
	if strings.TrimSpace(content) == "" {
		return ErrEmptyContent
	}

	err := s.repo.UpdateContent(id, userID, content)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrTodoNotFound
	}
	if err != nil {
		return err
	}

	s.invalidateList(userID)
	return nil
}

// Delete removes a todo owned by the user
func (s *todoService) Delete(id, userID string) error {
	err := s.repo.Delete(id, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrTodoNotFound
	}
	if err != nil {
		return err
	}

	s.invalidateList(userID)
	return nil
}

func (s *todoService) invalidateList(userID string) {
	if s.cache != nil {
		s.cache.Delete(s.ctx, listCacheKey(userID))
	}
}

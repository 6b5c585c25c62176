package repository

import (
	"database/sql"
	"fmt"

	"todoly-be/internal/entities"
)

// TodoRepository defines the interface for todo database operations.
// Every read and write that targets a single todo is scoped to the
// owning user, so a caller can never reach another user's records.
type TodoRepository interface {
	Create(content, createdAt, userID string) (*entities.Todo, error)
	FindByID(id, userID string) (*entities.Todo, error)
	FindByUserID(userID string) ([]*entities.Todo, error)
	UpdateContent(id, userID, content string) error
	Delete(id, userID string) error
}

type todoRepository struct {
	db *sql.DB
}

// NewTodoRepository creates a new todo repository
func NewTodoRepository(db *sql.DB) TodoRepository {
	return &todoRepository{db: db}
}

// Create inserts a new todo into the database
func (r *todoRepository) Create(content, createdAt, userID string) (*entities.Todo, error) {
	query := `
		INSERT INTO todos (content, created_at, user_id)
		VALUES ($1, $2, $3)
		RETURNING id, content, created_at, user_id
	`

	var todo entities.Todo
	err := r.db.QueryRow(query, content, createdAt, userID).Scan(
		&todo.ID,
		&todo.Content,
		&todo.CreatedAt,
		&todo.UserID,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create todo: %w", err)
	}

	return &todo, nil
}

// FindByID finds a todo by ID, restricted to the owning user
func (r *todoRepository) FindByID(id, userID string) (*entities.Todo, error) {
	query := `
		SELECT id, content, created_at, user_id
		FROM todos
		WHERE id = $1 AND user_id = $2
	`

	var todo entities.Todo
	err := r.db.QueryRow(query, id, userID).Scan(
		&todo.ID,
		&todo.Content,
		&todo.CreatedAt,
		&todo.UserID,
	)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find todo: %w", err)
	}

	return &todo, nil
}

// FindByUserID retrieves all todos owned by a user
func (r *todoRepository) FindByUserID(userID string) ([]*entities.Todo, error) {
	query := `
		SELECT id, content, created_at, user_id
		FROM todos
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get todos: %w", err)
	}
	defer rows.Close()

	var todos []*entities.Todo
	for rows.Next() {
		var todo entities.Todo
		err := rows.Scan(
			&todo.ID,
			&todo.Content,
			&todo.CreatedAt,
			&todo.UserID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan todo: %w", err)
		}
		todos = append(todos, &todo)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating todos: %w", err)
	}

	return todos, nil
}

// UpdateContent sets a todo's content in place; id, owner and creation
// timestamp are never touched
func (r *todoRepository) UpdateContent(id, userID, content string) error {
	query := `
		UPDATE todos
		SET content = $1
		WHERE id = $2 AND user_id = $3
	`

	result, err := r.db.Exec(query, content, id, userID)
	if err != nil {
		return fmt.Errorf("failed to update todo: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes a todo, restricted to the owning user
func (r *todoRepository) Delete(id, userID string) error {
	query := `DELETE FROM todos WHERE id = $1 AND user_id = $2`

	result, err := r.db.Exec(query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete todo: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"todoly-be/internal/entities"
	"todoly-be/internal/middleware"
	"todoly-be/internal/models"
	"todoly-be/internal/service"
)

type TodoController struct {
	todoService service.TodoService
}

func NewTodoController(todoService service.TodoService) *TodoController {
	return &TodoController{
		todoService: todoService,
	}
}

// ListTodos handles GET /api/todos/private
func (tc *TodoController) ListTodos(c *gin.Context) {
	userID := c.GetString(middleware.UserIDKey)

	todos, err := tc.todoService.List(userID)
	// Owning zero todos answers 404, not an empty array
	if errors.Is(err, service.ErrNoTodos) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": err.Error(),
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, todos)
}

// CreateTodo handles POST /api/todos/private
func (tc *TodoController) CreateTodo(c *gin.Context) {
	var req models.CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "content is required",
		})
		return
	}

	userID := c.GetString(middleware.UserIDKey)

	response, err := tc.todoService.Create(userID, &req)
	if errors.Is(err, service.ErrEmptyContent) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, response)
}

// UpdateTodo handles PATCH /api/todos/private/todos/:id. The todo itself
// was located by the TodoLoader middleware.
func (tc *TodoController) UpdateTodo(c *gin.Context) {
	var req models.UpdateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "content is required",
		})
		return
	}

	todo := loadedTodo(c)
	if todo == nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "todo missing from request context",
		})
		return
	}

	userID := c.GetString(middleware.UserIDKey)

	err := tc.todoService.UpdateContent(todo.ID, userID, req.Content)
	if errors.Is(err, service.ErrEmptyContent) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}
	if errors.Is(err, service.ErrTodoNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": err.Error(),
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "OK",
	})
}

// DeleteTodo handles DELETE /api/todos/private/todos/:id
func (tc *TodoController) DeleteTodo(c *gin.Context) {
	todo := loadedTodo(c)
	if todo == nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "todo missing from request context",
		})
		return
	}

	userID := c.GetString(middleware.UserIDKey)

	err := tc.todoService.Delete(todo.ID, userID)
	if errors.Is(err, service.ErrTodoNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": err.Error(),
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "OK",
	})
}

// loadedTodo pulls the todo attached by the TodoLoader middleware
func loadedTodo(c *gin.Context) *entities.Todo {
	value, exists := c.Get(middleware.TodoKey)
	if !exists {
		return nil
	}
	todo, ok := value.(*entities.Todo)
	if !ok {
		return nil
	}
	return todo
}

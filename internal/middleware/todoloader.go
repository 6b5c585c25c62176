package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"todoly-be/internal/service"
)

// TodoKey is the context key under which the loaded todo is stored
const TodoKey = "todo"

// TodoLoader gates the todo :id routes. The path identifier must be a
// well-formed UUID (415 otherwise) and must resolve to a todo owned by
// the authenticated caller (404 otherwise). The loaded todo is attached
// to the context for the handler.
func TodoLoader(todoService service.TodoService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if _, err := uuid.Parse(id); err != nil {
			c.JSON(http.StatusUnsupportedMediaType, gin.H{
				"error": "invalid todo id",
			})
			c.Abort()
			return
		}

		userID := c.GetString(UserIDKey)

		todo, err := todoService.GetByID(id, userID)
		if errors.Is(err, service.ErrTodoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": err.Error(),
			})
			c.Abort()
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": err.Error(),
			})
			c.Abort()
			return
		}

		c.Set(TodoKey, todo)
		c.Next()
	}
}

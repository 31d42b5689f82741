package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Gicotto/MyTaskApp/internal/repository"
	"github.com/Gicotto/MyTaskApp/models"
)

// ListTasksHandler renders the task list, oldest first.
func (h *Handler) ListTasksHandler(c *gin.Context) {
	tasks, err := h.Tasks.List()
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.HTML(http.StatusOK, "my-tasks.html", gin.H{
		"tasks": tasks,
	})
}

// CreateTaskHandler adds a task from the form and redirects back to the
// list.
func (h *Handler) CreateTaskHandler(c *gin.Context) {
	content := c.PostForm("content")
	if content == "" {
		c.String(http.StatusBadRequest, "content is required")
		return
	}
	dueDate, err := time.Parse(dateLayout, c.PostForm("due_date"))
	if err != nil {
		c.String(http.StatusBadRequest, "due_date must be a YYYY-MM-DD date")
		return
	}

	task := models.Task{Content: content, DueDate: dueDate}
	if err := h.Tasks.Create(&task); err != nil {
		h.storeError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/my-tasks")
}

// ShowEditTaskPage renders the edit form for one task.
func (h *Handler) ShowEditTaskPage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	task, err := h.Tasks.Get(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.String(http.StatusNotFound, "task not found")
			return
		}
		h.storeError(c, err)
		return
	}
	c.HTML(http.StatusOK, "edit-my-task.html", gin.H{
		"task": task,
	})
}

// UpdateTaskHandler overwrites a task's content and due date. The id,
// complete flag and creation time are untouched. Redirects to the
// landing page, matching the original navigation flow.
func (h *Handler) UpdateTaskHandler(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	task, err := h.Tasks.Get(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.String(http.StatusNotFound, "task not found")
			return
		}
		h.storeError(c, err)
		return
	}

	content := c.PostForm("content")
	if content == "" {
		c.String(http.StatusBadRequest, "content is required")
		return
	}
	dueDate, err := time.Parse(dateLayout, c.PostForm("due_date"))
	if err != nil {
		c.String(http.StatusBadRequest, "due_date must be a YYYY-MM-DD date")
		return
	}

	task.Content = content
	task.DueDate = dueDate
	if err := h.Tasks.Update(task); err != nil {
		h.storeError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/")
}

// DeleteTaskHandler removes a task permanently.
func (h *Handler) DeleteTaskHandler(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.Tasks.Delete(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.String(http.StatusNotFound, "task not found")
			return
		}
		h.storeError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/my-tasks")
}

package controllers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/madiaz/bizledger/app/models"
	"github.com/madiaz/bizledger/app/repository"
	"github.com/madiaz/bizledger/internal/pkg/tasktree"
)

type taskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	DueDate     string `json:"due_date"`
	ParentID    *uint  `json:"parent_id"`
	ClientID    *uint  `json:"client_id"`
	Position    int    `json:"position"`
}

func (req *taskRequest) apply(task *models.Task) error {
	if req.Title != "" {
		task.Title = strings.TrimSpace(req.Title)
	}
	task.Description = req.Description
	if req.Status != "" {
		task.Status = req.Status
	}
	if req.DueDate != "" {
		parsed, err := time.Parse(time.RFC3339, req.DueDate)
		if err != nil {
			return err
		}
		task.DueDate = &parsed
	}
	task.ParentID = req.ParentID
	task.ClientID = req.ClientID
	task.Position = req.Position
	return task.Validate()
}

// HandleListTasks returns the flat task list, optionally for one client
func HandleListTasks(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetTaskRepository()

	if clientID := c.QueryInt("client_id", 0); clientID > 0 {
		tasks, err := repo.ListByClient(uint(clientID))
		if err != nil {
			return serverError(c, err)
		}
		return c.JSON(fiber.Map{"tasks": tasks})
	}

	tasks, err := repo.ListAll()
	if err != nil {
		return serverError(c, err)
	}

	return c.JSON(fiber.Map{"tasks": tasks})
}

// HandleGetTaskTree returns the tasks assembled into their hierarchy
func HandleGetTaskTree(c *fiber.Ctx) error {
	tasks, err := repository.GetGlobalFactory().GetTaskRepository().ListAll()
	if err != nil {
		return serverError(c, err)
	}

	return c.JSON(fiber.Map{
		"tree":   tasktree.Build(tasks),
		"counts": tasktree.CountByStatus(tasks),
	})
}

// HandleGetTask returns one task
func HandleGetTask(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid task id")
	}

	task, err := repository.GetGlobalFactory().GetTaskRepository().GetByID(id)
	if err != nil {
		return respondRepoError(c, err, "task not found")
	}

	return c.JSON(task)
}

// HandleCreateTask creates a new task. A parent_id must reference an
// existing task; sub-tasks of sub-tasks are allowed.
func HandleCreateTask(c *fiber.Ctx) error {
	var req taskRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	repo := repository.GetGlobalFactory().GetTaskRepository()
	if req.ParentID != nil {
		if _, err := repo.GetByID(*req.ParentID); err != nil {
			return respondRepoError(c, err, "parent task not found")
		}
	}

	task := &models.Task{Status: models.TASK_STATUS_OPEN}
	if err := req.apply(task); err != nil {
		return badRequest(c, err.Error())
	}

	if err := repo.Create(task); err != nil {
		return serverError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(task)
}

// HandleUpdateTask updates an existing task
func HandleUpdateTask(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid task id")
	}

	repo := repository.GetGlobalFactory().GetTaskRepository()
	task, err := repo.GetByID(id)
	if err != nil {
		return respondRepoError(c, err, "task not found")
	}

	var req taskRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if req.ParentID != nil {
		if *req.ParentID == id {
			return badRequest(c, "a task cannot be its own parent")
		}
		if _, err := repo.GetByID(*req.ParentID); err != nil {
			return respondRepoError(c, err, "parent task not found")
		}
	}
	if err := req.apply(task); err != nil {
		return badRequest(c, err.Error())
	}

	if err := repo.Update(task); err != nil {
		return serverError(c, err)
	}

	return c.JSON(task)
}

// HandleDeleteTask deletes a task and its direct children
func HandleDeleteTask(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid task id")
	}

	if err := repository.GetGlobalFactory().GetTaskRepository().Delete(id); err != nil {
		return serverError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

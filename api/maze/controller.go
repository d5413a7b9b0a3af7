package mazeapi

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/Zivica/MazeSolver/infrastruture/repo"
	"github.com/Zivica/MazeSolver/maze"
	"github.com/Zivica/MazeSolver/service"
	"github.com/Zivica/MazeSolver/service/i"
	general_i "github.com/beka-birhanu/vinom-common/interfaces/general"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Controller manages maze creation and solving over HTTP.
type Controller struct {
	manager       i.MazeManager
	logger        general_i.Logger
	defaultWidth  int
	defaultHeight int
}

// Config holds configuration settings for creating a new Controller
// instance.
type Config struct {
	Manager       i.MazeManager
	Logger        general_i.Logger
	DefaultWidth  int // Width used when a create request omits it
	DefaultHeight int // Height used when a create request omits it
}

// NewController initializes a maze Controller.
func NewController(c *Config) (*Controller, error) {
	if c == nil || c.Manager == nil {
		return nil, errors.New("maze manager is required")
	}
	return &Controller{
		manager:       c.Manager,
		logger:        c.Logger,
		defaultWidth:  c.DefaultWidth,
		defaultHeight: c.DefaultHeight,
	}, nil
}

// Register registers the maze routes.
func (mc *Controller) Register(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("", mc.create)
		mazes.GET("/:ID", mc.byID)
		mazes.DELETE("/:ID", mc.discard)
		mazes.GET("/:ID/solution", mc.solution)
		mazes.GET("/:ID/solution/live", mc.solutionLive)
	}
}

// statusForError maps service and core errors onto HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, repo.ErrMazeNotFound):
		return http.StatusNotFound
	case errors.Is(err, maze.ErrInvalidDimension),
		errors.Is(err, maze.ErrInvalidCell),
		errors.Is(err, service.ErrTooBigDimension):
		return http.StatusBadRequest
	case errors.Is(err, maze.ErrUnreachable), errors.Is(err, maze.ErrNoPath):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// create handles maze generation requests.
func (mc *Controller) create(ctx *gin.Context) {
	var request CreateMazeRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if request.Width == 0 {
		request.Width = mc.defaultWidth
	}
	if request.Height == 0 {
		request.Height = mc.defaultHeight
	}

	record, err := mc.manager.Create(request.Width, request.Height, request.Seed, request.Start, request.End)
	if err != nil {
		ctx.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, newMazeResponse(record))
}

// byID retrieves the wall state of a specific maze.
func (mc *Controller) byID(ctx *gin.Context) {
	id, ok := mc.mazeID(ctx)
	if !ok {
		return
	}

	record, err := mc.manager.ByID(id)
	if err != nil {
		ctx.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, newMazeResponse(record))
}

// discard removes a stored maze.
func (mc *Controller) discard(ctx *gin.Context) {
	id, ok := mc.mazeID(ctx)
	if !ok {
		return
	}

	if err := mc.manager.Discard(id); err != nil {
		ctx.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	ctx.Status(http.StatusNoContent)
}

// solution solves a maze in one shot and returns the shortest path with
// the full visitation order.
func (mc *Controller) solution(ctx *gin.Context) {
	id, ok := mc.mazeID(ctx)
	if !ok {
		return
	}

	var query solveQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	start, end := query.endpoints()

	result, err := mc.manager.Solve(id, start, end)
	if err != nil {
		ctx.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, newSolutionResponse(result))
}

// solutionLive streams the solver's visitation events over Server-Sent
// Events, one event per visited cell, followed by a final path event.
// The client's consumption pace drives the walk; the outcome is the
// same as a one-shot solve.
func (mc *Controller) solutionLive(ctx *gin.Context) {
	id, ok := mc.mazeID(ctx)
	if !ok {
		return
	}

	var query solveQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	start, end := query.endpoints()

	walk, err := mc.manager.Walk(id, start, end)
	if err != nil {
		ctx.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	ctx.Header("Content-Type", "text/event-stream")
	ctx.Header("Cache-Control", "no-cache")
	ctx.Stream(func(w io.Writer) bool {
		if visit, ok := walk.Next(); ok {
			ctx.SSEvent("visit", newVisitResponse(visit))
			return true
		}

		path, err := walk.Path()
		if err != nil {
			ctx.SSEvent("error", err.Error())
			return false
		}
		ctx.SSEvent("path", path)
		return false
	})

	if mc.logger != nil {
		mc.logger.Info(fmt.Sprintf("streamed solve for maze %s", id))
	}
}

// mazeID parses the ID path parameter, answering 400 on failure.
func (mc *Controller) mazeID(ctx *gin.Context) (uuid.UUID, bool) {
	idString := ctx.Params.ByName("ID")
	id, err := uuid.Parse(idString)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "malformed maze id"})
		return uuid.Nil, false
	}
	return id, true
}

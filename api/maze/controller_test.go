package mazeapi

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Zivica/MazeSolver/infrastruture/repo"
	"github.com/Zivica/MazeSolver/maze"
	"github.com/Zivica/MazeSolver/service"
	logger "github.com/beka-birhanu/vinom-common/log"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// closeNotifyingRecorder adds the CloseNotifier surface gin's stream
// helper expects to the standard response recorder.
type closeNotifyingRecorder struct {
	*httptest.ResponseRecorder
	closed chan bool
}

func newCloseNotifyingRecorder() *closeNotifyingRecorder {
	return &closeNotifyingRecorder{httptest.NewRecorder(), make(chan bool, 1)}
}

func (c *closeNotifyingRecorder) CloseNotify() <-chan bool {
	return c.closed
}

func setupEngine(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)

	testLogger, err := logger.New("TEST", "\033[36m", io.Discard)
	assert.NoError(t, err)

	manager, err := service.NewMazeManager(&service.Config{
		Repo:   repo.NewMazeRepo(),
		Logger: testLogger,
	})
	assert.NoError(t, err)

	controller, err := NewController(&Config{
		Manager:       manager,
		Logger:        testLogger,
		DefaultWidth:  5,
		DefaultHeight: 4,
	})
	assert.NoError(t, err)

	engine := gin.New()
	controller.Register(engine.Group("/api/v1"))
	return engine
}

func createMaze(t *testing.T, engine *gin.Engine, body string) MazeResponse {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/mazes", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var response MazeResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response
}

func TestCreateMaze(t *testing.T) {
	engine := setupEngine(t)

	t.Run("explicit dimensions", func(t *testing.T) {
		response := createMaze(t, engine, `{"width": 6, "height": 3, "seed": 9}`)

		assert.Equal(t, 6, response.Width)
		assert.Equal(t, 3, response.Height)
		assert.Equal(t, int64(9), response.Seed)
		assert.Equal(t, maze.CellPosition{Row: 2, Col: 5}, response.End)
		assert.Len(t, response.Cells, 3)
		assert.Len(t, response.Cells[0], 6)

		_, err := uuid.Parse(response.ID)
		assert.NoError(t, err)
	})

	t.Run("server defaults", func(t *testing.T) {
		response := createMaze(t, engine, `{}`)
		assert.Equal(t, 5, response.Width)
		assert.Equal(t, 4, response.Height)
	})

	t.Run("negative dimension", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/mazes", strings.NewReader(`{"width": -1, "height": 3}`))
		req.Header.Set("Content-Type", "application/json")
		engine.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("out of bounds start", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/mazes", strings.NewReader(`{"width": 3, "height": 3, "start": {"row": 9, "col": 0}}`))
		req.Header.Set("Content-Type", "application/json")
		engine.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestMazeByID(t *testing.T) {
	engine := setupEngine(t)
	created := createMaze(t, engine, `{"width": 4, "height": 4, "seed": 2}`)

	t.Run("existing maze", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/mazes/"+created.ID, nil)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var response MazeResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, created.ID, response.ID)
		assert.Equal(t, created.Cells, response.Cells)
	})

	t.Run("unknown maze", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/mazes/"+uuid.NewString(), nil)
		engine.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/mazes/not-a-uuid", nil)
		engine.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestMazeSolution(t *testing.T) {
	engine := setupEngine(t)
	created := createMaze(t, engine, `{"width": 6, "height": 6, "seed": 31}`)

	t.Run("stored endpoints", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/mazes/"+created.ID+"/solution", nil)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var response SolutionResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, created.Start, response.Path[0])
		assert.Equal(t, created.End, response.Path[len(response.Path)-1])
		assert.NotEmpty(t, response.Visits)
		assert.Nil(t, response.Visits[0].Parent)
	})

	t.Run("endpoint overrides", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/mazes/"+created.ID+"/solution?start_row=2&start_col=2&end_row=0&end_col=5", nil)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var response SolutionResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, maze.CellPosition{Row: 2, Col: 2}, response.Path[0])
		assert.Equal(t, maze.CellPosition{Row: 0, Col: 5}, response.Path[len(response.Path)-1])
	})

	t.Run("out of bounds override", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/mazes/"+created.ID+"/solution?end_row=99&end_col=99", nil)
		engine.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestMazeSolutionLive(t *testing.T) {
	engine := setupEngine(t)
	created := createMaze(t, engine, `{"width": 4, "height": 4, "seed": 12}`)

	w := newCloseNotifyingRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/mazes/"+created.ID+"/solution/live", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "event:visit")
	assert.Contains(t, body, "event:path")
}

func TestDiscardMaze(t *testing.T) {
	engine := setupEngine(t)
	created := createMaze(t, engine, `{"width": 3, "height": 3, "seed": 4}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/mazes/"+created.ID, nil)
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/v1/mazes/"+created.ID, nil)
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

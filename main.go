package main

import (
	"fmt"
	"os"

	"github.com/Zivica/MazeSolver/api"
	api_i "github.com/Zivica/MazeSolver/api/i"
	mazeapi "github.com/Zivica/MazeSolver/api/maze"
	"github.com/Zivica/MazeSolver/config"
	"github.com/Zivica/MazeSolver/infrastruture/repo"
	"github.com/Zivica/MazeSolver/service"
	"github.com/Zivica/MazeSolver/service/i"
	general_i "github.com/beka-birhanu/vinom-common/interfaces/general"
	logger "github.com/beka-birhanu/vinom-common/log"
)

// Global variables for dependencies
var (
	mazeRepo       i.MazeRepo
	mazeManager    i.MazeManager
	mazeController api_i.Controller
	router         *api.Router
	appLogger      general_i.Logger
)

func initMazeRepo() {
	mazeRepo = repo.NewMazeRepo()
	appLogger.Info("Maze repository initialized")
}

func initMazeManager() {
	managerLogger, err := logger.New("MAZE-MANAGER", config.ColorCyan, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze manager logger: %v", err))
		os.Exit(1)
	}

	mazeManager, err = service.NewMazeManager(&service.Config{
		Repo:         mazeRepo,
		Logger:       managerLogger,
		MaxDimension: config.Envs.MazeMaxDimension,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze manager: %v", err))
		os.Exit(1)
	}

	appLogger.Info("Maze manager initialized")
}

func initMazeController() {
	controllerLogger, err := logger.New("MAZE-API", config.ColorMagenta, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze controller logger: %v", err))
		os.Exit(1)
	}

	mazeController, err = mazeapi.NewController(&mazeapi.Config{
		Manager:       mazeManager,
		Logger:        controllerLogger,
		DefaultWidth:  config.Envs.MazeDefaultWidth,
		DefaultHeight: config.Envs.MazeDefaultHeight,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze controller: %v", err))
		os.Exit(1)
	}

	appLogger.Info("Maze controller initialized")
}

func initRouter() {
	router = api.NewRouter(api.Config{
		Addr:        fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:     "/api",
		Controllers: []api_i.Controller{mazeController},
	})
	appLogger.Info("Router initialized")
}

func main() {
	// Initialize dependencies
	appLogger, _ = logger.New("APP", config.ColorGreen, os.Stdout)

	initMazeRepo()
	initMazeManager()
	initMazeController()
	initRouter()

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}

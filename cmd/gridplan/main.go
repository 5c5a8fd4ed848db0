// Command gridplan plans a path across a YAML occupancy map and prints the
// waypoints as JSON.
//
//	gridplan -map warehouse.yaml -start 0.5,0.5 -goal 4.2,3.9 -connectivity chessboard -corner-check
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/pdrpinto/bestfirst/grid"
	"github.com/pdrpinto/bestfirst/internal/monitoring"
	"github.com/pdrpinto/bestfirst/planner"
)

type waypoint struct {
	X   float64 `json:"x"`
	Y   float64 `json:"y"`
	Yaw float64 `json:"yaw"`
}

func main() {
	var (
		mapPath      = flag.String("map", "", "path to the YAML map file")
		startFlag    = flag.String("start", "", "start position x,y[,yaw] in map coordinates")
		goalFlag     = flag.String("goal", "", "goal position x,y[,yaw] in map coordinates")
		connectivity = flag.String("connectivity", "taxi", "neighborhood: taxi (4-connected) or chessboard (8-connected)")
		cornerCheck  = flag.Bool("corner-check", false, "forbid diagonal moves between two occupied cells")
		algorithm    = flag.String("algorithm", "astar", "search algorithm: astar or dijkstra")
		maxExpand    = flag.Int("max-expansions", 0, "give up after this many expanded cells (0 = unlimited)")
		pngPath      = flag.String("png", "", "also render the grid and cell path to this PNG file")
		quiet        = flag.Bool("quiet", false, "suppress diagnostic logging")
	)
	flag.Parse()

	logger := log.New(os.Stderr, "[gridplan] ", log.LstdFlags)
	monitoring.SetLogger(logger.Printf)
	if *quiet {
		monitoring.SetLogger(nil)
	}

	if *mapPath == "" || *startFlag == "" || *goalFlag == "" {
		flag.Usage()
		os.Exit(2)
	}
	start, err := parsePose(*startFlag)
	if err != nil {
		logger.Fatalf("-start: %v", err)
	}
	goal, err := parsePose(*goalFlag)
	if err != nil {
		logger.Fatalf("-goal: %v", err)
	}

	var options []planner.Option
	switch *connectivity {
	case "taxi":
		options = append(options, planner.WithNeighborhood(grid.Taxi))
	case "chessboard":
		options = append(options, planner.WithNeighborhood(grid.Chessboard), planner.WithCornerCheck(*cornerCheck))
	default:
		logger.Fatalf("unknown -connectivity %q", *connectivity)
	}
	switch *algorithm {
	case "astar":
		options = append(options, planner.WithAlgorithm(planner.AStar))
	case "dijkstra":
		options = append(options, planner.WithAlgorithm(planner.Dijkstra))
	default:
		logger.Fatalf("unknown -algorithm %q", *algorithm)
	}
	options = append(options, planner.WithMaxExpansions(*maxExpand))

	g, err := grid.LoadMap(*mapPath)
	if err != nil {
		logger.Fatalf("load map: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	poses, err := planner.New(options...).Plan(ctx, start, goal, g)
	if err != nil {
		logger.Fatalf("plan: %v", err)
	}
	if len(poses) == 0 {
		logger.Printf("no path from %v to %v", start.Position, goal.Position)
	}

	if *pngPath != "" {
		cells := make([]grid.Cell, 0, len(poses))
		for _, pose := range poses {
			cells = append(cells, planner.CellOf(g, pose.Position))
		}
		if err := grid.RenderPNG(*pngPath, g, cells); err != nil {
			logger.Fatalf("render: %v", err)
		}
	}

	out := make([]waypoint, 0, len(poses))
	for _, pose := range poses {
		out = append(out, waypoint{X: pose.Position.X, Y: pose.Position.Y, Yaw: pose.Yaw})
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		logger.Fatalf("encode: %v", err)
	}
	if len(poses) == 0 {
		os.Exit(1)
	}
}

func parsePose(s string) (planner.Pose, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 && len(parts) != 3 {
		return planner.Pose{}, fmt.Errorf("want x,y or x,y,yaw, got %q", s)
	}
	values := make([]float64, len(parts))
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return planner.Pose{}, fmt.Errorf("bad coordinate %q: %w", part, err)
		}
		values[i] = v
	}
	pose := planner.At(values[0], values[1])
	if len(values) == 3 {
		pose.Yaw = values[2]
	}
	return pose, nil
}

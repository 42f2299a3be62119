package server

import (
	"strconv"
	"strings"
)

// parseGamePath splits "/api/games/{id}[/action]" into the game id and the
// optional trailing action segment.
func parseGamePath(path string) (int, string, bool) {
	rest := strings.TrimPrefix(path, "/api/games/")
	if rest == path {
		return 0, "", false
	}
	rest = strings.Trim(rest, "/")
	if rest == "" {
		return 0, "", false
	}
	segments := strings.Split(rest, "/")
	if len(segments) > 2 {
		return 0, "", false
	}
	id, err := strconv.Atoi(segments[0])
	if err != nil || id <= 0 {
		return 0, "", false
	}
	action := ""
	if len(segments) == 2 {
		action = segments[1]
	}
	return id, action, true
}

// parseGameViewPath splits "/games/{id}" for the page route.
func parseGameViewPath(path string) (int, bool) {
	rest := strings.TrimPrefix(path, "/games/")
	if rest == path {
		return 0, false
	}
	rest = strings.Trim(rest, "/")
	if rest == "" || strings.Contains(rest, "/") {
		return 0, false
	}
	id, err := strconv.Atoi(rest)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

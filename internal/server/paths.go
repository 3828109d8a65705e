package server

import (
	"strconv"
	"strings"
)

func parseQuizPath(path string) (uint, bool) {
	const prefix = "/api/quizzes/"
	if !strings.HasPrefix(path, prefix) {
		return 0, false
	}
	rest := strings.TrimPrefix(path, prefix)
	rest = strings.Trim(rest, "/")
	if rest == "" || strings.Contains(rest, "/") {
		return 0, false
	}
	id, err := strconv.Atoi(rest)
	if err != nil {
		return 0, false
	}
	if id <= 0 {
		return 0, false
	}
	return uint(id), true
}

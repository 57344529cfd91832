//go:build tools

package tools

// Fija la versión del CLI que regenera docs/swagger.json (swag init -g cmd/api/main.go).
import (
	_ "github.com/swaggo/swag/cmd/swag"
)

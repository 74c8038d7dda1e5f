package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/colorhaus/colorhaus/internal/migration"
	"github.com/colorhaus/colorhaus/internal/observability"
	"github.com/colorhaus/colorhaus/internal/server"
	"github.com/colorhaus/colorhaus/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		observability.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		server.Module,
		migration.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}

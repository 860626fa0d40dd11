package router

import "go.uber.org/fx"

// Module exposes the configured gin engine to the fx graph.
var Module = fx.Provide(Setup)

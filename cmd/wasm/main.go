//go:build js && wasm

// Command wasm exposes the ball motion model to the browser via WebAssembly.
// After loading, it registers two global JavaScript functions:
//
//	runSimulation(jsonString) -> jsonString
//	newBall(width, height, ballSize) -> ball
//
// runSimulation takes and returns the same SimulationInput / SimulationLog JSON
// as the CLI. A ball is a live handle for a frame loop fed by device motion:
//
//	ball.update(ax, ay, dt); ball.reset(); ball.position() -> {x, y};
//	ball.velocity() -> {x, y}; ball.release()
package main

import (
	"syscall/js"

	"github.com/cxd309/tilt-engine/internal/engine"
	"github.com/cxd309/tilt-engine/internal/motion"
)

func main() {
	js.Global().Set("runSimulation", js.FuncOf(runSimulation))
	js.Global().Set("newBall", js.FuncOf(newBall))
	select {} // keep the WASM module alive until the page is closed
}

func runSimulation(_ js.Value, args []js.Value) any {
	if len(args) < 1 {
		return map[string]any{"error": "no input provided"}
	}

	result, err := engine.RunJSON(args[0].String(), nil)
	if err != nil {
		return map[string]any{"error": err.Error()}
	}
	return result
}

func newBall(_ js.Value, args []js.Value) any {
	if len(args) < 3 {
		return map[string]any{"error": "newBall(width, height, ballSize) needs 3 arguments"}
	}
	s := motion.New(args[0].Float(), args[1].Float(), args[2].Float())

	var funcs []js.Func
	bind := func(f func(args []js.Value) any) js.Func {
		fn := js.FuncOf(func(_ js.Value, args []js.Value) any { return f(args) })
		funcs = append(funcs, fn)
		return fn
	}

	ball := map[string]any{
		"update": bind(func(args []js.Value) any {
			if len(args) < 3 {
				return map[string]any{"error": "update(ax, ay, dt) needs 3 arguments"}
			}
			s.Update(args[0].Float(), args[1].Float(), args[2].Float())
			return nil
		}),
		"reset": bind(func([]js.Value) any {
			s.Reset()
			return nil
		}),
		"position": bind(func([]js.Value) any {
			x, y := s.Position()
			return map[string]any{"x": x, "y": y}
		}),
		"velocity": bind(func([]js.Value) any {
			vx, vy := s.Velocity()
			return map[string]any{"x": vx, "y": vy}
		}),
		"contacts": bind(func([]js.Value) any {
			return s.Contacts().String()
		}),
	}
	ball["release"] = bind(func([]js.Value) any {
		for _, fn := range funcs {
			fn.Release()
		}
		return nil
	})
	return ball
}

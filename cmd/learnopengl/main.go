package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/neapu/LearnOpenGL/scene"
	"github.com/neapu/LearnOpenGL/window"
)

// scenes maps the -scene flag to the example it starts.
var scenes = map[string]func() scene.Scene{
	"triangle":  func() scene.Scene { return scene.NewTriangle() },
	"rectangle": func() scene.Scene { return scene.NewRectangle() },
	"colors":    func() scene.Scene { return scene.NewColors() },
	"texture":   func() scene.Scene { return scene.NewTexture() },
}

func init() {
	// GLFW event handling and OpenGL calls must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	var sceneName = flag.String("scene", "triangle", "example to run: triangle, rectangle, colors or texture")
	var width = flag.Int("width", 800, "initial window width")
	var height = flag.Int("height", 600, "initial window height")
	var title = flag.String("title", "LearnOpenGL", "window title")
	flag.Parse()

	if err := run(*sceneName, *width, *height, *title); err != nil {
		log.Printf("error: %v", err)
		os.Exit(-1)
	}
}

func run(sceneName string, width, height int, title string) error {
	newScene, ok := scenes[sceneName]
	if !ok {
		return fmt.Errorf("unknown scene %q", sceneName)
	}

	if err := window.Init(); err != nil {
		return err
	}
	defer window.Terminate()

	win, err := window.New(window.Config{Title: title, Width: width, Height: height})
	if err != nil {
		return err
	}
	defer win.Destroy()

	s := newScene()
	defer s.Cleanup()
	if err := s.Init(win); err != nil {
		return fmt.Errorf("failed to initialize %s scene: %w", sceneName, err)
	}

	log.Printf("Running %s scene", sceneName)
	for !win.ShouldClose() {
		for _, ev := range win.PollEvents() {
			s.HandleEvent(ev)
		}
		s.Render()
		win.SwapBuffers()
	}
	return nil
}

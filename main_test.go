package main

import (
	"path/filepath"
	"testing"
	"time"
)

func TestCreateScene(t *testing.T) {
	tests := []struct {
		name        string
		sceneType   string
		expectError bool
	}{
		// Built-in scenes
		{"default scene", "default", false},
		{"cornell scene", "cornell", false},
		{"trianglemesh scene", "trianglemesh", false},

		// JSON scenes
		{"json scene by id", "json:pyramid-room", false},
		{"json scene by path", "scenes/pyramid-room.json", false},

		// Invalid scenes
		{"unknown scene", "nonexistent", true},
		{"invalid JSON path", "scenes/nonexistent.json", true},
		{"empty scene name", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scene, err := createScene(tt.sceneType, 0, nil)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for scene type '%s', but got none", tt.sceneType)
				}
				if scene != nil {
					t.Errorf("Expected nil scene for invalid scene type '%s', got %T", tt.sceneType, scene)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error for scene type '%s': %v", tt.sceneType, err)
			}
			if scene == nil {
				t.Fatalf("Expected scene for valid scene type '%s', got nil", tt.sceneType)
			}
			if scene.CameraConfig.Width <= 0 {
				t.Errorf("Scene camera width should be positive, got %d", scene.CameraConfig.Width)
			}
			if scene.SamplingConfig.Height <= 0 {
				t.Errorf("Scene sampling height should be positive, got %d", scene.SamplingConfig.Height)
			}
			if scene.SamplingConfig.Width <= 0 {
				t.Errorf("Scene sampling width should be positive, got %d", scene.SamplingConfig.Width)
			}
		})
	}
}

func TestCreateScene_WidthOverride(t *testing.T) {
	scene, err := createScene("cornell", 120, nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if scene.SamplingConfig.Width != 120 {
		t.Errorf("Expected width 120, got %d", scene.SamplingConfig.Width)
	}
	if scene.Camera.Config().Width != 120 {
		t.Errorf("Expected camera width 120, got %d", scene.Camera.Config().Width)
	}
}

func TestDefaultOutputPath(t *testing.T) {
	now := time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)

	tests := []struct {
		id       string
		ao       bool
		expected string
	}{
		{"default", false, filepath.Join("output", "default", "render_20240309_140507.png")},
		{"cornell", true, filepath.Join("output", "cornell", "render_20240309_140507_ao.png")},
		{"json:my-scene", false, filepath.Join("output", "my-scene", "render_20240309_140507.png")},
		{"scenes/room.json", false, filepath.Join("output", "room", "render_20240309_140507.png")},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			if got := defaultOutputPath(tt.id, tt.ao, now); got != tt.expected {
				t.Errorf("defaultOutputPath(%q, %v) = %q, want %q", tt.id, tt.ao, got, tt.expected)
			}
		})
	}
}

package controller

import "testing"

func TestStartOptions(t *testing.T) {
	cfg := &StartConfig{}

	for _, tt := range []struct {
		option StartOption
		want   StartMode
	}{
		{WithListMode(), ModeList},
		{WithCheckMode(), ModeCheck},
		{WithViewMode(), ModeView},
		{WithRunMode(), ModeRun},
	} {
		tt.option(cfg)
		if cfg.mode != tt.want {
			t.Fatalf("mode = %v, want %v", cfg.mode, tt.want)
		}
	}
}

func TestNewStartConfig_LastOptionWins(t *testing.T) {
	cfg := newStartConfig([]StartOption{WithListMode(), WithCheckMode()})
	if cfg.mode != ModeCheck {
		t.Fatalf("mode = %v, want %v", cfg.mode, ModeCheck)
	}
}

package audio

import "testing"

func TestDefaultAudioConfig(t *testing.T) {
	cfg := DefaultAudioConfig()

	if !cfg.Enabled {
		t.Error("Expected default config to have Enabled=true")
	}
	if cfg.MasterVolume != 0.5 {
		t.Errorf("Expected default master volume 0.5, got %f", cfg.MasterVolume)
	}
	if cfg.SampleRate != 44100 {
		t.Errorf("Expected default sample rate 44100, got %d", cfg.SampleRate)
	}
	for c := Cue(0); c < cueCount; c++ {
		if _, ok := cfg.CueVolumes[c]; !ok {
			t.Errorf("Expected volume for cue %d to be set", c)
		}
	}
}

func TestLoadAudioConfigFromEnv(t *testing.T) {
	t.Setenv("SHOOTER_AUDIO_ENABLED", "false")
	t.Setenv("SHOOTER_MASTER_VOLUME", "150")
	t.Setenv("SHOOTER_SAMPLE_RATE", "22050")

	cfg := LoadAudioConfig()
	if cfg.Enabled {
		t.Error("Expected audio disabled")
	}
	if cfg.MasterVolume != 1 {
		t.Errorf("Expected volume clamped to 1, got %f", cfg.MasterVolume)
	}
	if cfg.SampleRate != 22050 {
		t.Errorf("Expected sample rate 22050, got %d", cfg.SampleRate)
	}
}

func TestLoadAudioConfigIgnoresGarbage(t *testing.T) {
	t.Setenv("SHOOTER_AUDIO_ENABLED", "maybe")
	t.Setenv("SHOOTER_SAMPLE_RATE", "-1")

	cfg := LoadAudioConfig()
	if !cfg.Enabled || cfg.SampleRate != 44100 {
		t.Error("Expected defaults when env values are invalid")
	}
}

func TestDisabledPlayer(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.Enabled = false
	p := NewPlayer(cfg)

	if err := p.Initialize(); err != nil {
		t.Fatalf("Expected disabled Initialize to succeed, got %v", err)
	}
	if err := p.Play(DefaultCues()[CueShot], 1); err != ErrNotInitialized {
		t.Errorf("Expected ErrNotInitialized, got %v", err)
	}
	p.PlayCue(CueShot)
	p.Cleanup()
}

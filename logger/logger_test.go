package logger

import "testing"

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()
	if cfg.Level != "info" {
		t.Errorf("Level = %q, want %q", cfg.Level, "info")
	}
	if cfg.Format != "console" {
		t.Errorf("Format = %q, want %q", cfg.Format, "console")
	}
	if !cfg.Timestamp {
		t.Error("expected Timestamp to default to true")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{Level: "debug", Format: "json"}, false},
		{"bad level", Config{Level: "loud", Format: "json"}, true},
		{"bad format", Config{Level: "info", Format: "xml"}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestFields(t *testing.T) {
	m := Fields("key", "user", "status", "success")
	if m["key"] != "user" || m["status"] != "success" {
		t.Errorf("unexpected fields map: %v", m)
	}
	if len(Fields("dangling")) != 0 {
		t.Error("expected a dangling key to be dropped")
	}
}

func TestNopDoesNotPanic(t *testing.T) {
	log := Nop()
	log.Debug("quiet")
	log.Info("quiet", Fields("a", 1))
	log.Warn("quiet")
	log.Error("quiet", ErrorFields("k", errFake{}))
}

type errFake struct{}

func (errFake) Error() string { return "fake" }

package storage

import "testing"

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()
	if cfg.Provider != ProviderLocal {
		t.Errorf("Provider = %q, want %q", cfg.Provider, ProviderLocal)
	}
	if cfg.BasePath != DefaultBasePath {
		t.Errorf("BasePath = %q, want %q", cfg.BasePath, DefaultBasePath)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"local with path", Config{Provider: ProviderLocal, BasePath: "/tmp/x"}, false},
		{"local without path", Config{Provider: ProviderLocal}, true},
		{"memory", Config{Provider: ProviderMemory}, false},
		{"unknown", Config{Provider: "s3"}, true},
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

func TestNew_UnregisteredProvider(t *testing.T) {
	// No provider package is imported by this test binary, so the registry
	// has no factory for "memory".
	if _, err := New(Config{Provider: ProviderMemory}, nil); err == nil {
		t.Error("expected an error for an unregistered provider")
	}
}

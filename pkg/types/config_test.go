package types

import (
	"errors"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:    "empty source returns ErrSourceEmpty",
			config:  Config{Source: "", DataDir: "/tmp/data"},
			wantErr: ErrSourceEmpty,
		},
		{
			name:    "unknown source returns ErrSourceUnknown",
			config:  Config{Source: "postgres", DataDir: "/tmp/data"},
			wantErr: ErrSourceUnknown,
		},
		{
			name:    "default file config",
			config:  DefaultConfig("/tmp/data"),
			wantErr: nil,
		},
		{
			name:    "file config with empty DataDir is valid at config level",
			config:  DefaultConfig(""),
			wantErr: nil,
		},
		{
			name: "missing commands file",
			config: Config{
				Source:        SourceFile,
				InventoryFile: DefaultInventoryFile,
				CustomersFile: DefaultCustomersFile,
			},
			wantErr: ErrFileNameRequired,
		},
		{
			name: "sqlite without path",
			config: func() Config {
				c := DefaultConfig("/tmp/data")
				c.Source = SourceSQLite
				return c
			}(),
			wantErr: ErrSQLitePathEmpty,
		},
		{
			name: "sqlite with path",
			config: func() Config {
				c := DefaultConfig("/tmp/data")
				c.Source = SourceSQLite
				c.SQLitePath = DefaultSQLiteFile
				return c
			}(),
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("expected nil error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error %v, got nil", tt.wantErr)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

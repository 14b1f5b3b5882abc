package db

import (
	"testing"

	"pagegen_backend/internal/platform/config"
)

// TestBuildDSN はPostgreSQL接続用のDSN文字列が正しく生成されることを検証します。
func TestBuildDSN(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		cfg      config.Config
		expected string
	}{
		{
			name: "standard config",
			cfg: config.Config{
				DBHost:     "localhost",
				DBPort:     "5432",
				DBUser:     "testuser",
				DBPassword: "testpass",
				DBName:     "testdb",
			},
			expected: "host=localhost user=testuser password=testpass dbname=testdb port=5432 sslmode=disable",
		},
		{
			name: "remote host",
			cfg: config.Config{
				DBHost:     "db.internal",
				DBPort:     "5433",
				DBUser:     "pagegen",
				DBPassword: "s3cret",
				DBName:     "pagegen",
			},
			expected: "host=db.internal user=pagegen password=s3cret dbname=pagegen port=5433 sslmode=disable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dsn := BuildDSN(tt.cfg)
			if dsn != tt.expected {
				t.Errorf("expected DSN %q, got %q", tt.expected, dsn)
			}
		})
	}
}

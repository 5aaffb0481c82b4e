package validation

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func TestSchemaValidator_PrizeTiers(t *testing.T) {
	validator := NewSchemaValidator()

	tests := []struct {
		name      string
		data      string
		wantError bool
		errorMsg  string
	}{
		{
			name: "valid table",
			data: `[{"level": 2, "name": "First", "quota": 1}, {"level": 1, "name": "Lucky", "quota": 10}]`,
		},
		{
			name:      "empty table",
			data:      `[]`,
			wantError: true,
			errorMsg:  "minItems",
		},
		{
			name:      "missing quota",
			data:      `[{"level": 1, "name": "Lucky"}]`,
			wantError: true,
			errorMsg:  "required",
		},
		{
			name:      "zero quota",
			data:      `[{"level": 1, "name": "Lucky", "quota": 0}]`,
			wantError: true,
			errorMsg:  "/0/quota",
		},
		{
			name:      "level as string",
			data:      `[{"level": "one", "name": "Lucky", "quota": 1}]`,
			wantError: true,
			errorMsg:  "/0/level",
		},
		{
			name:      "fractional level",
			data:      `[{"level": 1.5, "name": "Lucky", "quota": 1}]`,
			wantError: true,
			errorMsg:  "/0/level",
		},
		{
			name:      "invalid JSON",
			data:      `[{"level": 1,`,
			wantError: true,
			errorMsg:  "parse JSON",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateBytes([]byte(tt.data), SchemaPrizeTiers)

			if tt.wantError {
				if err == nil {
					t.Errorf("Expected error but got none")
				} else if tt.errorMsg != "" && !strings.Contains(err.Error(), tt.errorMsg) {
					t.Errorf("Expected error to contain %q, got: %v", tt.errorMsg, err)
				}
			} else if err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

func TestSchemaValidator_RosterFile(t *testing.T) {
	validator := NewSchemaValidator()
	tmpDir := t.TempDir()

	tests := []struct {
		name      string
		data      string
		wantError bool
	}{
		{name: "valid roster", data: `[{"id": "E001", "name": "张三"}, {"id": "E002", "name": "Bob"}]`},
		{name: "numeric id", data: `[{"id": 1, "name": "Alice"}]`, wantError: true},
		{name: "blank name", data: `[{"id": "E001", "name": ""}]`, wantError: true},
		{name: "object instead of list", data: `{"id": "E001", "name": "Alice"}`, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dataPath := filepath.Join(tmpDir, "roster.json")
			if err := os.WriteFile(dataPath, []byte(tt.data), 0o600); err != nil {
				t.Fatalf("Failed to write data file: %v", err)
			}

			err := validator.ValidateFile(dataPath, SchemaRoster)
			if tt.wantError && err == nil {
				t.Errorf("Expected error but got none")
			}
			if !tt.wantError && err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

func TestSchemaValidator_UnknownSchema(t *testing.T) {
	validator := NewSchemaValidator()

	err := validator.ValidateBytes([]byte(`[]`), "nonexistent.schema.json")
	if err == nil {
		t.Fatal("Expected error for unknown schema")
	}
	if !strings.Contains(err.Error(), "failed to load schema") {
		t.Errorf("Expected 'failed to load schema' error, got: %v", err)
	}
}

func TestSchemaValidator_MissingDataFile(t *testing.T) {
	validator := NewSchemaValidator()

	err := validator.ValidateFile(filepath.Join(t.TempDir(), "missing.json"), SchemaRoster)
	if err == nil {
		t.Fatal("Expected error for missing data file")
	}
	if !strings.Contains(err.Error(), "failed to read data file") {
		t.Errorf("Expected 'failed to read data file' error, got: %v", err)
	}
}

func TestSchemaValidator_ConcurrentUse(t *testing.T) {
	validator := NewSchemaValidator()
	data := []byte(`[{"level": 1, "name": "Lucky", "quota": 3}]`)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := validator.ValidateBytes(data, SchemaPrizeTiers); err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()
}

package models

import (
	"sync"
	"testing"

	"gorm.io/gorm/schema"
)

// The login tracker writes login_events with hand-written SQL, so the
// migrated schema must carry every column that insert names.
func TestLoginEventSchemaCoversRawInsertColumns(t *testing.T) {
	s, err := schema.Parse(&LoginEvent{}, &sync.Map{}, schema.NamingStrategy{})
	if err != nil {
		t.Fatalf("failed to parse LoginEvent schema: %v", err)
	}

	if s.Table != "login_events" {
		t.Fatalf("table: got %q, want login_events", s.Table)
	}

	// Column list of the INSERT in utils.LogLoginEvent
	columns := []string{
		"id", "user_id", "logged_in_at", "ip_address",
		"user_agent", "device_type", "browser", "os",
	}
	for _, col := range columns {
		if s.FieldsByDBName[col] == nil {
			t.Errorf("column %q missing from LoginEvent schema", col)
		}
	}
}

package domain

// AuditLogger provides a simple interface for logging audit events.
// Services should depend on this interface rather than concrete
// implementations.
type AuditLogger interface {
	Log(action string, actor string, metadata map[string]interface{}) error
}

// NopAuditLogger discards all events. Useful for embedding the engine in
// callers that keep no audit trail.
type NopAuditLogger struct{}

// Log implements AuditLogger.
func (NopAuditLogger) Log(string, string, map[string]interface{}) error { return nil }

package remote

import (
	"fmt"

	"github.com/google/uuid"
)

const instanceKey = "user-instance"

// KV is the persistence surface the identity helper needs.
type KV interface {
	Get(key string, dest interface{}) (bool, error)
	Set(key string, value interface{}) error
}

// UserInstanceID returns the identity used to key remote state. An
// authenticated session id always wins; otherwise a per-installation
// local id is minted once and persisted.
func UserInstanceID(kv KV, sessionUserID string) (string, error) {
	if sessionUserID != "" {
		return sessionUserID, nil
	}

	var id string
	found, err := kv.Get(instanceKey, &id)
	if err != nil {
		return "", fmt.Errorf("failed to load instance id: %w", err)
	}
	if found && id != "" {
		return id, nil
	}

	id = "local-" + uuid.New().String()
	if err := kv.Set(instanceKey, id); err != nil {
		return "", fmt.Errorf("failed to persist instance id: %w", err)
	}
	return id, nil
}

package primitives

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
)

// ComputeVersion returns script.Version when set, otherwise the first eight
// bytes of the SHA-256 of the script's JSON form, hex encoded. Equal trees
// always get equal versions.
func ComputeVersion(script *Script) string {
	if script.Version != "" {
		return script.Version
	}

	data, err := json.Marshal(script)
	if err != nil {
		return "invalid"
	}

	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x", hash[:8])
}
